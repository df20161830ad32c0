package server

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/ui"
)

type TemplateManager struct {
	templates map[string]*template.Template
	logger    *zap.Logger
}

func NewTemplateManager(logger *zap.Logger) (*TemplateManager, error) {
	templates := make(map[string]*template.Template)
	for _, page := range []string{"login.html", "dashboard.html"} {
		content, err := ui.Files.ReadFile(page)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(page).Parse(string(content))
		if err != nil {
			return nil, err
		}
		templates[page] = tmpl
	}
	return &TemplateManager{templates: templates, logger: logger}, nil
}

func (tm *TemplateManager) Render(w http.ResponseWriter, name string, data interface{}) {
	tmpl, ok := tm.templates[name]
	if !ok {
		tm.logger.Error("unknown template", zap.String("template", name))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		tm.logger.Error("template render failed", zap.String("template", name), zap.Error(err))
	}
}
