package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"sync"
	"time"

	"github.com/kbinani/screenshot"
)

// Geometry is the fixed width/height/offset of the monitored display,
// resolved once at startup.
type Geometry struct {
	Width  int
	Height int
	Left   int
	Top    int
}

// ToPixels converts normalized [0,1] ratios to absolute pixel
// coordinates. Out-of-range ratios are clamped, not rejected, and the
// result always lands inside the display.
func (g Geometry) ToPixels(xr, yr float64) (int, int) {
	x := int(clampRatio(xr) * float64(g.Width))
	if x >= g.Width {
		x = g.Width - 1
	}
	y := int(clampRatio(yr) * float64(g.Height))
	if y >= g.Height {
		y = g.Height - 1
	}
	return x + g.Left, y + g.Top
}

// Center returns the display's center point in absolute coordinates.
func (g Geometry) Center() (int, int) {
	return g.Left + g.Width/2, g.Top + g.Height/2
}

func clampRatio(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Capturer grabs one raw screen image. Implementations are not required
// to be safe for concurrent use; Service serializes all calls.
type Capturer interface {
	Grab() (image.Image, error)
}

type displayCapturer struct {
	bounds image.Rectangle
}

// NewDisplayCapturer resolves the geometry of the given display and
// returns a Capturer bound to it.
func NewDisplayCapturer(display int) (Capturer, Geometry, error) {
	if n := screenshot.NumActiveDisplays(); display < 0 || display >= n {
		return nil, Geometry{}, fmt.Errorf("display %d not available (%d active)", display, n)
	}
	bounds := screenshot.GetDisplayBounds(display)
	geom := Geometry{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Left:   bounds.Min.X,
		Top:    bounds.Min.Y,
	}
	return &displayCapturer{bounds: bounds}, geom, nil
}

func (c *displayCapturer) Grab() (image.Image, error) {
	return screenshot.CaptureRect(c.bounds)
}

// Frame is one encoded capture. Produced, sent, discarded; never retained.
type Frame struct {
	Data       []byte
	ProducedAt time.Time
}

// Service serializes capture and JPEG encoding. The mutex spans grab and
// encode so concurrent streams never contend for the capture device or
// observe a torn frame.
type Service struct {
	mu       sync.Mutex
	capturer Capturer
	quality  int
}

func NewService(capturer Capturer, quality int) *Service {
	if quality <= 0 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	return &Service{capturer: capturer, quality: quality}
}

// NextFrame grabs and encodes one frame. Callable from any number of
// goroutines; only one capture-and-encode runs at a time.
func (s *Service) NextFrame() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	img, err := s.capturer.Grab()
	if err != nil {
		return Frame{}, fmt.Errorf("screen grab: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.quality}); err != nil {
		return Frame{}, fmt.Errorf("jpeg encode: %w", err)
	}

	return Frame{Data: buf.Bytes(), ProducedAt: time.Now()}, nil
}
