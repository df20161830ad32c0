package protocol

// Event type discriminators and mouse actions as sent by the dashboard.
const (
	TypeMouse    = "mouse"
	TypeKeyboard = "keyboard"

	ActionMove   = "move"
	ActionClick  = "click"
	ActionScroll = "scroll"

	EventDown = "down"
	EventUp   = "up"
)

// InputEvent is the wire form of a browser input event. Coordinates are
// resolution-independent ratios in [0,1]; they are converted to absolute
// pixels only at the backend boundary.
type InputEvent struct {
	Type      string  `json:"type"`
	Action    string  `json:"action,omitempty"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Button    string  `json:"button,omitempty"`
	Double    bool    `json:"double,omitempty"`
	DeltaY    float64 `json:"deltaY,omitempty"`
	Key       string  `json:"key,omitempty"`
	Code      string  `json:"code,omitempty"`
	EventType string  `json:"eventType,omitempty"`
}

// StatusResponse is the generic JSON body for simple API replies.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// WakeResponse is returned by the local wake path; commands_run reports
// whether at least one configured wake command exited successfully.
type WakeResponse struct {
	Status      string `json:"status"`
	CommandsRun bool   `json:"commands_run"`
	Message     string `json:"message"`
}

// HealthResponse is the agent health payload.
type HealthResponse struct {
	Status string  `json:"status"`
	Time   float64 `json:"time,omitempty"`
}

// ErrorResponse carries an API error detail.
type ErrorResponse struct {
	Error string `json:"error"`
}
