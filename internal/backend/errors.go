package backend

import (
	"fmt"
)

// AgentError reports that the host agent could not serve a request,
// either because the transport failed or because it answered non-2xx.
// Callers surface it as 502 so the operator knows control input was not
// applied; it is never silently downgraded to the local backend.
type AgentError struct {
	StatusCode int    // zero on transport failure
	Body       string // response body text when StatusCode is set
	Err        error  // underlying transport error, if any
}

func (e *AgentError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("agent error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("agent unavailable: %v", e.Err)
}

func (e *AgentError) Unwrap() error {
	return e.Err
}
