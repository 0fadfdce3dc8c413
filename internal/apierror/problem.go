// Package apierror writes RFC 9457 problem details
// (https://www.rfc-editor.org/rfc/rfc9457.html) for the check-in API.
// Every error response carries a urn:checkin:error:* type, the request id and
// a message safe to show to end users.
package apierror

// ProblemDetails is the application/problem+json body.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	RequestID   string `json:"request_id,omitempty"`
	UserMessage string `json:"user_message,omitempty"`
	// RetryAfter is also sent as the Retry-After header (429, 503)
	RetryAfter *int `json:"retry_after,omitempty"`
	// Action hints what the client should do next, e.g. "authenticate"
	Action string       `json:"action,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError reports one invalid request field, using its JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (p *ProblemDetails) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}

// Retryable reports whether the client may repeat the request unchanged
func (p *ProblemDetails) Retryable() bool {
	return p.RetryAfter != nil
}
