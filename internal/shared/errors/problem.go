// Package errors provides RFC 7807 Problem Details for faults that fall outside the
// {status, message} envelope returned by the boutique endpoints.
package errors

import "net/http"

// ProblemDetail represents an RFC 7807 Problem Details response.
// See: https://www.rfc-editor.org/rfc/rfc7807
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// WithDetail returns a copy with the given detail message.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// TypeInternal identifies unexpected server errors.
const TypeInternal = "/problems/internal-error"

// ErrInternal indicates an unexpected server error, such as an unreachable store repository.
var ErrInternal = ProblemDetail{
	Type:   TypeInternal,
	Title:  "Internal Server Error",
	Status: http.StatusInternalServerError,
}
