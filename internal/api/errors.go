// Package api defines the JSON request and response bodies of the HTTP
// surface. Entities never cross the transport boundary directly; the mapper
// package converts between the two.
package api

// ErrorCode identifies an error class machine-readably, independent of the
// HTTP status.
type ErrorCode string

const (
	BADREQUEST     ErrorCode = "BADREQUEST"
	BADCREDENTIALS ErrorCode = "BADCREDENTIALS"
	UNAUTHORIZED   ErrorCode = "UNAUTHORIZED"
	FORBIDDEN      ErrorCode = "FORBIDDEN"
	NOTFOUND       ErrorCode = "NOTFOUND"
	USEREXISTS     ErrorCode = "USEREXISTS"
	TICKETUSED     ErrorCode = "TICKETUSED"
	BADPAYLOAD     ErrorCode = "BADPAYLOAD"
	INTERNAL       ErrorCode = "INTERNAL"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
