package panelapp

type ErrorCode string

const (
	ErrInvalidBaseURL ErrorCode = "InvalidBaseURL"

	// ErrRequestFailed represents transport errors: DNS, TLS, connection resets, timeouts
	ErrRequestFailed ErrorCode = "RequestFailed"

	// ErrUnexpectedStatus represents any HTTP status other than 200
	ErrUnexpectedStatus ErrorCode = "UnexpectedStatus"
)
