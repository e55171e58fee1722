package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	BrowserFailed ErrorCode = "BrowserFailed"
	PagerFailed   ErrorCode = "PagerFailed"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
