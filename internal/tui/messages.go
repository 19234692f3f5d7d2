package tui

// InfoMsg is rendered in the footer until the next key press.
type InfoMsg string

// ErrorMsg is rendered in the footer and logged. Message and Args give
// the error context, e.g. "refreshing hosts".
type ErrorMsg struct {
	Error   error
	Message string
	Args    []any
}

func NewErrorMsg(err error, msg string, args ...any) ErrorMsg {
	return ErrorMsg{
		Error:   err,
		Message: msg,
		Args:    args,
	}
}
