package one

import (
	"strings"

	"github.com/tonetui/tone/internal/errdef"
)

// FormatError condenses a provider failure into a status-line message.
// Authentication, connection and timeout failures get a hint pointing at
// the likely misconfiguration; anything else is truncated to a single
// status line. The authentication match covers both HTTP 401 and the
// API's "User couldn't be authenticated" phrasing.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := errdef.UserMessage(err)
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "401") || strings.Contains(lower, "authenticat"):
		return "Authentication failed. Check ONE_AUTH credentials."
	case strings.Contains(lower, "connection refused"):
		return "Connection refused. Check ONE_XMLRPC endpoint."
	case strings.Contains(lower, "timeout"):
		return "Request timed out. Server may be unreachable."
	}
	if len(msg) > 100 {
		return msg[:100] + "..."
	}
	return msg
}
