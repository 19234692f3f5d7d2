package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	Black      = lipgloss.Color("#000000")
	Red        = lipgloss.Color("#FF5353")
	Orange     = lipgloss.Color("214")
	Yellow     = lipgloss.Color("#DBBD70")
	Green      = lipgloss.Color("34")
	LightGreen = lipgloss.Color("86")
	Blue       = lipgloss.Color("63")
	Cyan       = lipgloss.Color("44")
	Violet     = lipgloss.Color("13")
	Grey       = lipgloss.Color("#737373")
	LightGrey  = lipgloss.Color("245")
	DarkGrey   = lipgloss.Color("#606362")
	White      = lipgloss.Color("#ffffff")
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	LogRecordAttributeKey = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(LightGrey)}

	CurrentBackground = Grey
	CurrentForeground = White
)

// StateColor picks a foreground color for a resource state cell. States
// are grouped by convention: steady healthy states are green, failures
// red, powered-down or disabled states grey, and transitional states
// yellow.
func StateColor(state string) lipgloss.TerminalColor {
	switch state {
	case "RUNNING", "ACTIVE", "MONITORED", "READY", "USED", "ON":
		return Green
	case "HOLD":
		return Orange
	case "ERROR", "FAILURE", "FAILED", "UNKNOWN", "CLONING_FAILURE", "BOOT_FAILURE":
		return Red
	case "POWEROFF", "STOPPED", "SUSPENDED", "DISABLED", "OFFLINE", "DONE", "UNDEPLOYED", "OFF":
		return Grey
	case "PENDING", "INIT", "LCM_INIT", "LOCKED", "BOOT", "PROLOG", "EPILOG",
		"MIGRATE", "SAVE", "SHUTDOWN", "CLEANUP", "HOTPLUG":
		return Yellow
	}
	if strings.Contains(state, "ING") {
		return Yellow
	}
	return lipgloss.NoColor{}
}
