package resource

// Action is a state transition a user can ask the provider to perform on
// an item.
type Action int

const (
	Resume Action = iota
	Suspend
	Stop
	PowerOff
	Hold
	Release
	Terminate
)

func (a Action) String() string {
	return [...]string{
		"Resume",
		"Suspend",
		"Stop",
		"Power off",
		"Hold",
		"Release",
		"Terminate",
	}[a]
}

// RPCName is the action name the OpenNebula API expects.
func (a Action) RPCName() string {
	return [...]string{
		"resume",
		"suspend",
		"stop",
		"poweroff",
		"hold",
		"release",
		"terminate",
	}[a]
}

// PendingState is the provisional state label an item shows between
// submitting the action and the next refresh reconciling it with the
// server.
func (a Action) PendingState() string {
	return [...]string{
		"RESUMING",
		"SUSPENDING",
		"STOPPING",
		"POWERING_OFF",
		"HOLDING",
		"RELEASING",
		"TERMINATING",
	}[a]
}

// Destructive actions require an explicit confirmation step before they
// are dispatched.
func (a Action) Destructive() bool {
	return a == Terminate
}
