package ui

type state int

const (
	statePicking state = iota
	stateConfirmed
	stateCancelled
)

func (s state) String() string {
	switch s {
	case statePicking:
		return "Picking"
	case stateConfirmed:
		return "Confirmed"
	case stateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
