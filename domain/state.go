package domain

// ConversationState is the current step of a participant's multi-turn flow.
// Absence of a stored value means no flow is in progress.
type ConversationState string

const (
	StateNone             ConversationState = ""
	StateAwaitingName     ConversationState = "AWAITING_NAME"
	StateAwaitingPhone    ConversationState = "AWAITING_PHONE"
	StateAwaitingEmail    ConversationState = "AWAITING_EMAIL"
	StateAwaitingServices ConversationState = "AWAITING_SERVICES"
	StateAwaitingNeeds    ConversationState = "AWAITING_NEEDS"
)

// Known reports whether s is one of the enumerated flow steps. A stored
// value outside this set is treated as corrupted state by the engine.
func (s ConversationState) Known() bool {
	switch s {
	case StateNone, StateAwaitingName, StateAwaitingPhone,
		StateAwaitingEmail, StateAwaitingServices, StateAwaitingNeeds:
		return true
	}
	return false
}
