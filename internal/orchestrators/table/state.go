package table

// State is where the table is in a roll cycle
type State int

// Roll cycle states
const (
	StateIdle State = iota
	StateAwaitingSelection
	StateRolling
	StateResultShown
	StateAwaitingHitDecision
	StateDamageRolling
)

// String returns a readable state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingSelection:
		return "awaiting_selection"
	case StateRolling:
		return "rolling"
	case StateResultShown:
		return "result_shown"
	case StateAwaitingHitDecision:
		return "awaiting_hit_decision"
	case StateDamageRolling:
		return "damage_rolling"
	default:
		return "unknown"
	}
}
