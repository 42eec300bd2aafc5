package input

// Action represents a high-level intent in the viewer.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// View toggles
	ActionToggleLights
	ActionToggleEdge

	ActionDumpMap
	ActionQuit
)

// bindings maps raw codes to actions. Multiple codes may point to the
// same action.
var bindings = map[string]Action{
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,
	"l":           ActionMoveEast,

	"L": ActionToggleLights,
	"e": ActionToggleEdge,
	"m": ActionDumpMap,

	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent applies the binding table to a raw code.
func MapToIntent(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionToggleLights:
		return "Toggle Lights"
	case ActionToggleEdge:
		return "Toggle Edge Culling"
	case ActionDumpMap:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}
