package input

import "testing"

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"w", ActionMoveNorth},
		{"k", ActionMoveNorth},
		{"arrow_down", ActionMoveSouth},
		{"arrow_left", ActionMoveWest},
		{"arrow_right", ActionMoveEast},
		{"l", ActionMoveEast},
		{"L", ActionToggleLights},
		{"e", ActionToggleEdge},
		{"m", ActionDumpMap},
		{"q", ActionQuit},
		{"escape", ActionQuit},
		{"z", ActionNone},
		{"", ActionNone},
	}
	for _, tc := range tests {
		if got := MapToIntent(tc.code); got != tc.want {
			t.Errorf("MapToIntent(%q) = %s, want %s", tc.code, ActionName(got), ActionName(tc.want))
		}
	}
}

func TestActionNamesDistinct(t *testing.T) {
	seen := map[string]Action{}
	for _, a := range []Action{
		ActionMoveNorth, ActionMoveSouth, ActionMoveWest, ActionMoveEast,
		ActionToggleLights, ActionToggleEdge, ActionDumpMap, ActionQuit,
	} {
		name := ActionName(a)
		if prev, ok := seen[name]; ok {
			t.Errorf("actions %d and %d share the name %q", prev, a, name)
		}
		seen[name] = a
	}
}
