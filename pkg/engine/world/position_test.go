package world

import "testing"

func TestPositionCoveredUp(t *testing.T) {
	pos := Position{X: 10, Y: 10, Z: 7}

	up := pos.CoveredUp(1)
	if up != (Position{X: 11, Y: 11, Z: 6}) {
		t.Errorf("CoveredUp(1) = %v", up)
	}
	if down := pos.CoveredDown(2); down != (Position{X: 8, Y: 8, Z: 9}) {
		t.Errorf("CoveredDown(2) = %v", down)
	}
	if pos.CoveredUp(0) != pos {
		t.Error("CoveredUp(0) changed the position")
	}
}

func TestPositionIsUnderground(t *testing.T) {
	if (Position{X: 0, Y: 0, Z: SeaFloor}).IsUnderground() {
		t.Error("sea floor reported underground")
	}
	if !(Position{X: 0, Y: 0, Z: SeaFloor + 1}).IsUnderground() {
		t.Error("floor below sea level not reported underground")
	}
}

func TestInvalidPosition(t *testing.T) {
	if InvalidPosition.IsValid() {
		t.Error("InvalidPosition reported valid")
	}
	if !(Position{X: 0, Y: 0, Z: 0}).IsValid() {
		t.Error("origin reported invalid")
	}
}

func TestTranslatedToDirection(t *testing.T) {
	pos := Position{X: 5, Y: 5, Z: 7}
	tests := []struct {
		dir  Direction
		want Position
	}{
		{North, Position{X: 5, Y: 4, Z: 7}},
		{East, Position{X: 6, Y: 5, Z: 7}},
		{South, Position{X: 5, Y: 6, Z: 7}},
		{West, Position{X: 4, Y: 5, Z: 7}},
	}
	for _, tt := range tests {
		if got := pos.TranslatedToDirection(tt.dir); got != tt.want {
			t.Errorf("%v: got %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, dir := range AllDirections() {
		if dir.Opposite().Opposite() != dir {
			t.Errorf("%v: double opposite is not identity", dir)
		}
	}
}
