package painter

import (
	"math"
	"testing"
)

func TestIdentityTransformsNothing(t *testing.T) {
	x, y := Identity().TransformPoint(3, -7)
	if x != 3 || y != -7 {
		t.Errorf("identity moved point to (%v, %v)", x, y)
	}
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
}

func TestTranslateMatrixTransformPoint(t *testing.T) {
	m := TranslateMatrix(5, -2).Transposed()
	x, y := m.TransformPoint(1, 1)
	if x != 6 || y != -1 {
		t.Errorf("translated point = (%v, %v), want (6, -1)", x, y)
	}
}

func TestScaleMatrixTransformPoint(t *testing.T) {
	m := ScaleMatrix(2, 3)
	x, y := m.TransformPoint(4, 5)
	if x != 8 || y != 15 {
		t.Errorf("scaled point = (%v, %v), want (8, 15)", x, y)
	}
}

func TestRotationMatrixQuarterTurn(t *testing.T) {
	m := RotationMatrix(math.Pi / 2).Transposed()
	x, y := m.TransformPoint(1, 0)
	const eps = 1e-12
	if math.Abs(x) > eps || math.Abs(y-1) > eps {
		t.Errorf("rotated point = (%v, %v), want (0, 1)", x, y)
	}
}

func TestMulIdentityIsNeutral(t *testing.T) {
	m := TranslateMatrix(1, 2).Mul(ScaleMatrix(3, 4))
	if got := m.Mul(Identity()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestTransposedIsInvolution(t *testing.T) {
	m := Matrix3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	if got := m.Transposed().Transposed(); got != m {
		t.Errorf("double transpose = %v, want %v", got, m)
	}
	if m.Transposed()[0][1] != 4 {
		t.Error("transpose did not swap off-diagonal elements")
	}
}
