package math

import (
	gomath "math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return gomath.Abs(a-b) < epsilon
}

func TestVec3_Operations(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, -3, -3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %v", got)
	}
	if got := a.Cross(b); got != (Vec3{-3, 6, -3}) {
		t.Errorf("Cross: got %v", got)
	}
	if got := (Vec3{3, 4, 0}).Length(); got != 5 {
		t.Errorf("Length: got %v", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize of zero vector: got %v", got)
	}
}

func TestMat4_MulIdentity(t *testing.T) {
	m := Translate(1, 2, 3).Mul(Scale(2, 2, 2))
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M * I != M: %v", got)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * M != M: %v", got)
	}
}

func TestMat4_TransformPoint(t *testing.T) {
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{12, 2, 2}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestComposeDecompose_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		t    Vec3
		r    Quat
		s    Vec3
	}{
		{"identity", Vec3{}, QuatIdentity(), Vec3{1, 1, 1}},
		{"translation only", Vec3{1, -2, 3}, QuatIdentity(), Vec3{1, 1, 1}},
		{"uniform scale", Vec3{}, QuatIdentity(), Vec3{2, 2, 2}},
		{
			"rotation 90deg about Y",
			Vec3{5, 0, 0},
			Quat{X: 0, Y: gomath.Sqrt2 / 2, Z: 0, W: gomath.Sqrt2 / 2},
			Vec3{1, 1, 1},
		},
		{
			"full trs",
			Vec3{1, 2, 3},
			Quat{X: 0.5, Y: 0.5, Z: 0.5, W: 0.5},
			Vec3{2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compose(tt.t, tt.r, tt.s)
			gt, gr, gs := Decompose(m)

			for i, pair := range [][2]float64{
				{gt.X, tt.t.X}, {gt.Y, tt.t.Y}, {gt.Z, tt.t.Z},
				{gs.X, tt.s.X}, {gs.Y, tt.s.Y}, {gs.Z, tt.s.Z},
			} {
				if !almostEqual(pair[0], pair[1]) {
					t.Errorf("component %d: got %v, want %v", i, pair[0], pair[1])
				}
			}

			// q and -q encode the same rotation.
			dot := gr.Dot(tt.r)
			if !almostEqual(gomath.Abs(dot), 1) {
				t.Errorf("rotation mismatch: |dot| = %v", gomath.Abs(dot))
			}
		})
	}
}

func TestQuatFromMat4_RoundTrip(t *testing.T) {
	q := Quat{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}.Normalize()
	got := QuatFromMat4(q.ToMat4())
	if !almostEqual(gomath.Abs(got.Dot(q)), 1) {
		t.Errorf("quat round trip mismatch: got %v, want %v", got, q)
	}
}

func TestMat4_IsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity() not recognized as identity")
	}
	if Translate(1, 0, 0).IsIdentity() {
		t.Error("translation recognized as identity")
	}
}

func TestMat4_Determinant(t *testing.T) {
	if got := Identity().Determinant(); got != 1 {
		t.Errorf("det(I) = %v, want 1", got)
	}
	if got := Scale(2, 3, 4).Determinant(); got != 24 {
		t.Errorf("det(scale) = %v, want 24", got)
	}
}
