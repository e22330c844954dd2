package wide

import (
	"math"
	"testing"
)

func TestSplatF64(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"zero", 0.0},
		{"one", 1.0},
		{"half", 0.5},
		{"negative", -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplatF64(tt.value)
			for i, v := range result {
				if v != tt.value {
					t.Errorf("element %d = %f, want %f", i, v, tt.value)
				}
			}
		})
	}
}

func TestF64x8_Arithmetic(t *testing.T) {
	a := F64x8{1, 2, 3, 4, 5, 6, 7, 8}
	b := SplatF64(2)

	tests := []struct {
		name string
		got  F64x8
		want F64x8
	}{
		{"add", a.Add(b), F64x8{3, 4, 5, 6, 7, 8, 9, 10}},
		{"sub", a.Sub(b), F64x8{-1, 0, 1, 2, 3, 4, 5, 6}},
		{"mul", a.Mul(b), F64x8{2, 4, 6, 8, 10, 12, 14, 16}},
		{"div", a.Div(b), F64x8{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}},
		{"scale", a.Scale(-1), F64x8{-1, -2, -3, -4, -5, -6, -7, -8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestF64x8_DivByZero(t *testing.T) {
	got := F64x8{1, -1, 0, 0, 0, 0, 0, 0}.Div(SplatF64(0))

	if !math.IsInf(got[0], 1) {
		t.Errorf("1/0 = %v, want +Inf", got[0])
	}
	if !math.IsInf(got[1], -1) {
		t.Errorf("-1/0 = %v, want -Inf", got[1])
	}
	if !math.IsNaN(got[2]) {
		t.Errorf("0/0 = %v, want NaN", got[2])
	}
}

func TestF64x8_Lt(t *testing.T) {
	v := F64x8{0, 1, 2, 3, math.NaN(), math.Inf(1), -1, 0.5}
	m := v.Lt(SplatF64(1))
	want := Mask8{true, false, false, false, false, false, true, true}

	if m != want {
		t.Errorf("Lt() = %v, want %v", m, want)
	}
	if m.All() {
		t.Error("All() = true, want false")
	}
	if !m.Any() {
		t.Error("Any() = false, want true")
	}
}

func TestMask8_AllAny(t *testing.T) {
	var none Mask8
	all := Mask8{true, true, true, true, true, true, true, true}

	if none.Any() || none.All() {
		t.Errorf("empty mask: Any=%v All=%v, want false false", none.Any(), none.All())
	}
	if !all.Any() || !all.All() {
		t.Errorf("full mask: Any=%v All=%v, want true true", all.Any(), all.All())
	}
}
