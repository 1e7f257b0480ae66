package vec

import (
	"math"
	"testing"
)

func TestPoint2_Arithmetic(t *testing.T) {
	a := Pt(6, 8)
	b := Pt(2, 4)

	tests := []struct {
		name string
		got  Point2[int]
		want Point2[int]
	}{
		{"add", a.Add(b), Pt(8, 12)},
		{"sub", a.Sub(b), Pt(4, 4)},
		{"mul", a.Mul(b), Pt(12, 32)},
		{"div", a.Div(b), Pt(3, 2)},
		{"scale", a.Scale(2), Pt(12, 16)},
		{"splat", Splat(5), Pt(5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPoint2_MapZip(t *testing.T) {
	p := Pt(float32(1.4), float32(-2.6))

	rounded := p.Map(func(v float32) float32 { return float32(math.Round(float64(v))) })
	if rounded != Pt(float32(1), float32(-3)) {
		t.Errorf("Map: got %v", rounded)
	}

	maxed := Pt(1, 9).Zip(Pt(5, 2), func(a, b int) int { return max(a, b) })
	if maxed != Pt(5, 9) {
		t.Errorf("Zip: got %v", maxed)
	}
}

func TestConvert(t *testing.T) {
	p := Pt(float32(2.6), float32(3.2))
	got := Convert(p, func(v float32) int { return int(math.Round(float64(v))) })
	if got != Pt(3, 3) {
		t.Errorf("Convert: got %v, want (3,3)", got)
	}

	if f := ToFloat32(Pt(3, 4)); f != Pt(float32(3), float32(4)) {
		t.Errorf("ToFloat32: got %v", f)
	}

	if area := Pt(3, 4).Area(); area != 12 {
		t.Errorf("Area: got %d, want 12", area)
	}
}
