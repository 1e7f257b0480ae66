package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/collager/internal/colorlab"
	"github.com/ironsheep/collager/internal/grid"
)

func TestToLabGrid(t *testing.T) {
	img := createPatternImage(10, 6)

	g, err := ToLabGrid(img)
	if err != nil {
		t.Fatalf("ToLabGrid failed: %v", err)
	}
	if g.Width() != 10 || g.Height() != 6 {
		t.Fatalf("unexpected dimensions: got %dx%d, want 10x6", g.Width(), g.Height())
	}

	tests := []struct {
		name    string
		x, y    int
		r, g, b float32
	}{
		{"red top-left", 0, 0, 1, 0, 0},
		{"green top-right", 9, 0, 0, 1, 0},
		{"blue bottom-left", 0, 5, 0, 0, 1},
		{"white bottom-right", 9, 5, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, ok := g.Get(grid.Pos{X: tt.x, Y: tt.y})
			if !ok {
				t.Fatalf("(%d,%d) reported out of bounds", tt.x, tt.y)
			}
			want := colorlab.FromRGB(tt.r, tt.g, tt.b)
			if d := colorlab.Distance(px, want); d > 1e-3 {
				t.Errorf("got %v, want %v (distance %f)", px, want, d)
			}
		})
	}
}

func TestToLabGrid_OffsetBounds(t *testing.T) {
	img := createPatternImage(10, 10).SubImage(image.Rect(5, 5, 10, 10))

	g, err := ToLabGrid(img)
	if err != nil {
		t.Fatalf("ToLabGrid failed: %v", err)
	}
	if g.Width() != 5 || g.Height() != 5 {
		t.Fatalf("unexpected dimensions: got %dx%d, want 5x5", g.Width(), g.Height())
	}

	px, _ := g.Get(grid.Pos{})
	if d := colorlab.Distance(px, colorlab.FromRGB(1, 1, 1)); d > 1e-3 {
		t.Errorf("origin should map to the white quadrant, got %v", px)
	}
}

func TestToLabaGrid_Alpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 0, 0, 0})

	g, err := ToLabaGrid(img)
	if err != nil {
		t.Fatalf("ToLabaGrid failed: %v", err)
	}

	px := g.Pixels()
	if px[0].Alpha != 1 {
		t.Errorf("opaque pixel alpha: got %f, want 1", px[0].Alpha)
	}
	if px[1].Alpha != 0 {
		t.Errorf("transparent pixel alpha: got %f, want 0", px[1].Alpha)
	}
}

func TestToLabGrid_EmptyImage(t *testing.T) {
	if _, err := ToLabGrid(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("ToLabGrid should fail for an empty image")
	}
}

func TestToNRGBA_RoundTrip(t *testing.T) {
	img := createPatternImage(8, 8)

	g, err := ToLabaGrid(img)
	if err != nil {
		t.Fatalf("ToLabaGrid failed: %v", err)
	}
	out := ToNRGBA(g)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := img.RGBAAt(x, y)
			got := out.NRGBAAt(x, y)
			if absDiff(got.R, want.R) > 1 || absDiff(got.G, want.G) > 1 ||
				absDiff(got.B, want.B) > 1 || got.A != want.A {
				t.Errorf("(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestToNRGBA_Clamps(t *testing.T) {
	g, err := grid.New(2, 2, colorlab.Lab{L: 180, A: 90}.WithAlpha(1))
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	g.Set(grid.Pos{X: 1, Y: 1}, colorlab.Lab{L: -40}.WithAlpha(2))

	out := ToNRGBA(g)

	if got := out.NRGBAAt(0, 0); got.R != 255 || got.A != 255 {
		t.Errorf("bright pixel: got %v", got)
	}
	if got := out.NRGBAAt(1, 1); got.R != 0 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("dark pixel: got %v", got)
	}
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		maxSize       int
		wantW, wantH  int
		wantUnchanged bool
	}{
		{"landscape", 200, 100, 50, 50, 25, false},
		{"portrait", 60, 120, 30, 15, 30, false},
		{"already small", 40, 30, 50, 40, 30, true},
		{"exactly at limit", 50, 20, 50, 50, 20, true},
		{"disabled", 400, 300, 0, 400, 300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(tt.width, tt.height, color.RGBA{10, 20, 30, 255})

			got := FitWithin(img, tt.maxSize)

			b := got.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
			if tt.wantUnchanged && got != img {
				t.Error("expected the original image to be returned")
			}
		})
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
