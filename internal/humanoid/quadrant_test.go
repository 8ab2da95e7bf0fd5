package humanoid

import (
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	screen := ScreenSize{Width: 100, Height: 100}

	testCases := []struct {
		name string
		x, y float64
		want Quadrant
	}{
		{name: "bottom left", x: 10, y: 10, want: BottomLeft},
		{name: "bottom right", x: 90, y: 10, want: BottomRight},
		{name: "top left", x: 10, y: 90, want: TopLeft},
		{name: "top right", x: 90, y: 90, want: TopRight},
		{name: "origin", x: 0, y: 0, want: BottomLeft},
		{name: "far corner", x: 99, y: 99, want: TopRight},
		// Midpoints: x == width/2 is the right half, y == height/2 is the top half.
		{name: "exact center", x: 50, y: 50, want: TopRight},
		{name: "x on midpoint", x: 50, y: 10, want: BottomRight},
		{name: "y on midpoint", x: 10, y: 50, want: TopLeft},
		{name: "just left of midpoint", x: 49.999, y: 10, want: BottomLeft},
		{name: "just below midpoint", x: 90, y: 49.999, want: BottomRight},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.x, tc.y, screen))
		})
	}
}

func TestClassify_OddDimensions(t *testing.T) {
	// The midpoint of a 1365-wide screen is 682.5, so pixel 682 is left and 683 right.
	screen := ScreenSize{Width: 1365, Height: 767}

	assert.Equal(t, BottomLeft, Classify(682, 383, screen))
	assert.Equal(t, BottomRight, Classify(683, 383, screen))
	assert.Equal(t, TopLeft, Classify(682, 384, screen))
	assert.Equal(t, TopRight, Classify(683, 384, screen))
}

func TestClassify_CoversAllQuadrants(t *testing.T) {
	screen := ScreenSize{Width: 64, Height: 48}
	seen := make(map[Quadrant]int)

	for x := 0.0; x < screen.Width; x++ {
		for y := 0.0; y < screen.Height; y++ {
			q := Classify(x, y, screen)
			assert.Equal(t, q, Classify(x, y, screen), "classification must be deterministic")
			seen[q]++
		}
	}

	// Four equal rectangles of 32x24.
	assert.Equal(t, map[Quadrant]int{
		BottomLeft:  32 * 24,
		BottomRight: 32 * 24,
		TopLeft:     32 * 24,
		TopRight:    32 * 24,
	}, seen)
}

func TestQuadrant_String(t *testing.T) {
	assert.Equal(t, "bottom-left", BottomLeft.String())
	assert.Equal(t, "top-right", TopRight.String())
	assert.Equal(t, "unknown", Quadrant(0).String())
}

// FuzzClassify checks that every in-bounds point lands in exactly the quadrant
// its half-plane comparisons describe.
func FuzzClassify(f *testing.F) {
	f.Add([]byte{0x00, 0x64, 0x00, 0x64, 0x00, 0x0a, 0x00, 0x0a})
	f.Add([]byte{0x07, 0x80, 0x04, 0x38, 0x03, 0xc0, 0x02, 0x1c})

	f.Fuzz(func(t *testing.T, data []byte) {
		c := fuzz.NewConsumer(data)
		w, err := c.GetUint16()
		if err != nil || w == 0 {
			return
		}
		h, err := c.GetUint16()
		if err != nil || h == 0 {
			return
		}
		rx, err := c.GetUint16()
		if err != nil {
			return
		}
		ry, err := c.GetUint16()
		if err != nil {
			return
		}

		screen := ScreenSize{Width: float64(w), Height: float64(h)}
		x, y := float64(rx%w), float64(ry%h)

		got := Classify(x, y, screen)

		left := 2*x < screen.Width
		bottom := 2*y < screen.Height
		var want Quadrant
		switch {
		case left && bottom:
			want = BottomLeft
		case !left && bottom:
			want = BottomRight
		case left && !bottom:
			want = TopLeft
		default:
			want = TopRight
		}
		if got != want {
			t.Fatalf("Classify(%v, %v, %+v) = %v, want %v", x, y, screen, got, want)
		}
	})
}
