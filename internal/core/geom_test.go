package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{0, 0, 10, 10},
			b:        Box{5, 5, 15, 15},
			expected: true,
		},
		{
			name:     "disjoint horizontal",
			a:        Box{0, 0, 10, 10},
			b:        Box{15, 0, 25, 10},
			expected: false,
		},
		{
			name:     "disjoint vertical",
			a:        Box{0, 0, 10, 10},
			b:        Box{0, 15, 10, 25},
			expected: false,
		},
		{
			name:     "touching edges count",
			a:        Box{0, 0, 10, 10},
			b:        Box{10, 0, 20, 10},
			expected: true,
		},
		{
			name:     "touching corners count",
			a:        Box{0, 0, 10, 10},
			b:        Box{10, 10, 20, 20},
			expected: true,
		},
		{
			name:     "contained box",
			a:        Box{0, 0, 20, 20},
			b:        Box{5, 5, 10, 10},
			expected: true,
		},
		{
			name:     "fractional gap",
			a:        Box{0, 0, 10, 10},
			b:        Box{10.5, 0, 20, 10},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(305, 326, 100, 10)

	if b.X0 != 255 || b.X1 != 355 || b.Y0 != 321 || b.Y1 != 331 {
		t.Errorf("BoxAround() = %+v, expected {255 321 355 331}", b)
	}
	if b.Width() != 100 || b.Height() != 10 {
		t.Errorf("size = %vx%v, expected 100x10", b.Width(), b.Height())
	}

	cx, cy := b.Center()
	if cx != 305 || cy != 326 {
		t.Errorf("Center() = (%v, %v), expected (305, 326)", cx, cy)
	}
}

func TestBoxTranslate(t *testing.T) {
	b := Box{0, 0, 10, 10}.Translate(5, -5)

	if b != (Box{5, -5, 15, 5}) {
		t.Errorf("Translate() = %+v", b)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}
