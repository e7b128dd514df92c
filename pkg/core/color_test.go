package core

import "testing"

func TestColor_AlphaRules(t *testing.T) {
	a := Color{0.5, 0.25, 0.1, 0.2}
	b := Color{0.5, 0.5, 0.5, 0.5}

	if got := a.Add(b); got.A != 1 {
		t.Errorf("Add alpha = %f, want 1", got.A)
	}
	if got := a.Scale(2); got != (Color{1, 0.5, 0.2, 1}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.MultiplyColor(b); got != (Color{0.25, 0.125, 0.05, 0.1}) {
		t.Errorf("MultiplyColor = %v", got)
	}
}

func TestColor_Pack(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected uint32
	}{
		{"black", Black, 0x000000ff},
		{"white", White, 0xffffffff},
		{"clamped", NewColor(4, 0, 0), 0xff0000ff},
		{"negative", NewColor(-1, 0.25, 0), 0x008000ff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Pack(); got != tt.expected {
				t.Errorf("Pack() = %#08x, want %#08x", got, tt.expected)
			}
		})
	}
}

func TestColor_PackRoundTrip(t *testing.T) {
	for _, p := range []uint32{0x000000ff, 0x336699ff, 0x01020304, 0xfefdfcfb} {
		if got := UnpackColor(p).Pack(); got != p {
			t.Errorf("Pack(Unpack(%#08x)) = %#08x", p, got)
		}
	}
}
