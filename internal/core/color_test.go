package core

import "testing"

func TestColorRGB(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)

	r, g, b := c.RGB()
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Fatalf("RGB() = (%x, %x, %x), want (12, 34, 56)", r, g, b)
	}
	if c.IsDefault() {
		t.Error("explicit color reported as default")
	}
}

func TestColorBlackIsNotDefault(t *testing.T) {
	// Explicit black must be distinguishable from the zero value.
	black := RGB(0, 0, 0)
	if black.IsDefault() {
		t.Error("RGB(0,0,0) reported as default")
	}
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault not reported as default")
	}
}

func TestGray(t *testing.T) {
	c := Gray(128)
	r, g, b := c.RGB()
	if r != 128 || g != 128 || b != 128 {
		t.Fatalf("Gray(128).RGB() = (%d, %d, %d)", r, g, b)
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(0x0f, 0x14, 0x1e).Hex(); got != "#0f141e" {
		t.Errorf("Hex() = %q, want #0f141e", got)
	}
	if got := Gray(255).Hex(); got != "#ffffff" {
		t.Errorf("Hex() = %q, want #ffffff", got)
	}
}

func TestParseHex(t *testing.T) {
	c, ok := ParseHex("#0f141e")
	if !ok {
		t.Fatal("ParseHex rejected a valid color")
	}
	if c != RGB(0x0f, 0x14, 0x1e) {
		t.Errorf("ParseHex = %v, want %v", c, RGB(0x0f, 0x14, 0x1e))
	}

	for _, bad := range []string{"", "#fff", "0f141e", "#zzzzzz", "#0f141e0"} {
		if _, ok := ParseHex(bad); ok {
			t.Errorf("ParseHex(%q) accepted invalid input", bad)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	orig := RGB(1, 2, 3)
	parsed, ok := ParseHex(orig.Hex())
	if !ok || parsed != orig {
		t.Errorf("round trip failed: %v -> %q -> %v", orig, orig.Hex(), parsed)
	}
}
