package layout

import "testing"

func TestTierForWidth(t *testing.T) {
	tests := []struct {
		width int
		want  Tier
	}{
		{0, TierNarrow},
		{80, TierNarrow},
		{119, TierNarrow},
		{120, TierSplit},
		{199, TierSplit},
		{200, TierWide},
		{400, TierWide},
	}

	for _, tt := range tests {
		if got := TierForWidth(tt.width); got != tt.want {
			t.Errorf("TierForWidth(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		max    int
		suffix string
		want   string
	}{
		{"no truncation", "hello", 10, "…", "hello"},
		{"exact fit", "hello", 5, "…", "hello"},
		{"truncated", "hello world", 6, "…", "hello…"},
		{"zero max", "hello", 0, "…", ""},
		{"negative max", "hello", -1, "…", ""},
		{"max smaller than suffix", "hello", 1, "...", "h"},
		{"multibyte runes", "héllo wörld", 6, "…", "héllo…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateRunes(tt.s, tt.max, tt.suffix)
			if got != tt.want {
				t.Errorf("TruncateRunes(%q, %d, %q) = %q, want %q", tt.s, tt.max, tt.suffix, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 6); got != "hello…" {
		t.Errorf("Truncate = %q, want %q", got, "hello…")
	}
}

func TestSplitProportions(t *testing.T) {
	t.Run("below threshold keeps single panel", func(t *testing.T) {
		left, right := SplitProportions(100)
		if left != 100 || right != 0 {
			t.Errorf("SplitProportions(100) = (%d, %d), want (100, 0)", left, right)
		}
	})

	t.Run("split at threshold", func(t *testing.T) {
		left, right := SplitProportions(120)
		if left == 0 || right == 0 {
			t.Errorf("SplitProportions(120) = (%d, %d), want both non-zero", left, right)
		}
		if left+right != 120-8 {
			t.Errorf("SplitProportions(120) total = %d, want %d", left+right, 112)
		}
	})

	t.Run("left panel roughly 40 percent", func(t *testing.T) {
		left, right := SplitProportions(208)
		if left != 80 || right != 120 {
			t.Errorf("SplitProportions(208) = (%d, %d), want (80, 120)", left, right)
		}
	})
}
