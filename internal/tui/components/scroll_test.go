package components

import (
	"strings"
	"testing"
)

func TestScrollStateIndicator(t *testing.T) {
	tests := []struct {
		name     string
		state    ScrollState
		expected string
	}{
		{
			name:     "all visible",
			state:    ScrollState{FirstVisible: 0, LastVisible: 4, TotalItems: 5},
			expected: "",
		},
		{
			name:     "empty list",
			state:    ScrollState{FirstVisible: 0, LastVisible: 0, TotalItems: 0},
			expected: "",
		},
		{
			name:     "more below only",
			state:    ScrollState{FirstVisible: 0, LastVisible: 4, TotalItems: 10},
			expected: "▼",
		},
		{
			name:     "more above only",
			state:    ScrollState{FirstVisible: 5, LastVisible: 9, TotalItems: 10},
			expected: "▲",
		},
		{
			name:     "more both above and below",
			state:    ScrollState{FirstVisible: 3, LastVisible: 6, TotalItems: 10},
			expected: "▲▼",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.Indicator()
			if got != tt.expected {
				t.Errorf("Indicator() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestScrollStateAllVisible(t *testing.T) {
	tests := []struct {
		name     string
		state    ScrollState
		expected bool
	}{
		{
			name:     "all visible",
			state:    ScrollState{FirstVisible: 0, LastVisible: 4, TotalItems: 5},
			expected: true,
		},
		{
			name:     "single item",
			state:    ScrollState{FirstVisible: 0, LastVisible: 0, TotalItems: 1},
			expected: true,
		},
		{
			name:     "partial view",
			state:    ScrollState{FirstVisible: 0, LastVisible: 4, TotalItems: 10},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.AllVisible()
			if got != tt.expected {
				t.Errorf("AllVisible() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRenderScrollIndicator(t *testing.T) {
	t.Run("all visible returns empty", func(t *testing.T) {
		got := RenderScrollIndicator(ScrollState{FirstVisible: 0, LastVisible: 4, TotalItems: 5}, 30)
		if got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("wide format", func(t *testing.T) {
		got := RenderScrollIndicator(ScrollState{FirstVisible: 0, LastVisible: 4, TotalItems: 20}, 30)
		if !strings.Contains(got, "Showing") {
			t.Errorf("expected wide format, got %q", got)
		}
	})

	t.Run("medium format", func(t *testing.T) {
		got := RenderScrollIndicator(ScrollState{FirstVisible: 0, LastVisible: 4, TotalItems: 20}, 20)
		if !strings.Contains(got, "/20)") {
			t.Errorf("expected medium format, got %q", got)
		}
	})

	t.Run("narrow keeps arrows only", func(t *testing.T) {
		got := RenderScrollIndicator(ScrollState{FirstVisible: 0, LastVisible: 4, TotalItems: 20}, 10)
		if !strings.Contains(got, "▼") {
			t.Errorf("expected arrow indicator, got %q", got)
		}
		if strings.Contains(got, "20") {
			t.Errorf("narrow format should not include counts, got %q", got)
		}
	})
}

func TestScrollFooter(t *testing.T) {
	// All visible - should return empty
	state := ScrollState{FirstVisible: 0, LastVisible: 4, TotalItems: 5}
	if got := ScrollFooter(state, 30); got != "" {
		t.Errorf("ScrollFooter with all visible should be empty, got %q", got)
	}

	// Partial - should return non-empty
	state = ScrollState{FirstVisible: 0, LastVisible: 4, TotalItems: 20}
	if got := ScrollFooter(state, 30); got == "" {
		t.Errorf("ScrollFooter with partial view should not be empty")
	}
}
