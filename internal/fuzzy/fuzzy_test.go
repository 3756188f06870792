package fuzzy

import "testing"

func TestSuggestKey(t *testing.T) {
	keys := []string{"--verbose", "--version", "--count", "-v", "-c"}

	tests := []struct {
		input string
		want  string
	}{
		{"--verbsoe", "--verbose"},
		{"--cout", "--count"},
		{"--versoin", "--version"},
		{"--completely-unrelated", ""},
		{"-", ""}, // too short to suggest for
	}

	for _, tt := range tests {
		if got := SuggestKey(tt.input, keys, 2); got != tt.want {
			t.Errorf("SuggestKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRankOrdering(t *testing.T) {
	m := NewMatcher(3)
	ms := m.Rank("--verbos", []string{"--version", "--verbose"})
	if len(ms) == 0 || ms[0].Value != "--verbose" {
		t.Errorf("expected --verbose first, got %v", ms)
	}
}

func TestExactMatchSkipped(t *testing.T) {
	if got := SuggestKey("--count", []string{"--count"}, 2); got != "" {
		t.Errorf("exact matches are not suggestions, got %q", got)
	}
}

func TestDistanceBudget(t *testing.T) {
	m := NewMatcher(1)
	if d := m.distance("abc", "abcdef"); d != 2 {
		t.Errorf("distance past budget should report max+1, got %d", d)
	}
}
