// Package fuzzy ranks registered argument keys against a mistyped token so
// the parser can attach a "did you mean" suggestion to unrecognized-token
// errors.
package fuzzy

import (
	"sort"
	"strings"
)

// minInputLen guards against suggesting for one-character typos, which are
// more likely deliberate short options than misspellings.
const minInputLen = 2

// Matcher scores candidate keys by edit distance with prefix and length
// bonuses.
type Matcher struct {
	maxDistance int
}

// NewMatcher returns a matcher that ignores candidates further than
// maxDistance edits away.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{maxDistance: maxDistance}
}

// Match is one scored candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64
}

// Best returns the closest candidate, or "" when nothing is close enough.
func (m *Matcher) Best(input string, candidates []string) string {
	ms := m.Rank(input, candidates)
	if len(ms) == 0 {
		return ""
	}
	return ms[0].Value
}

// Rank returns all candidates within the distance budget, best first.
func (m *Matcher) Rank(input string, candidates []string) []Match {
	if len(input) < minInputLen {
		return nil
	}

	in := strings.ToLower(input)
	var out []Match
	for _, cand := range candidates {
		lc := strings.ToLower(cand)
		if lc == in {
			continue
		}
		d := m.distance(in, lc)
		if d > m.maxDistance {
			continue
		}
		out = append(out, Match{Value: cand, Distance: d, Score: m.score(in, lc, d)})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score == out[j].Score {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Score > out[j].Score
	})
	return out
}

func (m *Matcher) score(input, cand string, dist int) float64 {
	longest := max(len(input), len(cand))
	if longest == 0 {
		return 1
	}

	s := 1 - float64(dist)/float64(longest)

	// Shared prefixes are a strong typo signal for option names.
	if p := prefixLen(input, cand); p > 0 {
		s += 0.3 * float64(p) / float64(min(len(input), len(cand)))
	}
	s += 0.2 * (1 - float64(abs(len(input)-len(cand)))/float64(longest))

	if s > 1 {
		s = 1
	}
	return s
}

// distance is a two-row Levenshtein with early exit once every cell in a row
// exceeds the budget.
func (m *Matcher) distance(a, b string) int {
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func prefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// SuggestKey finds the registered key closest to a mistyped token. The
// comparison strips nothing: keys carry their prefixes, so "--verbsoe" is
// matched against "--verbose" directly.
func SuggestKey(input string, keys []string, maxDistance int) string {
	return NewMatcher(maxDistance).Best(input, keys)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
