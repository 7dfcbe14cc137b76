package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var pairs = [][2]string{
	{"Jane Doe", "jane doe"},
	{"Jane", "Jane Doe"},
	{"Bob", "Alice"},
	{"Jon", "John"},
	{"", "John"},
	{"a", "ab"},
	{"José", "Jose"},
	{"night", "nacht"},
}

func TestScoreIsSymmetric(t *testing.T) {
	for _, p := range pairs {
		assert.Equal(t, Score(p[0], p[1]), Score(p[1], p[0]), "%q vs %q", p[0], p[1])
	}
}

func TestScoreIdentity(t *testing.T) {
	for _, p := range pairs {
		assert.Equal(t, 1.0, Score(p[0], p[0]), p[0])
		assert.Equal(t, 1.0, Score(p[1], p[1]), p[1])
	}
}

func TestScoreBounds(t *testing.T) {
	for _, p := range pairs {
		s := Score(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestScoreValues(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"Jane Doe", "JANE DOE", 1},
		{"Jane Doe", "JaneDoe", 1},
		{"Bob", "Alice", 0},
		// ja an ne vs ja an ne ed do oe
		{"Jane", "Jane Doe", 2.0 * 3 / 9},
		{"night", "nacht", 2.0 * 1 / 8},
		{"a", "b", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.a, tt.b), 1e-9)
		})
	}
}

func TestBestMatch(t *testing.T) {
	t.Run("picks highest score", func(t *testing.T) {
		m := BestMatch("jane", []string{"John", "Jane Doe"})
		assert.Equal(t, "Jane Doe", m.Candidate)
		assert.Equal(t, 1, m.Index)
		assert.Greater(t, m.Score, 0.5)
	})

	t.Run("ties keep first candidate", func(t *testing.T) {
		m := BestMatch("Sam", []string{"sam", "SAM"})
		assert.Equal(t, "sam", m.Candidate)
		assert.Equal(t, 0, m.Index)
		assert.Equal(t, 1.0, m.Score)
	})

	t.Run("reports low scores without filtering", func(t *testing.T) {
		m := BestMatch("Bob", []string{"Alice"})
		assert.Equal(t, "Alice", m.Candidate)
		assert.LessOrEqual(t, m.Score, 0.5)
	})

	t.Run("no candidates", func(t *testing.T) {
		m := BestMatch("Bob", nil)
		assert.Equal(t, -1, m.Index)
		assert.Equal(t, "", m.Candidate)
		assert.Equal(t, 0.0, m.Score)
	})
}
