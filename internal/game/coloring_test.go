package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorsOf(marks []LetterMark) []Color {
	colors := make([]Color, len(marks))
	for i, m := range marks {
		colors[i] = m.Color
	}
	return colors
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		target string
		want   []Color
	}{
		{
			name:   "exact match is all green",
			guess:  "APPLE",
			target: "APPLE",
			want:   []Color{ColorGreen, ColorGreen, ColorGreen, ColorGreen, ColorGreen},
		},
		{
			name:   "no letters in common is all grey",
			guess:  "QUILT",
			target: "OPERA",
			want:   []Color{ColorGrey, ColorGrey, ColorGrey, ColorGrey, ColorGrey},
		},
		{
			name:   "misplaced letters are orange",
			guess:  "LEMON",
			target: "MELON",
			want:   []Color{ColorOrange, ColorGreen, ColorOrange, ColorGreen, ColorGreen},
		},
		{
			name:   "exact duplicate claims its position",
			guess:  "POPUP",
			target: "APPLE",
			// Target has two Ps. Position 2 is an exact match; one P of
			// credit remains for position 0; position 4 gets nothing.
			want: []Color{ColorOrange, ColorGrey, ColorGreen, ColorGrey, ColorGrey},
		},
		{
			name:   "leftmost duplicate claims remaining credit first",
			guess:  "EERIE",
			target: "HONEY",
			// One E in target, none in matching position: only the first
			// guessed E is orange, the later ones are grey.
			want: []Color{ColorOrange, ColorGrey, ColorGrey, ColorGrey, ColorGrey},
		},
		{
			name:   "exact match wins over an earlier duplicate",
			guess:  "EERIE",
			target: "LEMON",
			// The E at position 1 matches exactly and consumes the only E,
			// so the E at position 0 gets nothing.
			want: []Color{ColorGrey, ColorGreen, ColorGrey, ColorGrey, ColorGrey},
		},
		{
			name:   "green consumes credit before orange",
			guess:  "EEEEL",
			target: "AGREE",
			// Two Es in target; position 3 is exact, leaving one unit for
			// the leftmost non-exact E.
			want: []Color{ColorOrange, ColorGrey, ColorGrey, ColorGreen, ColorGrey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marks := Classify(tt.guess, tt.target)
			require.Len(t, marks, 5)
			assert.Equal(t, tt.want, colorsOf(marks))
			for i, m := range marks {
				assert.Equal(t, strings.ToUpper(string(tt.guess[i])), m.Letter)
			}
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	lower := Classify("popup", "apple")
	upper := Classify("POPUP", "APPLE")
	mixed := Classify("PoPuP", "aPPle")

	assert.Equal(t, upper, lower)
	assert.Equal(t, upper, mixed)
}

// For every letter, green plus orange marks never exceed the letter's count
// in the target.
func TestClassifyNeverOverCredits(t *testing.T) {
	pairs := []struct{ guess, target string }{
		{"EERIE", "EERIE"},
		{"EERIE", "LEMON"},
		{"POPUP", "APPLE"},
		{"LLAMA", "ALLAY"},
		{"AAAAA", "ABACA"},
		{"ABACA", "AAAAA"},
		{"NINJA", "ONION"},
	}

	for _, p := range pairs {
		marks := Classify(p.guess, p.target)

		credited := map[string]int{}
		for _, m := range marks {
			if m.Color == ColorGreen || m.Color == ColorOrange {
				credited[m.Letter]++
			}
		}

		available := map[string]int{}
		for _, c := range p.target {
			available[string(c)]++
		}

		for letter, n := range credited {
			assert.LessOrEqual(t, n, available[letter],
				"guess %q target %q over-credits %q", p.guess, p.target, letter)
		}
	}
}

func TestAllGreen(t *testing.T) {
	assert.True(t, AllGreen(Classify("MAGIC", "MAGIC")))
	assert.False(t, AllGreen(Classify("MAGIC", "MANIC")))
}
