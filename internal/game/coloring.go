// Package game holds the pure guess-scoring logic for the word game.
package game

import "strings"

// Color is the evaluation result for a single letter in a guess
type Color string

const (
	// ColorGreen means the letter is in the target at the same position
	ColorGreen Color = "green"
	// ColorOrange means the letter is in the target at a different position
	// and has not been claimed by an earlier green or orange for that letter
	ColorOrange Color = "orange"
	// ColorGrey means the letter is absent, or all its occurrences are claimed
	ColorGrey Color = "grey"
)

// LetterMark pairs a guessed letter with its color
type LetterMark struct {
	Letter string
	Color  Color
}

// Classify scores a guess against a target word using the standard two-pass
// algorithm. Both inputs are case-normalized; callers validate that they are
// exactly 5 letters.
//
// Pass 1 marks exact matches green and counts the remaining target letters.
// Pass 2 walks the guess left to right: a letter with remaining count becomes
// orange and consumes one unit, otherwise grey. The left-to-right order is
// what keeps duplicate letters from being credited more often than they
// appear in the target.
func Classify(guess, target string) []LetterMark {
	guess = strings.ToUpper(guess)
	target = strings.ToUpper(target)

	n := len(guess)
	result := make([]LetterMark, n)

	// Letter frequency for the non-green target positions (A-Z)
	var counts [26]int

	for i := 0; i < n; i++ {
		result[i].Letter = string(guess[i])
		if guess[i] == target[i] {
			result[i].Color = ColorGreen
		} else if j := letterIndex(target[i]); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if result[i].Color == ColorGreen {
			continue
		}
		j := letterIndex(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			result[i].Color = ColorOrange
			counts[j]--
		} else {
			result[i].Color = ColorGrey
		}
	}

	return result
}

// AllGreen returns true if every mark is green
func AllGreen(marks []LetterMark) bool {
	for _, m := range marks {
		if m.Color != ColorGreen {
			return false
		}
	}
	return true
}

// letterIndex maps an uppercase ASCII letter to 0..25
func letterIndex(c byte) int { return int(c - 'A') }
