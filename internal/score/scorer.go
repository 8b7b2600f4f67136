// Package score implements the game's scoring arithmetic over verdicts. The
// validation core only produces booleans; points are a presentation concern
// derived here by callers such as the CLI.
package score

import (
	"strings"

	"letterrush/internal/model"
)

const (
	basePoints      = 10
	roundSize       = 6
	allCorrectBonus = 20
)

// Points returns the points earned by a single answer: 0 when invalid,
// otherwise a base amount plus a bonus for every character beyond three.
func Points(answer string, valid bool) int {
	trimmed := strings.TrimSpace(answer)
	if !valid || trimmed == "" {
		return 0
	}

	lengthBonus := len(trimmed) - 3
	if lengthBonus < 0 {
		lengthBonus = 0
	}
	return basePoints + lengthBonus
}

// Total sums a round's points, adding a fixed bonus when a full round of six
// answers is entirely valid.
func Total(verdicts []model.AnswerVerdict) int {
	total := 0
	for _, v := range verdicts {
		total += Points(v.Answer, v.Valid)
	}
	return total + RoundBonus(verdicts)
}

// RoundBonus returns the all-correct bonus for a full round, or 0.
func RoundBonus(verdicts []model.AnswerVerdict) int {
	if len(verdicts) != roundSize {
		return 0
	}
	for _, v := range verdicts {
		if !v.Valid {
			return 0
		}
	}
	return allCorrectBonus
}
