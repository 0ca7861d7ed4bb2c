// Package scoring turns raw per-judge, per-criterion score cells into a
// single final score for a routine.
//
// Two formulas are in use and they are intentionally different per entry
// category: Solo, Duet, and Trio average each judge's criterion total,
// while Ensemble sums every cell outright. Tests pin both so a future
// unification shows up as a deliberate change.
package scoring

import "github.com/williatf/TSD-Comp-Tabulator-Unified/internal/models"

// ScoreEpsilon is the tolerance within which two final scores are
// considered tied for award placement.
const ScoreEpsilon = 0.0001

// AverageOfJudgeTotals sums each judge's criterion values and returns the
// mean of those totals. Returns 0 for an empty cell set.
func AverageOfJudgeTotals(cells []models.ScoreCell) float64 {
	if len(cells) == 0 {
		return 0
	}

	totals := make(map[int]float64)
	for _, c := range cells {
		totals[c.JudgeIndex] += c.Value
	}

	var sum float64
	for _, t := range totals {
		sum += t
	}
	return sum / float64(len(totals))
}

// SumOfCells returns the plain sum of every cell value.
func SumOfCells(cells []models.ScoreCell) float64 {
	var sum float64
	for _, c := range cells {
		sum += c.Value
	}
	return sum
}

// Tied reports whether two final scores are within ScoreEpsilon.
func Tied(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < ScoreEpsilon
}
