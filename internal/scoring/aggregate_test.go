package scoring

import (
	"testing"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/models"
)

func TestAverageOfJudgeTotals(t *testing.T) {
	// Three judges, two criteria each: totals 50, 60, 70 → average 60
	cells := []models.ScoreCell{
		{JudgeIndex: 1, Criterion: "technique", Value: 20},
		{JudgeIndex: 1, Criterion: "performance", Value: 30},
		{JudgeIndex: 2, Criterion: "technique", Value: 25},
		{JudgeIndex: 2, Criterion: "performance", Value: 35},
		{JudgeIndex: 3, Criterion: "technique", Value: 30},
		{JudgeIndex: 3, Criterion: "performance", Value: 40},
	}

	got := AverageOfJudgeTotals(cells)
	if got != 60 {
		t.Errorf("AverageOfJudgeTotals = %v, want 60", got)
	}
}

func TestAverageOfJudgeTotals_SingleJudge(t *testing.T) {
	cells := []models.ScoreCell{
		{JudgeIndex: 1, Criterion: "technique", Value: 45.5},
		{JudgeIndex: 1, Criterion: "performance", Value: 48.25},
	}

	got := AverageOfJudgeTotals(cells)
	if got != 93.75 {
		t.Errorf("AverageOfJudgeTotals = %v, want 93.75", got)
	}
}

func TestAverageOfJudgeTotals_Empty(t *testing.T) {
	if got := AverageOfJudgeTotals(nil); got != 0 {
		t.Errorf("AverageOfJudgeTotals(nil) = %v, want 0", got)
	}
}

func TestSumOfCells(t *testing.T) {
	cells := []models.ScoreCell{
		{JudgeIndex: 1, Criterion: "technique", Value: 20},
		{JudgeIndex: 2, Criterion: "technique", Value: 25},
		{JudgeIndex: 3, Criterion: "technique", Value: 30.5},
	}

	if got := SumOfCells(cells); got != 75.5 {
		t.Errorf("SumOfCells = %v, want 75.5", got)
	}
}

func TestSumOfCells_Empty(t *testing.T) {
	if got := SumOfCells(nil); got != 0 {
		t.Errorf("SumOfCells(nil) = %v, want 0", got)
	}
}

func TestTied(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"equal scores", 95.5, 95.5, true},
		{"within epsilon", 95.50005, 95.5, true},
		{"just outside epsilon", 95.5002, 95.5, false},
		{"clearly different", 95.5, 92.0, false},
		{"symmetric", 92.0, 95.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tied(tt.a, tt.b); got != tt.want {
				t.Errorf("Tied(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
