package services

import "fmt"

// AwardEntry is one placed routine in an award report group.
type AwardEntry struct {
	Place         int     `json:"place"`
	PlaceName     string  `json:"place_name"`
	FinalScore    float64 `json:"final_score"`
	ProgramNumber int64   `json:"program_number"`
	Participants  string  `json:"participants"`
	StudioName    string  `json:"studio_name"`
	RoutineTitle  string  `json:"routine_title"`
	ClassKey      string  `json:"class_key"`
	Type          string  `json:"type,omitempty"` // Ensemble only
}

// TypeGroup holds the placed entries for one ensemble size within a class.
type TypeGroup struct {
	Type    string       `json:"type"`
	Entries []AwardEntry `json:"entries"`
}

// ClassGroup holds one canonical class within a bucket. Solo, Duet, and
// Trio reports fill Entries directly; the Ensemble report nests a further
// level of TypeGroups instead.
type ClassGroup struct {
	ClassKey    string       `json:"class_key"`
	DisplayName string       `json:"display_name"`
	SortOrder   int          `json:"sort_order"`
	Entries     []AwardEntry `json:"entries,omitempty"`
	Types       []TypeGroup  `json:"types,omitempty"`
}

// BucketGroup holds the classes for one display bucket (Studio, School...).
type BucketGroup struct {
	Bucket  string       `json:"bucket"`
	Classes []ClassGroup `json:"classes"`
}

// Report is the ordered award tree for one category. It is built fresh on
// every generation and owned solely by the caller that requested it.
type Report struct {
	Category string        `json:"category"`
	Buckets  []BucketGroup `json:"buckets"`
}

// PlaceName converts a numeric place to its announcement name.
func PlaceName(place int) string {
	switch place {
	case 1:
		return "Winner"
	case 2:
		return "1st Runner Up"
	case 3:
		return "2nd Runner Up"
	case 4:
		return "3rd Runner Up"
	case 5:
		return "4th Runner Up"
	default:
		return fmt.Sprintf("%dth Runner Up", place-1)
	}
}
