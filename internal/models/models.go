package models

// ClassDefinition is a canonical competition class: the stable key that raw,
// staff-entered class text resolves to, plus its display metadata.
type ClassDefinition struct {
	ClassKey    string `json:"class_key"`
	DisplayName string `json:"display_name"`
	Bucket      string `json:"bucket"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
	UpdatedUtc  string `json:"updated_utc,omitempty"`
}

// ClassAlias maps one raw class spelling to a canonical class key.
type ClassAlias struct {
	Alias      string `json:"alias"`
	ClassKey   string `json:"class_key"`
	UpdatedUtc string `json:"updated_utc,omitempty"`
}

// Routine is an imported competition entry.
type Routine struct {
	RoutineID     string `json:"routine_id"`
	ProgramNumber int64  `json:"program_number"`
	StartTime     string `json:"start_time,omitempty"`
	EntryType     string `json:"entry_type"`
	Category      string `json:"category,omitempty"`
	Class         string `json:"class,omitempty"`
	StudioName    string `json:"studio_name,omitempty"`
	RoutineTitle  string `json:"routine_title"`
	Participants  string `json:"participants,omitempty"`
}

// ScoredRoutine is a routine joined with its scoring status, ready for
// candidate loading. LastSheetKey names the score sheet whose cells count.
type ScoredRoutine struct {
	RoutineID     string
	ProgramNumber int64
	Class         string
	Participants  string
	StudioName    string
	RoutineTitle  string
	LastSheetKey  string
	EntryType     string
}

// ScoreCell is one judge's value for one criterion of a routine.
type ScoreCell struct {
	JudgeIndex int
	Criterion  string
	Value      float64
}

// AwardCandidate is a fully scored routine entering the ranking pipeline.
// EntryType is populated for Ensemble only, where it drives the type tag.
type AwardCandidate struct {
	RoutineID     string  `json:"routine_id"`
	Class         string  `json:"class"`
	Participants  string  `json:"participants"`
	ProgramNumber int64   `json:"program_number"`
	StudioName    string  `json:"studio_name"`
	RoutineTitle  string  `json:"routine_title"`
	FinalScore    float64 `json:"final_score"`
	EntryType     string  `json:"entry_type,omitempty"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
