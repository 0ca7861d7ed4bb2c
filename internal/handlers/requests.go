package handlers

// OpenEventRequest represents a request to open (or create) an event database
type OpenEventRequest struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}

// ClassDefinitionRequest represents a request to create or update a class definition
type ClassDefinitionRequest struct {
	ClassKey          string `json:"class_key"`
	DisplayName       string `json:"display_name"`
	Bucket            string `json:"bucket"`
	SortOrder         int    `json:"sort_order"`
	IsActive          bool   `json:"is_active"`
	PropagateGlobally bool   `json:"propagate_globally"`
}

// ClassAliasRequest represents a request to create or update a class alias
type ClassAliasRequest struct {
	Alias             string `json:"alias"`
	ClassKey          string `json:"class_key"`
	PropagateGlobally bool   `json:"propagate_globally"`
}

// ProgramLockRequest represents a request to set the program lock flag
type ProgramLockRequest struct {
	Locked bool `json:"locked"`
}

// ScoreCellRequest is one judge/criterion value in a score save request
type ScoreCellRequest struct {
	JudgeIndex int     `json:"judge_index"`
	Criterion  string  `json:"criterion"`
	Value      float64 `json:"value"`
}

// SaveScoresRequest represents a request to save score cells for a routine
type SaveScoresRequest struct {
	SheetKey string             `json:"sheet_key"`
	Cells    []ScoreCellRequest `json:"cells"`
}
