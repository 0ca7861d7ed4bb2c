package handlers

// EventResponse is the response for event lifecycle operations
type EventResponse struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Open bool   `json:"open"`
}

// ResolveResponse is the response for class text resolution
type ResolveResponse struct {
	Text     string `json:"text"`
	ClassKey string `json:"class_key"`
	Resolved bool   `json:"resolved"`
}

// ProgramLockResponse is the response for program lock queries
type ProgramLockResponse struct {
	Locked bool `json:"locked"`
}

// UnmappedClassesResponse is the response for the unmapped class scan
type UnmappedClassesResponse struct {
	Classes []string `json:"classes"`
}
