package repository

import (
	"context"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/models"
)

// ClassStore defines class definition and alias data operations.
// It is implemented twice at runtime: once by the global (master) store and
// once by each event store. Callers orchestrate dual writes explicitly.
type ClassStore interface {
	ListClassDefinitions(ctx context.Context) ([]models.ClassDefinition, error)
	ListClassAliases(ctx context.Context) ([]models.ClassAlias, error)
	UpsertClassDefinition(ctx context.Context, def models.ClassDefinition) error
	UpsertClassAlias(ctx context.Context, alias, classKey string) error
	DeleteClassDefinition(ctx context.Context, classKey string) error
	DeleteClassAlias(ctx context.Context, alias string) error
	ClassKeyExists(ctx context.Context, classKey string) (bool, error)
	LookupAlias(ctx context.Context, alias string) (string, error)
}

// ScoreRepository defines score data operations for an event store.
type ScoreRepository interface {
	ScoredRoutines(ctx context.Context, entryTypePattern string) ([]models.ScoredRoutine, error)
	ScoreCells(ctx context.Context, routineID, sheetKey string) ([]models.ScoreCell, error)
	SaveScoreCells(ctx context.Context, routineID, sheetKey string, cells []models.ScoreCell) error
	GetLastSheetKey(ctx context.Context, routineID string) (string, error)
	SetLastSheetKey(ctx context.Context, routineID, sheetKey string) error
	ClearAllScores(ctx context.Context) error
	SoloAwardCandidates(ctx context.Context) ([]models.AwardCandidate, error)
	DuetAwardCandidates(ctx context.Context) ([]models.AwardCandidate, error)
	UnmappedClasses(ctx context.Context) ([]string, error)
}

// RoutineRepository defines routine and participant data operations used by
// the CSV importer.
type RoutineRepository interface {
	ListRoutines(ctx context.Context) ([]models.Routine, error)
	FindRoutineByFingerprint(ctx context.Context, fingerprint string) (string, error)
	InsertRoutine(ctx context.Context, r models.Routine, fingerprint string) error
	UpdateRoutine(ctx context.Context, r models.Routine, updateProgramNumber bool) error
	ReplaceRoutineParticipants(ctx context.Context, routineID string, normalizedNames []string) error
	IsProgramLocked(ctx context.Context) (bool, error)
	SetProgramLocked(ctx context.Context, locked bool) error
}

// EventStore combines everything an open event database supports
type EventStore interface {
	ClassStore
	ScoreRepository
	RoutineRepository
}

// Ensure Store implements all interfaces
var _ EventStore = (*Store)(nil)
