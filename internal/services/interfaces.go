package services

import (
	"context"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/event"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/models"
)

// ClassServicer defines the class configuration operations
type ClassServicer interface {
	SeedEventFromGlobal(ctx context.Context, ev *event.Context) error
	UpsertDefinition(ctx context.Context, ev *event.Context, def models.ClassDefinition, propagateGlobally bool) error
	UpsertAlias(ctx context.Context, ev *event.Context, alias, classKey string, propagateGlobally bool) error
	DeleteDefinition(ctx context.Context, ev *event.Context, classKey string, propagateGlobally bool) error
	DeleteAlias(ctx context.Context, ev *event.Context, alias string, propagateGlobally bool) error
	Resolve(ctx context.Context, ev *event.Context, raw string) (string, bool, error)
	ListDefinitions(ctx context.Context, ev *event.Context) ([]models.ClassDefinition, error)
	ListAliases(ctx context.Context, ev *event.Context) ([]models.ClassAlias, error)
	UnmappedClasses(ctx context.Context, ev *event.Context) ([]string, error)
}

// AwardsServicer defines the award report generation operations
type AwardsServicer interface {
	GenerateSoloReport(ctx context.Context, ev *event.Context) (*Report, error)
	GenerateDuetReport(ctx context.Context, ev *event.Context) (*Report, error)
	GenerateTrioReport(ctx context.Context, ev *event.Context) (*Report, error)
	GenerateEnsembleReport(ctx context.Context, ev *event.Context) (*Report, error)
}

// Compile-time checks that implementations satisfy the interfaces
var (
	_ ClassServicer  = (*ClassService)(nil)
	_ AwardsServicer = (*AwardsService)(nil)
)
