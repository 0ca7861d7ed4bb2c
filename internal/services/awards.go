package services

import (
	"context"
	"sort"
	"strings"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/errors"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/event"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/logger"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/models"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/scoring"
)

// Category identifies one of the four award report pipelines.
type Category int

const (
	CategorySolo Category = iota
	CategoryDuet
	CategoryTrio
	CategoryEnsemble
)

func (c Category) String() string {
	switch c {
	case CategorySolo:
		return "Solo"
	case CategoryDuet:
		return "Duet"
	case CategoryTrio:
		return "Trio"
	case CategoryEnsemble:
		return "Ensemble"
	default:
		return "Unknown"
	}
}

// maxEntriesPerGroup caps how many distinct entries place in one group.
// Ties at the cutoff are never split, so a group can exceed the cap.
const maxEntriesPerGroup = 12

// pipeline binds a category to its candidate loader. The registry below is
// fixed at compile time; there is no runtime scheme discovery.
type pipeline struct {
	load  func(s *AwardsService, ctx context.Context, ev *event.Context) ([]models.AwardCandidate, error)
	typed bool // nest Type groups inside each class (Ensemble)
}

var pipelines = map[Category]pipeline{
	CategorySolo:     {load: (*AwardsService).loadSoloCandidates},
	CategoryDuet:     {load: (*AwardsService).loadDuetCandidates},
	CategoryTrio:     {load: (*AwardsService).loadTrioCandidates},
	CategoryEnsemble: {load: (*AwardsService).loadEnsembleCandidates, typed: true},
}

// AwardsService generates ranked award reports per entry category. Each
// generation loads its own candidate set and class snapshot, holds no
// locks, and returns an independent report tree.
type AwardsService struct {
	log     logger.Logger
	classes ClassServicer
}

// NewAwardsService creates a new AwardsService
func NewAwardsService(log logger.Logger, classes ClassServicer) *AwardsService {
	return &AwardsService{log: log, classes: classes}
}

// GenerateSoloReport builds the Solo award report for the event
func (s *AwardsService) GenerateSoloReport(ctx context.Context, ev *event.Context) (*Report, error) {
	return s.generate(ctx, ev, CategorySolo)
}

// GenerateDuetReport builds the Duet award report for the event
func (s *AwardsService) GenerateDuetReport(ctx context.Context, ev *event.Context) (*Report, error) {
	return s.generate(ctx, ev, CategoryDuet)
}

// GenerateTrioReport builds the Trio award report for the event
func (s *AwardsService) GenerateTrioReport(ctx context.Context, ev *event.Context) (*Report, error) {
	return s.generate(ctx, ev, CategoryTrio)
}

// GenerateEnsembleReport builds the Ensemble award report, nesting a Type
// level (Small/Medium/Large/XL) inside each class.
func (s *AwardsService) GenerateEnsembleReport(ctx context.Context, ev *event.Context) (*Report, error) {
	return s.generate(ctx, ev, CategoryEnsemble)
}

// ==================== Candidate loaders ====================

// Solo and Duet candidates come deduplicated from the repository query:
// only the best-scoring routine per participant set survives, with the
// final score computed as the average of per-judge totals.

func (s *AwardsService) loadSoloCandidates(ctx context.Context, ev *event.Context) ([]models.AwardCandidate, error) {
	candidates, err := ev.Store.SoloAwardCandidates(ctx)
	if err != nil {
		return nil, errors.Storage(err, "failed to load solo candidates")
	}
	return candidates, nil
}

func (s *AwardsService) loadDuetCandidates(ctx context.Context, ev *event.Context) ([]models.AwardCandidate, error) {
	candidates, err := ev.Store.DuetAwardCandidates(ctx)
	if err != nil {
		return nil, errors.Storage(err, "failed to load duet candidates")
	}
	return candidates, nil
}

// Trio candidates are aggregated in memory (average of per-judge totals,
// same formula as Solo/Duet) with no participant deduplication.
func (s *AwardsService) loadTrioCandidates(ctx context.Context, ev *event.Context) ([]models.AwardCandidate, error) {
	return s.loadScored(ctx, ev, "%Trio%", scoring.AverageOfJudgeTotals, false)
}

// Ensemble candidates use the plain sum of all score cells, keep their
// entry type text for the Type grouping level, and require a recorded
// scoring sheet.
func (s *AwardsService) loadEnsembleCandidates(ctx context.Context, ev *event.Context) ([]models.AwardCandidate, error) {
	return s.loadScored(ctx, ev, "%Ensemble%", scoring.SumOfCells, true)
}

func (s *AwardsService) loadScored(ctx context.Context, ev *event.Context, pattern string,
	aggregate func([]models.ScoreCell) float64, keepEntryType bool) ([]models.AwardCandidate, error) {

	routines, err := ev.Store.ScoredRoutines(ctx, pattern)
	if err != nil {
		return nil, errors.Storage(err, "failed to load scored routines")
	}

	var candidates []models.AwardCandidate
	for _, r := range routines {
		if r.LastSheetKey == "" {
			s.log.Warn("Skipping routine without a scoring sheet",
				"routine_id", r.RoutineID, "title", r.RoutineTitle)
			continue
		}
		cells, err := ev.Store.ScoreCells(ctx, r.RoutineID, r.LastSheetKey)
		if err != nil {
			return nil, errors.Storage(err, "failed to load score cells")
		}
		if len(cells) == 0 {
			// A marked-scored routine with no cells is a data problem;
			// exclude it rather than abort the whole report.
			s.log.Warn("Excluding routine with missing score cells",
				"routine_id", r.RoutineID, "sheet", r.LastSheetKey, "title", r.RoutineTitle)
			continue
		}

		c := models.AwardCandidate{
			RoutineID:     r.RoutineID,
			Class:         r.Class,
			Participants:  r.Participants,
			ProgramNumber: r.ProgramNumber,
			StudioName:    r.StudioName,
			RoutineTitle:  r.RoutineTitle,
			FinalScore:    aggregate(cells),
		}
		if keepEntryType {
			c.EntryType = r.EntryType
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// ==================== Shared ranking/grouping engine ====================

type classGroup struct {
	classKey    string
	displayName string
	bucket      string
	sortOrder   int
	candidates  []models.AwardCandidate
}

func (s *AwardsService) generate(ctx context.Context, ev *event.Context, cat Category) (*Report, error) {
	if ev == nil || ev.Store == nil {
		return nil, errors.NoActiveContext("no event is open")
	}
	p := pipelines[cat]

	candidates, err := p.load(s, ctx, ev)
	if err != nil {
		return nil, err
	}

	defs, err := s.classes.ListDefinitions(ctx, ev)
	if err != nil {
		return nil, err
	}
	defsByKey := make(map[string]models.ClassDefinition, len(defs))
	for _, d := range defs {
		defsByKey[strings.ToLower(d.ClassKey)] = d
	}

	// Group candidates by resolved class key; unresolved raw text still
	// forms a group under its literal spelling.
	groupIndex := make(map[string]*classGroup)
	var groups []*classGroup
	for _, c := range candidates {
		key, ok, err := s.classes.Resolve(ctx, ev, c.Class)
		if err != nil {
			return nil, err
		}
		if !ok {
			key = strings.TrimSpace(c.Class)
		}

		g, seen := groupIndex[key]
		if !seen {
			g = &classGroup{classKey: key, displayName: key, bucket: "", sortOrder: 1000}
			if def, found := defsByKey[strings.ToLower(key)]; found {
				g.displayName = def.DisplayName
				g.bucket = def.Bucket
				g.sortOrder = def.SortOrder
			}
			groupIndex[key] = g
			groups = append(groups, g)
		}
		g.candidates = append(g.candidates, c)
	}

	// Order groups: bucket priority, then class sort order, then name.
	// The sort is stable so unknown classes keep first-seen order.
	sort.SliceStable(groups, func(i, j int) bool {
		pi, pj := bucketPriority(groups[i].bucket), bucketPriority(groups[j].bucket)
		if pi != pj {
			return pi < pj
		}
		if groups[i].sortOrder != groups[j].sortOrder {
			return groups[i].sortOrder < groups[j].sortOrder
		}
		return groups[i].displayName < groups[j].displayName
	})

	// Assemble the Bucket → Class(→ Type) tree in group order.
	report := &Report{Category: cat.String()}
	bucketIndex := make(map[string]int)
	for _, g := range groups {
		cg := ClassGroup{
			ClassKey:    g.classKey,
			DisplayName: g.displayName,
			SortOrder:   g.sortOrder,
		}
		if p.typed {
			cg.Types = s.buildTypeGroups(g)
		} else {
			sortCandidates(g.candidates, false)
			cg.Entries = rankEntries(g.candidates, g.classKey, "")
		}

		idx, seen := bucketIndex[g.bucket]
		if !seen {
			report.Buckets = append(report.Buckets, BucketGroup{Bucket: g.bucket})
			idx = len(report.Buckets) - 1
			bucketIndex[g.bucket] = idx
		}
		report.Buckets[idx].Classes = append(report.Buckets[idx].Classes, cg)
	}

	s.log.Debug("Generated award report", "category", cat.String(),
		"candidates", len(candidates), "buckets", len(report.Buckets))
	return report, nil
}

// buildTypeGroups splits an ensemble class group by size tag and ranks
// each type independently.
func (s *AwardsService) buildTypeGroups(g *classGroup) []TypeGroup {
	byType := make(map[string][]models.AwardCandidate)
	var order []string
	for _, c := range g.candidates {
		tag := ensembleType(c.EntryType)
		if _, seen := byType[tag]; !seen {
			order = append(order, tag)
		}
		byType[tag] = append(byType[tag], c)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return ensembleTypePriority(order[i]) < ensembleTypePriority(order[j])
	})

	groups := make([]TypeGroup, 0, len(order))
	for _, tag := range order {
		cands := byType[tag]
		sortCandidates(cands, true)
		groups = append(groups, TypeGroup{
			Type:    tag,
			Entries: rankEntries(cands, g.classKey, tag),
		})
	}
	return groups
}

// sortCandidates orders by final score descending. Ensemble adds routine
// ID ascending as a deterministic tiebreak; the other categories rely on
// stable sort preserving candidate order.
func sortCandidates(cands []models.AwardCandidate, byRoutineID bool) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].FinalScore != cands[j].FinalScore {
			return cands[i].FinalScore > cands[j].FinalScore
		}
		if byRoutineID {
			return cands[i].RoutineID < cands[j].RoutineID
		}
		return false
	})
}

// rankEntries assigns places over score-sorted candidates. Scores within
// epsilon share a place; the next distinct score skips past everyone at
// the shared place. The group cap counts entries added, but a candidate
// tying the score at the boundary is still admitted.
func rankEntries(sorted []models.AwardCandidate, classKey, typeTag string) []AwardEntry {
	var entries []AwardEntry
	currentPlace := 1
	countAtCurrentScore := 0
	var previousScore float64
	havePrevious := false

	for _, c := range sorted {
		if len(entries) >= maxEntriesPerGroup &&
			(!havePrevious || !scoring.Tied(c.FinalScore, previousScore)) {
			break
		}

		if havePrevious && scoring.Tied(c.FinalScore, previousScore) {
			countAtCurrentScore++
		} else {
			if havePrevious {
				currentPlace += countAtCurrentScore
			}
			countAtCurrentScore = 1
			previousScore = c.FinalScore
			havePrevious = true
		}

		entries = append(entries, AwardEntry{
			Place:         currentPlace,
			PlaceName:     PlaceName(currentPlace),
			FinalScore:    c.FinalScore,
			ProgramNumber: c.ProgramNumber,
			Participants:  c.Participants,
			StudioName:    c.StudioName,
			RoutineTitle:  c.RoutineTitle,
			ClassKey:      classKey,
			Type:          typeTag,
		})
	}
	return entries
}

// bucketPriority fixes the display order of buckets. Unknown buckets,
// including the empty bucket of unresolved classes, sort last.
func bucketPriority(bucket string) int {
	switch strings.ToLower(bucket) {
	case "studio":
		return 1
	case "school":
		return 2
	case "select school":
		return 3
	case "elite school":
		return 4
	default:
		return 99
	}
}

// ensembleType extracts the size tag from raw entry-type text.
func ensembleType(entryType string) string {
	lower := strings.ToLower(entryType)
	switch {
	case strings.Contains(lower, "small"):
		return "Small"
	case strings.Contains(lower, "medium"):
		return "Medium"
	case strings.Contains(lower, "large"):
		return "Large"
	case strings.Contains(lower, "xl"):
		return "XL"
	default:
		return "Other"
	}
}

func ensembleTypePriority(typeTag string) int {
	switch typeTag {
	case "Small":
		return 1
	case "Medium":
		return 2
	case "Large":
		return 3
	case "XL":
		return 4
	default:
		return 99
	}
}
