package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/models"
)

// Store provides data access methods over a single SQLite database.
// The same type backs both the global (master) class-config database and
// each per-event database; the master simply never gets routine or score
// tables.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) an event database with the full schema.
func New(dbPath string) (*Store, error) {
	db, err := open(dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(eventMigrations); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewMaster opens (creating if needed) the global class-config database,
// which carries only the class tables.
func NewMaster(dbPath string) (*Store, error) {
	db, err := open(dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(classMigrations); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

// DB returns the underlying database connection (for transactions)
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// classMigrations is the schema shared by the master and event databases.
// Alias referential integrity is enforced with ON DELETE RESTRICT: deletes
// must remove aliases before definitions, explicitly.
var classMigrations = []string{
	`CREATE TABLE IF NOT EXISTS class_definitions (
		class_key TEXT PRIMARY KEY NOT NULL,
		display_name TEXT NOT NULL,
		bucket TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1 CHECK (is_active IN (0,1)),
		updated_utc TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
	)`,
	`CREATE TABLE IF NOT EXISTS class_aliases (
		alias TEXT PRIMARY KEY NOT NULL,
		class_key TEXT NOT NULL,
		updated_utc TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
		FOREIGN KEY (class_key) REFERENCES class_definitions(class_key) ON DELETE RESTRICT
	)`,
}

// eventMigrations is the full per-event schema: routines with their
// participants and score cells, plus the class snapshot tables.
var eventMigrations = append([]string{
	`CREATE TABLE IF NOT EXISTS event_state (
		event_state_id INTEGER NOT NULL PRIMARY KEY CHECK (event_state_id = 1),
		event_name TEXT,
		is_program_locked INTEGER NOT NULL DEFAULT 0 CHECK (is_program_locked IN (0,1))
	)`,
	`INSERT OR IGNORE INTO event_state(event_state_id) VALUES (1)`,
	`CREATE TABLE IF NOT EXISTS routines (
		routine_id TEXT PRIMARY KEY NOT NULL,
		program_number INTEGER NOT NULL,
		start_time TEXT,
		entry_type TEXT NOT NULL,
		category TEXT,
		class TEXT,
		studio_name TEXT,
		routine_title TEXT NOT NULL,
		participants_raw TEXT,
		fingerprint TEXT NOT NULL,
		is_inactive INTEGER NOT NULL DEFAULT 0 CHECK (is_inactive IN (0,1)),
		created_utc TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
		updated_utc TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_routines_fingerprint ON routines(fingerprint)`,
	`CREATE TABLE IF NOT EXISTS participants (
		participant_id TEXT PRIMARY KEY NOT NULL,
		display_name TEXT NOT NULL,
		normalized_name TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_participants_normalized ON participants(normalized_name)`,
	`CREATE TABLE IF NOT EXISTS routine_participants (
		routine_id TEXT NOT NULL,
		participant_id TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (routine_id, participant_id),
		FOREIGN KEY (routine_id) REFERENCES routines(routine_id) ON DELETE CASCADE,
		FOREIGN KEY (participant_id) REFERENCES participants(participant_id) ON DELETE RESTRICT
	)`,
	`CREATE TABLE IF NOT EXISTS routine_score_cells (
		routine_id TEXT NOT NULL,
		sheet_key TEXT NOT NULL,
		judge_index INTEGER NOT NULL,
		criterion_key TEXT NOT NULL,
		value REAL,
		updated_utc TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
		PRIMARY KEY (routine_id, sheet_key, judge_index, criterion_key),
		FOREIGN KEY (routine_id) REFERENCES routines(routine_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS routine_score_status (
		routine_id TEXT PRIMARY KEY,
		is_scored INTEGER NOT NULL DEFAULT 0,
		last_sheet_key TEXT,
		updated_utc TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
		FOREIGN KEY (routine_id) REFERENCES routines(routine_id) ON DELETE CASCADE
	)`,
}, classMigrations...)

// migrate runs database migrations
func (s *Store) migrate(migrations []string) error {
	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// ==================== Class Definition Methods ====================

// ListClassDefinitions returns all class definitions ordered for display
func (s *Store) ListClassDefinitions(ctx context.Context) ([]models.ClassDefinition, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT class_key, display_name, bucket, sort_order, is_active, updated_utc
		FROM class_definitions
		ORDER BY sort_order, display_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []models.ClassDefinition
	for rows.Next() {
		var def models.ClassDefinition
		if err := rows.Scan(&def.ClassKey, &def.DisplayName, &def.Bucket, &def.SortOrder, &def.IsActive, &def.UpdatedUtc); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

// UpsertClassDefinition inserts or updates a definition by class key
func (s *Store) UpsertClassDefinition(ctx context.Context, def models.ClassDefinition) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO class_definitions (class_key, display_name, bucket, sort_order, is_active, updated_utc)
		VALUES (?, ?, ?, ?, ?, COALESCE(NULLIF(?,''), strftime('%Y-%m-%dT%H:%M:%fZ','now')))
		ON CONFLICT(class_key) DO UPDATE SET
			display_name = excluded.display_name,
			bucket = excluded.bucket,
			sort_order = excluded.sort_order,
			is_active = excluded.is_active,
			updated_utc = excluded.updated_utc
	`, def.ClassKey, def.DisplayName, def.Bucket, def.SortOrder, def.IsActive, def.UpdatedUtc)
	return err
}

// DeleteClassDefinition removes a definition and its aliases. Aliases go
// first to satisfy the restrict constraint; deleting a missing key is a
// no-op.
func (s *Store) DeleteClassDefinition(ctx context.Context, classKey string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM class_aliases WHERE class_key = ?`, classKey); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM class_definitions WHERE class_key = ?`, classKey); err != nil {
		return err
	}
	return tx.Commit()
}

// ClassKeyExists checks whether a class definition exists for the key
func (s *Store) ClassKeyExists(ctx context.Context, classKey string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM class_definitions WHERE class_key = ?)`, classKey).Scan(&exists)
	return exists, err
}

// ==================== Class Alias Methods ====================

// ListClassAliases returns all aliases ordered by alias text
func (s *Store) ListClassAliases(ctx context.Context) ([]models.ClassAlias, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT alias, class_key, updated_utc
		FROM class_aliases
		ORDER BY alias
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aliases []models.ClassAlias
	for rows.Next() {
		var a models.ClassAlias
		if err := rows.Scan(&a.Alias, &a.ClassKey, &a.UpdatedUtc); err != nil {
			return nil, err
		}
		aliases = append(aliases, a)
	}
	return aliases, rows.Err()
}

// UpsertClassAlias inserts or updates an alias mapping
func (s *Store) UpsertClassAlias(ctx context.Context, alias, classKey string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO class_aliases (alias, class_key, updated_utc)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		ON CONFLICT(alias) DO UPDATE SET
			class_key = excluded.class_key,
			updated_utc = excluded.updated_utc
	`, alias, classKey)
	return err
}

// DeleteClassAlias removes an alias; deleting a missing alias is a no-op
func (s *Store) DeleteClassAlias(ctx context.Context, alias string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM class_aliases WHERE alias = ?`, alias)
	return err
}

// LookupAlias returns the class key an alias maps to, or ErrNotFound
func (s *Store) LookupAlias(ctx context.Context, alias string) (string, error) {
	var classKey string
	err := s.db.QueryRowContext(ctx,
		`SELECT class_key FROM class_aliases WHERE alias = ?`, alias).Scan(&classKey)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return classKey, err
}

// UnmappedClasses returns the distinct raw class texts on routines that
// resolve to neither an alias nor a class key. Operators use this list to
// curate new mappings.
func (s *Store) UnmappedClasses(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT trim(class) AS class_text
		FROM routines
		WHERE class IS NOT NULL AND trim(class) <> ''
		  AND NOT EXISTS (SELECT 1 FROM class_aliases WHERE alias = trim(class))
		  AND NOT EXISTS (SELECT 1 FROM class_definitions WHERE class_key = trim(class))
		ORDER BY class_text
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		if t := strings.TrimSpace(text); t != "" {
			texts = append(texts, t)
		}
	}
	return texts, rows.Err()
}

// ==================== Score Methods ====================

// ScoredRoutines returns fully scored routines whose entry type matches the
// given LIKE pattern, joined with their last used sheet key.
func (s *Store) ScoredRoutines(ctx context.Context, entryTypePattern string) ([]models.ScoredRoutine, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.routine_id, r.program_number, COALESCE(r.class,''), COALESCE(r.participants_raw,''),
		       COALESCE(r.studio_name,''), r.routine_title, COALESCE(rss.last_sheet_key,''), r.entry_type
		FROM routines r
		JOIN routine_score_status rss ON r.routine_id = rss.routine_id
		WHERE r.entry_type LIKE ?
		  AND rss.is_scored = 1
		  AND rss.last_sheet_key IS NOT NULL
	`, entryTypePattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routines []models.ScoredRoutine
	for rows.Next() {
		var r models.ScoredRoutine
		if err := rows.Scan(&r.RoutineID, &r.ProgramNumber, &r.Class, &r.Participants,
			&r.StudioName, &r.RoutineTitle, &r.LastSheetKey, &r.EntryType); err != nil {
			return nil, err
		}
		routines = append(routines, r)
	}
	return routines, rows.Err()
}

// ScoreCells returns the raw per-judge, per-criterion values for one
// routine on one sheet.
func (s *Store) ScoreCells(ctx context.Context, routineID, sheetKey string) ([]models.ScoreCell, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT judge_index, criterion_key, COALESCE(value, 0)
		FROM routine_score_cells
		WHERE routine_id = ? AND sheet_key = ?
	`, routineID, sheetKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cells []models.ScoreCell
	for rows.Next() {
		var c models.ScoreCell
		if err := rows.Scan(&c.JudgeIndex, &c.Criterion, &c.Value); err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, rows.Err()
}

// SaveScoreCells upserts score cells for a routine sheet and marks the
// routine scored with that sheet as its last used one.
func (s *Store) SaveScoreCells(ctx context.Context, routineID, sheetKey string, cells []models.ScoreCell) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range cells {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO routine_score_cells (routine_id, sheet_key, judge_index, criterion_key, value, updated_utc)
			VALUES (?, ?, ?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ','now'))
			ON CONFLICT(routine_id, sheet_key, judge_index, criterion_key) DO UPDATE SET
				value = excluded.value,
				updated_utc = excluded.updated_utc
		`, routineID, sheetKey, c.JudgeIndex, c.Criterion, c.Value)
		if err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO routine_score_status (routine_id, is_scored, last_sheet_key)
		VALUES (?, 1, ?)
		ON CONFLICT(routine_id) DO UPDATE SET
			is_scored = 1,
			last_sheet_key = excluded.last_sheet_key,
			updated_utc = strftime('%Y-%m-%dT%H:%M:%fZ','now')
	`, routineID, sheetKey)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// GetLastSheetKey returns the last used sheet key for a routine, or
// ErrNotFound when the routine has no scoring status yet.
func (s *Store) GetLastSheetKey(ctx context.Context, routineID string) (string, error) {
	var sheetKey sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT last_sheet_key FROM routine_score_status WHERE routine_id = ?`, routineID).Scan(&sheetKey)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return sheetKey.String, nil
}

// SetLastSheetKey updates the last used sheet key for a routine
func (s *Store) SetLastSheetKey(ctx context.Context, routineID, sheetKey string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO routine_score_status (routine_id, is_scored, last_sheet_key)
		VALUES (?, 1, ?)
		ON CONFLICT(routine_id) DO UPDATE SET
			is_scored = 1,
			last_sheet_key = excluded.last_sheet_key,
			updated_utc = strftime('%Y-%m-%dT%H:%M:%fZ','now')
	`, routineID, sheetKey)
	return err
}

// ClearAllScores deletes all score cells and statuses for all routines
func (s *Store) ClearAllScores(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM routine_score_cells`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM routine_score_status`); err != nil {
		return err
	}
	return tx.Commit()
}

// awardCandidatesSQL computes final scores (average of per-judge totals)
// for fully scored routines matching an entry-type pattern, then keeps only
// the best-scoring routine per participant set.
const awardCandidatesSQL = `
	WITH scored_routines AS (
		SELECT r.routine_id, r.program_number, COALESCE(r.class,'') AS class,
		       COALESCE(r.participants_raw,'') AS participants,
		       COALESCE(r.studio_name,'') AS studio_name, r.routine_title,
		       rss.last_sheet_key
		FROM routines r
		JOIN routine_score_status rss ON r.routine_id = rss.routine_id
		WHERE r.entry_type LIKE ?
		  AND rss.last_sheet_key IS NOT NULL
		  AND rss.is_scored = 1
	),
	judge_totals AS (
		SELECT sr.routine_id, sr.program_number, sr.class, sr.participants,
		       sr.studio_name, sr.routine_title, rsc.judge_index,
		       SUM(COALESCE(rsc.value, 0)) AS judge_total
		FROM scored_routines sr
		JOIN routine_score_cells rsc
			ON sr.routine_id = rsc.routine_id AND sr.last_sheet_key = rsc.sheet_key
		GROUP BY sr.routine_id, sr.program_number, sr.class, sr.participants,
		         sr.studio_name, sr.routine_title, rsc.judge_index
	),
	routine_scores AS (
		SELECT routine_id, program_number, class, participants, studio_name,
		       routine_title, AVG(judge_total) AS final_score
		FROM judge_totals
		GROUP BY routine_id, program_number, class, participants, studio_name, routine_title
	),
	ranked_routines AS (
		SELECT *, ROW_NUMBER() OVER (
			PARTITION BY participants ORDER BY final_score DESC
		) AS routine_rank
		FROM routine_scores
	)
	SELECT routine_id, class, participants, program_number, studio_name,
	       routine_title, final_score
	FROM ranked_routines
	WHERE routine_rank = 1
	ORDER BY class, final_score DESC`

// SoloAwardCandidates returns scored solo routines, deduplicated so only
// the best routine per participant survives.
func (s *Store) SoloAwardCandidates(ctx context.Context) ([]models.AwardCandidate, error) {
	return s.awardCandidates(ctx, "%Solo%")
}

// DuetAwardCandidates returns scored duet routines, deduplicated so only
// the best routine per participant pair survives.
func (s *Store) DuetAwardCandidates(ctx context.Context) ([]models.AwardCandidate, error) {
	return s.awardCandidates(ctx, "%Duet%")
}

func (s *Store) awardCandidates(ctx context.Context, entryTypePattern string) ([]models.AwardCandidate, error) {
	rows, err := s.db.QueryContext(ctx, awardCandidatesSQL, entryTypePattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []models.AwardCandidate
	for rows.Next() {
		var c models.AwardCandidate
		if err := rows.Scan(&c.RoutineID, &c.Class, &c.Participants, &c.ProgramNumber,
			&c.StudioName, &c.RoutineTitle, &c.FinalScore); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// ==================== Routine Methods ====================

// ListRoutines returns all active routines in program order
func (s *Store) ListRoutines(ctx context.Context) ([]models.Routine, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT routine_id, program_number, COALESCE(start_time,''), entry_type,
		       COALESCE(category,''), COALESCE(class,''), COALESCE(studio_name,''),
		       routine_title, COALESCE(participants_raw,'')
		FROM routines
		WHERE is_inactive = 0
		ORDER BY program_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routines []models.Routine
	for rows.Next() {
		var r models.Routine
		if err := rows.Scan(&r.RoutineID, &r.ProgramNumber, &r.StartTime, &r.EntryType,
			&r.Category, &r.Class, &r.StudioName, &r.RoutineTitle, &r.Participants); err != nil {
			return nil, err
		}
		routines = append(routines, r)
	}
	return routines, rows.Err()
}

// FindRoutineByFingerprint returns the routine ID with the given content
// fingerprint, or ErrNotFound.
func (s *Store) FindRoutineByFingerprint(ctx context.Context, fingerprint string) (string, error) {
	var routineID string
	err := s.db.QueryRowContext(ctx,
		`SELECT routine_id FROM routines WHERE fingerprint = ?`, fingerprint).Scan(&routineID)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return routineID, err
}

// InsertRoutine creates a new routine row
func (s *Store) InsertRoutine(ctx context.Context, r models.Routine, fingerprint string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO routines (routine_id, program_number, start_time, entry_type, category,
		                      class, studio_name, routine_title, participants_raw, fingerprint)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.RoutineID, r.ProgramNumber, r.StartTime, r.EntryType, r.Category,
		r.Class, r.StudioName, r.RoutineTitle, r.Participants, fingerprint)
	return err
}

// UpdateRoutine updates a routine's descriptive fields. The program number
// is updated only when requested (the program may be locked).
func (s *Store) UpdateRoutine(ctx context.Context, r models.Routine, updateProgramNumber bool) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE routines
		SET start_time = ?, entry_type = ?, category = ?, class = ?,
		    studio_name = ?, routine_title = ?, participants_raw = ?,
		    updated_utc = strftime('%Y-%m-%dT%H:%M:%fZ','now')
		WHERE routine_id = ?
	`, r.StartTime, r.EntryType, r.Category, r.Class,
		r.StudioName, r.RoutineTitle, r.Participants, r.RoutineID)
	if err != nil {
		return err
	}

	if updateProgramNumber {
		_, err = s.db.ExecContext(ctx,
			`UPDATE routines SET program_number = ? WHERE routine_id = ?`,
			r.ProgramNumber, r.RoutineID)
	}
	return err
}

// ReplaceRoutineParticipants relinks a routine to its participant rows,
// upserting participants by normalized name.
func (s *Store) ReplaceRoutineParticipants(ctx context.Context, routineID string, normalizedNames []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM routine_participants WHERE routine_id = ?`, routineID); err != nil {
		return err
	}

	for sort, name := range normalizedNames {
		var participantID string
		err := tx.QueryRowContext(ctx,
			`SELECT participant_id FROM participants WHERE normalized_name = ?`, name).Scan(&participantID)
		if err == sql.ErrNoRows {
			participantID = uuid.New().String()
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO participants (participant_id, display_name, normalized_name)
				VALUES (?, ?, ?)
			`, participantID, name, name); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO routine_participants (routine_id, participant_id, sort_order)
			VALUES (?, ?, ?)
		`, routineID, participantID, sort); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ==================== Event State Methods ====================

// IsProgramLocked reports whether the program order is locked for edits
func (s *Store) IsProgramLocked(ctx context.Context) (bool, error) {
	var locked bool
	err := s.db.QueryRowContext(ctx,
		`SELECT is_program_locked FROM event_state WHERE event_state_id = 1`).Scan(&locked)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return locked, err
}

// SetProgramLocked sets the program lock flag
func (s *Store) SetProgramLocked(ctx context.Context, locked bool) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE event_state SET is_program_locked = ? WHERE event_state_id = 1`, locked)
	return err
}
