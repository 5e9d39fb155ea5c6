// Package history persists session outcomes in SQLite so coaching runs
// can be inspected and replayed after the fact.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tryangle/coach-controller/internal/logging"
	"github.com/tryangle/coach-controller/internal/rules"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id     TEXT PRIMARY KEY,
	started_at     TEXT NOT NULL,
	ended_at       TEXT,
	frames         INTEGER NOT NULL DEFAULT 0,
	final_score    REAL,
	reference_json TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS frame_results (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	seq         INTEGER NOT NULL,
	score       REAL NOT NULL,
	elapsed_us  INTEGER NOT NULL,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE TABLE IF NOT EXISTS frame_actions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	frame_id    INTEGER NOT NULL,
	category    TEXT NOT NULL,
	actor       TEXT NOT NULL,
	direction   TEXT,
	magnitude   REAL,
	unit        TEXT,
	reason_code TEXT NOT NULL,
	detail      TEXT,
	FOREIGN KEY (frame_id) REFERENCES frame_results(id)
);

CREATE INDEX IF NOT EXISTS idx_frame_results_session ON frame_results(session_id, seq);
`
// #endregion schema

// #region records

// SessionRecord is one persisted coaching session.
type SessionRecord struct {
	SessionID  string
	StartedAt  time.Time
	EndedAt    time.Time
	Ended      bool
	Frames     int64
	FinalScore float64
	Reference  *snapshot.Snapshot
}

// FrameRecord is one persisted evaluated frame.
type FrameRecord struct {
	ID        int64
	SessionID string
	Seq       uint64
	Score     float64
	Elapsed   time.Duration
	CreatedAt time.Time
	Actions   []rules.Action
}

// #endregion records

// #region store-struct
// Store persists sessions, frame results and their actions in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if _, err := db.Exec(logging.Schema); err != nil {
		return nil, fmt.Errorf("migrate audit log: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Audit appends an entry to the session audit trail.
func (s *Store) Audit(entry logging.AuditEntry) error {
	return logging.LogEvent(s.db, entry)
}

// AuditTrail returns a session's audit entries in insertion order.
func (s *Store) AuditTrail(sessionID string) ([]logging.AuditEntry, error) {
	return logging.ListForSession(s.db, sessionID)
}

// #endregion constructor

// #region create-session
// CreateSession records a new session with its reference snapshot.
func (s *Store) CreateSession(sessionID string, startedAt time.Time, reference *snapshot.Snapshot) error {
	refJSON, err := json.Marshal(reference)
	if err != nil {
		return fmt.Errorf("marshal reference: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO sessions (session_id, started_at, reference_json) VALUES (?, ?, ?)`,
		sessionID, startedAt.Format(time.RFC3339Nano), string(refJSON),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// #endregion create-session

// #region record-frame
// RecordFrame persists one evaluated frame and its actions atomically.
func (s *Store) RecordFrame(sessionID string, seq uint64, score float64, elapsed time.Duration, actions []rules.Action) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	res, err := tx.Exec(
		`INSERT INTO frame_results (session_id, seq, score, elapsed_us, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sessionID, seq, score, elapsed.Microseconds(), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert frame: %w", err)
	}
	frameID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("frame id: %w", err)
	}

	for _, a := range actions {
		_, err = tx.Exec(
			`INSERT INTO frame_actions (frame_id, category, actor, direction, magnitude, unit, reason_code, detail)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			frameID, string(a.Category), string(a.Actor), a.Direction, a.Magnitude, a.Unit, a.ReasonCode, a.Detail,
		)
		if err != nil {
			return fmt.Errorf("insert action: %w", err)
		}
	}

	_, err = tx.Exec(
		`UPDATE sessions SET frames = frames + 1 WHERE session_id = ?`, sessionID,
	)
	if err != nil {
		return fmt.Errorf("bump frames: %w", err)
	}

	return tx.Commit()
}

// #endregion record-frame

// #region end-session
// EndSession marks a session finished with its final score.
func (s *Store) EndSession(sessionID string, endedAt time.Time, finalScore float64) error {
	res, err := s.db.Exec(
		`UPDATE sessions SET ended_at = ?, final_score = ? WHERE session_id = ?`,
		endedAt.Format(time.RFC3339Nano), finalScore, sessionID,
	)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}
	return nil
}

// #endregion end-session

// #region get-session
// GetSession retrieves one session by ID.
func (s *Store) GetSession(sessionID string) (SessionRecord, error) {
	var rec SessionRecord
	var startedStr string
	var endedStr sql.NullString
	var finalScore sql.NullFloat64
	var refJSON string

	err := s.db.QueryRow(
		`SELECT session_id, started_at, ended_at, frames, final_score, reference_json
		 FROM sessions WHERE session_id = ?`, sessionID,
	).Scan(&rec.SessionID, &startedStr, &endedStr, &rec.Frames, &finalScore, &refJSON)
	if err != nil {
		return SessionRecord{}, fmt.Errorf("get session %s: %w", sessionID, err)
	}

	rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
	if endedStr.Valid {
		rec.Ended = true
		rec.EndedAt, _ = time.Parse(time.RFC3339Nano, endedStr.String)
	}
	if finalScore.Valid {
		rec.FinalScore = finalScore.Float64
	}
	var ref snapshot.Snapshot
	if err := json.Unmarshal([]byte(refJSON), &ref); err != nil {
		return SessionRecord{}, fmt.Errorf("unmarshal reference: %w", err)
	}
	rec.Reference = &ref

	return rec, nil
}

// #endregion get-session

// #region list-sessions
// ListSessions returns the most recent sessions.
func (s *Store) ListSessions(limit int) ([]SessionRecord, error) {
	rows, err := s.db.Query(
		`SELECT session_id, started_at, ended_at, frames, final_score
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var startedStr string
		var endedStr sql.NullString
		var finalScore sql.NullFloat64

		if err := rows.Scan(&rec.SessionID, &startedStr, &endedStr, &rec.Frames, &finalScore); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
		if endedStr.Valid {
			rec.Ended = true
			rec.EndedAt, _ = time.Parse(time.RFC3339Nano, endedStr.String)
		}
		if finalScore.Valid {
			rec.FinalScore = finalScore.Float64
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-sessions

// #region list-frames
// ListFrames returns a session's frame results in sequence order, each
// with its persisted actions.
func (s *Store) ListFrames(sessionID string, limit int) ([]FrameRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, seq, score, elapsed_us, created_at
		 FROM frame_results WHERE session_id = ? ORDER BY seq ASC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list frames: %w", err)
	}
	defer rows.Close()

	var frames []FrameRecord
	for rows.Next() {
		var fr FrameRecord
		var elapsedUS int64
		var createdStr string
		if err := rows.Scan(&fr.ID, &fr.SessionID, &fr.Seq, &fr.Score, &elapsedUS, &createdStr); err != nil {
			return nil, fmt.Errorf("scan frame: %w", err)
		}
		fr.Elapsed = time.Duration(elapsedUS) * time.Microsecond
		fr.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		frames = append(frames, fr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range frames {
		actions, err := s.frameActions(frames[i].ID)
		if err != nil {
			return nil, err
		}
		frames[i].Actions = actions
	}
	return frames, nil
}

func (s *Store) frameActions(frameID int64) ([]rules.Action, error) {
	rows, err := s.db.Query(
		`SELECT category, actor, direction, magnitude, unit, reason_code, detail
		 FROM frame_actions WHERE frame_id = ? ORDER BY id ASC`, frameID,
	)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	defer rows.Close()

	var actions []rules.Action
	for rows.Next() {
		var a rules.Action
		var category, actor string
		if err := rows.Scan(&category, &actor, &a.Direction, &a.Magnitude, &a.Unit, &a.ReasonCode, &a.Detail); err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		a.Category = rules.Category(category)
		a.Actor = rules.Actor(actor)
		a.Priority = rules.Rank(a.Category)
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

// #endregion list-frames
