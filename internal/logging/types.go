// Package logging persists an audit trail of session decisions so a
// coaching run can be explained after the fact.
package logging

import "time"

// #region audit-entry
// AuditEntry is a single row in the audit_log table. Seq is zero for
// session lifecycle events.
type AuditEntry struct {
	SessionID  string
	Seq        uint64
	Event      string // "session_started" | "session_ended" | "retake_issued"
	DetailJSON string
	Reason     string
	CreatedAt  time.Time
}

// Audit event vocabulary.
const (
	EventSessionStarted = "session_started"
	EventSessionEnded   = "session_ended"
	EventRetakeIssued   = "retake_issued"
)

// #endregion audit-entry

// #region schema
// Schema creates the audit_log table. The history store runs it as part
// of its migrations so audit rows live next to the session records.
const Schema = `
CREATE TABLE IF NOT EXISTS audit_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	seq         INTEGER NOT NULL DEFAULT 0,
	event       TEXT NOT NULL,
	detail_json TEXT,
	reason      TEXT,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_log_session ON audit_log(session_id, id);
`

// #endregion schema
