package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-event
// LogEvent writes an audit entry to the audit_log table.
func LogEvent(db *sql.DB, entry AuditEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO audit_log (session_id, seq, event, detail_json, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.Seq,
		entry.Event,
		nullIfEmpty(entry.DetailJSON),
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}

// #endregion log-event

// #region list-events
// ListForSession returns a session's audit entries in insertion order.
func ListForSession(db *sql.DB, sessionID string) ([]AuditEntry, error) {
	rows, err := db.Query(
		`SELECT session_id, seq, event, detail_json, reason, created_at
		 FROM audit_log WHERE session_id = ? ORDER BY id ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var detail, reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.SessionID, &e.Seq, &e.Event, &detail, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.DetailJSON = detail.String
		e.Reason = reason.String
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion list-events

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
