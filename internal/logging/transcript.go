package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"mythosclient/internal/game/events"
)

// TranscriptEntry is one recorded event envelope, kept for offline review of
// a session. The projected state itself is never persisted.
type TranscriptEntry struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	EventType string    `json:"event_type"`
	Sequence  int64     `json:"sequence_number"`
	Payload   string    `json:"payload"`
	Emitted   int       `json:"messages_emitted"`
}

// TranscriptLogger records every processed event into a local sqlite file.
type TranscriptLogger struct {
	db *sql.DB
}

func NewTranscriptLogger() (*TranscriptLogger, error) {
	db, err := sql.Open("sqlite3", "./transcript.db")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger := &TranscriptLogger{db: db}
	if err := logger.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return logger, nil
}

func (tl *TranscriptLogger) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS transcript (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		session_id TEXT NOT NULL,
		event_type TEXT NOT NULL,
		sequence_number INTEGER NOT NULL,
		payload TEXT NOT NULL,
		messages_emitted INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_transcript_timestamp ON transcript(timestamp);
	`

	_, err := tl.db.Exec(schema)
	return err
}

// LogEvent records one processed event. Best effort; callers treat failures
// as diagnostics, never as fatal.
func (tl *TranscriptLogger) LogEvent(sessionID string, ev events.GameEvent, messagesEmitted int) error {
	payload, err := json.Marshal(ev.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	_, err = tl.db.Exec(`
		INSERT INTO transcript (session_id, event_type, sequence_number, payload, messages_emitted)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, ev.Type, ev.SequenceNumber, string(payload), messagesEmitted)

	return err
}

// GetRecentEntries returns the newest entries for the review CLI mode.
func (tl *TranscriptLogger) GetRecentEntries(limit int) ([]TranscriptEntry, error) {
	rows, err := tl.db.Query(`
		SELECT id, timestamp, session_id, event_type, sequence_number, payload, messages_emitted
		FROM transcript
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transcript: %w", err)
	}
	defer rows.Close()

	var entries []TranscriptEntry
	for rows.Next() {
		var entry TranscriptEntry
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.SessionID, &entry.EventType, &entry.Sequence, &entry.Payload, &entry.Emitted); err != nil {
			return nil, fmt.Errorf("failed to scan transcript row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (tl *TranscriptLogger) Close() error {
	return tl.db.Close()
}
