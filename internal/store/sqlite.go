package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err = store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS sessions (
        id TEXT PRIMARY KEY, -- UUID
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS messages (
        id TEXT PRIMARY KEY, -- UUID
        session_id TEXT NOT NULL,
        sender TEXT NOT NULL CHECK (sender IN ('user', 'bot')),
        content TEXT NOT NULL,
        timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
        source TEXT,
        intent_id TEXT,
        project_slug TEXT,
        negative_feedback BOOLEAN DEFAULT FALSE,
        FOREIGN KEY (session_id) REFERENCES sessions (id)
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

// Session methods
func (s *SQLiteStore) CreateSession() (*Session, error) {
	sessionID := uuid.NewString()
	now := time.Now()

	_, err := s.db.Exec("INSERT INTO sessions (id, created_at) VALUES (?, ?)", sessionID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}
	return &Session{ID: sessionID, CreatedAt: now}, nil
}

func (s *SQLiteStore) GetSessionByID(sessionID string) (*Session, error) {
	var session Session
	err := s.db.QueryRow("SELECT id, created_at FROM sessions WHERE id = ?", sessionID).
		Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// Message methods
func (s *SQLiteStore) CreateMessage(msg *Message) error {
	msg.ID = uuid.NewString()
	msg.Timestamp = time.Now()

	stmt, err := s.db.Prepare(`INSERT INTO messages
        (id, session_id, sender, content, timestamp, source, intent_id, project_slug, negative_feedback)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare message insert: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(msg.ID, msg.SessionID, msg.Sender, msg.Content, msg.Timestamp,
		msg.Source, msg.IntentID, msg.ProjectSlug, msg.NegativeFeedback)
	if err != nil {
		return fmt.Errorf("failed to execute message insert: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetMessagesBySessionID(sessionID string, limit, offset int) ([]Message, error) {
	query := `SELECT id, session_id, sender, content, timestamp, source, intent_id, project_slug, negative_feedback
        FROM messages WHERE session_id = ? ORDER BY timestamp ASC LIMIT ? OFFSET ?`
	rows, err := s.db.Query(query, sessionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var msg Message
		var source, intentID, projectSlug sql.NullString
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Sender, &msg.Content, &msg.Timestamp,
			&source, &intentID, &projectSlug, &msg.NegativeFeedback); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		msg.Source = source.String
		msg.IntentID = intentID.String
		msg.ProjectSlug = projectSlug.String
		messages = append(messages, msg)
	}
	return messages, nil
}

func (s *SQLiteStore) UpdateMessageFeedback(messageID string, negative bool) error {
	stmt, err := s.db.Prepare("UPDATE messages SET negative_feedback = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare feedback update: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.Exec(negative, messageID)
	if err != nil {
		return fmt.Errorf("failed to execute feedback update: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("message not found, feedback not updated")
	}
	return nil
}
