package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/hacksolana/hks/internal/model"
)

// FileName is the name of the inbox database inside its directory.
const FileName = "hks.db"

// DefaultListLimit is used by ListContactMessages when limit is not positive.
const DefaultListLimit = 50

// ErrInboxNotFound is returned by Open when the database must already exist but does not.
var ErrInboxNotFound = errors.New("inbox database not found")

// Inbox stores contact form submissions in SQLite.
type Inbox struct {
	db     *sql.DB
	dbPath string
	now    func() time.Time
}

// Options configures Inbox behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file if missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the options used by the server.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// ReadOnlyOptions returns options that require an existing database.
func ReadOnlyOptions() Options {
	return Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	}
}

// Open opens or creates the inbox in dir.
func Open(dir string, opts Options) (*Inbox, error) {
	dbPath := filepath.Join(dir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInboxNotFound, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	mode := "rw"
	if opts.CreateIfNotExists {
		mode = "rwc"
	}

	db, err := sql.Open("sqlite", dbPath+"?mode="+mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	inbox := &Inbox{
		db:     db,
		dbPath: dbPath,
		now:    time.Now,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := inbox.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return inbox, nil
}

// Path returns the database file path.
func (i *Inbox) Path() string {
	return i.dbPath
}

// Ping verifies that the database is reachable.
func (i *Inbox) Ping(ctx context.Context) error {
	return i.db.PingContext(ctx)
}

// Close closes the database connection.
func (i *Inbox) Close() error {
	return i.db.Close()
}

func (i *Inbox) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS contact_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		received_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_contact_received ON contact_messages(received_at);
	`

	_, err := i.db.ExecContext(context.Background(), schema)
	return err
}

// StoredMessage is a contact message read back from the inbox.
type StoredMessage struct {
	ID         int64
	ReceivedAt time.Time
	model.ContactMessage
}

// SaveContactMessage appends msg to the inbox. Incomplete messages are rejected.
func (i *Inbox) SaveContactMessage(ctx context.Context, msg model.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	query := `
	INSERT INTO contact_messages (name, email, message, received_at)
	VALUES (?, ?, ?, ?)
	`
	receivedAt := i.now().UTC().Format(time.RFC3339Nano)

	if _, err := i.db.ExecContext(ctx, query, msg.Name, msg.Email, msg.Message, receivedAt); err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// ListContactMessages returns up to limit messages, newest first.
func (i *Inbox) ListContactMessages(ctx context.Context, limit int) ([]StoredMessage, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := `
	SELECT id, name, email, message, received_at
	FROM contact_messages
	ORDER BY id DESC
	LIMIT ?
	`

	rows, err := i.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []StoredMessage
	for rows.Next() {
		var (
			m          StoredMessage
			receivedAt string
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &receivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		m.ReceivedAt = parseTimestamp(receivedAt)
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// CountContactMessages returns the number of stored messages.
func (i *Inbox) CountContactMessages(ctx context.Context) (int, error) {
	var count int
	if err := i.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contact_messages").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return count, nil
}

// timestampFormats lists the formats SQLite may hand back for received_at.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
}

// parseTimestamp returns the zero time when no format matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
