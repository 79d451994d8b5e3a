// Package log provides the zerolog based package logger. It discards
// everything until SetStd or Init is called; Init stores JSON log lines in
// an SQLite database.
package log

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

var (
	pkgLogger        = zerolog.Nop()
	dbWriterInstance *sqliteWriter
	dbHandle         *sql.DB
	mu               sync.RWMutex

	// ErrNotInitialized is returned by reads before Init.
	ErrNotInitialized = errors.New("log: logger not initialized, call log.Init() first")
)

type sqliteWriter struct {
	db   *sql.DB
	stmt *sql.Stmt
	mu   sync.Mutex
}

func newSQLiteWriter(dbPath string) (*sqliteWriter, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode=wal&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db %s: %w", dbPath, err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db %s: %w", dbPath, err)
	}

	_, err = db.Exec(`
    CREATE TABLE IF NOT EXISTS logs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        inserted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
        log_data TEXT NOT NULL
    );`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create logs table: %w", err)
	}

	stmt, err := db.Prepare(`INSERT INTO logs (log_data) VALUES (?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	return &sqliteWriter{db: db, stmt: stmt}, nil
}

func (w *sqliteWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err = w.stmt.Exec(string(p)); err != nil {
		stdlog.Printf("ERROR writing log to SQLite: %v\n", err)
		return 0, err
	}
	return len(p), nil
}

func (w *sqliteWriter) close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	var errs []error
	if w.stmt != nil {
		if err := w.stmt.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing statement: %w", err))
		}
		w.stmt = nil
	}
	if w.db != nil {
		if err := w.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing db: %w", err))
		}
		w.db = nil
	}
	return errors.Join(errs...)
}

// SetStd sends human readable logs at level and above to stderr.
func SetStd(level zerolog.Level) {
	SetOutput(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, level)
}

// SetOutput sends logs at level and above to w.
func SetOutput(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	pkgLogger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Init stores logs at level and above in the SQLite database at dbPath.
func Init(dbPath string, level zerolog.Level) error {
	if dbPath == "" {
		return fmt.Errorf("logger needs an explicit db path")
	}

	mu.Lock()
	defer mu.Unlock()
	if dbWriterInstance != nil {
		return fmt.Errorf("logger already initialized")
	}

	writer, err := newSQLiteWriter(dbPath)
	if err != nil {
		return fmt.Errorf("failed to create SQLite writer: %w", err)
	}
	dbWriterInstance = writer
	dbHandle = writer.db

	zerolog.TimeFieldFormat = time.RFC3339Nano
	pkgLogger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return nil
}

// Close detaches the SQLite sink, if any, and silences the logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	pkgLogger = zerolog.Nop()
	if dbWriterInstance == nil {
		return nil
	}
	w := dbWriterInstance
	dbWriterInstance, dbHandle = nil, nil
	if err := w.close(); err != nil {
		return fmt.Errorf("error closing SQLite logger: %w", err)
	}
	return nil
}

func logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := pkgLogger
	return &l
}

func Debug() *zerolog.Event { return logger().Debug() }
func Info() *zerolog.Event  { return logger().Info() }
func Warn() *zerolog.Event  { return logger().Warn() }
func Error() *zerolog.Event { return logger().Error() }
func Fatal() *zerolog.Event { return logger().Fatal() }

// Printf sends a log event at info level.
// Arguments are handled in the manner of fmt.Printf.
func Printf(format string, v ...interface{}) {
	logger().Info().CallerSkipFrame(1).Msgf(format, v...)
}

func Fatalf(format string, v ...any) {
	logger().Fatal().Msgf(format, v...)
}

// LogEntry is one stored log line.
type LogEntry struct {
	ID         int64
	InsertedAt time.Time
	LogData    string
}

func getHandle() (*sql.DB, error) {
	mu.RLock()
	defer mu.RUnlock()
	if dbHandle == nil {
		return nil, ErrNotInitialized
	}
	return dbHandle, nil
}

// GetLastNLogs retrieves the most recent n entries, oldest first.
func GetLastNLogs(n int) ([]LogEntry, error) {
	handle, err := getHandle()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []LogEntry{}, nil
	}

	rows, err := handle.Query(`SELECT id, inserted_at, log_data FROM logs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query last %d logs: %w", n, err)
	}
	defer rows.Close()

	var logs []LogEntry
	for rows.Next() {
		var entry LogEntry
		var insertedAt string
		if err := rows.Scan(&entry.ID, &insertedAt, &entry.LogData); err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		entry.InsertedAt = parseDBTimestamp(insertedAt)
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating log rows: %w", err)
	}

	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs, nil
}

func parseDBTimestamp(ts string) time.Time {
	for _, layout := range []string{time.DateTime, time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t
		}
	}
	return time.Time{}
}
