// Package highscore persists a bounded, descending list of past scores.
// Storage failures never reach the game: a store that cannot open or
// write degrades to in-memory behavior and logs once.
package highscore

import (
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

// MaxEntries caps the stored list.
const MaxEntries = 10

// Entry is one recorded game result.
type Entry struct {
	Score     int       `json:"score"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// Store ranks and persists scores in SQLite. When the database is
// unavailable it keeps a volatile in-memory list with the same semantics.
// A Store is safe for concurrent use; the SSH server shares one across
// sessions.
type Store struct {
	db     *sql.DB
	mu     sync.Mutex // guards mem
	mem    []Entry    // fallback when db == nil
	logger *log.Logger
}

// Open opens (or creates) the score database at path. Open never fails:
// if the database cannot be used the returned store starts empty and
// stays in memory.
func Open(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{logger: logger}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Warn("score storage unavailable, keeping scores in memory", "path", path, "err", err)
		return s
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		logger.Warn("score storage unavailable, keeping scores in memory", "path", path, "err", err)
		db.Close()
		return s
	}
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		score INTEGER NOT NULL,
		level INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_score ON scores(score DESC);
	`); err != nil {
		logger.Warn("score storage unavailable, keeping scores in memory", "path", path, "err", err)
		db.Close()
		return s
	}

	s.db = db
	return s
}

// Close closes the underlying database, if any.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Top returns up to n entries, best score first.
func (s *Store) Top(n int) []Entry {
	if n <= 0 || n > MaxEntries {
		n = MaxEntries
	}
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if n > len(s.mem) {
			n = len(s.mem)
		}
		return append([]Entry(nil), s.mem[:n]...)
	}

	rows, err := s.db.Query(
		"SELECT score, level, created_at FROM scores ORDER BY score DESC, created_at ASC LIMIT ?", n)
	if err != nil {
		s.logger.Warn("score query failed", "err", err)
		return nil
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Score, &e.Level, &e.CreatedAt); err != nil {
			s.logger.Warn("score row scan failed", "err", err)
			return entries
		}
		entries = append(entries, e)
	}
	return entries
}

// Best returns the highest recorded score, or 0 when none exist.
func (s *Store) Best() int {
	top := s.Top(1)
	if len(top) == 0 {
		return 0
	}
	return top[0].Score
}

// WouldBeHighScore reports whether score would enter the list: true while
// fewer than MaxEntries are stored, or when score beats the last-place
// entry.
func (s *Store) WouldBeHighScore(score int) bool {
	top := s.Top(MaxEntries)
	if len(top) < MaxEntries {
		return true
	}
	return score > top[len(top)-1].Score
}

// Submit records a finished game and reports whether it made the list. A
// score below a full list is discarded and leaves storage untouched.
func (s *Store) Submit(score, level int) bool {
	e := Entry{Score: score, Level: level, CreatedAt: time.Now().UTC()}

	if s.db == nil {
		// Qualification and insertion happen under one lock so two
		// concurrent game-overs cannot both squeeze past a full list.
		s.mu.Lock()
		defer s.mu.Unlock()
		if len(s.mem) >= MaxEntries && score <= s.mem[len(s.mem)-1].Score {
			return false
		}
		s.mem = append(s.mem, e)
		sort.SliceStable(s.mem, func(i, j int) bool { return s.mem[i].Score > s.mem[j].Score })
		if len(s.mem) > MaxEntries {
			s.mem = s.mem[:MaxEntries]
		}
		return true
	}

	if !s.WouldBeHighScore(score) {
		return false
	}

	if _, err := s.db.Exec(
		"INSERT INTO scores (score, level, created_at) VALUES (?, ?, ?)",
		e.Score, e.Level, e.CreatedAt); err != nil {
		s.logger.Warn("score save skipped", "err", err)
		return true
	}

	// Prune anything pushed off the list.
	if _, err := s.db.Exec(`
	DELETE FROM scores WHERE id NOT IN (
		SELECT id FROM scores ORDER BY score DESC, created_at ASC LIMIT ?
	)`, MaxEntries); err != nil {
		s.logger.Warn("score prune failed", "err", err)
	}
	return true
}
