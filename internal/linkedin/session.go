package linkedin

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	_ "modernc.org/sqlite"
)

// Session is a persisted authentication state for one account.
type Session struct {
	Account   string
	CSRFToken string
	UpdatedAt time.Time

	cookies []sessionCookie
}

type sessionCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Domain  string    `json:"domain,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
	Secure  bool      `json:"secure,omitempty"`
}

// NewSession captures the given cookies for later reuse.
func NewSession(account string, cookies []*http.Cookie, csrfToken string) *Session {
	s := &Session{
		Account:   account,
		CSRFToken: csrfToken,
		UpdatedAt: time.Now(),
	}
	for _, ck := range cookies {
		s.cookies = append(s.cookies, sessionCookie{
			Name:    ck.Name,
			Value:   ck.Value,
			Path:    ck.Path,
			Domain:  ck.Domain,
			Expires: ck.Expires,
			Secure:  ck.Secure,
		})
	}
	return s
}

// Cookies rebuilds the stored cookies.
func (s *Session) Cookies() []*http.Cookie {
	out := make([]*http.Cookie, 0, len(s.cookies))
	for _, ck := range s.cookies {
		out = append(out, &http.Cookie{
			Name:    ck.Name,
			Value:   ck.Value,
			Path:    ck.Path,
			Domain:  ck.Domain,
			Expires: ck.Expires,
			Secure:  ck.Secure,
		})
	}
	return out
}

// SessionStore persists sessions in SQLite so restarts reuse cookies
// instead of re-authenticating on every process start.
type SessionStore struct {
	db *sql.DB
}

// NewSessionStore opens (or creates) the session database and runs
// migrations.
func NewSessionStore(path string) (*SessionStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("session store: open: %w", err)
	}

	// Enable WAL mode for better concurrent reads
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("session store: wal: %w", err)
	}

	s := &SessionStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SessionStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			account    TEXT PRIMARY KEY,
			cookies    TEXT NOT NULL DEFAULT '[]',
			csrf_token TEXT NOT NULL DEFAULT '',
			updated_at TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("session store: migrate: %w", err)
	}
	return nil
}

// Put upserts the session for its account.
func (s *SessionStore) Put(sess *Session) error {
	cookies, _ := json.Marshal(sess.cookies)
	_, err := s.db.Exec(`
		INSERT INTO sessions (account, cookies, csrf_token, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(account) DO UPDATE SET
			cookies=excluded.cookies, csrf_token=excluded.csrf_token, updated_at=excluded.updated_at
	`, sess.Account, string(cookies), sess.CSRFToken, sess.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("session store: put: %w", err)
	}
	return nil
}

// Get returns the stored session for an account, or nil when none exists.
func (s *SessionStore) Get(account string) (*Session, error) {
	row := s.db.QueryRow(`SELECT account, cookies, csrf_token, updated_at FROM sessions WHERE account = ?`, account)

	var sess Session
	var cookies, updatedAt string
	if err := row.Scan(&sess.Account, &cookies, &sess.CSRFToken, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("session store: get: %w", err)
	}
	if err := json.Unmarshal([]byte(cookies), &sess.cookies); err != nil {
		return nil, fmt.Errorf("session store: get: cookies: %w", err)
	}
	t, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("session store: get: updated_at: %w", err)
	}
	sess.UpdatedAt = t
	return &sess, nil
}

// Delete removes the session for an account.
func (s *SessionStore) Delete(account string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE account = ?`, account); err != nil {
		return fmt.Errorf("session store: delete: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SessionStore) Close() error {
	return s.db.Close()
}
