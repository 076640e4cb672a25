package linkedin

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessions.db")
	s, err := NewSessionStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionStore_PutAndGet(t *testing.T) {
	s := newTestStore(t)

	cookies := []*http.Cookie{
		{Name: "JSESSIONID", Value: "ajax:abc", Path: "/"},
		{Name: "li_at", Value: "tok", Secure: true},
	}
	if err := s.Put(NewSession("user@example.com", cookies, "ajax:abc")); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get("user@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected session")
	}
	if got.CSRFToken != "ajax:abc" {
		t.Errorf("csrf: got %q", got.CSRFToken)
	}
	if time.Since(got.UpdatedAt) > time.Minute {
		t.Errorf("updated_at not recent: %v", got.UpdatedAt)
	}

	restored := got.Cookies()
	if len(restored) != 2 {
		t.Fatalf("expected 2 cookies, got %d", len(restored))
	}
	if restored[0].Name != "JSESSIONID" || restored[0].Value != "ajax:abc" {
		t.Errorf("cookie 0: %+v", restored[0])
	}
	if !restored[1].Secure {
		t.Error("cookie 1 lost Secure flag")
	}
}

func TestSessionStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Get("nobody@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil session, got %+v", got)
	}
}

func TestSessionStore_PutOverwrites(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put(NewSession("u", nil, "first")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(NewSession("u", nil, "second")); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get("u")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CSRFToken != "second" {
		t.Errorf("expected overwrite, got %q", got.CSRFToken)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put(NewSession("u", nil, "tok")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Delete("u"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := s.Get("u")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected session gone after delete")
	}
}
