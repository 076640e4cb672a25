package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

// fakeVoyager is a minimal LinkedIn stand-in: it accepts the login
// handshake and serves canned JSON per API path.
type fakeVoyager struct {
	authCount atomic.Int64
	lastCSRF  atomic.Value // string
	lastPath  atomic.Value // string
	responses map[string]string
}

func newFakeVoyager(responses map[string]string) (*fakeVoyager, *httptest.Server) {
	f := &fakeVoyager{responses: responses}
	mux := http.NewServeMux()
	mux.HandleFunc("/uas/authenticate", func(w http.ResponseWriter, r *http.Request) {
		f.authCount.Add(1)
		if r.FormValue("session_password") == "wrong" {
			json.NewEncoder(w).Encode(map[string]string{"login_result": "CHALLENGE"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "ajax:server-token", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "li_at", Value: "token", Path: "/"})
		json.NewEncoder(w).Encode(map[string]string{"login_result": "PASS"})
	})
	mux.HandleFunc("/voyager/api/", func(w http.ResponseWriter, r *http.Request) {
		f.lastCSRF.Store(r.Header.Get("csrf-token"))
		f.lastPath.Store(r.URL.Path)
		path := strings.TrimPrefix(r.URL.Path, "/voyager/api/")
		if body, ok := f.responses[path]; ok {
			fmt.Fprint(w, body)
			return
		}
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
	})
	return f, httptest.NewServer(mux)
}

func TestDial_Authenticates(t *testing.T) {
	fake, srv := newFakeVoyager(nil)
	defer srv.Close()

	c, err := Dial(context.Background(), "user@example.com", "secret", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if fake.authCount.Load() != 1 {
		t.Errorf("expected one auth call, got %d", fake.authCount.Load())
	}
	if c.csrf != "ajax:server-token" {
		t.Errorf("expected csrf from server cookie, got %q", c.csrf)
	}
}

func TestDial_MissingCredentials(t *testing.T) {
	_, srv := newFakeVoyager(nil)
	defer srv.Close()

	if _, err := Dial(context.Background(), "", "", WithBaseURL(srv.URL)); err == nil {
		t.Fatal("expected error for missing credentials")
	}
}

func TestDial_LoginRejected(t *testing.T) {
	_, srv := newFakeVoyager(nil)
	defer srv.Close()

	_, err := Dial(context.Background(), "user@example.com", "wrong", WithBaseURL(srv.URL))
	if err == nil {
		t.Fatal("expected error for rejected login")
	}
	if !strings.Contains(err.Error(), "CHALLENGE") {
		t.Errorf("expected login result in error, got %v", err)
	}
}

func TestAPICallsCarryCSRFToken(t *testing.T) {
	fake, srv := newFakeVoyager(map[string]string{
		"feed/updatesV2": `{"elements":[]}`,
	})
	defer srv.Close()

	c, err := Dial(context.Background(), "user@example.com", "secret", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if _, err := c.GetFeedPosts(context.Background(), 5, 0); err != nil {
		t.Fatalf("get feed posts: %v", err)
	}
	if got := fake.lastCSRF.Load(); got != "ajax:server-token" {
		t.Errorf("expected csrf-token header, got %v", got)
	}
}

func TestGetFeedPosts_CapsAtLimit(t *testing.T) {
	_, srv := newFakeVoyager(map[string]string{
		"feed/updatesV2": `{"elements":[{"content":"a"},{"content":"b"},{"content":"c"}]}`,
	})
	defer srv.Close()

	c, err := Dial(context.Background(), "user@example.com", "secret", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	posts, err := c.GetFeedPosts(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("get feed posts: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("expected 2 posts, got %d", len(posts))
	}
}

func TestGetProfile_OwnProfileUsesMe(t *testing.T) {
	fake, srv := newFakeVoyager(map[string]string{
		"identity/profiles/me/profileView":  `{"profile":{"firstName":"Tuli"}}`,
		"identity/profiles/ada/profileView": `{"firstName":"Ada"}`,
	})
	defer srv.Close()

	c, err := Dial(context.Background(), "user@example.com", "secret", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	own, err := c.GetProfile(context.Background(), "")
	if err != nil {
		t.Fatalf("get own profile: %v", err)
	}
	if got := fake.lastPath.Load(); got != "/voyager/api/identity/profiles/me/profileView" {
		t.Errorf("own profile hit %v", got)
	}
	// nested "profile" member is unwrapped
	if own.Get("firstName").String() != "Tuli" {
		t.Errorf("got %s", own.Raw)
	}

	named, err := c.GetProfile(context.Background(), "ada")
	if err != nil {
		t.Fatalf("get named profile: %v", err)
	}
	// flat responses pass through
	if named.Get("firstName").String() != "Ada" {
		t.Errorf("got %s", named.Raw)
	}
}

func TestGetCompany_UnwrapsFirstElement(t *testing.T) {
	_, srv := newFakeVoyager(map[string]string{
		"organization/companies": `{"elements":[{"name":"Initech"}]}`,
	})
	defer srv.Close()

	c, err := Dial(context.Background(), "user@example.com", "secret", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	company, err := c.GetCompany(context.Background(), "initech")
	if err != nil {
		t.Fatalf("get company: %v", err)
	}
	if company.Get("name").String() != "Initech" {
		t.Errorf("got %s", company.Raw)
	}
}

func TestAPIFailureSurfacesStatus(t *testing.T) {
	_, srv := newFakeVoyager(nil)
	defer srv.Close()

	c, err := Dial(context.Background(), "user@example.com", "secret", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	_, err = c.GetJob(context.Background(), "404")
	if err == nil {
		t.Fatal("expected error for missing job")
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestDial_ReusesStoredSession(t *testing.T) {
	fake, srv := newFakeVoyager(map[string]string{
		"feed/updatesV2": `{"elements":[]}`,
	})
	defer srv.Close()

	store, err := NewSessionStore(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	defer store.Close()

	if _, err := Dial(context.Background(), "user@example.com", "secret",
		WithBaseURL(srv.URL), WithSessionStore(store)); err != nil {
		t.Fatalf("first dial: %v", err)
	}
	if fake.authCount.Load() != 1 {
		t.Fatalf("expected one auth call, got %d", fake.authCount.Load())
	}

	c, err := Dial(context.Background(), "user@example.com", "secret",
		WithBaseURL(srv.URL), WithSessionStore(store))
	if err != nil {
		t.Fatalf("second dial: %v", err)
	}
	if fake.authCount.Load() != 1 {
		t.Errorf("second dial re-authenticated (%d auth calls)", fake.authCount.Load())
	}
	if _, err := c.GetFeedPosts(context.Background(), 1, 0); err != nil {
		t.Errorf("restored session call failed: %v", err)
	}
	if got := fake.lastCSRF.Load(); got != "ajax:server-token" {
		t.Errorf("restored csrf missing, got %v", got)
	}
}
