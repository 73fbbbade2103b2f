package aqualedger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Session is the explicit authenticated-session context passed to the
// Ledger Store Controller at construction. It replaces any ambient token
// lookup: whoever builds a controller decides which session it acts under.
//
// Its lifecycle is Init (login) to Teardown (logout). Between command
// invocations the session persists as a small JSON file so one login spans
// a whole working day at the landing site.
type Session struct {
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`

	path string // file the session persists to; empty for in-memory sessions
}

// NewSession returns an in-memory session holding an existing token, for
// callers that manage persistence themselves (and for tests).
func NewSession(token string) *Session { return &Session{Token: token} }

// BearerToken returns the token sent on every request, or "" when the
// session is not authenticated.
func (s *Session) BearerToken() string {
	if s == nil {
		return ""
	}
	return s.Token
}

// Active reports whether the session holds a token. Whether the token is
// still honored is the server's call; the client only checks presence.
func (s *Session) Active() bool { return s.BearerToken() != "" }

// LoadSession reads a persisted session from path. A missing file yields an
// inactive session, not an error: being logged out is a normal state.
func LoadSession(path string) (*Session, error) {
	s := &Session{path: path}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file %q: %w", path, err)
	}
	if err := json.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("corrupt session file %q: %w", path, err)
	}
	return s, nil
}

// DefaultSessionPath places the session file under the user config dir.
func DefaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "aqualedger", "session.json")
}

// Init authenticates against the service and stores the returned token and
// user identity, persisting them when the session was loaded from a file.
func (s *Session) Init(ctx context.Context, base, email, password string) error {
	var payload struct {
		Token string `json:"token"`
		User  struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := postJSON(ctx, base+"/login", body, &payload); err != nil {
		return err
	}
	s.Token = payload.Token
	s.Name = payload.User.Name
	s.Email = payload.User.Email
	return s.save()
}

// Register creates an account. It does not log in: the server hands out
// tokens only on /login.
func Register(ctx context.Context, base, name, email, password string) (string, error) {
	var payload struct {
		Message string `json:"message"`
	}
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := postJSON(ctx, base+"/register", body, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

// Teardown forgets the token and removes the persisted session file.
func (s *Session) Teardown() error {
	s.Token, s.Name, s.Email = "", "", ""
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file %q: %w", s.path, err)
	}
	return nil
}

func (s *Session) save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	// the file holds a bearer token, keep it private
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file %q: %w", s.path, err)
	}
	return nil
}

// postJSON is the unauthenticated round trip used by the session gate
// endpoints. Failure bodies use the same taxonomy as the Service calls.
func postJSON(ctx context.Context, addr string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := extractMsg(respBody)
		if msg == "" {
			// the register endpoint reports under "message" instead
			msg = extractMessage(respBody)
		}
		return &RequestError{StatusCode: resp.StatusCode, Msg: msg}
	}
	if out != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &TransportError{Err: err}
		}
	}
	return nil
}

func extractMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Message
}
