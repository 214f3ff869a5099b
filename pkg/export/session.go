package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// session is a W3C WebDriver session.
type session struct {
	baseURL string
	id      string
	client  *http.Client
}

type wireError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// newSession opens a browser session with the given capabilities.
func newSession(ctx context.Context, client *http.Client, baseURL string, capabilities map[string]any) (*session, error) {
	s := &session{baseURL: baseURL, client: client}

	body := map[string]any{
		"capabilities": map[string]any{"alwaysMatch": capabilities},
	}
	var created struct {
		SessionID string `json:"sessionId"`
	}
	if err := s.do(ctx, http.MethodPost, "/session", body, &created); err != nil {
		return nil, err
	}
	if created.SessionID == "" {
		return nil, errors.Wrap(ErrSession, "no session id in response")
	}

	s.id = created.SessionID
	return s, nil
}

// navigate loads url in the session window.
func (s *session) navigate(ctx context.Context, url string) error {
	return s.do(ctx, http.MethodPost, s.path("/url"), map[string]any{"url": url}, nil)
}

// executeAsync runs script with args and returns the value passed to its
// callback.
func (s *session) executeAsync(ctx context.Context, script string, args []any) (json.RawMessage, error) {
	var result json.RawMessage
	body := map[string]any{"script": script, "args": args}
	if err := s.do(ctx, http.MethodPost, s.path("/execute/async"), body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// close ends the session.
func (s *session) close(ctx context.Context) error {
	return s.do(ctx, http.MethodDelete, s.path(""), nil, nil)
}

func (s *session) path(suffix string) string {
	return "/session/" + s.id + suffix
}

// do sends a command and decodes the "value" member of the response into
// out.
func (s *session) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s %s", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s %s", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrapf(ErrSession, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil && err != io.EOF {
		return errors.Wrapf(ErrSession, "%s %s: invalid response: %v", method, path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var wire wireError
		_ = json.Unmarshal(envelope.Value, &wire)
		return errors.Wrapf(ErrSession, "%s %s: %s", method, path, describe(resp.StatusCode, wire))
	}

	if out == nil || len(envelope.Value) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Value, out); err != nil {
		return errors.Wrapf(ErrSession, "%s %s: unexpected value: %v", method, path, err)
	}
	return nil
}

func describe(status int, wire wireError) string {
	if wire.Error == "" {
		return fmt.Sprintf("status %d", status)
	}
	return fmt.Sprintf("%s: %s", wire.Error, wire.Message)
}
