package main

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

const (
	testSigningSecret = "8f742231b10e8888abcd99yyyzzz85a5"
	testBotUserID     = "U0"
)

// fakePlatform records outbound calls. Like Slack, it reports a second
// identical reaction as already present.
type fakePlatform struct {
	mu        sync.Mutex
	reactions []ReactionRequest
	messages  []MessageRequest
	visible   map[ReactionRequest]bool

	reactionErr error
	postErr     error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{visible: make(map[ReactionRequest]bool)}
}

func (f *fakePlatform) AddReaction(_ context.Context, req ReactionRequest) (ReactionOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.reactions = append(f.reactions, req)
	if f.reactionErr != nil {
		return ReactionFailed, f.reactionErr
	}
	if f.visible[req] {
		return ReactionAlreadyPresent, nil
	}
	f.visible[req] = true
	return ReactionApplied, nil
}

func (f *fakePlatform) PostMessage(_ context.Context, req MessageRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages = append(f.messages, req)
	return f.postErr
}

func (f *fakePlatform) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reactions) + len(f.messages)
}

func newTestRouter(platform Platform) *Router {
	return newTestRouterWithTheme(platform, defaultTheme())
}

func newTestRouterWithTheme(platform Platform, theme Theme) *Router {
	return NewRouter(Bot{
		BotUserID: testBotUserID,
		Theme:     theme,
		Platform:  platform,
	})
}

func newTestServer(platform Platform) http.Handler {
	return newTestServerWithTheme(platform, defaultTheme())
}

func newTestServerWithTheme(platform Platform, theme Theme) http.Handler {
	r := mux.NewRouter()
	NewEventsHandler(testSigningSecret, newTestRouterWithTheme(platform, theme)).SetupEndpoints(r)
	return r
}

func sign(secret, timestamp, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("v0:" + timestamp + ":" + body))
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

func signedRequestAt(body string, at time.Time) *http.Request {
	timestamp := strconv.FormatInt(at.Unix(), 10)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", sign(testSigningSecret, timestamp, body))
	return req
}

func signedRequest(body string) *http.Request {
	return signedRequestAt(body, time.Now())
}

func serve(t *testing.T, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
