package main

import (
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"wordbank/internal/config"
	"wordbank/internal/types"
	"wordbank/internal/words"
)

// Test constants
const (
	TestWordApple = "APPLE"
	TestWordBread = "BREAD"
	TestWordChair = "CHAIR"

	TestHintFruit = "A fruit"
	TestHintBaked = "Baked from dough"
)

func testConfig() *config.Config {
	return &config.Config{
		Env: "development",
		Server: config.ServerConfig{
			Port:            8080,
			ShutdownTimeout: time.Second,
			TrustedProxies:  []string{"127.0.0.1"},
		},
		RateLimit: config.RateLimitConfig{RPS: 5, Burst: 10},
		Cache:     config.CacheConfig{ListMaxAge: 5 * time.Minute},
	}
}

func testApp(t *testing.T) *App {
	t.Helper()
	provider, err := words.New(
		[]types.WordEntry{
			{Word: TestWordApple, Hint: TestHintFruit},
			{Word: TestWordBread, Hint: TestHintBaked},
		},
		[]string{TestWordApple, TestWordBread, TestWordChair},
	)
	if err != nil {
		t.Fatalf("words.New: %v", err)
	}
	return NewApp(testConfig(), provider)
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return testApp(t).Router()
}

func doRequest(router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
}

func TestRandomWordHandler(t *testing.T) {
	router := setupTestRouter(t)
	for i := 0; i < 20; i++ {
		w := doRequest(router, http.MethodGet, RouteRandomWord, "")
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s returned status %d, want 200", RouteRandomWord, w.Code)
		}
		var got types.WordEntry
		decode(t, w, &got)
		switch got.Word {
		case TestWordApple:
			if got.Hint != TestHintFruit {
				t.Errorf("hint for APPLE = %q", got.Hint)
			}
		case TestWordBread:
			if got.Hint != TestHintBaked {
				t.Errorf("hint for BREAD = %q", got.Hint)
			}
		default:
			t.Errorf("unexpected word %q", got.Word)
		}
	}
	if cc := doRequest(router, http.MethodGet, RouteRandomWord, "").Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}
}

func TestRandomWordHandler_NoHint(t *testing.T) {
	router := setupTestRouter(t)
	w := doRequest(router, http.MethodGet, RouteRandomWord+"?hint=0", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	var got map[string]any
	decode(t, w, &got)
	if _, ok := got["hint"]; ok {
		t.Errorf("expected no hint field, got %v", got)
	}
}

func TestNextWordHandler(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		name      string
		body      string
		wantWord  string
		wantReset bool
	}{
		{name: "excludes completed", body: `{"completedWords":["APPLE"]}`, wantWord: TestWordBread},
		{name: "lowercase completed", body: `{"completedWords":["bread"]}`, wantWord: TestWordApple},
		{name: "unknown words ignored", body: `{"completedWords":["APPLE","ZZZZZ","CHAIR"]}`, wantWord: TestWordBread},
		{name: "all completed", body: `{"completedWords":["APPLE","BREAD"]}`, wantReset: true},
		{name: "empty body", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, RouteNextWord, tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status %d, want 200 (body %s)", w.Code, w.Body.String())
			}
			var got nextWordResponse
			decode(t, w, &got)
			if tt.wantWord != "" && got.Word != tt.wantWord {
				t.Errorf("word = %q, want %q", got.Word, tt.wantWord)
			}
			if got.Word != TestWordApple && got.Word != TestWordBread {
				t.Errorf("unexpected word %q", got.Word)
			}
			if got.Reset != tt.wantReset {
				t.Errorf("reset = %v, want %v", got.Reset, tt.wantReset)
			}
		})
	}
}

func TestNextWordHandler_BadJSON(t *testing.T) {
	router := setupTestRouter(t)
	w := doRequest(router, http.MethodPost, RouteNextWord, `{"completedWords":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	var got map[string]string
	decode(t, w, &got)
	if got["error"] != ErrorInvalidBody {
		t.Errorf("error = %q, want %q", got["error"], ErrorInvalidBody)
	}
}

func TestNextWordHandler_BodyTooLarge(t *testing.T) {
	router := setupTestRouter(t)
	body := `{"completedWords":["` + strings.Repeat("A", MaxRequestBodyBytes+1) + `"]}`
	w := doRequest(router, http.MethodPost, RouteNextWord, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	var got map[string]string
	decode(t, w, &got)
	if got["error"] != ErrorInvalidBody {
		t.Errorf("error = %q, want %q", got["error"], ErrorInvalidBody)
	}
}

func TestNextWordHandler_InvalidMethod(t *testing.T) {
	router := setupTestRouter(t)
	w := doRequest(router, http.MethodGet, RouteNextWord, "")
	if w.Code != http.StatusMethodNotAllowed && w.Code != http.StatusNotFound {
		t.Errorf("GET %s returned status %d, want 405 or 404", RouteNextWord, w.Code)
	}
}

func TestWordsHandler(t *testing.T) {
	router := setupTestRouter(t)
	w := doRequest(router, http.MethodGet, RouteWords, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	var got listResponse[types.WordEntry]
	decode(t, w, &got)
	if got.Count != 2 || len(got.Words) != 2 {
		t.Fatalf("got %+v, want 2 answers", got)
	}
	if got.Words[0].Word != TestWordApple || got.Words[1].Word != TestWordBread {
		t.Errorf("answers out of order: %+v", got.Words)
	}
}

func TestGuessesHandler(t *testing.T) {
	router := setupTestRouter(t)
	w := doRequest(router, http.MethodGet, RouteGuesses, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	var got listResponse[string]
	decode(t, w, &got)
	if got.Count != 3 {
		t.Errorf("count = %d, want 3", got.Count)
	}
	for _, answer := range []string{TestWordApple, TestWordBread} {
		found := false
		for _, g := range got.Words {
			if g == answer {
				found = true
			}
		}
		if !found {
			t.Errorf("answer %s missing from guesses", answer)
		}
	}
}

func TestLookupHandler(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		path         string
		wantCode     int
		wantWord     string
		wantAnswer   bool
		wantAccepted bool
	}{
		{path: "/api/words/apple", wantCode: http.StatusOK, wantWord: TestWordApple, wantAnswer: true, wantAccepted: true},
		{path: "/api/words/CHAIR", wantCode: http.StatusOK, wantWord: TestWordChair, wantAccepted: true},
		{path: "/api/words/zzzzz", wantCode: http.StatusOK, wantWord: "ZZZZZ"},
		{path: "/api/words/abc", wantCode: http.StatusBadRequest},
		{path: "/api/words/ab1de", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		w := doRequest(router, http.MethodGet, tt.path, "")
		if w.Code != tt.wantCode {
			t.Errorf("GET %s returned status %d, want %d", tt.path, w.Code, tt.wantCode)
			continue
		}
		if tt.wantCode != http.StatusOK {
			var got map[string]string
			decode(t, w, &got)
			if got["error"] != ErrorInvalidLength {
				t.Errorf("GET %s error = %q", tt.path, got["error"])
			}
			continue
		}
		var got lookupResponse
		decode(t, w, &got)
		if got.Word != tt.wantWord || got.Answer != tt.wantAnswer || got.Accepted != tt.wantAccepted {
			t.Errorf("GET %s = %+v", tt.path, got)
		}
	}
}

func TestListCacheHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app := testApp(t)
	app.Config.Env = "production"
	router := app.Router()

	w := doRequest(router, http.MethodGet, RouteWords, "")
	cc := w.Header().Get("Cache-Control")
	if !strings.Contains(cc, "public") || !strings.Contains(cc, "max-age=300") {
		t.Errorf("production Cache-Control = %q, want public max-age=300", cc)
	}

	w = doRequest(router, http.MethodGet, RouteRandomWord, "")
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Errorf("random word Cache-Control = %q, want no-store", cc)
	}

	dev := setupTestRouter(t)
	w = doRequest(dev, http.MethodGet, RouteWords, "")
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Errorf("development Cache-Control = %q, want no-store", cc)
	}
}

func TestHealthzHandler(t *testing.T) {
	router := setupTestRouter(t)
	w := doRequest(router, http.MethodGet, RouteHealth, "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s returned status %d, want 200", RouteHealth, w.Code)
	}

	var resp map[string]any
	decode(t, w, &resp)
	for _, field := range []string{"status", "env", "words_loaded", "accepted_words", "uptime", "timestamp"} {
		if _, ok := resp[field]; !ok {
			t.Errorf("expected %q field in health response", field)
		}
	}
	if resp["words_loaded"] != float64(2) {
		t.Errorf("words_loaded = %v, want 2", resp["words_loaded"])
	}
	if resp["accepted_words"] != float64(3) {
		t.Errorf("accepted_words = %v, want 3", resp["accepted_words"])
	}
}

func TestLoadWords(t *testing.T) {
	provider, err := loadWords(config.WordsConfig{})
	if err != nil {
		t.Fatalf("loadWords with built-in lists: %v", err)
	}
	if provider != words.Default() {
		t.Error("expected the built-in provider when no files are configured")
	}

	dir := t.TempDir()
	answersPath := filepath.Join(dir, "words.json")
	acceptedPath := filepath.Join(dir, "accepted_words.json")
	if err := os.WriteFile(answersPath, []byte(`{"words":[{"word":"CLOUD","hint":"sky"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(acceptedPath, []byte(`["CLOUD","CLOCK"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	provider, err = loadWords(config.WordsConfig{AnswersPath: answersPath, AcceptedPath: acceptedPath})
	if err != nil {
		t.Fatalf("loadWords with files: %v", err)
	}
	if provider.Len() != 1 || provider.AcceptedLen() != 2 {
		t.Errorf("got %d answers / %d accepted, want 1 / 2", provider.Len(), provider.AcceptedLen())
	}

	if _, err := loadWords(config.WordsConfig{AnswersPath: filepath.Join(dir, "missing"), AcceptedPath: acceptedPath}); err == nil {
		t.Error("expected error for missing answers file")
	}
}

func TestGzipResponses(t *testing.T) {
	router := setupTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, RouteGuesses, nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Errorf("Content-Encoding = %q, want gzip", w.Header().Get("Content-Encoding"))
	}
	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer zr.Close()
	var got listResponse[string]
	if err := json.NewDecoder(zr).Decode(&got); err != nil {
		t.Fatalf("decode gzipped body: %v", err)
	}
	if got.Count != 3 {
		t.Errorf("count = %d, want 3", got.Count)
	}
}
