package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hello/hello/config"
)

func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	root := t.TempDir()
	base := filepath.Join(root, "static")
	if err := os.MkdirAll(filepath.Join(base, "docs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[string]string{
		filepath.Join(base, "index.html"):     "<html><body>hi</body></html>",
		filepath.Join(base, "docs", "a.html"): "<p>a</p>",
		filepath.Join(root, "secret.txt"):     "top secret",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	cfg := config.Config{StaticDir: base, CORSAllowedOrigins: []string{"*"}}
	return NewRouter(cfg), base
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRootRoute(t *testing.T) {
	h, _ := newTestRouter(t)
	rr := serve(h, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != "Hello, World!" {
		t.Errorf("expected Hello, World!, got %q", rr.Body.String())
	}
}

func postUser(h http.Handler, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return serve(h, req)
}

func TestCreateUserRoute(t *testing.T) {
	h, _ := newTestRouter(t)
	rr := postUser(h, "application/json", `{"username":"alice"}`)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if got := rr.Body.String(); got != `{"id":1337,"username":"alice"}` {
		t.Errorf("unexpected body %q", got)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
}

func TestCreateUserRouteEchoesUsername(t *testing.T) {
	h, _ := newTestRouter(t)
	cases := map[string]string{
		`{"username":""}`:                      `{"id":1337,"username":""}`,
		`{"username":"bob","id":99}`:           `{"id":1337,"username":"bob"}`,
		`{"username":"café 名"}`:                `{"id":1337,"username":"café 名"}`,
		`{"username":"<b>&amp;</b>"}`:          `{"id":1337,"username":"<b>&amp;</b>"}`,
		`{"username":"quote \" and slash \\"}`: `{"id":1337,"username":"quote \" and slash \\"}`,
	}
	for body, want := range cases {
		rr := postUser(h, "application/json", body)
		if rr.Code != http.StatusCreated {
			t.Errorf("%s: expected 201, got %d", body, rr.Code)
			continue
		}
		if got := rr.Body.String(); got != want {
			t.Errorf("%s: expected %s, got %s", body, want, got)
		}
	}
}

func TestCreateUserRouteRejects(t *testing.T) {
	h, _ := newTestRouter(t)
	cases := []struct {
		name        string
		contentType string
		body        string
		status      int
	}{
		{"invalid json", "application/json", `{username: alice}`, http.StatusBadRequest},
		{"missing field", "application/json", `{"name":"alice"}`, http.StatusUnprocessableEntity},
		{"wrong type", "application/json", `{"username":["alice"]}`, http.StatusUnprocessableEntity},
		{"null username", "application/json", `{"username":null}`, http.StatusUnprocessableEntity},
		{"no content type", "", `{"username":"alice"}`, http.StatusUnsupportedMediaType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := postUser(h, tc.contentType, tc.body)
			if rr.Code != tc.status {
				t.Errorf("expected %d, got %d: %s", tc.status, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestStaticRoute(t *testing.T) {
	h, _ := newTestRouter(t)
	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/index.html", http.StatusOK, "<html><body>hi</body></html>"},
		{"/docs/a.html", http.StatusOK, "<p>a</p>"},
		{"/nonexistent.html", http.StatusNotFound, "<h1>Not Found</h1>"},
		{"/docs", http.StatusInternalServerError, "<h1>INTERNAL_SERVER_ERROR</h1>"},
		{"/../secret.txt", http.StatusNotFound, "<h1>Not Found</h1>"},
		{"/docs%2Fa.html", http.StatusOK, "<p>a</p>"},
		{"/%2e%2e%2fsecret.txt", http.StatusNotFound, "<h1>Not Found</h1>"},
	}
	for _, tc := range cases {
		rr := serve(h, httptest.NewRequest("GET", tc.path, nil))
		if rr.Code != tc.status {
			t.Errorf("GET %s: expected %d, got %d", tc.path, tc.status, rr.Code)
		}
		if rr.Body.String() != tc.body {
			t.Errorf("GET %s: expected body %q, got %q", tc.path, tc.body, rr.Body.String())
		}
		if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
			t.Errorf("GET %s: expected html content type, got %q", tc.path, ct)
		}
	}
}

func TestUsersMethodNotAllowed(t *testing.T) {
	h, _ := newTestRouter(t)
	for _, method := range []string{"GET", "HEAD", "PUT", "DELETE"} {
		rr := serve(h, httptest.NewRequest(method, "/users", nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s /users: expected 405, got %d: %q", method, rr.Code, rr.Body.String())
		}
	}
	for _, method := range []string{"GET", "HEAD"} {
		rr := serve(h, httptest.NewRequest(method, "/users", nil))
		if allow := rr.Header().Get("Allow"); allow != "POST" {
			t.Errorf("%s /users: expected Allow POST, got %q", method, allow)
		}
	}
}

func TestHeadFollowsGetRoutes(t *testing.T) {
	h, _ := newTestRouter(t)
	cases := map[string]int{
		"/":                 http.StatusOK,
		"/index.html":       http.StatusOK,
		"/nonexistent.html": http.StatusNotFound,
	}
	for path, status := range cases {
		rr := serve(h, httptest.NewRequest("HEAD", path, nil))
		if rr.Code != status {
			t.Errorf("HEAD %s: expected %d, got %d", path, status, rr.Code)
		}
	}
}

func TestServerEndToEnd(t *testing.T) {
	h, _ := newTestRouter(t)
	ts := httptest.NewServer(h)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/users", "application/json", strings.NewReader(`{"username":"alice"}`))
	if err != nil {
		t.Fatalf("Failed to send POST request to /users: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status code %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != `{"id":1337,"username":"alice"}` {
		t.Fatalf("Expected response body %s, got %s", `{"id":1337,"username":"alice"}`, body)
	}
}

func TestCORSHeaders(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/users", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := serve(h, req)

	if rr.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}
