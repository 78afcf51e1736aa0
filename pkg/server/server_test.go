package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagcloud/pkg/buildinfo"
	"github.com/matzehuels/tagcloud/pkg/geom"
	pkgio "github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s := New(session.NewMemoryStore(time.Hour), nil, WithLogger(logger))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func createSession(t *testing.T, ts *httptest.Server, body string) string {
	t.Helper()
	resp := do(t, http.MethodPost, ts.URL+"/sessions", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create session: status %d", resp.StatusCode)
	}
	var created createdBody
	decodeBody(t, resp, &created)
	return created.ID
}

func expectError(t *testing.T, resp *http.Response, status int, code string) {
	t.Helper()
	if resp.StatusCode != status {
		t.Errorf("status = %d, want %d", resp.StatusCode, status)
	}
	var body errorBody
	decodeBody(t, resp, &body)
	if string(body.Code) != code {
		t.Errorf("code = %q, want %q (message %q)", body.Code, code, body.Message)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp := do(t, http.MethodGet, ts.URL+"/healthz", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["status"] != "ok" || body["version"] != buildinfo.Version {
		t.Errorf("body = %v", body)
	}
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts, `{"center":{"x":10,"y":20}}`)
	base := ts.URL + "/sessions/" + id

	sizes := []sizeBody{{4, 2}, {3, 3}, {2, 1}}
	for _, s := range sizes {
		body, _ := json.Marshal(s)
		resp := do(t, http.MethodPost, base+"/rects", string(body))
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("place %v: status %d", s, resp.StatusCode)
		}
		var rect rectBody
		decodeBody(t, resp, &rect)
		if rect.Width != s.Width || rect.Height != s.Height {
			t.Errorf("placed %dx%d, want %dx%d", rect.Width, rect.Height, s.Width, s.Height)
		}
	}

	resp := do(t, http.MethodGet, base+"/layout", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("layout: status %d", resp.StatusCode)
	}
	l, err := pkgio.ReadLayout(resp.Body)
	if err != nil {
		t.Fatalf("ReadLayout: %v", err)
	}
	if len(l.Rects) != len(sizes) {
		t.Fatalf("layout has %d rects, want %d", len(l.Rects), len(sizes))
	}
	if l.Center.X != 10 || l.Center.Y != 20 {
		t.Errorf("center = (%v,%v), want (10,20)", l.Center.X, l.Center.Y)
	}
	for i := range l.Rects {
		for j := range i {
			if l.Rects[i].Intersects(l.Rects[j]) {
				t.Errorf("rect %d overlaps rect %d", i, j)
			}
		}
	}

	if resp := do(t, http.MethodPut, base+"/center", `{"x":-5,"y":0}`); resp.StatusCode != http.StatusNoContent {
		t.Errorf("recenter: status %d", resp.StatusCode)
	}

	resp = do(t, http.MethodGet, base+"/image.png", "")
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "image/png" {
		t.Fatalf("png: status %d, type %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	data, _ := io.ReadAll(resp.Body)
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("png body is not a PNG")
	}

	resp = do(t, http.MethodGet, base+"/image.svg", "")
	data, _ = io.ReadAll(resp.Body)
	if !strings.Contains(string(data), "<svg") {
		t.Errorf("svg body: %.80s", data)
	}

	if resp := do(t, http.MethodDelete, base, ""); resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete: status %d", resp.StatusCode)
	}
	expectError(t, do(t, http.MethodGet, base+"/layout", ""), http.StatusNotFound, "NOT_FOUND")
}

func TestCreateSessionWithoutBody(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts, "")
	resp := do(t, http.MethodGet, ts.URL+"/sessions/"+id+"/layout", "")
	l, err := pkgio.ReadLayout(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if l.Center != geom.Vec(0, 0) || len(l.Rects) != 0 {
		t.Errorf("new session layout = %+v", l)
	}
}

func TestImageTooLarge(t *testing.T) {
	ts := newTestServer(t)
	base := ts.URL + "/sessions/" + createSession(t, ts, "")

	if resp := do(t, http.MethodPost, base+"/rects", `{"width":100000,"height":100000}`); resp.StatusCode != http.StatusCreated {
		t.Fatalf("place: status %d", resp.StatusCode)
	}
	expectError(t, do(t, http.MethodGet, base+"/image.png", ""), http.StatusBadRequest, "INVALID_SIZE")

	resp := do(t, http.MethodGet, base+"/image.svg", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("svg: status %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestErrors(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts, "")
	base := ts.URL + "/sessions/" + id

	tests := []struct {
		name   string
		method string
		url    string
		body   string
		status int
		code   string
	}{
		{"zero width", http.MethodPost, base + "/rects", `{"width":0,"height":3}`, http.StatusBadRequest, "INVALID_SIZE"},
		{"negative height", http.MethodPost, base + "/rects", `{"width":2,"height":-1}`, http.StatusBadRequest, "INVALID_SIZE"},
		{"oversized rect", http.MethodPost, base + "/rects", `{"width":4611686018427387904,"height":4}`, http.StatusBadRequest, "INVALID_SIZE"},
		{"far center", http.MethodPost, ts.URL + "/sessions", `{"center":{"x":6917529027641081856,"y":0}}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"far recenter", http.MethodPut, base + "/center", `{"x":0,"y":-1073741825}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad json", http.MethodPost, base + "/rects", `{"width":`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown field", http.MethodPost, base + "/rects", `{"w":1}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"empty image", http.MethodGet, base + "/image.png", "", http.StatusConflict, "EMPTY_LAYOUT"},
		{"bad format", http.MethodGet, base + "/image.gif", "", http.StatusBadRequest, "INVALID_FORMAT"},
		{"unknown session", http.MethodGet, ts.URL + "/sessions/6ba7b810-9dad-11d1-80b4-00c04fd430c8/layout", "", http.StatusNotFound, "NOT_FOUND"},
		{"malformed id", http.MethodPost, ts.URL + "/sessions/xyz/rects", `{"width":1,"height":1}`, http.StatusNotFound, "NOT_FOUND"},
		{"delete unknown", http.MethodDelete, ts.URL + "/sessions/xyz", "", http.StatusNotFound, "NOT_FOUND"},
		{"no route", http.MethodGet, ts.URL + "/nope", "", http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, do(t, tt.method, tt.url, tt.body), tt.status, tt.code)
		})
	}
}
