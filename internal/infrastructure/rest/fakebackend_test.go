package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeBackend is a minimal json-server: collections of JSON objects keyed by "id".
type fakeBackend struct {
	mu      sync.Mutex
	data    map[string][]map[string]any
	nextID  int
	fail    map[string]int // "METHOD /path" -> status to force
	patches int
}

func newFakeBackend(t *testing.T) (*fakeBackend, *Client) {
	t.Helper()
	fb := &fakeBackend{data: map[string][]map[string]any{}, nextID: 100, fail: map[string]int{}}
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)
	cli, err := New(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return fb, cli
}

func (fb *fakeBackend) seed(collection string, items ...map[string]any) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.data[collection] = append(fb.data[collection], items...)
}

func (fb *fakeBackend) find(collection, id string) (int, map[string]any) {
	for i, it := range fb.data[collection] {
		if idString(it["id"]) == id {
			return i, it
		}
	}
	return -1, nil
}

func idString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}

func (fb *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	if status, ok := fb.fail[r.Method+" "+r.URL.Path]; ok {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "forced failure"})
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	collection := parts[0]
	var id string
	if len(parts) > 1 {
		id = parts[1]
	}

	writeJSON := func(status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	switch {
	case r.Method == http.MethodGet && id == "":
		out := []map[string]any{}
		for _, it := range fb.data[collection] {
			match := true
			for key, vals := range r.URL.Query() {
				if s, _ := it[key].(string); s != vals[0] {
					match = false
				}
			}
			if match {
				out = append(out, it)
			}
		}
		writeJSON(http.StatusOK, out)
	case r.Method == http.MethodGet:
		_, it := fb.find(collection, id)
		if it == nil {
			writeJSON(http.StatusNotFound, map[string]any{})
			return
		}
		writeJSON(http.StatusOK, it)
	case r.Method == http.MethodPost:
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		fb.nextID++
		body["id"] = strconv.Itoa(fb.nextID)
		fb.data[collection] = append(fb.data[collection], body)
		writeJSON(http.StatusCreated, body)
	case r.Method == http.MethodPut, r.Method == http.MethodPatch:
		i, it := fb.find(collection, id)
		if it == nil {
			writeJSON(http.StatusNotFound, map[string]any{})
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if r.Method == http.MethodPut {
			it = map[string]any{}
		} else {
			fb.patches++
		}
		for k, v := range body {
			it[k] = v
		}
		it["id"] = id
		fb.data[collection][i] = it
		writeJSON(http.StatusOK, it)
	case r.Method == http.MethodDelete:
		i, it := fb.find(collection, id)
		if it == nil {
			writeJSON(http.StatusNotFound, map[string]any{})
			return
		}
		fb.data[collection] = append(fb.data[collection][:i], fb.data[collection][i+1:]...)
		writeJSON(http.StatusOK, map[string]any{})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
