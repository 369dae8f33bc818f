package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/target/eventshell/internal/domain/model"
)

// FakeBackend is an in-memory stand-in for the backend collection API
// (/users and /events with equality filters, id lookup, POST/PATCH/DELETE).
// It preserves insertion order for collection listings.
type FakeBackend struct {
	mu       sync.Mutex
	users    []map[string]any
	events   []map[string]any
	srv      *httptest.Server
	failWith int
}

// NewFakeBackend starts the fake backend on a local listener.
func NewFakeBackend() *FakeBackend {
	b := &FakeBackend{}
	b.srv = httptest.NewServer(http.HandlerFunc(b.handle))
	return b
}

// URL returns the backend base URL.
func (b *FakeBackend) URL() string { return b.srv.URL }

// Close shuts the backend down.
func (b *FakeBackend) Close() { b.srv.Close() }

// FailWith makes every subsequent request answer with the given status.
// Pass 0 to restore normal behavior.
func (b *FakeBackend) FailWith(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failWith = status
}

// SeedUser inserts a user record, assigning an id when absent.
func (b *FakeBackend) SeedUser(u model.User) model.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users = append(b.users, toRecord(u))
	return u
}

// SeedEvent inserts an event record, assigning an id when absent.
func (b *FakeBackend) SeedEvent(e model.Event) model.Event {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Registered == nil {
		e.Registered = []string{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, toRecord(e))
	return e
}

// User returns the stored user record by id.
func (b *FakeBackend) User(id string) (model.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec, ok := findRecord(b.users, id)
	if !ok {
		return model.User{}, false
	}
	var u model.User
	fromRecord(rec, &u)
	return u, true
}

// Event returns the stored event record by id.
func (b *FakeBackend) Event(id string) (model.Event, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec, ok := findRecord(b.events, id)
	if !ok {
		return model.Event{}, false
	}
	var e model.Event
	fromRecord(rec, &e)
	return e, true
}

// UserCount returns the number of stored users.
func (b *FakeBackend) UserCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.users)
}

// UserByEmail returns the stored user record by email.
func (b *FakeBackend) UserByEmail(email string) (model.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, rec := range b.users {
		if rec["email"] == email {
			var u model.User
			fromRecord(rec, &u)
			return u, true
		}
	}
	return model.User{}, false
}

func (b *FakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failWith != 0 {
		http.Error(w, http.StatusText(b.failWith), b.failWith)
		return
	}

	var collection *[]map[string]any
	rest := ""
	switch {
	case r.URL.Path == "/users" || strings.HasPrefix(r.URL.Path, "/users/"):
		collection = &b.users
		rest = strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, "/users"), "/")
	case r.URL.Path == "/events" || strings.HasPrefix(r.URL.Path, "/events/"):
		collection = &b.events
		rest = strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, "/events"), "/")
	default:
		http.NotFound(w, r)
		return
	}

	if rest == "" {
		b.handleCollection(w, r, collection)
		return
	}
	b.handleItem(w, r, collection, rest)
}

func (b *FakeBackend) handleCollection(w http.ResponseWriter, r *http.Request, collection *[]map[string]any) {
	switch r.Method {
	case http.MethodGet:
		out := make([]map[string]any, 0, len(*collection))
		for _, rec := range *collection {
			if matchesQuery(rec, r.URL.Query()) {
				out = append(out, rec)
			}
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var rec map[string]any
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if id, _ := rec["id"].(string); id == "" {
			rec["id"] = uuid.NewString()
		}
		*collection = append(*collection, rec)
		writeJSON(w, http.StatusCreated, rec)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (b *FakeBackend) handleItem(w http.ResponseWriter, r *http.Request, collection *[]map[string]any, id string) {
	idx := -1
	for i, rec := range *collection {
		if rec["id"] == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, (*collection)[idx])
	case http.MethodPatch:
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for k, v := range patch {
			(*collection)[idx][k] = v
		}
		writeJSON(w, http.StatusOK, (*collection)[idx])
	case http.MethodDelete:
		*collection = append((*collection)[:idx], (*collection)[idx+1:]...)
		writeJSON(w, http.StatusOK, map[string]any{})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// matchesQuery applies json-server style equality filters.
func matchesQuery(rec map[string]any, query map[string][]string) bool {
	for field, values := range query {
		got, ok := rec[field].(string)
		if !ok {
			return false
		}
		if len(values) > 0 && got != values[0] {
			return false
		}
	}
	return true
}

func toRecord(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	var rec map[string]any
	if err := json.Unmarshal(data, &rec); err != nil {
		panic(err)
	}
	return rec
}

func fromRecord(rec map[string]any, out any) {
	data, err := json.Marshal(rec)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		panic(err)
	}
}

func findRecord(collection []map[string]any, id string) (map[string]any, bool) {
	for _, rec := range collection {
		if rec["id"] == id {
			return rec, true
		}
	}
	return nil, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
