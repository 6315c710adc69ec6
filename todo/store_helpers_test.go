package todo

import (
	"encoding/json"
	"testing"
)

// memStorage is an in-memory Storage that round-trips values through JSON
// the same way the file-backed store does.
type memStorage struct {
	values    map[string]json.RawMessage
	saveCalls int
}

func newMemStorage() *memStorage {
	return &memStorage{values: make(map[string]json.RawMessage)}
}

func (m *memStorage) Load(key string, out any) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *memStorage) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	m.saveCalls++
	return nil
}

func openTestStore(t *testing.T) (*Store, *memStorage) {
	t.Helper()
	storage := newMemStorage()
	store, err := Open(storage, OpenOptions{})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return store, storage
}

func mustCreate(t *testing.T, store *Store, title string, opts CreateOptions) *Todo {
	t.Helper()
	created, err := store.Create(title, opts)
	if err != nil {
		t.Fatalf("failed to create todo %q: %v", title, err)
	}
	return created
}
