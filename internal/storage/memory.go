package storage

import "encoding/json"

// MemoryStore is a non-persistent CollectionStore used by tests.
type MemoryStore struct {
	collections map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]byte)}
}

func (s *MemoryStore) Read(name string, out any) error {
	data, ok := s.collections[name]
	if !ok {
		data = []byte("[]")
	}
	return json.Unmarshal(data, out)
}

func (s *MemoryStore) Write(name string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	s.collections[name] = data
	return nil
}

// Clear drops every collection.
func (s *MemoryStore) Clear() {
	s.collections = make(map[string][]byte)
}
