package apitests

import (
	"fmt"
	"sync"
)

// Fixture keys used by the test suite. Keys are namespaced by the dependency
// chain they belong to, so that unrelated chains cannot collide.
const (
	// FixtureKeyObjectID is the id of the most recently created object. Written
	// by the create test (and by the list test if the service already has
	// objects); read by the get, update, and delete tests.
	FixtureKeyObjectID = "objects/current-id"

	// FixtureKeyDeletedObjectID is the id of an object that has been deleted,
	// kept so a later test can verify the service no longer serves it.
	FixtureKeyDeletedObjectID = "objects/deleted-id"
)

// MissingFixtureError means a test asked for a fixture value that no earlier
// test has stored: an ordering dependency was violated, or the producing test
// was filtered out or failed. The consuming test fails without attempting its
// HTTP call.
type MissingFixtureError struct {
	Key string
}

func (e *MissingFixtureError) Error() string {
	return fmt.Sprintf("no fixture value for %q: the test that produces it did not run or did not succeed", e.Key)
}

// Entry is a stored fixture value plus the logical order in which it was
// written. Order indexes increase across the whole store, so the entry with
// the highest CreatedAt is always the most recent write.
type Entry struct {
	Value     string
	CreatedAt int
}

// Store holds artifacts created during a single test run. There is exactly one
// Store per suite run; it starts empty and is discarded when the run ends.
// Writes are last-write-wins: downstream tests always act on the most recently
// created resource.
type Store struct {
	entries map[string]Entry
	counter int
	lock    sync.Mutex
}

func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// Set stores a value under the key, replacing any previous value.
func (s *Store) Set(key, value string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.counter++
	s.entries[key] = Entry{Value: value, CreatedAt: s.counter}
}

// Get returns the value stored under the key, or a MissingFixtureError if
// there is none.
func (s *Store) Get(key string) (string, error) {
	e, err := s.GetEntry(key)
	return e.Value, err
}

// GetEntry is Get, but also exposes the entry's logical order index.
func (s *Store) GetEntry(key string) (Entry, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return Entry{}, &MissingFixtureError{Key: key}
	}
	return e, nil
}

// Clear removes the value stored under the key, if any. The delete test calls
// this so a later test cannot accidentally reuse a deleted resource's id.
func (s *Store) Clear(key string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.entries, key)
}
