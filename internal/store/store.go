// Package store implements the persistent key/value adapter. Collection
// slots live in a single BoltDB bucket with an in-memory promotion cache.
// The session slot lives in a sidecar file: it is the only key another
// execution context ever writes, and a bolt database is exclusively
// locked by its owning process, so a plain file is what makes external
// writes both readable and observable (via fsnotify).
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/okatz/marquee/internal/domain"
	bolt "go.etcd.io/bbolt"
)

const (
	dbFilename      = "marquee.db"
	sessionFilename = "session"
)

var bucketState = []byte("state")

// StateStore implements domain.Store. An empty directory selects
// memory-only mode (no persistence, no watcher), which doubles as the
// injectable fake for tests.
type StateStore struct {
	db          *bolt.DB
	sessionPath string

	mu    sync.RWMutex
	cache map[string][]byte

	watcher *fsnotify.Watcher
	subMu   sync.Mutex
	subs    map[string]map[int]func()
	nextSub int
}

var _ domain.Store = (*StateStore)(nil)

// New opens (or creates) the state store under dir.
func New(dir string) (*StateStore, error) {
	s := &StateStore{
		cache: make(map[string][]byte),
		subs:  make(map[string]map[int]func()),
	}
	if dir == "" {
		// Memory-only mode
		return s, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(filepath.Join(dir, dbFilename), 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	s.sessionPath = filepath.Join(dir, sessionFilename)

	if err := s.startWatcher(dir); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to create watcher: %w", err)
	}

	return s, nil
}

// Get returns the serialized value for key. Absent keys return false.
func (s *StateStore) Get(key string) ([]byte, bool) {
	if key == domain.KeySession && s.sessionPath != "" {
		// Always read the file: another process may have written it
		data, err := os.ReadFile(s.sessionPath)
		if err != nil {
			return nil, false
		}
		return data, true
	}

	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return data, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketState).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return nil, false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return data, true
}

// Set writes the serialized value for key. The write is synchronous:
// when Set returns nil the value is durable.
func (s *StateStore) Set(key string, value []byte) error {
	if key == domain.KeySession && s.sessionPath != "" {
		return os.WriteFile(s.sessionPath, value, 0600)
	}

	s.mu.Lock()
	s.cache[key] = append([]byte(nil), value...)
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put([]byte(key), value)
	})
}

// Watch registers fn for external changes to key. Only file-backed keys
// (the session flag) ever fire; bolt-backed keys are re-read on view
// activation instead of being pushed.
func (s *StateStore) Watch(key string, fn func()) (func(), error) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	if s.subs[key] == nil {
		s.subs[key] = make(map[int]func())
	}
	s.subs[key][id] = fn

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs[key], id)
	}
	return cancel, nil
}

// Close releases the watcher and the database.
func (s *StateStore) Close() error {
	if s.watcher != nil {
		s.watcher.Close()
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *StateStore) startWatcher(dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("unable to watch %s: %w", dir, err)
	}
	s.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if key, ok := keyForFile(filepath.Base(event.Name)); ok {
					s.notify(key)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

// keyForFile maps a changed file back to its store key
func keyForFile(name string) (string, bool) {
	if name == sessionFilename {
		return domain.KeySession, true
	}
	return "", false
}

func (s *StateStore) notify(key string) {
	s.subMu.Lock()
	callbacks := make([]func(), 0, len(s.subs[key]))
	for _, fn := range s.subs[key] {
		callbacks = append(callbacks, fn)
	}
	s.subMu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
