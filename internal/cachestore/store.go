package cachestore

import (
	"encoding/json"
	"log"

	"flowboard/internal/fixtures"
	"flowboard/internal/models"
)

const (
	keyTasks = "flowboard:tasks"
	keyTeam  = "flowboard:team"
	keyToken = "flowboard:auth_token"
)

// Store is the collection layer over a BlobStore: it owns the persisted
// representation of the task and team collections and the auth token
// slot. Persist failures are logged, never raised; an in-memory
// mutation may outlive a failed write-through, which is accepted.
type Store struct {
	blobs BlobStore
}

func NewStore(blobs BlobStore) *Store {
	return &Store{blobs: blobs}
}

// Tasks loads the persisted task collection. An absent key seeds the
// fixture set and persists it; an unparseable blob is discarded and
// re-seeded rather than propagated.
func (s *Store) Tasks() []models.Task {
	var tasks []models.Task
	if s.loadCollection(keyTasks, &tasks) {
		return tasks
	}
	seed := fixtures.Tasks()
	s.SaveTasks(seed)
	return seed
}

// SaveTasks overwrites the persisted task collection.
func (s *Store) SaveTasks(tasks []models.Task) {
	s.saveCollection(keyTasks, tasks)
}

// Members loads the persisted team collection, seeding fixtures the
// same way Tasks does.
func (s *Store) Members() []models.TeamMember {
	var members []models.TeamMember
	if s.loadCollection(keyTeam, &members) {
		return members
	}
	seed := fixtures.Members()
	s.SaveMembers(seed)
	return seed
}

// SaveMembers overwrites the persisted team collection.
func (s *Store) SaveMembers(members []models.TeamMember) {
	s.saveCollection(keyTeam, members)
}

// Token returns the bearer token slot, empty when unset.
func (s *Store) Token() string {
	data, err := s.blobs.Get(keyToken)
	if err != nil {
		return ""
	}
	return string(data)
}

func (s *Store) SetToken(token string) {
	if err := s.blobs.Set(keyToken, []byte(token)); err != nil {
		log.Printf("cachestore: failed to persist auth token: %v", err)
	}
}

func (s *Store) ClearToken() {
	if err := s.blobs.Delete(keyToken); err != nil {
		log.Printf("cachestore: failed to clear auth token: %v", err)
	}
}

func (s *Store) Health() error {
	return s.blobs.Health()
}

func (s *Store) Close() error {
	return s.blobs.Close()
}

// loadCollection reports whether dest was populated from the persisted
// blob. False means the caller should fall back to fixture data.
func (s *Store) loadCollection(key string, dest interface{}) bool {
	data, err := s.blobs.Get(key)
	if err != nil {
		if err != ErrNotFound {
			log.Printf("cachestore: failed to load %s, using seed data: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("cachestore: corrupt blob for %s, re-seeding: %v", key, err)
		return false
	}
	return true
}

func (s *Store) saveCollection(key string, collection interface{}) {
	data, err := json.Marshal(collection)
	if err != nil {
		log.Printf("cachestore: failed to serialize %s: %v", key, err)
		return
	}
	if err := s.blobs.Set(key, data); err != nil {
		log.Printf("cachestore: failed to persist %s: %v", key, err)
	}
}
