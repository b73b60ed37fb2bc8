package petstore

import (
	"cmp"
	"errors"
	"slices"
	"sync"
	"time"
)

var (
	ErrNotFound     = errors.New("pet not found")
	ErrInvalidInput = errors.New("invalid pet")
)

// Store is an in-memory pet repository safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	pets   map[int64]Pet
	now    func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		nextID: 1,
		pets:   make(map[int64]Pet),
		now:    time.Now,
	}
}

// Add stores a new pet and returns it with its assigned ID.
func (s *Store) Add(in NewPet) (Pet, error) {
	if in.Name == "" {
		return Pet{}, ErrInvalidInput
	}

	status := in.Status
	switch status {
	case "":
		status = StatusAvailable
	case StatusAvailable, StatusPending, StatusSold:
	default:
		return Pet{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pet := Pet{
		ID:        s.nextID,
		Name:      in.Name,
		Category:  in.Category,
		PhotoURLs: in.PhotoURLs,
		Tags:      in.Tags,
		Status:    status,
		CreatedAt: s.now().UTC(),
	}
	if pet.PhotoURLs == nil {
		pet.PhotoURLs = []string{}
	}
	s.pets[pet.ID] = pet
	s.nextID++

	return pet, nil
}

// Get returns the pet with the given ID.
func (s *Store) Get(id int64) (Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pet, ok := s.pets[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return pet, nil
}

// Delete removes the pet with the given ID.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pets[id]; !ok {
		return ErrNotFound
	}
	delete(s.pets, id)
	return nil
}

// List returns pets ordered by ID. An empty status matches every pet; a
// limit of zero or less means no limit.
func (s *Store) List(status string, limit int) []Pet {
	s.mu.RLock()
	out := make([]Pet, 0, len(s.pets))
	for _, pet := range s.pets {
		if status == "" || pet.Status == status {
			out = append(out, pet)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b Pet) int {
		return cmp.Compare(a.ID, b.ID)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
