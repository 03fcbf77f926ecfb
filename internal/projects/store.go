package projects

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// Store is the flat-file project collaborator: the whole JSON array is
// read and written on every call. Concurrent processes race last-write-
// wins; the mutex only serializes callers within this process.
type Store struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// List returns every project. A missing or unreadable file is logged and
// treated as an empty catalog, never an error.
func (s *Store) List() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the project with the given ID, or nil when absent.
func (s *Store) Get(id string) *Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.load() {
		if p.ID == id {
			found := p
			return &found
		}
	}
	return nil
}

// Create assigns the next ID (max existing + 1, decimal string) and
// appends the project to the file.
func (s *Store) Create(p Project) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	for _, existing := range list {
		if existing.Slug == p.Slug {
			return nil, fmt.Errorf("slug %q already in use", p.Slug)
		}
	}

	p.ID = strconv.Itoa(nextID(list))
	list = append(list, p)
	if err := s.save(list); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces the project with the given ID wholesale, keeping the ID.
// Returns nil, nil when no such project exists.
func (s *Store) Update(id string, p Project) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	for i, existing := range list {
		if existing.ID != id {
			continue
		}
		p.ID = id
		list[i] = p
		if err := s.save(list); err != nil {
			return nil, err
		}
		return &p, nil
	}
	return nil, nil
}

// Delete removes the project with the given ID. The bool reports whether
// anything was deleted.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	for i, existing := range list {
		if existing.ID != id {
			continue
		}
		list = append(list[:i], list[i+1:]...)
		if err := s.save(list); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *Store) load() []Project {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read projects file", zap.String("path", s.path), zap.Error(err))
		}
		return []Project{}
	}

	var list []Project
	if err := json.Unmarshal(data, &list); err != nil {
		s.logger.Warn("failed to parse projects file", zap.String("path", s.path), zap.Error(err))
		return []Project{}
	}
	return list
}

func (s *Store) save(list []Project) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write projects file: %w", err)
	}
	return nil
}

func nextID(list []Project) int {
	max := 0
	for _, p := range list {
		if n, err := strconv.Atoi(p.ID); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}
