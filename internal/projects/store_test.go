package projects

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "projects.json"), zap.NewNop())
}

func TestStore_MissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	if got := s.List(); len(got) != 0 {
		t.Fatalf("expected empty list for missing file, got %d", len(got))
	}
}

func TestStore_CorruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path, zap.NewNop())
	if got := s.List(); len(got) != 0 {
		t.Fatalf("expected empty list for corrupt file, got %d", len(got))
	}
}

func TestStore_CreateAssignsIncrementingIDs(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Create(Project{Slug: "one", Title: "One"})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != "1" {
		t.Errorf("first ID = %s, want 1", first.ID)
	}

	second, err := s.Create(Project{Slug: "two", Title: "Two"})
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != "2" {
		t.Errorf("second ID = %s, want 2", second.ID)
	}
}

func TestStore_CreateSkipsGapsToMaxPlusOne(t *testing.T) {
	s := newTestStore(t)
	if err := s.save([]Project{{ID: "7", Slug: "seven"}}); err != nil {
		t.Fatal(err)
	}
	created, err := s.Create(Project{Slug: "next"})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "8" {
		t.Errorf("ID = %s, want 8 (max existing + 1)", created.ID)
	}
}

func TestStore_CreateRejectsDuplicateSlug(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Create(Project{Slug: "dup"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create(Project{Slug: "dup"}); err == nil {
		t.Fatal("expected duplicate slug to be rejected")
	}
}

func TestStore_GetUpdateDelete(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Create(Project{Slug: "p", Title: "Before"})
	if err != nil {
		t.Fatal(err)
	}

	if got := s.Get(created.ID); got == nil || got.Title != "Before" {
		t.Fatalf("Get returned %v", got)
	}
	if got := s.Get("999"); got != nil {
		t.Errorf("Get for unknown ID returned %v", got)
	}

	updated, err := s.Update(created.ID, Project{Slug: "p", Title: "After"})
	if err != nil {
		t.Fatal(err)
	}
	if updated == nil || updated.Title != "After" || updated.ID != created.ID {
		t.Fatalf("Update returned %v", updated)
	}

	if missing, err := s.Update("999", Project{Slug: "x"}); err != nil || missing != nil {
		t.Fatalf("Update of unknown ID = (%v, %v), want (nil, nil)", missing, err)
	}

	deleted, err := s.Delete(created.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete = (%v, %v)", deleted, err)
	}
	if again, _ := s.Delete(created.ID); again {
		t.Error("second delete reported success")
	}
	if got := s.List(); len(got) != 0 {
		t.Errorf("store not empty after delete: %d", len(got))
	}
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.json")

	first := NewStore(path, zap.NewNop())
	if _, err := first.Create(Project{Slug: "durable", Title: "Durable"}); err != nil {
		t.Fatal(err)
	}

	second := NewStore(path, zap.NewNop())
	got := second.List()
	if len(got) != 1 || got[0].Slug != "durable" {
		t.Fatalf("reloaded list = %v", got)
	}
}
