package advocate

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestInMemoryRepository_AssignsIDs(t *testing.T) {
	repo := NewInMemoryRepository([]Advocate{
		{ID: "fixed", FirstName: "A"},
		{FirstName: "B", YearsOfExperience: -1},
	})

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 advocates, got %d", len(all))
	}
	if all[0].ID != "fixed" {
		t.Fatalf("existing id should be kept, got %q", all[0].ID)
	}
	if _, err := uuid.Parse(all[1].ID); err != nil {
		t.Fatalf("expected a generated uuid, got %q", all[1].ID)
	}
	if all[1].YearsOfExperience != 0 {
		t.Fatalf("seeded records should be normalized")
	}

	got, err := repo.GetByID(context.Background(), all[1].ID)
	if err != nil || got.FirstName != "B" {
		t.Fatalf("expected to fetch B by id, got %+v, %v", got, err)
	}
}

func TestInMemoryRepository_InsertAndNotFound(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	created, err := repo.Insert(context.Background(), []Advocate{{FirstName: "C"}, {FirstName: "D"}})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created[0].ID == "" || created[0].ID == created[1].ID {
		t.Fatalf("expected distinct ids, got %q and %q", created[0].ID, created[1].ID)
	}

	all, _ := repo.List(context.Background())
	if len(all) != 2 {
		t.Fatalf("expected 2 advocates after insert, got %d", len(all))
	}

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInMemoryRepository_CancelledContext(t *testing.T) {
	repo := NewInMemoryRepository(SeedData())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
