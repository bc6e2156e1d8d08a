package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stemsi/skills-assessment/internal/model"
)

func seedUsers() []model.User {
	mgr := 2
	return []model.User{
		{ID: 1, FirstName: "Ada", Email: "ada@example.com", Role: model.RoleAdmin, Status: model.UserStatusActive},
		{ID: 2, FirstName: "Mo", Email: "Mo@Example.com", Role: model.RoleManager, Status: model.UserStatusActive},
		{ID: 5, FirstName: "Cy", Email: "cy@example.com", Role: model.RoleCandidate, Status: model.UserStatusActive, ManagerID: &mgr},
	}
}

func TestUserRepository_CreateContinuesIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(seedUsers())

	u := &model.User{FirstName: "New", Email: "new@example.com", Role: model.RoleCandidate}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID != 6 {
		t.Errorf("id = %d, want 6", u.ID)
	}
	if len(repo.List(ctx)) != 4 {
		t.Errorf("list length = %d, want 4", len(repo.List(ctx)))
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(seedUsers())

	err := repo.Create(ctx, &model.User{Email: "ADA@example.com"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("got %v, want ErrDuplicate", err)
	}

	cy, _ := repo.GetByID(ctx, 5)
	cy.Email = "mo@example.com"
	if err := repo.Update(ctx, cy); !errors.Is(err, ErrDuplicate) {
		t.Errorf("update to taken email: got %v, want ErrDuplicate", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(seedUsers())

	tests := []struct {
		email  string
		wantID int
		wantOK bool
	}{
		{"mo@example.com", 2, true},
		{"  MO@EXAMPLE.COM ", 2, true},
		{"missing@example.com", 0, false},
	}
	for _, tc := range tests {
		u, err := repo.GetByEmail(ctx, tc.email)
		if !tc.wantOK {
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("%q: got %v, want ErrNotFound", tc.email, err)
			}
			continue
		}
		if err != nil || u.ID != tc.wantID {
			t.Errorf("%q: got (%v, %v), want id %d", tc.email, u, err, tc.wantID)
		}
	}
}

func TestUserRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(seedUsers())

	if err := repo.Update(ctx, &model.User{ID: 42}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update unknown: got %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete unknown: got %v, want ErrNotFound", err)
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted user still present")
	}

	managers := repo.ListByRole(ctx, model.RoleManager)
	if len(managers) != 1 || managers[0].ID != 2 {
		t.Errorf("managers = %+v", managers)
	}
}

func TestUserRepository_ManagerIDCopied(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(seedUsers())

	u, _ := repo.GetByID(ctx, 5)
	*u.ManagerID = 99

	again, _ := repo.GetByID(ctx, 5)
	if *again.ManagerID != 2 {
		t.Errorf("manager id leaked through returned copy: %d", *again.ManagerID)
	}
}
