package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/stemsi/skills-assessment/internal/model"
)

// UserRepository is the in-memory user registry.
type UserRepository struct {
	mu     sync.RWMutex
	users  []model.User
	nextID int
}

// NewUserRepository creates a UserRepository seeded with users.
// New ids continue after the highest seeded id.
func NewUserRepository(users []model.User) *UserRepository {
	r := &UserRepository{users: make([]model.User, 0, len(users)), nextID: 1}
	for _, u := range users {
		r.users = append(r.users, cloneUser(u))
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

// List returns every user in creation order.
func (r *UserRepository) List(_ context.Context) []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.User, len(r.users))
	for i, u := range r.users {
		out[i] = cloneUser(u)
	}
	return out
}

// ListByRole returns every user holding role.
func (r *UserRepository) ListByRole(_ context.Context, role model.Role) []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	return out
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(_ context.Context, id int) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	u := cloneUser(r.users[i])
	return &u, nil
}

// GetByEmail retrieves a user by email, ignoring case and surrounding space.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOfEmail(email)
	if i < 0 {
		return nil, ErrNotFound
	}
	u := cloneUser(r.users[i])
	return &u, nil
}

// Create assigns the next id to u and stores it. The email must be unused.
func (r *UserRepository) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOfEmail(u.Email) >= 0 {
		return ErrDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	r.users = append(r.users, cloneUser(*u))
	return nil
}

// Update replaces the stored user with the same id as u.
func (r *UserRepository) Update(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(u.ID)
	if i < 0 {
		return ErrNotFound
	}
	if j := r.indexOfEmail(u.Email); j >= 0 && j != i {
		return ErrDuplicate
	}
	r.users[i] = cloneUser(*u)
	return nil
}

// Delete removes the user with id.
func (r *UserRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.users = append(r.users[:i], r.users[i+1:]...)
	return nil
}

func (r *UserRepository) indexOf(id int) int {
	for i, u := range r.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (r *UserRepository) indexOfEmail(email string) int {
	email = strings.TrimSpace(email)
	for i, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return i
		}
	}
	return -1
}

func cloneUser(u model.User) model.User {
	if u.ManagerID != nil {
		id := *u.ManagerID
		u.ManagerID = &id
	}
	return u
}
