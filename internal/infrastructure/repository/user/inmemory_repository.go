package user

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "jan-server/services/messaging-api/internal/domain/user"
	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

// InMemoryRepository is a thread-safe repository useful for demos/tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]domain.User
}

// NewInMemoryRepository returns an empty repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		nextID: 1,
		users:  make(map[uint]domain.User),
	}
}

// Create stores a copy of u and assigns its id.
func (r *InMemoryRepository) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Subject == u.Subject {
			return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeConflict,
				"subject already registered", errors.New("duplicate subject"), "user-duplicate-subject")
		}
	}

	u.ID = r.nextID
	r.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.users[u.ID] = *u
	return nil
}

// Update replaces the stored profile fields.
func (r *InMemoryRepository) Update(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[u.ID]
	if !ok {
		return notFound(ctx, fmt.Sprintf("user not found: %d", u.ID))
	}
	stored.DisplayName = u.DisplayName
	stored.Email = u.Email
	r.users[u.ID] = stored
	return nil
}

// FindByID returns a copy of the stored user.
func (r *InMemoryRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, notFound(ctx, fmt.Sprintf("user not found: %d", id))
	}
	return &u, nil
}

// FindBySubject returns the user registered for subject.
func (r *InMemoryRepository) FindBySubject(ctx context.Context, subject string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Subject == subject {
			found := u
			return &found, nil
		}
	}
	return nil, notFound(ctx, "user not found for subject")
}

// List returns users ordered by id.
func (r *InMemoryRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.User, 0, len(r.users))
	for id := uint(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			result = append(result, &u)
		}
	}
	return result, nil
}

func notFound(ctx context.Context, message string) error {
	return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
		message, domain.ErrNotFound, "user-not-found")
}
