package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "jan-server/services/messaging-api/internal/domain/user"
	"jan-server/services/messaging-api/internal/infrastructure/database/entities"
	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

// PostgresRepository persists users via GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user and copies generated fields back.
func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) error {
	entity := entities.NewSchemaUser(u)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to create user", err, "user-create-failed")
	}
	u.ID = entity.ID
	u.CreatedAt = entity.CreatedAt
	return nil
}

// Update saves the mutable profile fields.
func (r *PostgresRepository) Update(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"display_name": u.DisplayName,
			"email":        u.Email,
		}).Error
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to update user", err, "user-update-failed")
	}
	return nil
}

// FindByID fetches a user by id.
func (r *PostgresRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var entity entities.User
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, r.lookupError(ctx, err, fmt.Sprintf("user not found: %d", id))
	}
	return entity.EtoD(), nil
}

// FindBySubject fetches a user by identity provider subject.
func (r *PostgresRepository) FindBySubject(ctx context.Context, subject string) (*domain.User, error) {
	var entity entities.User
	if err := r.db.WithContext(ctx).Where("subject = ?", subject).First(&entity).Error; err != nil {
		return nil, r.lookupError(ctx, err, "user not found for subject")
	}
	return entity.EtoD(), nil
}

// List returns every user ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]*domain.User, error) {
	var rows []entities.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to list users", err, "user-list-failed")
	}

	result := make([]*domain.User, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}

func (r *PostgresRepository) lookupError(ctx context.Context, err error, notFoundMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			notFoundMessage, domain.ErrNotFound, "user-not-found")
	}
	return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
		"failed to fetch user", err, "user-fetch-failed")
}
