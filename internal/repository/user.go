package repository

import (
	"event-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs retrieves users for a set of ids
func (r *UserRepository) GetByIDs(ids []uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// ListOrganizers retrieves organizer accounts, optionally filtered by archive state
func (r *UserRepository) ListOrganizers(includeArchived, archivedOnly bool) ([]models.User, error) {
	query := r.db.Where("role = ?", models.UserRoleOrganizer)
	if archivedOnly {
		query = query.Where("is_archived = ?", true)
	} else if !includeArchived {
		query = query.Where("is_archived = ?", false)
	}

	var organizers []models.User
	err := query.Order("created_at ASC").Find(&organizers).Error
	return organizers, err
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
