package user

import (
	"errors"

	"github.com/danvelq/RaceTracker/internal/apperrors"
	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) ListUsers(search string, activeOnly bool) ([]User, error) {
	query := r.db.Order("created_at DESC")
	if search != "" {
		query = query.Where("username ILIKE ?", "%"+search+"%")
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	users := []User{}
	if err := query.Find(&users).Error; err != nil {
		return nil, apperrors.NewAppError(500, "Error fetching users", err)
	}
	return users, nil
}

// GetUser returns nil without an error when no user has the given id.
func (r *GormUserRepository) GetUser(id uint) (*User, error) {
	var u User
	result := r.db.Where("id = ?", id).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error fetching user", result.Error)
	}
	return &u, nil
}

func (r *GormUserRepository) GetUserByUsername(username string) (*User, error) {
	var u User
	result := r.db.Where("username = ?", username).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error fetching user", result.Error)
	}
	return &u, nil
}

// GetUserUsername returns "" when the user does not exist, so callers can
// treat a dangling owner reference as absent.
func (r *GormUserRepository) GetUserUsername(id uint) (string, error) {
	u, err := r.GetUser(id)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", nil
	}
	return u.Username, nil
}

func (r *GormUserRepository) CreateUser(u *User) error {
	if err := r.db.Create(u).Error; err != nil {
		return apperrors.NewAppError(500, "Error creating user", err)
	}
	return nil
}

func (r *GormUserRepository) UpdateUser(u *User) error {
	if err := r.db.Save(u).Error; err != nil {
		return apperrors.NewAppError(500, "Error updating user", err)
	}
	return nil
}
