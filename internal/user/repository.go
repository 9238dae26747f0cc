package user

import (
	"errors"

	"github.com/wordarena/WordArena/internal/apperrors"
	"github.com/wordarena/WordArena/pkg/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(username, password string) (*User, error)
	ValidateUser(username, password string) (*User, error)
	GetUser(id int) (*User, error)
	GetUserUsername(id int) (string, error)
	GetProfile(userID int) (*Profile, error)
	AddExp(userID, delta int) (*Profile, error)
	UpdateAvatar(userID int, url string) error
	AllProfiles() ([]Profile, error)
}

type GormUserRepository struct{}

func NewGormUserRepository() *GormUserRepository {
	return &GormUserRepository{}
}

func (r *GormUserRepository) CreateUser(username, password string) (*User, error) {
	var exists User
	result := db.DB.Where("username = ?", username).First(&exists)
	if result.Error == nil {
		return nil, errors.New("user already exists")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}
	newUser := User{
		Username: username,
		Password: string(hashed),
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		return nil, err
	}

	// Profile row is created together with the account so EXP updates
	// never have to handle a missing row.
	profile := Profile{UserID: newUser.ID, Exp: 0}
	if err := db.DB.Create(&profile).Error; err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (r *GormUserRepository) ValidateUser(username, password string) (*User, error) {
	var u User
	result := db.DB.Where("username = ?", username).First(&u)
	if result.Error != nil {
		return nil, result.Error
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *GormUserRepository) GetUser(id int) (*User, error) {
	var u User
	result := db.DB.Where("id = ?", id).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &u, nil
}

func (r *GormUserRepository) GetUserUsername(id int) (string, error) {
	var u User
	result := db.DB.Where("id = ?", id).First(&u)
	if result.Error != nil {
		return "", result.Error
	}

	return u.Username, nil
}

func (r *GormUserRepository) GetProfile(userID int) (*Profile, error) {
	var p Profile
	result := db.DB.Where("user_id = ?", userID).First(&p)
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error getting profile", result.Error)
	}

	return &p, nil
}

func (r *GormUserRepository) AddExp(userID, delta int) (*Profile, error) {
	var p Profile
	if err := db.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, apperrors.NewAppError(500, "Error getting profile", err)
	}

	p.Exp += delta
	if err := db.DB.Save(&p).Error; err != nil {
		return nil, apperrors.NewAppError(500, "Error updating profile exp", err)
	}

	return &p, nil
}

func (r *GormUserRepository) UpdateAvatar(userID int, url string) error {
	result := db.DB.Model(&Profile{}).Where("user_id = ?", userID).Update("avatar_url", url)
	if result.Error != nil {
		return apperrors.NewAppError(500, "Error updating avatar", result.Error)
	}

	return nil
}

func (r *GormUserRepository) AllProfiles() ([]Profile, error) {
	var profiles []Profile
	if err := db.DB.Find(&profiles).Error; err != nil {
		return nil, apperrors.NewAppError(500, "Error listing profiles", err)
	}

	return profiles, nil
}
