package user

import (
	"errors"

	"github.com/wordarena/WordArena/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (u *UserService) Signup(user User) (string, error) {
	if len(user.Username) < 3 || len(user.Username) > 20 {
		return "", apperrors.NewAppError(400, "username must be 3-20 characters", nil)
	}
	if len(user.Password) < 6 {
		return "", apperrors.NewAppError(400, "password must be at least 6 characters", nil)
	}

	userRetrieved, err := u.repo.CreateUser(user.Username, user.Password)
	if err != nil {
		return "", err
	}

	token, errJWT := GenerateJWT(userRetrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) Login(user User) (string, error) {
	userRetrieved, err := u.repo.ValidateUser(user.Username, user.Password)
	if err != nil {
		return "", errors.New("invalid credentials")
	}
	token, errJWT := GenerateJWT(userRetrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) GetProfile(userID int) (*ProfileResponse, error) {
	user, errUser := u.repo.GetUser(userID)
	if errUser != nil {
		return nil, errUser
	}

	if user == nil {
		return nil, apperrors.NewAppError(404, "user not found", errors.New("user not found"))
	}

	profile, err := u.repo.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	response := &ProfileResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Exp:       profile.Exp,
		Rank:      RankForExp(profile.Exp),
		AvatarURL: profile.AvatarURL,
	}
	return response, nil
}

// GrantExp adds earned EXP to a player's profile and returns the updated
// total. Callers keep the leaderboard in sync with the returned value.
func (u *UserService) GrantExp(userID, delta int) (*Profile, error) {
	if delta < 0 {
		return nil, apperrors.NewAppError(400, "exp delta must not be negative", nil)
	}

	profile, err := u.repo.AddExp(userID, delta)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error granting exp", err)
	}

	return profile, nil
}

func (u *UserService) SetAvatar(userID int, url string) error {
	if err := u.repo.UpdateAvatar(userID, url); err != nil {
		return apperrors.NewAppError(500, "error updating avatar", err)
	}

	return nil
}
