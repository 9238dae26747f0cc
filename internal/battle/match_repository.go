package battle

import (
	"github.com/wordarena/WordArena/internal/apperrors"
	"github.com/wordarena/WordArena/pkg/db"
)

type MatchRepository interface {
	CreateMatch(match *Match) error
	MatchesFor(userID uint, limit int) ([]Match, error)
}

type GormMatchRepository struct{}

func NewGormMatchRepository() *GormMatchRepository {
	return &GormMatchRepository{}
}

func (r *GormMatchRepository) CreateMatch(match *Match) error {
	if err := db.DB.Create(match).Error; err != nil {
		return apperrors.NewAppError(500, "Error saving match", err)
	}

	return nil
}

func (r *GormMatchRepository) MatchesFor(userID uint, limit int) ([]Match, error) {
	var matches []Match
	err := db.DB.
		Where("player1_id = ? OR player2_id = ?", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&matches).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "Error listing matches", err)
	}

	return matches, nil
}
