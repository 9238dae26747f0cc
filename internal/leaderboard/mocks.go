package leaderboard

import (
	"github.com/stretchr/testify/mock"
)

type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) SetScore(userID uint, exp int) error {
	args := m.Called(userID, exp)
	return args.Error(0)
}

func (m *MockLeaderboardRepository) TopN(limit int) ([]ScoredMember, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ScoredMember), args.Error(1)
}

func (m *MockLeaderboardRepository) StandingOf(userID uint) (*Standing, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Standing), args.Error(1)
}

func (m *MockLeaderboardRepository) Clear() error {
	args := m.Called()
	return args.Error(0)
}
