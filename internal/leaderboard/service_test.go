package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wordarena/WordArena/internal/user"
)

func TestLeaderboardService_Top(t *testing.T) {
	mockRepo := &MockLeaderboardRepository{}
	mockUserRepo := &user.MockUserRepository{}
	service := NewLeaderboardService(mockRepo, mockUserRepo)

	mockRepo.On("TopN", DefaultLimit).Return([]ScoredMember{
		{UserID: 1, Exp: 800},
		{UserID: 2, Exp: 150},
	}, nil)
	mockUserRepo.On("GetUserUsername", 1).Return("alice", nil)
	mockUserRepo.On("GetUserUsername", 2).Return("bob", nil)
	mockUserRepo.On("GetProfile", 1).Return(&user.Profile{UserID: 1, Exp: 800, AvatarURL: "a.png"}, nil)
	mockUserRepo.On("GetProfile", 2).Return(&user.Profile{UserID: 2, Exp: 150}, nil)

	entries, err := service.Top(0)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, "Platinum", entries[0].Rank)
	assert.Equal(t, 2, entries[1].Position)
	assert.Equal(t, "Silver", entries[1].Rank)
	mockRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestLeaderboardService_Top_CapsLimit(t *testing.T) {
	mockRepo := &MockLeaderboardRepository{}
	mockUserRepo := &user.MockUserRepository{}
	service := NewLeaderboardService(mockRepo, mockUserRepo)

	mockRepo.On("TopN", MaxLimit).Return([]ScoredMember{}, nil)

	entries, err := service.Top(5000)
	assert.NoError(t, err)
	assert.Empty(t, entries)
	mockRepo.AssertExpectations(t)
}

func TestLeaderboardService_Rebuild(t *testing.T) {
	mockRepo := &MockLeaderboardRepository{}
	mockUserRepo := &user.MockUserRepository{}
	service := NewLeaderboardService(mockRepo, mockUserRepo)

	mockUserRepo.On("AllProfiles").Return([]user.Profile{
		{UserID: 1, Exp: 10},
		{UserID: 2, Exp: 250},
	}, nil)
	mockRepo.On("Clear").Return(nil)
	mockRepo.On("SetScore", uint(1), 10).Return(nil)
	mockRepo.On("SetScore", uint(2), 250).Return(nil)

	err := service.Rebuild()
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}
