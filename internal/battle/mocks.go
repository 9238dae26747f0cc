package battle

import (
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/wordarena/WordArena/internal/battle/state"
)

type MockQueueRepository struct {
	mock.Mock
}

func (m *MockQueueRepository) Enqueue(playerID, gameType string) error {
	args := m.Called(playerID, gameType)
	return args.Error(0)
}

func (m *MockQueueRepository) Dequeue(playerID, gameType string) error {
	args := m.Called(playerID, gameType)
	return args.Error(0)
}

func (m *MockQueueRepository) InQueue(playerID, gameType string) (bool, error) {
	args := m.Called(playerID, gameType)
	return args.Bool(0), args.Error(1)
}

func (m *MockQueueRepository) QueuePosition(playerID, gameType string) (int, error) {
	args := m.Called(playerID, gameType)
	return args.Int(0), args.Error(1)
}

func (m *MockQueueRepository) QueueLength(gameType string) (int64, error) {
	args := m.Called(gameType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueueRepository) OldestPair(gameType string) ([]QueueEntry, error) {
	args := m.Called(gameType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) Requeue(gameType string, entries []QueueEntry) error {
	args := m.Called(gameType, entries)
	return args.Error(0)
}

func (m *MockQueueRepository) EvictStale(gameType string, olderThan time.Duration) (int64, error) {
	args := m.Called(gameType, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(session *state.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSession(id string) (*state.Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*state.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSessionRepository) SavePlayerSession(playerID, sessionID string) error {
	args := m.Called(playerID, sessionID)
	return args.Error(0)
}

func (m *MockSessionRepository) GetPlayerSession(playerID string) (string, error) {
	args := m.Called(playerID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) DeletePlayerSession(playerID string) error {
	args := m.Called(playerID)
	return args.Error(0)
}

func (m *MockSessionRepository) PublishToPlayers(payload string) {
	m.Called(payload)
}

func (m *MockSessionRepository) SubscribeMessages() error {
	args := m.Called()
	return args.Error(0)
}

type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) CreateMatch(match *Match) error {
	args := m.Called(match)
	return args.Error(0)
}

func (m *MockMatchRepository) MatchesFor(userID uint, limit int) ([]Match, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Match), args.Error(1)
}
