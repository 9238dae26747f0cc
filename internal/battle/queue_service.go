package battle

import (
	"github.com/wordarena/WordArena/internal/apperrors"
	"github.com/wordarena/WordArena/internal/battle/state"
)

var gameTypes = []string{state.TypeReading, state.TypeSpelling}

func validGameType(gameType string) bool {
	for _, t := range gameTypes {
		if t == gameType {
			return true
		}
	}
	return false
}

type QueueService struct {
	repo     QueueRepository
	sessions SessionRepository
}

func NewQueueService(repo QueueRepository, sessions SessionRepository) *QueueService {
	return &QueueService{repo: repo, sessions: sessions}
}

func (q *QueueService) JoinQueue(playerID, gameType string) error {
	if !validGameType(gameType) {
		return apperrors.NewAppError(400, "game type must be READING or SPELLING", nil)
	}

	sessionID, err := q.sessions.GetPlayerSession(playerID)
	if err != nil {
		return err
	}
	if sessionID != "" {
		return apperrors.NewAppError(400, "Player already in a battle", nil)
	}

	for _, t := range gameTypes {
		queued, err := q.repo.InQueue(playerID, t)
		if err != nil {
			return err
		}
		if queued {
			return apperrors.NewAppError(400, "Player already in queue", nil)
		}
	}

	return q.repo.Enqueue(playerID, gameType)
}

// LeaveQueue drops the caller's own pending entry. It never touches other
// players' entries.
func (q *QueueService) LeaveQueue(playerID, gameType string) error {
	if !validGameType(gameType) {
		return apperrors.NewAppError(400, "game type must be READING or SPELLING", nil)
	}

	queued, err := q.repo.InQueue(playerID, gameType)
	if err != nil {
		return err
	}
	if !queued {
		return apperrors.NewAppError(400, "Player is not in queue", nil)
	}

	return q.repo.Dequeue(playerID, gameType)
}

// LeaveAllQueues is used on disconnect, where the pending type is unknown.
func (q *QueueService) LeaveAllQueues(playerID string) error {
	for _, t := range gameTypes {
		queued, err := q.repo.InQueue(playerID, t)
		if err != nil {
			return err
		}
		if queued {
			if err := q.repo.Dequeue(playerID, t); err != nil {
				return err
			}
		}
	}

	return nil
}

func (q *QueueService) Status(playerID string) (*QueueStatus, error) {
	for _, t := range gameTypes {
		queued, err := q.repo.InQueue(playerID, t)
		if err != nil {
			return nil, err
		}
		if !queued {
			continue
		}

		position, err := q.repo.QueuePosition(playerID, t)
		if err != nil {
			return nil, err
		}
		waiting, err := q.repo.QueueLength(t)
		if err != nil {
			return nil, err
		}

		return &QueueStatus{
			InQueue:  true,
			Type:     t,
			Position: position,
			Waiting:  waiting,
		}, nil
	}

	return &QueueStatus{InQueue: false}, nil
}
