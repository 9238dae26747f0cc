package battle

import (
	"errors"
	"testing"

	"github.com/wordarena/WordArena/internal/battle/state"
)

// A failed session keeps both players at the front of the line instead of
// sending them to the back with fresh timestamps.
func TestMatchmaker_RequeuesPairWithOriginalScores(t *testing.T) {
	svc, m := newTestSessionService()
	queue := &MockQueueRepository{}

	pair := []QueueEntry{
		{PlayerID: "1", Score: 1000},
		{PlayerID: "2", Score: 1005},
	}
	queue.On("OldestPair", state.TypeSpelling).Return(pair, nil).Once()
	m.users.On("GetUserUsername", 1).Return("", errors.New("connection refused"))
	queue.On("Requeue", state.TypeSpelling, pair).Return(nil)

	mm := NewMatchmaker(queue, svc)
	mm.pairOnce(state.TypeSpelling)

	queue.AssertCalled(t, "Requeue", state.TypeSpelling, pair)
	queue.AssertNotCalled(t, "Enqueue")
	queue.AssertExpectations(t)
}
