package battle

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/wordarena/WordArena/pkg/logger"
)

const pairInterval = 2 * time.Second
const staleAfter = 2 * time.Minute

type Matchmaker struct {
	queue    QueueRepository
	sessions *SessionService
}

func NewMatchmaker(queue QueueRepository, sessions *SessionService) *Matchmaker {
	return &Matchmaker{queue: queue, sessions: sessions}
}

// Start runs the pairing and eviction jobs in the background.
func (m *Matchmaker) Start() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Every couple of seconds: pair the two longest-waiting players per type
	_, _ = sched.NewJob(
		gocron.DurationJob(pairInterval),
		gocron.NewTask(func() {
			for _, gameType := range gameTypes {
				m.pairOnce(gameType)
			}
		}),
	)

	// Every minute: drop entries from players that stopped polling
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			for _, gameType := range gameTypes {
				removed, err := m.queue.EvictStale(gameType, staleAfter)
				if err != nil {
					logger.Errorf("[Matchmaker] eviction error: %v", err)
					continue
				}
				if removed > 0 {
					logger.Infof("[Matchmaker] evicted %d stale %s queue entries", removed, gameType)
				}
			}
		}),
	)
}

// pairOnce drains the queue two players at a time until fewer than two wait.
func (m *Matchmaker) pairOnce(gameType string) {
	for {
		pair, err := m.queue.OldestPair(gameType)
		if err != nil {
			logger.Errorf("[Matchmaker] pairing error: %v", err)
			return
		}
		if pair == nil {
			return
		}

		playerIDs := make([]string, 0, len(pair))
		for _, entry := range pair {
			playerIDs = append(playerIDs, entry.PlayerID)
		}

		if _, err := m.sessions.CreateSession(gameType, playerIDs); err != nil {
			logger.Errorf("[Matchmaker] failed to create %s session for %v: %v", gameType, playerIDs, err)
			// Give both players their original spot back instead of
			// dropping them or sending them to the back of the line.
			if errQ := m.queue.Requeue(gameType, pair); errQ != nil {
				logger.Errorf("[Matchmaker] failed to requeue %v: %v", playerIDs, errQ)
			}
			return
		}

		logger.Infof("[Matchmaker] paired %v for %s", playerIDs, gameType)
	}
}
