package battle

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wordarena/WordArena/internal/apperrors"
	"github.com/wordarena/WordArena/pkg/db"
)

var ctx = context.Background()

func queueKey(gameType string) string {
	return fmt.Sprintf("queue:%s", gameType)
}

// QueueEntry is a waiting player together with their enqueue timestamp, the
// sorted-set score that decides FIFO order.
type QueueEntry struct {
	PlayerID string
	Score    float64
}

type QueueRepository interface {
	Enqueue(playerID, gameType string) error
	Dequeue(playerID, gameType string) error
	InQueue(playerID, gameType string) (bool, error)
	QueuePosition(playerID, gameType string) (int, error)
	QueueLength(gameType string) (int64, error)
	OldestPair(gameType string) ([]QueueEntry, error)
	Requeue(gameType string, entries []QueueEntry) error
	EvictStale(gameType string, olderThan time.Duration) (int64, error)
}

type RedisQueueRepository struct{}

func NewRedisQueueRepository() *RedisQueueRepository {
	return &RedisQueueRepository{}
}

func (r *RedisQueueRepository) Enqueue(playerID, gameType string) error {
	timestamp := float64(time.Now().Unix())
	err := db.Rdb.ZAdd(ctx, queueKey(gameType), redis.Z{
		Score:  timestamp,
		Member: playerID,
	}).Err()
	if err != nil {
		return apperrors.NewAppError(500, "Error joining matchmaking queue", err)
	}

	return nil
}

// Dequeue removes only the given player's entry. Other waiting players are
// never touched.
func (r *RedisQueueRepository) Dequeue(playerID, gameType string) error {
	if err := db.Rdb.ZRem(ctx, queueKey(gameType), playerID).Err(); err != nil {
		return apperrors.NewAppError(500, "Error leaving matchmaking queue", err)
	}

	return nil
}

func (r *RedisQueueRepository) InQueue(playerID, gameType string) (bool, error) {
	_, err := db.Rdb.ZScore(ctx, queueKey(gameType), playerID).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, apperrors.NewAppError(500, "Error checking matchmaking queue", err)
	}

	return true, nil
}

func (r *RedisQueueRepository) QueuePosition(playerID, gameType string) (int, error) {
	rank, err := db.Rdb.ZRank(ctx, queueKey(gameType), playerID).Result()
	if err == redis.Nil {
		return -1, nil
	} else if err != nil {
		return -1, apperrors.NewAppError(500, "Error reading queue position", err)
	}

	return int(rank) + 1, nil
}

func (r *RedisQueueRepository) QueueLength(gameType string) (int64, error) {
	length, err := db.Rdb.ZCard(ctx, queueKey(gameType)).Result()
	if err != nil {
		return 0, apperrors.NewAppError(500, "Error reading queue length", err)
	}

	return length, nil
}

// OldestPair returns the two longest-waiting players and removes them from
// the queue, or nil when fewer than two are waiting. Scores come along so a
// failed pairing can be undone without losing the players' place in line.
func (r *RedisQueueRepository) OldestPair(gameType string) ([]QueueEntry, error) {
	members, err := db.Rdb.ZRangeWithScores(ctx, queueKey(gameType), 0, 1).Result()
	if err != nil {
		return nil, apperrors.NewAppError(500, "Error reading matchmaking queue", err)
	}

	if len(members) < 2 {
		return nil, nil
	}

	if err := db.Rdb.ZRem(ctx, queueKey(gameType), members[0].Member, members[1].Member).Err(); err != nil {
		return nil, apperrors.NewAppError(500, "Error removing paired players from queue", err)
	}

	pair := make([]QueueEntry, 0, 2)
	for _, m := range members {
		pair = append(pair, QueueEntry{
			PlayerID: m.Member.(string),
			Score:    m.Score,
		})
	}

	return pair, nil
}

// Requeue restores entries with their original scores, keeping the players'
// position at the front of the line.
func (r *RedisQueueRepository) Requeue(gameType string, entries []QueueEntry) error {
	members := make([]redis.Z, 0, len(entries))
	for _, e := range entries {
		members = append(members, redis.Z{Score: e.Score, Member: e.PlayerID})
	}

	if err := db.Rdb.ZAdd(ctx, queueKey(gameType), members...).Err(); err != nil {
		return apperrors.NewAppError(500, "Error restoring matchmaking queue entries", err)
	}

	return nil
}

func (r *RedisQueueRepository) EvictStale(gameType string, olderThan time.Duration) (int64, error) {
	cutoff := float64(time.Now().Add(-olderThan).Unix())
	removed, err := db.Rdb.ZRemRangeByScore(ctx, queueKey(gameType), "0", fmt.Sprintf("%f", cutoff)).Result()
	if err != nil {
		return 0, apperrors.NewAppError(500, "Error evicting stale queue entries", err)
	}

	return removed, nil
}
