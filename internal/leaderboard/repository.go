package leaderboard

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/wordarena/WordArena/internal/apperrors"
	"github.com/wordarena/WordArena/pkg/db"
)

const leaderboardKey = "leaderboard:exp"

var ctx = context.Background()

type ScoredMember struct {
	UserID uint
	Exp    int
}

type LeaderboardRepository interface {
	SetScore(userID uint, exp int) error
	TopN(limit int) ([]ScoredMember, error)
	StandingOf(userID uint) (*Standing, error)
	Clear() error
}

type RedisLeaderboardRepository struct{}

func NewRedisLeaderboardRepository() *RedisLeaderboardRepository {
	return &RedisLeaderboardRepository{}
}

func (r *RedisLeaderboardRepository) SetScore(userID uint, exp int) error {
	member := strconv.Itoa(int(userID))
	err := db.Rdb.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(exp),
		Member: member,
	}).Err()
	if err != nil {
		return apperrors.NewAppError(500, "Error updating leaderboard", err)
	}

	return nil
}

func (r *RedisLeaderboardRepository) TopN(limit int) ([]ScoredMember, error) {
	results, err := db.Rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, apperrors.NewAppError(500, "Error reading leaderboard", err)
	}

	members := make([]ScoredMember, 0, len(results))
	for _, z := range results {
		id, err := strconv.Atoi(z.Member.(string))
		if err != nil {
			continue
		}
		members = append(members, ScoredMember{
			UserID: uint(id),
			Exp:    int(z.Score),
		})
	}

	return members, nil
}

func (r *RedisLeaderboardRepository) StandingOf(userID uint) (*Standing, error) {
	member := strconv.Itoa(int(userID))

	rank, err := db.Rdb.ZRevRank(ctx, leaderboardKey, member).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, apperrors.NewAppError(500, "Error reading leaderboard rank", err)
	}

	score, err := db.Rdb.ZScore(ctx, leaderboardKey, member).Result()
	if err != nil {
		return nil, apperrors.NewAppError(500, "Error reading leaderboard score", err)
	}

	return &Standing{
		Position: int(rank) + 1,
		Exp:      int(score),
	}, nil
}

func (r *RedisLeaderboardRepository) Clear() error {
	if err := db.Rdb.Del(ctx, leaderboardKey).Err(); err != nil {
		return apperrors.NewAppError(500, "Error clearing leaderboard", err)
	}

	return nil
}
