package leaderboard

import (
	"github.com/wordarena/WordArena/internal/user"
)

const DefaultLimit = 25
const MaxLimit = 100

type LeaderboardService struct {
	repo     LeaderboardRepository
	userRepo user.UserRepository
}

func NewLeaderboardService(repo LeaderboardRepository, userRepo user.UserRepository) *LeaderboardService {
	return &LeaderboardService{repo: repo, userRepo: userRepo}
}

func (s *LeaderboardService) Top(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	members, err := s.repo.TopN(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(members))
	for i, m := range members {
		username, err := s.userRepo.GetUserUsername(int(m.UserID))
		if err != nil {
			continue
		}
		entry := Entry{
			Position: i + 1,
			UserID:   m.UserID,
			Username: username,
			Exp:      m.Exp,
			Rank:     user.RankForExp(m.Exp),
		}
		if profile, err := s.userRepo.GetProfile(int(m.UserID)); err == nil {
			entry.AvatarURL = profile.AvatarURL
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *LeaderboardService) StandingOf(userID uint) (*Standing, error) {
	return s.repo.StandingOf(userID)
}

func (s *LeaderboardService) Record(userID uint, exp int) error {
	return s.repo.SetScore(userID, exp)
}

// Rebuild repopulates the redis sorted set from the profiles table. Used at
// startup so a flushed redis does not lose the leaderboard.
func (s *LeaderboardService) Rebuild() error {
	profiles, err := s.userRepo.AllProfiles()
	if err != nil {
		return err
	}

	if err := s.repo.Clear(); err != nil {
		return err
	}

	for _, p := range profiles {
		if err := s.repo.SetScore(p.UserID, p.Exp); err != nil {
			return err
		}
	}

	return nil
}
