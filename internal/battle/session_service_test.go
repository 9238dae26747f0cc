package battle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wordarena/WordArena/internal/battle/state"
	"github.com/wordarena/WordArena/internal/content"
	"github.com/wordarena/WordArena/internal/leaderboard"
	"github.com/wordarena/WordArena/internal/user"
)

type sessionServiceMocks struct {
	sessions *MockSessionRepository
	matches  *MockMatchRepository
	users    *user.MockUserRepository
	lb       *leaderboard.MockLeaderboardRepository
	contents *content.MockContentRepository
}

func newTestSessionService() (*SessionService, *sessionServiceMocks) {
	m := &sessionServiceMocks{
		sessions: &MockSessionRepository{},
		matches:  &MockMatchRepository{},
		users:    &user.MockUserRepository{},
		lb:       &leaderboard.MockLeaderboardRepository{},
		contents: &content.MockContentRepository{},
	}

	userService := user.NewUserService(m.users)
	lbService := leaderboard.NewLeaderboardService(m.lb, m.users)
	contentService := content.NewContentService(m.contents)

	svc := NewSessionService(m.sessions, m.matches, m.users, userService, lbService, contentService)
	return svc, m
}

func newSpellingSession(t *testing.T, items []state.Item) *state.Session {
	session := &state.Session{
		ID:    "sess1",
		Type:  state.TypeSpelling,
		Phase: state.PhaseAnswering,
		Items: items,
		Players: map[string]*state.SessionPlayer{
			"1": {ID: "1", Username: "alice"},
			"2": {ID: "2", Username: "bob"},
		},
	}

	state.RegisterPlayer("1", nil)
	state.RegisterPlayer("2", nil)
	state.GetPlayer("1").Session = session
	state.GetPlayer("2").Session = session

	t.Cleanup(func() {
		state.UnregisterPlayer("1")
		state.UnregisterPlayer("2")
	})

	return session
}

func TestSessionService_SubmitAnswer_ScoresExactMatches(t *testing.T) {
	svc, m := newTestSessionService()
	session := newSpellingSession(t, []state.Item{
		{Prompt: "a place with books", Answer: "library"},
		{Prompt: "empty space", Answer: "vacuum"},
	})

	m.sessions.On("SaveSession", session).Return(nil)
	m.sessions.On("PublishToPlayers", mock.Anything).Return()

	// Leading/trailing space and case are normalized for spelling answers.
	err := svc.SubmitAnswer("1", 0, "  Library ")
	assert.NoError(t, err)
	err = svc.SubmitAnswer("1", 1, "vacum")
	assert.NoError(t, err)

	player := session.Players["1"]
	assert.Equal(t, 1, player.Score)
	assert.Equal(t, 2, player.Progress)
	assert.True(t, player.Finished)
}

func TestSessionService_SubmitAnswer_OutOfOrder(t *testing.T) {
	svc, _ := newTestSessionService()
	newSpellingSession(t, []state.Item{
		{Answer: "library"},
		{Answer: "vacuum"},
	})

	err := svc.SubmitAnswer("1", 1, "vacuum")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "in order")
}

func TestSessionService_SubmitAnswer_NotInBattle(t *testing.T) {
	svc, m := newTestSessionService()
	m.sessions.On("GetPlayerSession", "99").Return("", nil)

	err := svc.SubmitAnswer("99", 0, "anything")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not in a battle")
}

// A connected player whose local session pointer is gone, e.g. after an
// instance restart, gets their battle back from the store.
func TestSessionService_SubmitAnswer_RecoversSessionFromStore(t *testing.T) {
	svc, m := newTestSessionService()

	session := &state.Session{
		ID:    "sess9",
		Type:  state.TypeSpelling,
		Phase: state.PhaseAnswering,
		Items: []state.Item{{Answer: "library"}, {Answer: "vacuum"}},
		Players: map[string]*state.SessionPlayer{
			"1": {ID: "1", Username: "alice"},
			"2": {ID: "2", Username: "bob"},
		},
	}

	state.RegisterPlayer("1", nil)
	t.Cleanup(func() { state.UnregisterPlayer("1") })

	m.sessions.On("GetPlayerSession", "1").Return("sess9", nil)
	m.sessions.On("GetSession", "sess9").Return(session, nil)
	m.sessions.On("SaveSession", session).Return(nil)
	m.sessions.On("PublishToPlayers", mock.Anything).Return()

	assert.NoError(t, svc.SubmitAnswer("1", 0, "library"))
	assert.Same(t, session, state.GetPlayer("1").Session)
	assert.Equal(t, 1, session.Players["1"].Score)
}

func TestSessionService_SubmitAnswer_PersistsWhileLocked(t *testing.T) {
	svc, m := newTestSessionService()
	session := newSpellingSession(t, []state.Item{
		{Answer: "library"},
		{Answer: "vacuum"},
	})

	m.sessions.On("PublishToPlayers", mock.Anything).Return()
	m.sessions.On("SaveSession", session).Run(func(args mock.Arguments) {
		// Persisting marshals the shared session, so the caller must still
		// hold the session lock at this point.
		if session.Mu.TryLock() {
			session.Mu.Unlock()
			t.Error("session persisted without holding the session lock")
		}
	}).Return(nil)

	assert.NoError(t, svc.SubmitAnswer("1", 0, "library"))
	m.sessions.AssertCalled(t, "SaveSession", session)
}

func TestSessionService_SubmitAnswer_WrongPhase(t *testing.T) {
	svc, _ := newTestSessionService()
	session := newSpellingSession(t, []state.Item{{Answer: "library"}})
	session.Phase = state.PhasePreparing

	err := svc.SubmitAnswer("1", 0, "library")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not accepting answers")
}

func TestSessionService_BothFinished_FinalizesMatch(t *testing.T) {
	svc, m := newTestSessionService()
	session := newSpellingSession(t, []state.Item{
		{Answer: "library"},
		{Answer: "vacuum"},
	})

	m.sessions.On("SaveSession", session).Return(nil)
	m.sessions.On("PublishToPlayers", mock.Anything).Return()
	m.sessions.On("DeletePlayerSession", "1").Return(nil)
	m.sessions.On("DeletePlayerSession", "2").Return(nil)
	m.sessions.On("DeleteSession", "sess1").Return(nil)

	exp1 := ExpForResult(2, 2, true)
	exp2 := ExpForResult(0, 2, false)
	m.users.On("AddExp", 1, exp1).Return(&user.Profile{UserID: 1, Exp: 100}, nil)
	m.users.On("AddExp", 2, exp2).Return(&user.Profile{UserID: 2, Exp: 40}, nil)
	m.lb.On("SetScore", uint(1), 100).Return(nil)
	m.lb.On("SetScore", uint(2), 40).Return(nil)

	m.matches.On("CreateMatch", mock.MatchedBy(func(match *Match) bool {
		return match.Player1ID == 1 &&
			match.Player2ID == 2 &&
			match.Player1Score == 2 &&
			match.Player2Score == 0 &&
			match.WinnerID != nil && *match.WinnerID == 1 &&
			match.Player1Exp == exp1 &&
			match.Player2Exp == exp2 &&
			match.Type == state.TypeSpelling
	})).Return(nil)

	assert.NoError(t, svc.SubmitAnswer("1", 0, "library"))
	assert.NoError(t, svc.SubmitAnswer("1", 1, "vacuum"))
	assert.NoError(t, svc.SubmitAnswer("2", 0, "wrong"))
	assert.NoError(t, svc.SubmitAnswer("2", 1, "also wrong"))

	assert.Equal(t, state.PhaseFinished, session.Phase)
	assert.Nil(t, state.GetPlayer("1").Session)
	assert.Nil(t, state.GetPlayer("2").Session)
	m.matches.AssertExpectations(t)
	m.lb.AssertExpectations(t)
}

func TestSessionService_EqualScores_Draw(t *testing.T) {
	svc, m := newTestSessionService()
	newSpellingSession(t, []state.Item{{Answer: "library"}})

	m.sessions.On("SaveSession", mock.Anything).Return(nil)
	m.sessions.On("PublishToPlayers", mock.Anything).Return()
	m.sessions.On("DeletePlayerSession", mock.Anything).Return(nil)
	m.sessions.On("DeleteSession", "sess1").Return(nil)

	exp := ExpForResult(1, 1, false)
	m.users.On("AddExp", 1, exp).Return(&user.Profile{UserID: 1, Exp: 50}, nil)
	m.users.On("AddExp", 2, exp).Return(&user.Profile{UserID: 2, Exp: 50}, nil)
	m.lb.On("SetScore", mock.Anything, 50).Return(nil)

	m.matches.On("CreateMatch", mock.MatchedBy(func(match *Match) bool {
		return match.WinnerID == nil && match.Player1Score == 1 && match.Player2Score == 1
	})).Return(nil)

	assert.NoError(t, svc.SubmitAnswer("1", 0, "library"))
	assert.NoError(t, svc.SubmitAnswer("2", 0, "library"))
	m.matches.AssertExpectations(t)
}

func TestSessionService_Forfeit_OpponentWins(t *testing.T) {
	svc, m := newTestSessionService()
	session := newSpellingSession(t, []state.Item{{Answer: "library"}})

	m.sessions.On("SaveSession", mock.Anything).Return(nil)
	m.sessions.On("PublishToPlayers", mock.Anything).Return()
	m.sessions.On("DeletePlayerSession", mock.Anything).Return(nil)
	m.sessions.On("DeleteSession", "sess1").Return(nil)

	m.users.On("AddExp", mock.Anything, mock.Anything).Return(&user.Profile{UserID: 1, Exp: 10}, nil)
	m.lb.On("SetScore", mock.Anything, mock.Anything).Return(nil)

	// Player 1 forfeits with the better score; player 2 still wins.
	session.Players["1"].Score = 1
	m.matches.On("CreateMatch", mock.MatchedBy(func(match *Match) bool {
		return match.WinnerID != nil && *match.WinnerID == 2
	})).Return(nil)

	err := svc.Forfeit("1", "")
	assert.NoError(t, err)
	assert.Equal(t, state.PhaseFinished, session.Phase)
	m.matches.AssertExpectations(t)
}

func TestSessionService_Forfeit_SessionMismatch(t *testing.T) {
	svc, _ := newTestSessionService()
	session := newSpellingSession(t, []state.Item{{Answer: "library"}})

	err := svc.Forfeit("1", "someOtherBattle")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "different battle")
	assert.Equal(t, state.PhaseAnswering, session.Phase)
}

func TestSessionService_CreateSession_StartsLoading(t *testing.T) {
	svc, m := newTestSessionService()

	m.users.On("GetUserUsername", 1).Return("alice", nil)
	m.users.On("GetUserUsername", 2).Return("bob", nil)
	m.contents.On("GetRandomWords", content.DefaultWordCount).Return([]content.SpellingWord{
		{Word: "Library", Definition: "a place with books"},
	}, nil)

	var publishMu sync.Mutex
	var published []string
	m.sessions.On("SaveSession", mock.Anything).Return(nil)
	m.sessions.On("SavePlayerSession", mock.Anything, mock.Anything).Return(nil)
	m.sessions.On("PublishToPlayers", mock.Anything).Run(func(args mock.Arguments) {
		publishMu.Lock()
		published = append(published, args.String(0))
		publishMu.Unlock()
	}).Return()

	// The background phase runner may reach finalization if the suite is
	// still going when the timers fire.
	m.sessions.On("DeletePlayerSession", mock.Anything).Return(nil).Maybe()
	m.sessions.On("DeleteSession", mock.Anything).Return(nil).Maybe()
	m.matches.On("CreateMatch", mock.Anything).Return(nil).Maybe()
	m.users.On("AddExp", mock.Anything, mock.Anything).Return(&user.Profile{}, nil).Maybe()
	m.lb.On("SetScore", mock.Anything, mock.Anything).Return(nil).Maybe()

	session, err := svc.CreateSession(state.TypeSpelling, []string{"1", "2"})
	assert.NoError(t, err)
	assert.NotNil(t, session)

	// The match announcement goes out before any phase timer runs, so both
	// clients first see the battle in its loading phase.
	publishMu.Lock()
	first := published[0]
	publishMu.Unlock()
	assert.Contains(t, first, "MATCH_FOUND")
	assert.Contains(t, first, state.PhaseLoading)
}

func TestSessionService_History(t *testing.T) {
	svc, m := newTestSessionService()

	winner := uint(1)
	m.matches.On("MatchesFor", uint(1), 20).Return([]Match{
		{ID: 10, Player1ID: 1, Player2ID: 2, WinnerID: &winner, Type: state.TypeReading,
			Player1Score: 3, Player2Score: 1, Player1Exp: 75, Player2Exp: 18},
		{ID: 11, Player1ID: 2, Player2ID: 1, WinnerID: nil, Type: state.TypeSpelling,
			Player1Score: 2, Player2Score: 2, Player1Exp: 26, Player2Exp: 26},
	}, nil)
	m.users.On("GetUserUsername", 2).Return("bob", nil)

	entries, err := svc.History(1, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	assert.Equal(t, "WIN", entries[0].Result)
	assert.Equal(t, "bob", entries[0].Opponent)
	assert.Equal(t, 3, entries[0].MyScore)
	assert.Equal(t, 1, entries[0].OpponentScore)
	assert.Equal(t, 75, entries[0].ExpEarned)

	assert.Equal(t, "DRAW", entries[1].Result)
	assert.Equal(t, 2, entries[1].MyScore)
	assert.Equal(t, 26, entries[1].ExpEarned)
}
