package battle

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wordarena/WordArena/internal/apperrors"
	"github.com/wordarena/WordArena/internal/battle/state"
	"github.com/wordarena/WordArena/internal/content"
	"github.com/wordarena/WordArena/internal/leaderboard"
	"github.com/wordarena/WordArena/internal/user"
	"github.com/wordarena/WordArena/pkg/logger"
)

const readingPrepareSeconds = 45
const spellingPrepareSeconds = 10
const answerSecondsPerItem = 20

// ItemView is an Item stripped of its answer, safe to send to clients.
type ItemView struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
	Hint    string   `json:"hint,omitempty"`
}

type PlayerView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type SessionView struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	Phase        string       `json:"phase"`
	PassageTitle string       `json:"passageTitle,omitempty"`
	PassageBody  string       `json:"passageBody,omitempty"`
	Items        []ItemView   `json:"items"`
	Players      []PlayerView `json:"players"`
	Deadline     int64        `json:"deadline"`
}

type PhaseMessage struct {
	SessionID string `json:"sessionId"`
	Phase     string `json:"phase"`
	Deadline  int64  `json:"deadline"`
}

type ProgressMessage struct {
	PlayerID string `json:"playerId"`
	Progress int    `json:"progress"`
	Finished bool   `json:"finished"`
}

type ResultMessage struct {
	SessionID string         `json:"sessionId"`
	WinnerID  string         `json:"winnerId,omitempty"`
	Draw      bool           `json:"draw"`
	Scores    map[string]int `json:"scores"`
	Exp       map[string]int `json:"exp"`
	Total     int            `json:"total"`
}

type SessionService struct {
	sessions    SessionRepository
	matches     MatchRepository
	userRepo    user.UserRepository
	userService *user.UserService
	lb          *leaderboard.LeaderboardService
	contents    *content.ContentService
}

func NewSessionService(
	sessions SessionRepository,
	matches MatchRepository,
	userRepo user.UserRepository,
	userService *user.UserService,
	lb *leaderboard.LeaderboardService,
	contents *content.ContentService,
) *SessionService {
	return &SessionService{
		sessions:    sessions,
		matches:     matches,
		userRepo:    userRepo,
		userService: userService,
		lb:          lb,
		contents:    contents,
	}
}

// CreateSession builds a battle for two paired players, stores it, notifies
// both sides and starts the phase timers.
func (s *SessionService) CreateSession(gameType string, playerIDs []string) (*state.Session, error) {
	if len(playerIDs) != 2 {
		return nil, apperrors.NewAppError(400, "a battle needs exactly two players", nil)
	}

	session := &state.Session{
		ID:        uuid.New().String()[:8],
		Type:      gameType,
		Phase:     state.PhaseLoading,
		Players:   make(map[string]*state.SessionPlayer),
		CreatedAt: time.Now().Unix(),
	}

	for _, playerID := range playerIDs {
		id, err := strconv.Atoi(playerID)
		if err != nil {
			return nil, apperrors.NewAppError(400, "Invalid player ID", err)
		}
		username, errDB := s.userRepo.GetUserUsername(id)
		if errDB != nil {
			return nil, apperrors.NewAppError(500, "Error loading player", errDB)
		}
		session.Players[playerID] = &state.SessionPlayer{
			ID:       playerID,
			Username: username,
		}
	}

	prepareSeconds := spellingPrepareSeconds
	if gameType == state.TypeReading {
		passage, err := s.contents.RandomPassage()
		if err != nil {
			return nil, err
		}
		session.PassageTitle = passage.Title
		session.PassageBody = passage.Body
		for i := range passage.Questions {
			q := &passage.Questions[i]
			options, err := content.OptionList(q)
			if err != nil {
				return nil, err
			}
			session.Items = append(session.Items, state.Item{
				Prompt:  q.Prompt,
				Options: options,
				Answer:  strconv.Itoa(q.CorrectIndex),
			})
		}
		prepareSeconds = readingPrepareSeconds
	} else {
		words, err := s.contents.RandomWords(content.DefaultWordCount)
		if err != nil {
			return nil, err
		}
		for _, w := range words {
			session.Items = append(session.Items, state.Item{
				Prompt: w.Definition,
				Hint:   w.Hint,
				Answer: strings.ToLower(w.Word),
			})
		}
	}

	session.Deadline = time.Now().Add(time.Duration(prepareSeconds) * time.Second).Unix()

	if err := s.sessions.SaveSession(session); err != nil {
		return nil, err
	}

	for _, playerID := range playerIDs {
		if err := s.sessions.SavePlayerSession(playerID, session.ID); err != nil {
			return nil, err
		}
		if player := state.GetPlayer(playerID); player != nil {
			player.Session = session
		}
	}

	s.publish(GameMessage{
		Type:    "MATCH_FOUND",
		Payload: s.viewOf(session),
		Users:   playerIDs,
	})

	go s.runSession(session)

	return session, nil
}

// runSession drives the forward-only phase transitions on the server clock.
// Finalization is idempotent, so a deadline firing after both players
// finished is a no-op.
func (s *SessionService) runSession(session *state.Session) {
	session.Mu.Lock()
	if session.Phase != state.PhaseLoading {
		session.Mu.Unlock()
		return
	}
	session.Phase = state.PhasePreparing
	prepareDeadline := session.Deadline
	users := s.playerIDs(session)
	if err := s.sessions.SaveSession(session); err != nil {
		logger.Errorf("Error saving session %s: %v", session.ID, err)
	}
	session.Mu.Unlock()

	s.publish(GameMessage{
		Type: "PHASE_CHANGE",
		Payload: PhaseMessage{
			SessionID: session.ID,
			Phase:     state.PhasePreparing,
			Deadline:  prepareDeadline,
		},
		Users: users,
	})

	time.Sleep(time.Until(time.Unix(prepareDeadline, 0)))

	session.Mu.Lock()
	if session.Phase != state.PhasePreparing {
		session.Mu.Unlock()
		return
	}
	session.Phase = state.PhaseAnswering
	session.Deadline = time.Now().
		Add(time.Duration(answerSecondsPerItem*len(session.Items)) * time.Second).Unix()
	deadline := session.Deadline
	if err := s.sessions.SaveSession(session); err != nil {
		logger.Errorf("Error saving session %s: %v", session.ID, err)
	}
	session.Mu.Unlock()

	s.publish(GameMessage{
		Type: "PHASE_CHANGE",
		Payload: PhaseMessage{
			SessionID: session.ID,
			Phase:     state.PhaseAnswering,
			Deadline:  deadline,
		},
		Users: users,
	})

	time.Sleep(time.Until(time.Unix(deadline, 0)))
	s.finalize(session, "")
}

// SubmitAnswer records one answer for the player's current item. Items must
// be answered in order; skipped or late items simply score zero.
func (s *SessionService) SubmitAnswer(playerID string, itemIndex int, answer string) error {
	session, err := s.sessionOf(playerID)
	if err != nil {
		return err
	}

	session.Mu.Lock()
	if session.Phase != state.PhaseAnswering {
		session.Mu.Unlock()
		return apperrors.NewAppError(400, "Battle is not accepting answers", nil)
	}

	player, ok := session.Players[playerID]
	if !ok {
		session.Mu.Unlock()
		return apperrors.NewAppError(404, "Player not found in battle", nil)
	}

	if player.Finished {
		session.Mu.Unlock()
		return apperrors.NewAppError(400, "Player already finished", nil)
	}

	if itemIndex != player.Progress {
		session.Mu.Unlock()
		return apperrors.NewAppError(400, "Answers must be submitted in order", nil)
	}

	normalized := strings.TrimSpace(answer)
	if session.Type == state.TypeSpelling {
		normalized = strings.ToLower(normalized)
	}

	player.Answers = append(player.Answers, normalized)
	if normalized == session.Items[itemIndex].Answer {
		player.Score++
	}
	player.Progress++

	if player.Progress == len(session.Items) {
		player.Finished = true
	}

	allFinished := true
	for _, p := range session.Players {
		if !p.Finished {
			allFinished = false
			break
		}
	}

	users := s.playerIDs(session)
	progress := ProgressMessage{
		PlayerID: playerID,
		Progress: player.Progress,
		Finished: player.Finished,
	}

	// Persist while still holding Mu: SaveSession marshals the shared
	// session and must not race with the opponent's mutation.
	if err := s.sessions.SaveSession(session); err != nil {
		logger.Errorf("Error saving session %s: %v", session.ID, err)
	}
	session.Mu.Unlock()

	s.publish(GameMessage{
		Type:    "OPPONENT_PROGRESS",
		Payload: progress,
		Users:   otherPlayers(users, playerID),
	})

	if allFinished {
		s.finalize(session, "")
	}

	return nil
}

// Forfeit ends the battle immediately; the remaining player wins regardless
// of score. A non-empty sessionID must match the player's current battle,
// protecting against a stale client giving up a battle it is no longer in.
func (s *SessionService) Forfeit(playerID, sessionID string) error {
	session, err := s.sessionOf(playerID)
	if err != nil {
		return err
	}

	if sessionID != "" && sessionID != session.ID {
		return apperrors.NewAppError(400, "Forfeit is for a different battle", nil)
	}

	s.finalize(session, playerID)
	return nil
}

// HandleDisconnect treats a dropped connection during a live battle as a
// forfeit and clears any pending queue entry handling elsewhere.
func (s *SessionService) HandleDisconnect(playerID string) {
	player := state.GetPlayer(playerID)
	if player == nil || player.Session == nil {
		return
	}

	s.finalize(player.Session, playerID)
}

func (s *SessionService) History(userID uint, limit int) ([]MatchHistoryEntry, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	matches, err := s.matches.MatchesFor(userID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]MatchHistoryEntry, 0, len(matches))
	for _, m := range matches {
		entry := MatchHistoryEntry{
			MatchID:  m.ID,
			Type:     m.Type,
			PlayedAt: m.CreatedAt,
		}

		if m.Player1ID == userID {
			entry.OpponentID = m.Player2ID
			entry.MyScore = m.Player1Score
			entry.OpponentScore = m.Player2Score
			entry.ExpEarned = m.Player1Exp
		} else {
			entry.OpponentID = m.Player1ID
			entry.MyScore = m.Player2Score
			entry.OpponentScore = m.Player1Score
			entry.ExpEarned = m.Player2Exp
		}

		switch {
		case m.WinnerID == nil:
			entry.Result = "DRAW"
		case *m.WinnerID == userID:
			entry.Result = "WIN"
		default:
			entry.Result = "LOSS"
		}

		if username, err := s.userRepo.GetUserUsername(int(entry.OpponentID)); err == nil {
			entry.Opponent = username
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *SessionService) sessionOf(playerID string) (*state.Session, error) {
	player := state.GetPlayer(playerID)
	if player != nil && player.Session != nil {
		return player.Session, nil
	}

	// No local pointer, e.g. after a restart or when the battle was created
	// on another instance. Fall back to the stored copy.
	sessionID, err := s.sessions.GetPlayerSession(playerID)
	if err != nil || sessionID == "" {
		return nil, apperrors.NewAppError(400, "Player is not in a battle", nil)
	}

	session, errGet := s.sessions.GetSession(sessionID)
	if errGet != nil {
		return nil, apperrors.NewAppError(400, "Player is not in a battle", nil)
	}

	if player != nil {
		player.Session = session
	}

	return session, nil
}

// finalize closes the session exactly once: scores, winner, EXP, match row,
// leaderboard and notifications.
func (s *SessionService) finalize(session *state.Session, forfeitedBy string) {
	session.Mu.Lock()
	if session.Phase == state.PhaseFinished {
		session.Mu.Unlock()
		return
	}
	session.Phase = state.PhaseFinished
	for _, p := range session.Players {
		p.Finished = true
	}

	ids := s.playerIDs(session)
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})

	p1 := session.Players[ids[0]]
	p2 := session.Players[ids[1]]
	total := len(session.Items)

	var winnerID string
	switch {
	case forfeitedBy == p1.ID:
		winnerID = p2.ID
	case forfeitedBy == p2.ID:
		winnerID = p1.ID
	case p1.Score > p2.Score:
		winnerID = p1.ID
	case p2.Score > p1.Score:
		winnerID = p2.ID
	}

	result := ResultMessage{
		SessionID: session.ID,
		WinnerID:  winnerID,
		Draw:      winnerID == "",
		Scores:    map[string]int{p1.ID: p1.Score, p2.ID: p2.Score},
		Exp:       make(map[string]int),
		Total:     total,
	}
	gameType := session.Type
	session.Mu.Unlock()

	match := Match{
		Type:         gameType,
		Player1Score: p1.Score,
		Player2Score: p2.Score,
	}

	for i, p := range []*state.SessionPlayer{p1, p2} {
		userID, err := strconv.Atoi(p.ID)
		if err != nil {
			continue
		}

		exp := ExpForResult(p.Score, total, p.ID == winnerID)
		result.Exp[p.ID] = exp

		if i == 0 {
			match.Player1ID = uint(userID)
			match.Player1Exp = exp
		} else {
			match.Player2ID = uint(userID)
			match.Player2Exp = exp
		}

		profile, err := s.userService.GrantExp(userID, exp)
		if err != nil {
			logger.Errorf("Error granting exp to player %s: %v", p.ID, err)
			continue
		}
		if err := s.lb.Record(uint(userID), profile.Exp); err != nil {
			logger.Errorf("Error updating leaderboard for player %s: %v", p.ID, err)
		}
	}

	if winnerID != "" {
		if id, err := strconv.Atoi(winnerID); err == nil {
			w := uint(id)
			match.WinnerID = &w
		}
	}

	if err := s.matches.CreateMatch(&match); err != nil {
		logger.Errorf("Error saving match for session %s: %v", session.ID, err)
	}

	s.publish(GameMessage{
		Type:    "GAME_FINISH",
		Payload: result,
		Users:   ids,
	})

	for _, id := range ids {
		if err := s.sessions.DeletePlayerSession(id); err != nil {
			logger.Errorf("Error deleting player session %s: %v", id, err)
		}
		if player := state.GetPlayer(id); player != nil {
			player.Session = nil
		}
	}
	if err := s.sessions.DeleteSession(session.ID); err != nil {
		logger.Errorf("Error deleting session %s: %v", session.ID, err)
	}
}

func (s *SessionService) viewOf(session *state.Session) SessionView {
	view := SessionView{
		ID:           session.ID,
		Type:         session.Type,
		Phase:        session.Phase,
		PassageTitle: session.PassageTitle,
		PassageBody:  session.PassageBody,
		Deadline:     session.Deadline,
	}

	for _, item := range session.Items {
		view.Items = append(view.Items, ItemView{
			Prompt:  item.Prompt,
			Options: item.Options,
			Hint:    item.Hint,
		})
	}

	for _, p := range session.Players {
		view.Players = append(view.Players, PlayerView{ID: p.ID, Username: p.Username})
	}

	return view
}

func (s *SessionService) playerIDs(session *state.Session) []string {
	ids := make([]string, 0, len(session.Players))
	for id := range session.Players {
		ids = append(ids, id)
	}
	return ids
}

func otherPlayers(ids []string, excludeID string) []string {
	others := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != excludeID {
			others = append(others, id)
		}
	}
	return others
}

func (s *SessionService) publish(message GameMessage) {
	msg, err := json.Marshal(message)
	if err != nil {
		logger.Errorf("Error encoding message: %v", err)
		return
	}
	s.sessions.PublishToPlayers(string(msg))
}
