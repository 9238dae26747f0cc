package state

import (
	"sync"

	"github.com/gorilla/websocket"
)

const (
	PhaseLoading   = "LOADING"
	PhasePreparing = "PREPARING"
	PhaseAnswering = "ANSWERING"
	PhaseFinished  = "FINISHED"
)

const (
	TypeReading  = "READING"
	TypeSpelling = "SPELLING"
)

// Item is one quiz step with its canonical answer. For READING sessions the
// answer is the correct option index as a string, for SPELLING it is the
// lowercased word.
type Item struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
	Hint    string   `json:"hint,omitempty"`
	Answer  string   `json:"answer"`
}

type SessionPlayer struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Answers  []string `json:"answers"`
	Progress int      `json:"progress"`
	Score    int      `json:"score"`
	Finished bool     `json:"finished"`
}

type Session struct {
	ID           string                    `json:"id"`
	Type         string                    `json:"type"`
	Phase        string                    `json:"phase"`
	PassageTitle string                    `json:"passageTitle,omitempty"`
	PassageBody  string                    `json:"passageBody,omitempty"`
	Items        []Item                    `json:"items"`
	Players      map[string]*SessionPlayer `json:"players"`
	Deadline     int64                     `json:"deadline"`
	CreatedAt    int64                     `json:"createdAt"`
	Mu           sync.Mutex                `json:"-"`
}

type PlayerState struct {
	ID      string
	Conn    *websocket.Conn
	ConnMu  sync.Mutex
	Session *Session
}

var (
	players   = make(map[string]*PlayerState)
	playersMu sync.RWMutex
)

func RegisterPlayer(id string, conn *websocket.Conn) {
	playersMu.Lock()
	defer playersMu.Unlock()

	players[id] = &PlayerState{
		ID:   id,
		Conn: conn,
	}
}

func UnregisterPlayer(id string) {
	playersMu.Lock()
	defer playersMu.Unlock()

	delete(players, id)
}

func GetPlayer(id string) *PlayerState {
	playersMu.RLock()
	defer playersMu.RUnlock()

	return players[id]
}
