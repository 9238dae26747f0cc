package battle

import "time"

type Match struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Player1ID    uint      `gorm:"not null;index" json:"player1_id"`
	Player2ID    uint      `gorm:"not null;index" json:"player2_id"`
	WinnerID     *uint     `json:"winner_id"`
	Type         string    `gorm:"not null" json:"type"`
	Player1Score int       `json:"player1_score"`
	Player2Score int       `json:"player2_score"`
	Player1Exp   int       `json:"player1_exp"`
	Player2Exp   int       `json:"player2_exp"`
	CreatedAt    time.Time `json:"created_at"`
}

type MatchHistoryEntry struct {
	MatchID       uint      `json:"matchId"`
	Type          string    `json:"type"`
	OpponentID    uint      `json:"opponentId"`
	Opponent      string    `json:"opponent"`
	MyScore       int       `json:"myScore"`
	OpponentScore int       `json:"opponentScore"`
	ExpEarned     int       `json:"expEarned"`
	Result        string    `json:"result"`
	PlayedAt      time.Time `json:"playedAt"`
}

type QueueRequest struct {
	Type string `json:"type"`
}

type QueueStatus struct {
	InQueue  bool   `json:"inQueue"`
	Type     string `json:"type,omitempty"`
	Position int    `json:"position,omitempty"`
	Waiting  int64  `json:"waiting"`
}

// GameMessage is the pubsub envelope fanned out to websocket instances.
// Users lists the player IDs the payload must be delivered to.
type GameMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	Users   []string    `json:"users"`
}
