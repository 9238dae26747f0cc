package transport

import (
	"github.com/wordarena/WordArena/internal/battle/state"
	"github.com/wordarena/WordArena/pkg/logger"
)

type OutgoingMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func SendToPlayer(playerID string, msg OutgoingMessage) {
	player := state.GetPlayer(playerID)
	if player == nil {
		return
	}

	player.ConnMu.Lock()
	defer player.ConnMu.Unlock()

	if player.Conn == nil {
		return
	}

	if err := player.Conn.WriteJSON(msg); err != nil {
		logger.Errorf("Error sending msg to %s: %v", playerID, err)
	}
}

func BroadcastToPlayers(players *[]string, msg OutgoingMessage) {
	if players == nil {
		return
	}

	for _, player := range *players {
		SendToPlayer(player, msg)
	}
}
