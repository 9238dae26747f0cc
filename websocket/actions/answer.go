package actions

import (
	"encoding/json"

	"github.com/wordarena/WordArena/internal/battle"
	"github.com/wordarena/WordArena/pkg/logger"
	"github.com/wordarena/WordArena/websocket/message"
	"github.com/wordarena/WordArena/websocket/transport"
)

// Sessions is wired in main before the websocket endpoint is served.
var Sessions *battle.SessionService

func HandleAnswer(playerID string, msg message.Message) {
	var answer message.AnswerPayload
	if err := json.Unmarshal(msg.Payload, &answer); err != nil {
		logger.Errorf("Error decoding answer: %v", err)
		return
	}

	if err := Sessions.SubmitAnswer(playerID, answer.Item, answer.Answer); err != nil {
		transport.SendToPlayer(playerID, transport.OutgoingMessage{
			Type:    "ERROR",
			Payload: err.Error(),
		})
	}
}
