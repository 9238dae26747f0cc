package actions

import (
	"encoding/json"

	"github.com/wordarena/WordArena/websocket/message"
	"github.com/wordarena/WordArena/websocket/transport"
)

func HandleForfeit(playerID string, msg message.Message) {
	var payload message.ForfeitPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			transport.SendToPlayer(playerID, transport.OutgoingMessage{
				Type:    "ERROR",
				Payload: "Invalid forfeit payload",
			})
			return
		}
	}

	if err := Sessions.Forfeit(playerID, payload.SessionID); err != nil {
		transport.SendToPlayer(playerID, transport.OutgoingMessage{
			Type:    "ERROR",
			Payload: err.Error(),
		})
	}
}
