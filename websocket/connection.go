package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/wordarena/WordArena/internal/battle/state"
	"github.com/wordarena/WordArena/pkg/logger"
	"github.com/wordarena/WordArena/websocket/message"
	"github.com/wordarena/WordArena/websocket/router"
)

func listenPlayerMessages(playerID string, conn *websocket.Conn) {
	defer func() {
		logger.Infof("Player disconnected: %s", playerID)
		if Sessions != nil {
			Sessions.HandleDisconnect(playerID)
		}
		if Queues != nil {
			if err := Queues.LeaveAllQueues(playerID); err != nil {
				logger.Errorf("Error clearing queue for %s: %v", playerID, err)
			}
		}
		state.UnregisterPlayer(playerID)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var msg message.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Errorf("Error decoding message: %v", err)
			continue
		}

		router.RouteMessage(playerID, msg)
	}
}
