package router

import (
	"github.com/wordarena/WordArena/pkg/logger"
	"github.com/wordarena/WordArena/websocket/actions"
	"github.com/wordarena/WordArena/websocket/message"
)

var handlers = map[string]func(playerID string, payload message.Message){
	"ANSWER":  actions.HandleAnswer,
	"FORFEIT": actions.HandleForfeit,
}

func RouteMessage(playerID string, msg message.Message) {
	if handler, ok := handlers[msg.Type]; ok {
		handler(playerID, msg)
	} else {
		logger.Errorf("Unknown message type: %s", msg.Type)
	}
}
