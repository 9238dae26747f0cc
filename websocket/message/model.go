package message

import (
	"encoding/json"
)

type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type AnswerPayload struct {
	Item   int    `json:"item"`
	Answer string `json:"answer"`
}

type ForfeitPayload struct {
	SessionID string `json:"sessionId"`
}
