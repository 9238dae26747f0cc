package battle

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wordarena/WordArena/internal/apperrors"
	"github.com/wordarena/WordArena/internal/battle/state"
	"github.com/wordarena/WordArena/pkg/db"
	"github.com/wordarena/WordArena/pkg/logger"
	"github.com/wordarena/WordArena/websocket/transport"
)

const sessionTTL = 30 * time.Minute

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func playerSessionKey(playerID string) string {
	return fmt.Sprintf("player_session:%s", playerID)
}

type SessionRepository interface {
	SaveSession(session *state.Session) error
	GetSession(id string) (*state.Session, error)
	DeleteSession(id string) error
	SavePlayerSession(playerID, sessionID string) error
	GetPlayerSession(playerID string) (string, error)
	DeletePlayerSession(playerID string) error
	PublishToPlayers(payload string)
	SubscribeMessages() error
}

type RedisSessionRepository struct{}

func NewRedisSessionRepository() *RedisSessionRepository {
	return &RedisSessionRepository{}
}

func (r *RedisSessionRepository) SaveSession(session *state.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return apperrors.NewAppError(500, "Error serializing session", err)
	}

	if err := db.Rdb.Set(ctx, sessionKey(session.ID), data, sessionTTL).Err(); err != nil {
		return apperrors.NewAppError(500, "Error saving session", err)
	}

	return nil
}

func (r *RedisSessionRepository) GetSession(id string) (*state.Session, error) {
	val, err := db.Rdb.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, apperrors.NewAppError(404, "Session not found", err)
	} else if err != nil {
		return nil, apperrors.NewAppError(500, "Error getting session", err)
	}

	var session state.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, apperrors.NewAppError(500, "Error unmarshalling session", err)
	}

	return &session, nil
}

func (r *RedisSessionRepository) DeleteSession(id string) error {
	if err := db.Rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return apperrors.NewAppError(500, "Error deleting session", err)
	}

	return nil
}

func (r *RedisSessionRepository) SavePlayerSession(playerID, sessionID string) error {
	if err := db.Rdb.Set(ctx, playerSessionKey(playerID), sessionID, sessionTTL).Err(); err != nil {
		return apperrors.NewAppError(500, "Error saving player session", err)
	}

	return nil
}

func (r *RedisSessionRepository) GetPlayerSession(playerID string) (string, error) {
	val, err := db.Rdb.Get(ctx, playerSessionKey(playerID)).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", apperrors.NewAppError(500, "Error getting player session", err)
	}

	return val, nil
}

func (r *RedisSessionRepository) DeletePlayerSession(playerID string) error {
	if err := db.Rdb.Del(ctx, playerSessionKey(playerID)).Err(); err != nil {
		return apperrors.NewAppError(500, "Error deleting player session", err)
	}

	return nil
}

func (r *RedisSessionRepository) PublishToPlayers(payload string) {
	if err := db.Rdb.Publish(ctx, "messages", payload).Err(); err != nil {
		logger.Errorf("Error publishing message: %v", err)
	}
}

// SubscribeMessages delivers pubsub envelopes to locally connected players,
// so any instance can publish for a player held by another one.
func (r *RedisSessionRepository) SubscribeMessages() error {
	sub := db.Rdb.Subscribe(ctx, "messages")
	_, err := sub.Receive(ctx)
	if err != nil {
		return fmt.Errorf("error subscribing %w", err)
	}

	ch := sub.Channel()

	logger.Info("Subscribed to messages channel")
	go func() {
		for msg := range ch {
			r.dispatch(msg.Payload)
		}
	}()

	return nil
}

func (r *RedisSessionRepository) dispatch(messageEncoded string) {
	var message GameMessage
	if err := json.Unmarshal([]byte(messageEncoded), &message); err != nil {
		logger.Errorf("Error decoding message: %v", err)
		return
	}

	msg := transport.OutgoingMessage{
		Type:    message.Type,
		Payload: message.Payload,
	}

	transport.BroadcastToPlayers(&message.Users, msg)
}
