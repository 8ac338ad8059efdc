package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var redisClient *redis.Client

func InitRedis(ip string, port int, userName string, passwd string, db int) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%d", ip, port),
		Username:        userName,
		Password:        passwd,
		DB:              db,
		PoolSize:        10,
		MinIdleConns:    5,
		MaxIdleConns:    10,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		PoolTimeout:     4 * time.Second,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	ctx := context.Background()
	_, err := rdb.Ping(ctx).Result()
	log.Debug().Msgf("connecting redis [%s:%d]", ip, port)
	if err != nil {
		log.Fatal().Err(err).Msg("redis init error")
	}

	redisClient = rdb
}

func checkRedis() {
	if redisClient == nil {
		log.Fatal().Msg("redisClient is not set")
	}
}

// ChatView is the durable part of a chat's order-list view. Offset and total
// pages are always derived from it, never stored.
type ChatView struct {
	Status    string `json:"status"`
	Page      int    `json:"page"`
	MessageID int    `json:"message_id"`
}

func chatViewKey(chatID int64) string {
	return fmt.Sprintf("chat:view:%d", chatID)
}

func SetChatView(chatID int64, view ChatView) bool {
	checkRedis()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	viewJSON, err := json.Marshal(view)
	if err != nil {
		log.Error().Err(err).Msgf("failed to marshal view for chat %d", chatID)
		return false
	}

	err = redisClient.Set(ctx, chatViewKey(chatID), viewJSON, 7*24*time.Hour).Err()
	if err != nil {
		log.Error().Err(err).Msgf("failed to store view for chat %d", chatID)
		return false
	}
	return true
}

func GetChatView(chatID int64) (ChatView, bool) {
	checkRedis()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var view ChatView
	data, err := redisClient.Get(ctx, chatViewKey(chatID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Error().Err(err).Msgf("failed to load view for chat %d", chatID)
		}
		return view, false
	}

	if err := json.Unmarshal(data, &view); err != nil {
		log.Error().Err(err).Msgf("corrupt view for chat %d", chatID)
		return view, false
	}
	return view, true
}

func DeleteChatView(chatID int64) {
	checkRedis()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := redisClient.Del(ctx, chatViewKey(chatID)).Err(); err != nil {
		log.Error().Err(err).Msgf("failed to delete view for chat %d", chatID)
	}
}

const botMessageCountKey = "bot:message:count"

// BotMessageAdd bumps the per-second outbound message counter used by the
// rate-limit middleware.
func BotMessageAdd() {
	if redisClient == nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pipe := redisClient.Pipeline()
	pipe.Incr(ctx, botMessageCountKey)
	pipe.Expire(ctx, botMessageCountKey, 1*time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Msg("failed to count outbound message")
	}
}

func BotMessageCount() (int64, error) {
	checkRedis()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	count, err := redisClient.Get(ctx, botMessageCountKey).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}
