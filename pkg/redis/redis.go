package redis

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"PortfolioBackend/internal/entity"
)

// CommentChannel is the pub/sub channel carrying comment change events.
const CommentChannel = "comments:changes"

type EventKind string

const (
	EventInsert EventKind = "INSERT"
	EventUpdate EventKind = "UPDATE"
	EventDelete EventKind = "DELETE"
)

// CommentEvent is one change-feed notification: the event kind plus the
// affected row. New is set for inserts and updates, Old for deletes.
type CommentEvent struct {
	Kind EventKind       `json:"kind"`
	New  *entity.Comment `json:"new,omitempty"`
	Old  *entity.Comment `json:"old,omitempty"`
}

type IRedis interface {
	PublishCommentEvent(ctx context.Context, event CommentEvent) error
	SubscribeComments(ctx context.Context) (<-chan CommentEvent, func())
}

type redisClient struct {
	client *redis.Client
	log    *logrus.Logger
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func New(log *logrus.Logger) IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	log.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		log.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client, log: log}
}

func (r *redisClient) PublishCommentEvent(ctx context.Context, event CommentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"kind":  event.Kind,
			"error": err.Error(),
		}).Error("Failed to encode comment event")
		return err
	}

	if err := r.client.Publish(ctx, CommentChannel, payload).Err(); err != nil {
		r.log.WithFields(logrus.Fields{
			"kind":  event.Kind,
			"error": err.Error(),
		}).Error("Failed to publish comment event")
		return err
	}

	return nil
}

// SubscribeComments opens the comment change feed. The returned function
// releases the subscription and closes the channel.
func (r *redisClient) SubscribeComments(ctx context.Context) (<-chan CommentEvent, func()) {
	sub := r.client.Subscribe(ctx, CommentChannel)
	events := make(chan CommentEvent, 64)

	go func() {
		defer close(events)

		for msg := range sub.Channel() {
			var event CommentEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				r.log.WithFields(logrus.Fields{
					"payload": msg.Payload,
					"error":   err.Error(),
				}).Warn("Dropping malformed comment event")
				continue
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	unsubscribe := func() {
		if err := sub.Close(); err != nil {
			r.log.Warnf("Failed to close comment subscription: %v", err)
		}
	}

	return events, unsubscribe
}
