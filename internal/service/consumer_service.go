package service

import (
	"context"
	"encoding/json"

	"noteverse-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// InvalidateLeaderboardMessage is queued by note/upvote write paths whenever
// a ranking input changed.
type InvalidateLeaderboardMessage struct {
	Reason string `json:"reason"`
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub             *gochannel.GoChannel
	topicName          string
	leaderboardService ILeaderboardService
	logger             logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	leaderboardService ILeaderboardService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:             pubSub,
		topicName:          topicName,
		leaderboardService: leaderboardService,
		logger:             log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload InvalidateLeaderboardMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Warn("Consumer", "dropping malformed invalidation message", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	if err := cs.leaderboardService.Invalidate(ctx); err != nil {
		cs.logger.Warn("Consumer", "leaderboard invalidation failed", map[string]interface{}{
			"reason": payload.Reason,
			"error":  err.Error(),
		})
		// The cache has a TTL backstop, so a failed invalidation is not
		// worth redelivery.
	}
	msg.Ack()
}
