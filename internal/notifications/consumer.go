package notifications

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"playbox/internal/shared/config"
	"playbox/internal/users"
	"playbox/pkg/logger"

	"github.com/IBM/sarama"
)

// UserDirectory resolves the recipient for a booking event. Backed by the
// auth repository; declared here to keep the import direction one way.
type UserDirectory interface {
	GetUserByID(ctx context.Context, id string) (*users.User, error)
}

// Consumer drains the booking events topic and fans each event out to the
// recipient. Messages that fail processing go to the dead letter topic
// instead of blocking the partition.
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

type kafkaConsumer struct {
	group    sarama.ConsumerGroup
	topic    string
	emails   EmailService
	userDir  UserDirectory
	producer Producer
	log      *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConsumer creates a consumer group member for the booking events topic.
func NewConsumer(cfg config.KafkaConfig, emails EmailService, userDir UserDirectory, producer Producer, log *logger.Logger) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		group:    group,
		topic:    cfg.BookingTopic,
		emails:   emails,
		userDir:  userDir,
		producer: producer,
		log:      log,
	}, nil
}

// Start begins consuming in the background. Consume loops until the context
// is cancelled; rebalances re-enter the loop with fresh claims.
func (c *kafkaConsumer) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			if err := c.group.Consume(runCtx, []string{c.topic}, c); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				c.log.ErrorWithContext(runCtx, "consumer group error", err, map[string]interface{}{"topic": c.topic})
			}
			if runCtx.Err() != nil {
				return
			}
		}
	}()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for err := range c.group.Errors() {
			c.log.ErrorWithContext(runCtx, "consumer error", err, map[string]interface{}{"topic": c.topic})
		}
	}()

	return nil
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	err := c.group.Close()
	c.wg.Wait()
	return err
}

// Setup implements sarama.ConsumerGroupHandler
func (c *kafkaConsumer) Setup(sarama.ConsumerGroupSession) error { return nil }

// Cleanup implements sarama.ConsumerGroupHandler
func (c *kafkaConsumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim processes one partition's messages. Every message is marked
// consumed: failures are parked on the DLQ rather than retried in place, so
// one poisoned event cannot stall the partition.
func (c *kafkaConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		if err := c.handle(session.Context(), message.Value); err != nil {
			c.log.ErrorWithContext(session.Context(), "failed to process booking event", err, map[string]interface{}{
				"topic":     message.Topic,
				"partition": message.Partition,
				"offset":    message.Offset,
			})
			if dlqErr := c.producer.PublishToDeadLetter(session.Context(), message.Value, err.Error()); dlqErr != nil {
				c.log.ErrorWithContext(session.Context(), "failed to park event on dead letter topic", dlqErr, nil)
			}
		}
		session.MarkMessage(message, "")
	}
	return nil
}

func (c *kafkaConsumer) handle(ctx context.Context, payload []byte) error {
	event, err := FromJSON(payload)
	if err != nil {
		return fmt.Errorf("failed to decode booking event: %w", err)
	}
	if !event.Type.IsValid() {
		return fmt.Errorf("unknown event type: %s", event.Type)
	}

	user, err := c.userDir.GetUserByID(ctx, event.UserID.String())
	if err != nil {
		return fmt.Errorf("failed to resolve recipient: %w", err)
	}

	// Phone-first accounts may have no email on file; nothing to deliver
	if user.Email == "" {
		c.log.InfoWithContext(ctx, "skipping notification, recipient has no email", map[string]interface{}{
			"user_id":    user.ID.String(),
			"event_type": string(event.Type),
		})
		return nil
	}

	return c.emails.SendBookingEmail(ctx, user.Email, event)
}
