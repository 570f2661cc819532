package notifications

import (
	"context"
	"fmt"
	"time"

	"playbox/internal/bookings"
	"playbox/internal/shared/config"
	"playbox/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Producer publishes booking events to Kafka. It satisfies the booking
// service's EventPublisher contract.
type Producer interface {
	bookings.EventPublisher
	PublishToDeadLetter(ctx context.Context, payload []byte, reason string) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
	dlqTopic string
	log      *logger.Logger
}

// NewProducer creates a synchronous Kafka producer with idempotent writes
// and all-replica acks.
func NewProducer(cfg config.KafkaConfig, log *logger.Logger) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    cfg.BookingTopic,
		dlqTopic: cfg.DeadLetterTopic,
		log:      log,
	}, nil
}

func (p *kafkaProducer) PublishBookingConfirmed(ctx context.Context, booking *bookings.Booking, venueName string) error {
	return p.publish(ctx, EventBookingConfirmed, booking, venueName)
}

func (p *kafkaProducer) PublishBookingCancelled(ctx context.Context, booking *bookings.Booking, venueName string) error {
	return p.publish(ctx, EventBookingCancelled, booking, venueName)
}

func (p *kafkaProducer) publish(ctx context.Context, eventType EventType, booking *bookings.Booking, venueName string) error {
	event := &BookingEvent{
		ID:            uuid.New(),
		Type:          eventType,
		BookingID:     booking.ID,
		BookingRef:    booking.BookingRef,
		UserID:        booking.UserID,
		VenueID:       booking.VenueID,
		VenueName:     venueName,
		CourtID:       booking.CourtID,
		Sport:         booking.Sport,
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
		DurationHours: booking.DurationHours,
		Amount:        booking.Amount,
		OccurredAt:    time.Now().UTC(),
	}

	payload, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.PartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Headers:   eventHeaders(event),
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking event: %w", err)
	}

	p.log.InfoWithContext(ctx, "booking event published", map[string]interface{}{
		"topic":      p.topic,
		"partition":  partition,
		"offset":     offset,
		"event_type": string(eventType),
		"booking_id": booking.ID.String(),
	})

	return nil
}

// PublishToDeadLetter parks a message the consumer could not process.
func (p *kafkaProducer) PublishToDeadLetter(ctx context.Context, payload []byte, reason string) error {
	message := &sarama.ProducerMessage{
		Topic: p.dlqTopic,
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("failure_reason"), Value: []byte(reason)},
			{Key: []byte("failed_at"), Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to send to dead letter topic: %w", err)
	}
	return nil
}

func (p *kafkaProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

func eventHeaders(event *BookingEvent) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(event.ID.String())},
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("booking_id"), Value: []byte(event.BookingID.String())},
		{Key: []byte("venue_id"), Value: []byte(event.VenueID.String())},
		{Key: []byte("occurred_at"), Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		{Key: []byte("producer"), Value: []byte("playbox-bookings")},
	}
}
