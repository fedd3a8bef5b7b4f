package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
	"github.com/stephenzhang0529/ai-app-server/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishActivity publishes a user activity event. Publishing is
// best-effort: a nil writer or a broker failure is logged and ignored.
func publishActivity(ctx context.Context, w KafkaWriter, userID int64, action, detail string) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "action", action)
		return
	}

	event := models.ActivityEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		Action:    action,
		Detail:    detail,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity event", "event_id", event.EventID, "action", action, "error", err)
	} else {
		logger.Log.Infow("Activity event published", "event_id", event.EventID, "action", action)
	}
}
