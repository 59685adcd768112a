package notifier

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// MessageWriter публикация сообщений в брокер (реализуется *kafka.Writer)
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MetricsCollector счетчик отправленных уведомлений
type MetricsCollector interface {
	IncNotification(eventType, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
