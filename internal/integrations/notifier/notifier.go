package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

const publishTimeout = 5 * time.Second

// Config параметры публикации
type Config struct {
	Brokers []string
	Topic   string
}

// Notifier формирует уведомления о смене статуса записи и публикует их в Kafka.
// Без брокеров уведомления только логируются.
type Notifier struct {
	writer   MessageWriter
	topic    string
	location *time.Location
	metrics  MetricsCollector
	log      Logger
	now      func() time.Time
	wg       sync.WaitGroup
}

// New создает Notifier; metrics может быть nil
func New(cfg Config, location *time.Location, metrics MetricsCollector, log Logger) *Notifier {
	var writer MessageWriter
	if len(cfg.Brokers) > 0 {
		writer = &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
	} else {
		log.Warn("Notifier: no kafka brokers configured, notifications are logged only")
	}
	return NewWithWriter(writer, cfg.Topic, location, metrics, log)
}

// NewWithWriter создает Notifier поверх готового writer (nil = только логирование)
func NewWithWriter(writer MessageWriter, topic string, location *time.Location, metrics MetricsCollector, log Logger) *Notifier {
	return &Notifier{
		writer:   writer,
		topic:    topic,
		location: location,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

// AppointmentRequested сообщает персоналу о новой записи, ожидающей подтверждения
func (n *Notifier) AppointmentRequested(ctx context.Context, appt *domain.Appointment) {
	n.dispatch(ctx, n.buildEvent(EventAppointmentRequested, AudienceStaff, appt,
		fmt.Sprintf("Nova solicitação de agendamento para %s aguardando aprovação.", n.formatStart(appt))))
}

// AppointmentConfirmed сообщает пациенту о подтверждении записи
func (n *Notifier) AppointmentConfirmed(ctx context.Context, appt *domain.Appointment) {
	n.dispatch(ctx, n.buildEvent(EventAppointmentConfirmed, AudiencePatient, appt,
		fmt.Sprintf("Seu agendamento para %s foi confirmado.", n.formatStart(appt))))
}

// AppointmentCanceled сообщает пациенту об отмене записи
func (n *Notifier) AppointmentCanceled(ctx context.Context, appt *domain.Appointment) {
	text := fmt.Sprintf("Seu agendamento para %s foi cancelado.", n.formatStart(appt))
	if appt.CancellationReason != nil && *appt.CancellationReason != "" {
		text += " Motivo: " + *appt.CancellationReason
	}
	n.dispatch(ctx, n.buildEvent(EventAppointmentCanceled, AudiencePatient, appt, text))
}

// Close дожидается отправки уже запущенных уведомлений и закрывает writer
func (n *Notifier) Close() error {
	n.wg.Wait()
	if n.writer == nil {
		return nil
	}
	return n.writer.Close()
}

func (n *Notifier) buildEvent(eventType EventType, audience Audience, appt *domain.Appointment, message string) Event {
	return Event{
		EventID:        uuid.NewString(),
		Type:           eventType,
		Audience:       audience,
		CompanyID:      appt.CompanyID,
		AppointmentID:  appt.ID,
		PatientID:      appt.PatientID,
		ProfessionalID: appt.ProfessionalID,
		StartAt:        appt.StartAt,
		Status:         string(appt.Status),
		Message:        message,
		OccurredAt:     n.now().UTC(),
	}
}

func (n *Notifier) formatStart(appt *domain.Appointment) string {
	return appt.StartAt.In(n.location).Format("02/01/2006 às 15:04")
}

// dispatch публикует событие в фоне; ошибки только логируются
func (n *Notifier) dispatch(ctx context.Context, event Event) {
	if n.writer == nil {
		n.log.Info("Notifier: %s for appointment=%d: %s", event.Type, event.AppointmentID, event.Message)
		n.observe(event.Type, "skipped")
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		n.log.Error("Notifier: failed to encode %s for appointment=%d: %v", event.Type, event.AppointmentID, err)
		n.observe(event.Type, "error")
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.AppointmentID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		if err := n.writer.WriteMessages(sendCtx, msg); err != nil {
			n.log.Error("Notifier: failed to publish %s for appointment=%d: %v", event.Type, event.AppointmentID, err)
			n.observe(event.Type, "error")
			return
		}
		n.observe(event.Type, "ok")
	}()
}

func (n *Notifier) observe(eventType EventType, result string) {
	if n.metrics == nil {
		return
	}
	n.metrics.IncNotification(string(eventType), result)
}
