package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/observability"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

const (
	alertCacheKey   = "alerts:active"
	alertBufferSize = 8
)

var (
	// ErrAlertNotFound indicates an unknown alert identifier.
	ErrAlertNotFound = errors.New("alert not found")
	// ErrAlertEmptyMessage indicates the message was empty after sanitization.
	ErrAlertEmptyMessage = errors.New("alert message empty after sanitization")
)

// AlertService publishes emergency alerts and streams them to subscribers.
// The active-alert list is reference data and may be cached; everything else
// is recomputed from the store on read.
type AlertService interface {
	ListActive(ctx context.Context) ([]models.Alert, error)
	Create(ctx context.Context, actor Actor, payload dto.AlertCreateRequest) (models.Alert, error)
	SetActive(ctx context.Context, id string, active bool) error
	Subscribe() (<-chan models.Alert, func())
	Start(ctx context.Context)
}

type alertService struct {
	alerts      repository.AlertRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	nats        *nats.Conn
	natsSubject string
	sanitizer   *bluemonday.Policy
	tracer      trace.Tracer
	logger      zerolog.Logger
	broker      *alertBroker
	nodeID      string
	now         func() time.Time
}

type alertEvent struct {
	Source string       `json:"source"`
	Alert  models.Alert `json:"alert"`
	SentAt time.Time    `json:"sent_at"`
}

type alertBroker struct {
	mu          sync.RWMutex
	subscribers map[chan models.Alert]struct{}
}

// NewAlertService constructs an alert service.
func NewAlertService(alerts repository.AlertRepository, cache *redis.Client, cacheTTL time.Duration, natsConn *nats.Conn, natsSubject string, logger zerolog.Logger) AlertService {
	return &alertService{
		alerts:      alerts,
		cache:       cache,
		cacheTTL:    cacheTTL,
		nats:        natsConn,
		natsSubject: natsSubject,
		sanitizer:   bluemonday.StrictPolicy(),
		tracer:      otel.Tracer("github.com/noah-isme/siaga-go-api/internal/service/alert"),
		logger:      logger.With().Str("component", "alert_service").Logger(),
		broker:      &alertBroker{subscribers: make(map[chan models.Alert]struct{})},
		nodeID:      uuid.NewString(),
		now:         time.Now,
	}
}

// Start begins consuming cross-node alert events from NATS when configured.
func (s *alertService) Start(ctx context.Context) {
	if s.nats == nil || s.natsSubject == "" {
		return
	}

	sub, err := s.nats.Subscribe(s.natsSubject, func(msg *nats.Msg) {
		var event alertEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			s.logger.Warn().Err(err).Msg("failed to decode alert event")
			return
		}
		if event.Source == s.nodeID {
			return
		}
		s.broker.broadcast(event.Alert)
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to subscribe to alert subject")
		return
	}

	go func() {
		<-ctx.Done()
		_ = sub.Unsubscribe()
	}()
}

func (s *alertService) ListActive(ctx context.Context) ([]models.Alert, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, alertCacheKey).Result(); err == nil {
			var alerts []models.Alert
			if unmarshalErr := json.Unmarshal([]byte(cached), &alerts); unmarshalErr == nil {
				return alerts, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read alert cache")
		}
	}

	alerts, err := s.alerts.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(alerts); err == nil {
			if err := s.cache.Set(ctx, alertCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store alert cache")
			}
		}
	}

	return alerts, nil
}

func (s *alertService) Create(ctx context.Context, actor Actor, payload dto.AlertCreateRequest) (models.Alert, error) {
	message := strings.TrimSpace(s.sanitizer.Sanitize(payload.Message))
	if message == "" {
		return models.Alert{}, ErrAlertEmptyMessage
	}

	spanCtx, span := s.tracer.Start(ctx, "alerts.create", trace.WithAttributes(
		attribute.String("alert.type", payload.AlertType),
		attribute.String("alert.severity", payload.Severity),
	))
	defer span.End()

	alert := models.Alert{
		Title:     strings.TrimSpace(s.sanitizer.Sanitize(payload.Title)),
		Message:   message,
		AlertType: payload.AlertType,
		Severity:  payload.Severity,
		Active:    true,
		CreatedBy: actor.ID,
		CreatedAt: s.now().UTC(),
	}

	if err := s.alerts.Create(spanCtx, &alert); err != nil {
		span.RecordError(err)
		return models.Alert{}, err
	}

	s.invalidateCache(spanCtx)
	s.broker.broadcast(alert)
	if err := s.publish(alert); err != nil {
		s.logger.Warn().Err(err).Msg("failed to publish alert to broker")
	}

	observability.AlertsPublished().WithLabelValues(alert.Severity).Inc()
	s.logger.Info().Str("alert_id", alert.ID).Str("severity", alert.Severity).Str("created_by", actor.ID).Msg("alert published")

	return alert, nil
}

func (s *alertService) SetActive(ctx context.Context, id string, active bool) error {
	affected, err := s.alerts.SetActive(ctx, id, active)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlertNotFound
	}

	s.invalidateCache(ctx)

	return nil
}

// Subscribe registers a live alert listener. The returned cancel function
// must be called to release the subscription.
func (s *alertService) Subscribe() (<-chan models.Alert, func()) {
	ch := make(chan models.Alert, alertBufferSize)

	s.broker.mu.Lock()
	s.broker.subscribers[ch] = struct{}{}
	s.broker.mu.Unlock()

	cancel := func() {
		s.broker.mu.Lock()
		if _, ok := s.broker.subscribers[ch]; ok {
			delete(s.broker.subscribers, ch)
			close(ch)
		}
		s.broker.mu.Unlock()
	}

	return ch, cancel
}

func (s *alertService) publish(alert models.Alert) error {
	if s.nats == nil || s.natsSubject == "" {
		return nil
	}

	payload, err := json.Marshal(alertEvent{
		Source: s.nodeID,
		Alert:  alert,
		SentAt: s.now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.nats.Publish(s.natsSubject, payload)
}

func (s *alertService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, alertCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate alert cache")
	}
}

func (b *alertBroker) broadcast(alert models.Alert) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers {
		select {
		case ch <- alert:
		default:
			// Slow subscriber; drop rather than block the write path.
		}
	}
}
