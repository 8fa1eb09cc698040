package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/editwindow"
	"github.com/SscSPs/money_tracker/internal/events"
	"github.com/SscSPs/money_tracker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock      func() time.Time
	publisher  events.Publisher
	editPolicy editwindow.Policy
	location   *time.Location
}

// Option configures the shared parts of a service.
type Option func(*BaseService)

// WithClock replaces time.Now. Tests use it to move across the edit window.
func WithClock(clock func() time.Time) Option {
	return func(s *BaseService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithEventPublisher sends an event after every successful mutation.
func WithEventPublisher(p events.Publisher) Option {
	return func(s *BaseService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithEditWindow sets how long transactions stay editable.
func WithEditWindow(window time.Duration) Option {
	return func(s *BaseService) {
		s.editPolicy = editwindow.New(window)
	}
}

// WithLocation sets the timezone that decides the current calendar day for reports.
func WithLocation(loc *time.Location) Option {
	return func(s *BaseService) {
		if loc != nil {
			s.location = loc
		}
	}
}

func newBaseService(options ...Option) BaseService {
	s := BaseService{
		clock:      time.Now,
		publisher:  events.NopPublisher{},
		editPolicy: editwindow.Default(),
		location:   time.UTC,
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// Now returns the current instant in UTC.
func (s *BaseService) Now() time.Time {
	return s.clock().UTC()
}

// Today returns the current calendar date in the configured location.
func (s *BaseService) Today() time.Time {
	return s.clock().In(s.location)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// publish emits an event for a committed change. A failed publish is logged
// and never undoes the change.
func (s *BaseService) publish(ctx context.Context, typ events.Type, userID, entityID string, payload any) {
	evt := events.New(typ, userID, entityID, s.Now(), payload)
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.LogError(ctx, err, "Failed to publish event",
			slog.String("event_type", string(typ)),
			slog.String("entity_id", entityID))
	}
}
