package contact

import (
	"context"
	"time"

	"github.com/goliatone/socialsync/internal/commands"
	"github.com/goliatone/socialsync/internal/logging"
	"github.com/goliatone/socialsync/pkg/interfaces"
)

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCommandLogger sets the logger of the submit command handler. It
// defaults to the service logger.
func WithCommandLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.commandLogger = logger
		}
	}
}

// WithClock overrides the receipt timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithNotifier sets the notifier used after a message is stored.
func WithNotifier(notifier Notifier) Option {
	return func(s *Service) {
		s.notifier = notifier
	}
}

// WithTimeout bounds validation and persistence of one submission. Zero
// disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		s.timeout = timeout
	}
}

// WithNotifyTimeout bounds the notification. It runs detached from the
// caller's cancellation so a stored message is always announced or logged.
func WithNotifyTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.notifyTimeout = timeout
		}
	}
}

// WithTelemetry forwards command execution reports to fn.
func WithTelemetry(fn commands.Telemetry) Option {
	return func(s *Service) {
		s.telemetry = fn
	}
}

// Service stores contact submissions and notifies the site owners.
// Persistence is required; the notification is best-effort.
type Service struct {
	store         Store
	notifier      Notifier
	logger        interfaces.Logger
	commandLogger interfaces.Logger
	now           func() time.Time
	timeout       time.Duration
	notifyTimeout time.Duration
	telemetry     commands.Telemetry
	handler       *commands.Handler[*SubmitCommand]
}

// NewService wires a service over store.
func NewService(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	s := &Service{
		store:         store,
		logger:        logging.NoOp(),
		now:           time.Now,
		timeout:       30 * time.Second,
		notifyTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.commandLogger == nil {
		s.commandLogger = s.logger
	}
	s.handler = commands.NewHandler[*SubmitCommand](s.execute,
		commands.WithLogger[*SubmitCommand](s.commandLogger),
		commands.WithOperation[*SubmitCommand]("submit"),
		commands.WithTimeout[*SubmitCommand](s.timeout),
		commands.WithTelemetry[*SubmitCommand](s.telemetry),
	)
	return s, nil
}

// Submit validates, stores and announces sub. Validation and persistence
// failures are returned as errors; a failed notification is not.
func (s *Service) Submit(ctx context.Context, sub Submission) (Result, error) {
	outcome, err := s.SubmitWithOutcome(ctx, sub)
	if err != nil {
		return Result{Success: false, Message: FailureMessage}, err
	}
	return outcome.Result, nil
}

// SubmitWithOutcome is Submit with the stored id and notification error exposed.
func (s *Service) SubmitWithOutcome(ctx context.Context, sub Submission) (Outcome, error) {
	cmd := &SubmitCommand{Submission: sub}
	if err := s.handler.Execute(ctx, cmd); err != nil {
		if cmd.Outcome == nil {
			return Outcome{Result: Result{Success: false, Message: FailureMessage}}, err
		}
		// The message is stored; a deadline or cancellation that hit during
		// notification does not undo that.
		s.logger.Warn("contact.submit.late", "message_id", cmd.Outcome.MessageID, "error", err)
	}
	if cmd.Outcome == nil {
		return Outcome{Result: Result{Success: true, Message: SuccessMessage}}, nil
	}
	return *cmd.Outcome, nil
}

func (s *Service) execute(ctx context.Context, cmd *SubmitCommand) error {
	msg := NewMessage(cmd.Submission, s.now())

	id, err := s.store.Save(ctx, msg)
	if err != nil {
		s.logger.Error("contact.persist.failed", "error", err)
		return persistError(err)
	}

	outcome := &Outcome{
		Result:    Result{Success: true, Message: SuccessMessage},
		MessageID: id,
	}
	cmd.Outcome = outcome

	if s.notifier == nil {
		s.logger.Warn("contact.notify.skipped", "message_id", id)
		return nil
	}
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()
	if err := s.notifier.Notify(notifyCtx, msg); err != nil {
		outcome.NotificationErr = notifyError(err)
		s.logger.Error("contact.notify.failed", "message_id", id, "error", err)
		return nil
	}
	s.logger.Info("contact.notify.sent", "message_id", id)
	return nil
}
