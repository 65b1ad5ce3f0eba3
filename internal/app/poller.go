// internal/app/poller.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HeartbeatMessage is sent when the heartbeat schedule fires and nothing changed.
const HeartbeatMessage = "Статус не изменился, проверяем дальше"

// APIClient fetches the raw homework statuses answer.
type APIClient interface {
	GetAPIAnswer(ctx context.Context, fromDate int64) (any, error)
}

// MessageSender delivers a message to the bot's chat.
type MessageSender interface {
	Send(message string) error
}

// Option configures a Poller.
type Option func(*Poller)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Poller) { p.now = now }
}

// WithSleeper replaces the pause between iterations.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(p *Poller) { p.sleep = sleep }
}

// WithHeartbeat enables the periodic "still watching" message.
func WithHeartbeat(h *scheduler.Heartbeat) Option {
	return func(p *Poller) { p.heartbeat = h }
}

// Poller polls the homework API, detects status changes of the most recent
// homework and forwards them through the notifier. It is not safe for
// concurrent use; Run owns all of its state.
type Poller struct {
	api       APIClient
	notifier  MessageSender
	heartbeat *scheduler.Heartbeat
	logger    *logrus.Logger
	interval  time.Duration
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error

	cursor int64
	last   homework.Homework
}

func NewPoller(api APIClient, notifier MessageSender, logger *logrus.Logger, interval time.Duration, opts ...Option) *Poller {
	p := &Poller{
		api:      api,
		notifier: notifier,
		logger:   logger,
		interval: interval,
		now:      time.Now,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cursor = p.now().Unix()
	return p
}

// Cursor returns the from_date used by the next poll.
func (p *Poller) Cursor() int64 { return p.cursor }

// LastSeen returns the last homework state that was successfully reported.
func (p *Poller) LastSeen() homework.Homework { return p.last }

// Run polls until ctx is cancelled, pausing for the configured interval after
// every iteration whatever its outcome.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.WithFields(logrus.Fields{
		"from_date": p.cursor,
		"interval":  p.interval.String(),
	}).Info("Poller started")

	for {
		_ = p.Poll(ctx)
		if err := p.sleep(ctx, p.interval); err != nil {
			p.logger.Info("Poller stopped")
			return err
		}
	}
}

// Poll runs a single iteration. Any failure is logged and returned; the
// poller state stays consistent so the next iteration can proceed.
func (p *Poller) Poll(ctx context.Context) (err error) {
	entry := p.logger.WithFields(logrus.Fields{
		"iteration_id": uuid.NewString(),
		"from_date":    p.cursor,
	})

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("poll iteration panicked: %v", r)
		}
		if err != nil {
			entry.WithError(err).WithField("error_kind", errorKind(err)).Error("Poll iteration failed")
		}
	}()

	changed, err := p.poll(ctx, entry)
	if err != nil {
		return err
	}

	if p.heartbeat.Due(p.now()) && !changed {
		entry.Debug("Heartbeat due, status unchanged")
		return p.notifier.Send(HeartbeatMessage)
	}
	return nil
}

func (p *Poller) poll(ctx context.Context, entry *logrus.Entry) (bool, error) {
	raw, err := p.api.GetAPIAnswer(ctx, p.cursor)
	if err != nil {
		return false, err
	}

	data, err := homework.CheckResponse(raw)
	if err != nil {
		return false, err
	}

	record, ok, err := homework.FirstRecord(data)
	if err != nil {
		return false, err
	}
	if !ok {
		entry.Debug("No homework updates")
		return false, nil
	}

	changed := false
	current := homework.FromRecord(record)
	if p.last.Status != "" && current == p.last {
		if date, ok := homework.CurrentDate(data); ok {
			p.cursor = date
		}
		entry.WithField("status", current.Status).Debug("Homework status unchanged")
	} else {
		message, err := homework.ParseStatus(record)
		if err != nil {
			return false, err
		}
		if err := p.notifier.Send(message); err != nil {
			return false, err
		}
		entry.WithFields(logrus.Fields{
			"homework_name": current.Name,
			"status":        current.Status,
		}).Info("Homework status change reported")
		p.last = current
		changed = true
	}

	if p.last.Status.Terminal() {
		p.cursor = p.now().Unix()
	}
	return changed, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, practicum.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, practicum.ErrAPI):
		return "api"
	case errors.Is(err, homework.ErrResponseKey):
		return "response_key"
	case errors.Is(err, homework.ErrResponseType):
		return "response_type"
	case errors.Is(err, homework.ErrHomeworkName):
		return "homework_name"
	case errors.Is(err, homework.ErrEmptyStatus):
		return "empty_status"
	case errors.Is(err, homework.ErrUndocumentedStatus):
		return "undocumented_status"
	case errors.Is(err, domainTelegram.ErrSendMessage):
		return "send_message"
	default:
		return "unknown"
	}
}
