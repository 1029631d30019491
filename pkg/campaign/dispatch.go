package campaign

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmitrymomot/outreach/pkg/mailer"
)

// DefaultInterval is the minimum time between the start of two consecutive sends.
const DefaultInterval = time.Second

// Status is the result of one send attempt.
type Status int

const (
	StatusSent Status = iota + 1
	StatusFailed
)

// String returns a lower-case name for the status.
func (s Status) String() string {
	switch s {
	case StatusSent:
		return "sent"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records what happened to a single address.
// Reason is empty for sent outcomes.
type Outcome struct {
	Address string
	Reason  string
	Status  Status
}

// Sent reports whether the message was accepted by the transport.
func (o Outcome) Sent() bool { return o.Status == StatusSent }

// Message is the content shared by every email of a campaign.
type Message struct {
	Attachment Attachment
	Subject    string
	Body       string
}

func (m Message) validate() error {
	switch {
	case m.Subject == "":
		return ErrEmptySubject
	case m.Body == "":
		return ErrEmptyBody
	case m.Attachment.Open == nil:
		return ErrNoAttachment
	}
	return nil
}

// BodyRenderer turns the plain message body into an HTML alternative.
type BodyRenderer interface {
	Render(text string) (string, error)
}

// Observer is notified after every recorded outcome. Index is the position of
// the address in the dispatched list.
type Observer func(index int, outcome Outcome)

// Dispatcher sends a message to a list of addresses, one at a time.
// A Dispatcher holds no per-campaign state and is safe for concurrent use.
type Dispatcher struct {
	transport mailer.Transport
	renderer  BodyRenderer
	logger    *slog.Logger
	from      string
	replyTo   string
	interval  time.Duration
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithInterval sets the minimum time between the start of two consecutive
// sends. Zero or negative disables throttling.
func WithInterval(d time.Duration) DispatcherOption {
	return func(disp *Dispatcher) {
		disp.interval = d
	}
}

// WithSender sets the From address of every message.
func WithSender(name, address string) DispatcherOption {
	return func(d *Dispatcher) {
		d.from = mailer.Recipient(name, address)
	}
}

// WithReplyTo sets the Reply-To address of every message.
func WithReplyTo(address string) DispatcherOption {
	return func(d *Dispatcher) {
		d.replyTo = address
	}
}

// WithRenderer enables an HTML alternative part rendered from the message body.
func WithRenderer(r BodyRenderer) DispatcherOption {
	return func(d *Dispatcher) {
		d.renderer = r
	}
}

// WithLogger sets the logger used for per-address results.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher creates a dispatcher sending through t.
func NewDispatcher(t mailer.Transport, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		transport: t,
		interval:  DefaultInterval,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Verify checks that the transport is reachable.
func (d *Dispatcher) Verify(ctx context.Context) error {
	if err := d.transport.Verify(ctx); err != nil {
		return errors.Join(ErrTransportUnavailable, err)
	}
	return nil
}

// Dispatch sends msg to every address in order and returns one outcome per
// address, in the same order.
//
// The message and attachment are checked and the transport is verified before
// the first attempt; any of those failing returns an error and no outcomes.
// After that Dispatch never returns an error: a failed send is recorded and the
// loop moves on. If ctx is cancelled the remaining addresses are recorded as
// failed without being attempted.
func (d *Dispatcher) Dispatch(ctx context.Context, addresses []string, msg Message, observers ...Observer) ([]Outcome, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}
	if _, err := msg.Attachment.read(ctx); err != nil {
		return nil, errors.Join(ErrAttachmentUnavailable, err)
	}
	if err := d.Verify(ctx); err != nil {
		return nil, err
	}

	html := d.renderHTML(ctx, msg.Body)
	limiter := d.limiter()
	outcomes := make([]Outcome, 0, len(addresses))

	record := func(o Outcome) {
		outcomes = append(outcomes, o)
		for _, obs := range observers {
			if obs != nil {
				obs(len(outcomes)-1, o)
			}
		}
	}

	for i, addr := range addresses {
		if err := limiter.Wait(ctx); err != nil {
			reason := "not attempted: " + notAttemptedCause(ctx, err)
			d.logger.WarnContext(ctx, "campaign interrupted",
				slog.Int("remaining", len(addresses)-i),
				slog.String("reason", reason),
			)
			for _, rest := range addresses[i:] {
				record(Outcome{Address: rest, Status: StatusFailed, Reason: reason})
			}
			break
		}

		if err := d.send(ctx, addr, msg, html); err != nil {
			d.logger.WarnContext(ctx, "email failed",
				slog.String("email", addr),
				slog.String("error", err.Error()),
			)
			record(Outcome{Address: addr, Status: StatusFailed, Reason: err.Error()})
			continue
		}

		d.logger.InfoContext(ctx, "email sent", slog.String("email", addr))
		record(Outcome{Address: addr, Status: StatusSent})
	}

	return outcomes, nil
}

func (d *Dispatcher) send(ctx context.Context, addr string, msg Message, html string) error {
	content, err := msg.Attachment.read(ctx)
	if err != nil {
		return fmt.Errorf("read attachment: %w", err)
	}

	email := &mailer.Email{
		From:    d.from,
		ReplyTo: d.replyTo,
		To:      []string{addr},
		Subject: msg.Subject,
		Text:    msg.Body,
		HTML:    html,
		Attachments: []mailer.Attachment{{
			Filename:    msg.Attachment.Filename,
			ContentType: msg.Attachment.ContentType,
			Content:     content,
		}},
	}
	if id, ok := IDFromContext(ctx); ok {
		email.Headers = map[string]string{HeaderCampaignID: id}
		email.Tags = mailer.Tags{"campaign": id}
	}

	return d.transport.Send(ctx, email)
}

// renderHTML returns the HTML alternative of the body, or an empty string when
// no renderer is configured or rendering fails. The plain text part is always sent.
func (d *Dispatcher) renderHTML(ctx context.Context, body string) string {
	if d.renderer == nil {
		return ""
	}
	html, err := d.renderer.Render(body)
	if err != nil {
		d.logger.WarnContext(ctx, "message body could not be rendered, sending plain text only",
			slog.String("error", err.Error()),
		)
		return ""
	}
	return html
}

func (d *Dispatcher) limiter() *rate.Limiter {
	if d.interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(d.interval), 1)
}

func notAttemptedCause(ctx context.Context, waitErr error) string {
	if cause := context.Cause(ctx); cause != nil {
		return cause.Error()
	}
	return waitErr.Error()
}
