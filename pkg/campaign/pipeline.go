package campaign

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// RowSource supplies contact rows. Rows are read again on every call.
type RowSource interface {
	Rows(ctx context.Context) ([]Row, error)
}

// Request describes one campaign.
type Request struct {
	Attachment Attachment
	// Observer, when set, is called after every recorded outcome.
	Observer Observer
	Subject  string
	Message  string
}

// Result is the outcome of a completed campaign.
type Result struct {
	ID     string `json:"id"`
	Report Report `json:"report"`
}

// Stats describes the recipients currently present in the contact source.
type Stats struct {
	// Rows is the number of contact rows read.
	Rows int `json:"rows"`
	// Candidates counts non-empty values containing '@'.
	Candidates int `json:"candidates"`
	// Valid counts the addresses a campaign would be sent to.
	Valid int `json:"valid"`
}

// Pipeline composes a contact source and a dispatcher into a campaign run:
// read rows, extract and validate addresses, dispatch, summarize.
type Pipeline struct {
	source     RowSource
	dispatcher *Dispatcher
	logger     *slog.Logger
	newID      func() string
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithPipelineLogger sets the logger for campaign-level events.
func WithPipelineLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithIDGenerator overrides how campaign IDs are produced.
func WithIDGenerator(fn func() string) PipelineOption {
	return func(p *Pipeline) {
		if fn != nil {
			p.newID = fn
		}
	}
}

// NewPipeline creates a pipeline reading rows from source and sending through d.
func NewPipeline(source RowSource, d *Dispatcher, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		source:     source,
		dispatcher: d,
		logger:     slog.New(slog.DiscardHandler),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Recipients reads the contact source and returns the validated addresses in
// row order.
func (p *Pipeline) Recipients(ctx context.Context) ([]string, error) {
	rows, err := p.source.Rows(ctx)
	if err != nil {
		return nil, errors.Join(ErrSourceUnavailable, err)
	}
	return Validate(Extract(rows)), nil
}

// Stats reads the contact source and counts its recipients.
func (p *Pipeline) Stats(ctx context.Context) (Stats, error) {
	rows, err := p.source.Rows(ctx)
	if err != nil {
		return Stats{}, errors.Join(ErrSourceUnavailable, err)
	}
	candidates := FilterAddresses(Extract(rows))
	return Stats{
		Rows:       len(rows),
		Candidates: len(candidates),
		Valid:      len(Validate(candidates)),
	}, nil
}

// Verify checks that the transport behind the pipeline is reachable.
func (p *Pipeline) Verify(ctx context.Context) error {
	return p.dispatcher.Verify(ctx)
}

// Run executes one campaign. It fails without sending anything when the source
// cannot be read, when no valid address is found, or when the dispatcher rejects
// the message or cannot reach the transport. Otherwise it returns a report
// covering every validated address.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	id := p.newID()
	ctx = WithID(ctx, id)

	addresses, err := p.Recipients(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "contact source unavailable", slog.String("error", err.Error()))
		return nil, err
	}
	if len(addresses) == 0 {
		return nil, ErrNoRecipients
	}

	p.logger.InfoContext(ctx, "campaign started",
		slog.Int("recipients", len(addresses)),
		slog.String("subject", req.Subject),
	)
	started := time.Now()

	outcomes, err := p.dispatcher.Dispatch(ctx, addresses, Message{
		Subject:    req.Subject,
		Body:       req.Message,
		Attachment: req.Attachment,
	}, req.Observer)
	if err != nil {
		p.logger.ErrorContext(ctx, "campaign aborted", slog.String("error", err.Error()))
		return nil, err
	}

	report := Summarize(outcomes)
	p.logger.InfoContext(ctx, "campaign finished",
		slog.Int("total", report.Total),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Duration("duration", time.Since(started)),
	)

	return &Result{ID: id, Report: report}, nil
}
