package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase/interfaces"
	logx "broker_quotes/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidBrokerID     = errors.New("invalid broker_id")
	ErrInvalidProductType  = errors.New("invalid product_type")
	ErrInvalidCoverageTier = errors.New("invalid coverage_tier")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrQuotePersistence    = errors.New("quote persistence failed")
)

const (
	DefaultAdapterTimeout        = 10 * time.Second
	DefaultMaxConcurrentAdapters = 50
)

// AggregationConfig bounds each aggregation run.
type AggregationConfig struct {
	AdapterTimeout        time.Duration `split_words:"true" default:"10s"`
	MaxConcurrentAdapters int           `split_words:"true" default:"50"`
}

// RequestQuoteCommand is what the dashboard and the conversational agent submit.
type RequestQuoteCommand struct {
	BrokerID       string
	ConversationID string
	ProductType    string
	CoverageTier   string
	InputData      map[string]any
}

// QuoteOutcome is returned to the caller of a run. Results holds only the
// available lines; error lines stay in storage and are read through GetQuote.
type QuoteOutcome struct {
	Quote             entities.Quote
	Results           []entities.QuoteLineResult
	InsurersQueried   int
	InsurersSucceeded int
}

// QuoteDetails is the full read model of a persisted aggregate.
type QuoteDetails struct {
	Quote entities.Quote
	Lines []entities.QuoteLineResult
}

// IQuoteUseCase exposes the multi-insurer quote aggregation.
//
//   - RequestQuote => one synchronous fan-out run, always a fresh aggregate
//   - GetQuote     => aggregate + every line result (diagnostics, agent read-back)
//   - ListQuotes   => a broker's aggregates, optionally for one conversation

type IQuoteUseCase interface {
	RequestQuote(ctx context.Context, cmd RequestQuoteCommand) (QuoteOutcome, error)
	GetQuote(ctx context.Context, brokerID, quoteID string) (QuoteDetails, error)
	ListQuotes(ctx context.Context, brokerID, conversationID string) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	quotes      interfaces.IQuoteRepository
	connections interfaces.IInsurerConnectionRepository
	registry    interfaces.IAdapterRegistry

	adapterTimeout time.Duration
	maxConcurrent  int
	now            func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	connections interfaces.IInsurerConnectionRepository,
	registry interfaces.IAdapterRegistry,
	cfg AggregationConfig,
) *QuoteUseCase {
	timeout := cfg.AdapterTimeout
	if timeout <= 0 {
		timeout = DefaultAdapterTimeout
	}
	maxConcurrent := cfg.MaxConcurrentAdapters
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentAdapters
	}
	return &QuoteUseCase{
		quotes:         quotes,
		connections:    connections,
		registry:       registry,
		adapterTimeout: timeout,
		maxConcurrent:  maxConcurrent,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuoteUseCase) RequestQuote(ctx context.Context, cmd RequestQuoteCommand) (QuoteOutcome, error) {
	brokerID := strings.TrimSpace(cmd.BrokerID)
	if brokerID == "" {
		return QuoteOutcome{}, ErrInvalidBrokerID
	}
	req, err := entities.NewQuoteRequest(cmd.ProductType, cmd.CoverageTier, cmd.InputData)
	switch {
	case errors.Is(err, entities.ErrUnknownProductType):
		return QuoteOutcome{}, ErrInvalidProductType
	case errors.Is(err, entities.ErrUnknownCoverageTier):
		return QuoteOutcome{}, ErrInvalidCoverageTier
	case err != nil:
		return QuoteOutcome{}, err
	}

	logger := logx.Component("quote.usecase")

	// Storage writes outlive the caller so a started aggregate always
	// reaches a terminal status. Only the adapter calls follow ctx.
	persistCtx := context.WithoutCancel(ctx)

	now := u.now()
	quote, err := u.quotes.Create(persistCtx, entities.Quote{
		ID:             uuid.NewString(),
		BrokerID:       brokerID,
		ConversationID: strings.TrimSpace(cmd.ConversationID),
		ProductType:    req.ProductType(),
		InputData:      req.InputData(),
		CoverageTier:   req.CoverageTier(),
		Status:         entities.QuoteStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		logger.Error().Err(err).Str("broker_id", brokerID).Msg("create quote failed")
		return QuoteOutcome{}, fmt.Errorf("%w: create quote: %v", ErrQuotePersistence, err)
	}
	logger = logger.With().Str("quote_id", quote.ID).Str("broker_id", brokerID).Str("product_type", string(req.ProductType())).Logger()

	conns, err := u.connections.ListActiveByBrokerAndProduct(persistCtx, brokerID, req.ProductType())
	if err != nil {
		logger.Error().Err(err).Msg("load connections failed")
		return QuoteOutcome{}, fmt.Errorf("%w: load connections: %v", ErrQuotePersistence, err)
	}
	conns = eligibleConnections(conns, brokerID, req.ProductType())

	if len(conns) == 0 {
		logger.Info().Msg("no eligible insurers")
		return u.finalize(persistCtx, quote, nil)
	}

	logger.Info().Int("insurers", len(conns)).Msg("fanning out quote request")
	lines := u.fanOut(ctx, quote.ID, conns, req)

	if err := u.quotes.CreateLines(persistCtx, quote.ID, lines); err != nil {
		logger.Error().Err(err).Msg("persist line results failed")
		return QuoteOutcome{}, fmt.Errorf("%w: create lines: %v", ErrQuotePersistence, err)
	}
	return u.finalize(persistCtx, quote, lines)
}

// finalize computes the terminal status once and persists it.
func (u *QuoteUseCase) finalize(ctx context.Context, quote entities.Quote, lines []entities.QuoteLineResult) (QuoteOutcome, error) {
	status := entities.AggregateStatus(lines)
	available := make([]entities.QuoteLineResult, 0, len(lines))
	for _, l := range lines {
		if l.Available() {
			available = append(available, l)
		}
	}

	updated, err := u.quotes.UpdateOutcome(ctx, quote.ID, status, len(lines), len(available))
	if err != nil {
		return QuoteOutcome{}, fmt.Errorf("%w: update outcome: %v", ErrQuotePersistence, err)
	}
	if updated.ID == "" {
		return QuoteOutcome{}, fmt.Errorf("%w: update outcome: quote %s not found", ErrQuotePersistence, quote.ID)
	}

	logger := logx.Component("quote.usecase")
	logger.Info().
		Str("quote_id", quote.ID).
		Str("status", string(status)).
		Int("insurers_queried", len(lines)).
		Int("insurers_succeeded", len(available)).
		Msg("quote aggregation finished")

	return QuoteOutcome{
		Quote:             updated,
		Results:           available,
		InsurersQueried:   len(lines),
		InsurersSucceeded: len(available),
	}, nil
}

// fanOut invokes every adapter concurrently and waits for all of them to
// settle. The returned slice has exactly one line per connection, in the
// connections' order.
func (u *QuoteUseCase) fanOut(ctx context.Context, quoteID string, conns []entities.InsurerConnection, req entities.QuoteRequest) []entities.QuoteLineResult {
	lines := make([]entities.QuoteLineResult, len(conns))
	sem := make(chan struct{}, u.maxConcurrent)

	var wg sync.WaitGroup
	for i, conn := range conns {
		wg.Add(1)
		go func(i int, conn entities.InsurerConnection) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			q, err := u.invokeAdapter(ctx, conn, req)
			lines[i] = u.toLine(quoteID, conn, q, err)
		}(i, conn)
	}
	wg.Wait()

	return lines
}

type adapterOutcome struct {
	quote entities.InsurerQuote
	err   error
}

// invokeAdapter bounds one adapter call by the per-adapter timeout. It returns
// when the adapter does or when the deadline passes, whichever comes first, so
// an adapter ignoring its context cannot stall the run. Panics become
// internal adapter errors.
func (u *QuoteUseCase) invokeAdapter(ctx context.Context, conn entities.InsurerConnection, req entities.QuoteRequest) (entities.InsurerQuote, error) {
	slug := conn.Insurer.Slug
	adapterCtx, cancel := context.WithTimeout(ctx, u.adapterTimeout)
	defer cancel()

	done := make(chan adapterOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- adapterOutcome{err: entities.NewAdapterError(entities.AdapterErrInternal, slug, fmt.Sprintf("adapter panicked: %v", r), nil)}
			}
		}()

		adapter := u.registry.Resolve(conn)
		if adapter == nil {
			done <- adapterOutcome{err: entities.NewAdapterError(entities.AdapterErrInternal, slug, "no adapter resolved", nil)}
			return
		}
		q, err := adapter.GetQuote(adapterCtx, conn.Credentials, req)
		done <- adapterOutcome{quote: q, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil && errors.Is(adapterCtx.Err(), context.Canceled) {
			return entities.InsurerQuote{}, canceledError(slug, out.err)
		}
		return out.quote, out.err
	case <-adapterCtx.Done():
		if !errors.Is(adapterCtx.Err(), context.DeadlineExceeded) {
			return entities.InsurerQuote{}, canceledError(slug, adapterCtx.Err())
		}
		msg := fmt.Sprintf("no response within %s", u.adapterTimeout)
		if ctx.Err() != nil {
			msg = "request deadline passed before the insurer responded"
		}
		return entities.InsurerQuote{}, entities.NewAdapterError(entities.AdapterErrTimeout, slug, msg, adapterCtx.Err())
	}
}

func canceledError(slug string, err error) *entities.AdapterError {
	return entities.NewAdapterError(entities.AdapterErrCanceled, slug, "request canceled before the insurer responded", err)
}

func (u *QuoteUseCase) toLine(quoteID string, conn entities.InsurerConnection, q entities.InsurerQuote, err error) entities.QuoteLineResult {
	line := entities.QuoteLineResult{
		ID:           uuid.NewString(),
		QuoteID:      quoteID,
		ConnectionID: conn.ID,
		InsurerName:  conn.Insurer.Name,
		InsurerSlug:  conn.Insurer.Slug,
		CreatedAt:    u.now(),
	}

	if err == nil && q.Price.IsNegative() {
		err = entities.NewAdapterError(entities.AdapterErrMalformedResponse, conn.Insurer.Slug, "negative price "+q.Price.String(), nil)
	}
	if err != nil {
		ae := entities.AsAdapterError(err, conn.Insurer.Slug)
		line.Status = entities.QuoteLineError
		line.ErrorCode = string(ae.Kind)
		line.ErrorMessage = ae.Error()
		logger := logx.Component("quote.usecase")
		logger.Warn().
			Str("quote_id", quoteID).
			Str("connection_id", conn.ID).
			Str("insurer_slug", conn.Insurer.Slug).
			Str("error_code", line.ErrorCode).
			Msg(ae.Message)
		return line
	}

	if q.InsurerName != "" {
		line.InsurerName = q.InsurerName
	}
	if q.InsurerSlug != "" {
		line.InsurerSlug = q.InsurerSlug
	}
	line.Status = entities.QuoteLineAvailable
	line.Price = q.Price
	line.Currency = q.Currency
	if line.Currency == "" {
		line.Currency = entities.DefaultCurrency
	}
	line.Coverage = q.Coverage
	line.Deductible = q.Deductible
	line.IsRealtime = q.IsRealtime
	return line
}

// eligibleConnections re-applies the eligibility rule to whatever the store
// returned, so a lenient query can never widen the fan-out.
func eligibleConnections(conns []entities.InsurerConnection, brokerID string, product entities.ProductType) []entities.InsurerConnection {
	out := make([]entities.InsurerConnection, 0, len(conns))
	seen := make(map[string]bool, len(conns))
	for _, c := range conns {
		if !c.Active || c.BrokerID != brokerID || !c.Insurer.Supports(product) {
			continue
		}
		if c.ID != "" && seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, brokerID, quoteID string) (QuoteDetails, error) {
	brokerID = strings.TrimSpace(brokerID)
	if brokerID == "" {
		return QuoteDetails{}, ErrInvalidBrokerID
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return QuoteDetails{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return QuoteDetails{}, err
	}
	if q.ID == "" || q.BrokerID != brokerID {
		return QuoteDetails{}, ErrQuoteNotFound
	}

	lines, err := u.quotes.ListLinesByQuoteID(ctx, quoteID)
	if err != nil {
		return QuoteDetails{}, err
	}
	return QuoteDetails{Quote: q, Lines: lines}, nil
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context, brokerID, conversationID string) ([]entities.Quote, error) {
	brokerID = strings.TrimSpace(brokerID)
	if brokerID == "" {
		return nil, ErrInvalidBrokerID
	}

	quotes, err := u.quotes.ListByBrokerID(ctx, brokerID)
	if err != nil {
		return nil, err
	}
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return quotes, nil
	}

	out := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.ConversationID == conversationID {
			out = append(out, q)
		}
	}
	return out, nil
}
