package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase/interfaces"
	mock_interfaces "broker_quotes/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type adapterFunc func(ctx context.Context, creds entities.Credentials, req entities.QuoteRequest) (entities.InsurerQuote, error)

func (f adapterFunc) GetQuote(ctx context.Context, creds entities.Credentials, req entities.QuoteRequest) (entities.InsurerQuote, error) {
	return f(ctx, creds, req)
}

func priced(amount string) adapterFunc {
	return func(context.Context, entities.Credentials, entities.QuoteRequest) (entities.InsurerQuote, error) {
		return entities.InsurerQuote{Price: decimal.RequireFromString(amount), Currency: "USD", IsRealtime: true}, nil
	}
}

func failing(kind entities.AdapterErrorKind) adapterFunc {
	return func(context.Context, entities.Credentials, entities.QuoteRequest) (entities.InsurerQuote, error) {
		return entities.InsurerQuote{}, entities.NewAdapterError(kind, "x", string(kind), nil)
	}
}

// hanging ignores its context entirely.
func hanging(d time.Duration) adapterFunc {
	return func(context.Context, entities.Credentials, entities.QuoteRequest) (entities.InsurerQuote, error) {
		time.Sleep(d)
		return entities.InsurerQuote{Price: decimal.NewFromInt(1)}, nil
	}
}

func panicking() adapterFunc {
	return func(context.Context, entities.Credentials, entities.QuoteRequest) (entities.InsurerQuote, error) {
		panic("nil map write")
	}
}

func conn(id, slug string, products ...entities.ProductType) entities.InsurerConnection {
	return entities.InsurerConnection{
		ID:       id,
		BrokerID: "broker-1",
		Insurer: entities.Insurer{
			Name:              slug + " insurance",
			Slug:              slug,
			AdapterType:       "test",
			SupportedProducts: products,
		},
		Active: true,
	}
}

type quoteFixture struct {
	quotes   *mock_interfaces.MockIQuoteRepository
	conns    *mock_interfaces.MockIInsurerConnectionRepository
	registry *mock_interfaces.MockIAdapterRegistry
	uc       *QuoteUseCase
}

func newQuoteFixture(t *testing.T, adapters map[string]interfaces.IInsurerAdapter, cfg AggregationConfig) quoteFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := quoteFixture{
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		conns:    mock_interfaces.NewMockIInsurerConnectionRepository(ctrl),
		registry: mock_interfaces.NewMockIAdapterRegistry(ctrl),
	}
	f.registry.EXPECT().Resolve(gomock.Any()).DoAndReturn(func(c entities.InsurerConnection) interfaces.IInsurerAdapter {
		return adapters[c.Insurer.Slug]
	}).AnyTimes()
	f.uc = NewQuoteUseCase(f.quotes, f.conns, f.registry, cfg)
	return f
}

func (f quoteFixture) expectCreate(t *testing.T) *gomock.Call {
	return f.quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			if q.ID == "" || q.Status != entities.QuoteStatusPending || q.CreatedAt.IsZero() {
				t.Fatalf("unexpected pending quote: %+v", q)
			}
			return q, nil
		},
	)
}

func (f quoteFixture) expectOutcome(status entities.QuoteStatus, queried, succeeded int) {
	f.quotes.EXPECT().UpdateOutcome(gomock.Any(), gomock.Any(), status, queried, succeeded).DoAndReturn(
		func(_ context.Context, id string, s entities.QuoteStatus, q, ok int) (entities.Quote, error) {
			return entities.Quote{ID: id, BrokerID: "broker-1", Status: s, InsurersQueried: q, InsurersSucceeded: ok}, nil
		},
	)
}

func autoCommand() RequestQuoteCommand {
	return RequestQuoteCommand{
		BrokerID:    "broker-1",
		ProductType: "auto",
		InputData:   map[string]any{"vehicle": "sedan"},
	}
}

func TestQuoteUseCase_RequestQuote_Validation(t *testing.T) {
	cases := []struct {
		name string
		cmd  RequestQuoteCommand
		want error
	}{
		{name: "missing broker", cmd: RequestQuoteCommand{BrokerID: "  ", ProductType: "auto"}, want: ErrInvalidBrokerID},
		{name: "unknown product", cmd: RequestQuoteCommand{BrokerID: "broker-1", ProductType: "crypto"}, want: ErrInvalidProductType},
		{name: "unknown tier", cmd: RequestQuoteCommand{BrokerID: "broker-1", ProductType: "auto", CoverageTier: "gold"}, want: ErrInvalidCoverageTier},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// No repository expectations: any persistence call fails the test.
			f := newQuoteFixture(t, nil, AggregationConfig{})
			_, err := f.uc.RequestQuote(context.Background(), tc.cmd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestQuoteUseCase_RequestQuote_MixedOutcomes(t *testing.T) {
	adapters := map[string]interfaces.IInsurerAdapter{
		"slowco":   hanging(2 * time.Second),
		"acme":     priced("45.00"),
		"lockedco": failing(entities.AdapterErrAuthentication),
	}
	f := newQuoteFixture(t, adapters, AggregationConfig{AdapterTimeout: 50 * time.Millisecond})

	f.expectCreate(t)
	f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), "broker-1", entities.ProductAuto).Return([]entities.InsurerConnection{
		conn("c1", "slowco", entities.ProductAuto),
		conn("c2", "acme", entities.ProductAuto),
		conn("c3", "lockedco", entities.ProductAuto, entities.ProductHome),
	}, nil)
	f.quotes.EXPECT().CreateLines(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, quoteID string, lines []entities.QuoteLineResult) error {
			if len(lines) != 3 {
				t.Fatalf("expected 3 lines, got %d", len(lines))
			}
			byConn := map[string]entities.QuoteLineResult{}
			for _, l := range lines {
				if l.QuoteID != quoteID || l.ID == "" {
					t.Fatalf("line not attached to quote: %+v", l)
				}
				byConn[l.ConnectionID] = l
			}
			if l := byConn["c1"]; l.Status != entities.QuoteLineError || l.ErrorCode != string(entities.AdapterErrTimeout) {
				t.Fatalf("expected timeout line, got %+v", l)
			}
			if l := byConn["c2"]; l.Status != entities.QuoteLineAvailable || !l.Price.Equal(decimal.RequireFromString("45")) || l.Currency != "USD" {
				t.Fatalf("expected available $45 line, got %+v", l)
			}
			if l := byConn["c3"]; l.Status != entities.QuoteLineError || l.ErrorCode != string(entities.AdapterErrAuthentication) || l.ErrorMessage == "" {
				t.Fatalf("expected auth error line, got %+v", l)
			}
			return nil
		},
	)
	f.expectOutcome(entities.QuoteStatusCompleted, 3, 1)

	start := time.Now()
	out, err := f.uc.RequestQuote(context.Background(), autoCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("run was held up by the hanging adapter: %s", elapsed)
	}
	if out.Quote.Status != entities.QuoteStatusCompleted {
		t.Fatalf("expected completed, got %s", out.Quote.Status)
	}
	if len(out.Results) != 1 || out.Results[0].InsurerSlug != "acme" {
		t.Fatalf("expected the single acme result, got %+v", out.Results)
	}
	if out.InsurersQueried != 3 || out.InsurersSucceeded != 1 {
		t.Fatalf("unexpected counts: %d/%d", out.InsurersSucceeded, out.InsurersQueried)
	}
}

func TestQuoteUseCase_RequestQuote_AllFail(t *testing.T) {
	adapters := map[string]interfaces.IInsurerAdapter{
		"a": failing(entities.AdapterErrUpstreamUnavailable),
		"b": panicking(),
	}
	f := newQuoteFixture(t, adapters, AggregationConfig{})

	f.expectCreate(t)
	f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), "broker-1", entities.ProductAuto).Return([]entities.InsurerConnection{
		conn("c1", "a", entities.ProductAuto),
		conn("c2", "b", entities.ProductAuto),
	}, nil)
	f.quotes.EXPECT().CreateLines(gomock.Any(), gomock.Any(), gomock.Len(2)).DoAndReturn(
		func(_ context.Context, _ string, lines []entities.QuoteLineResult) error {
			for _, l := range lines {
				if l.Status != entities.QuoteLineError {
					t.Fatalf("expected error line, got %+v", l)
				}
				if !l.Price.IsZero() {
					t.Fatalf("error line must not carry a price: %+v", l)
				}
			}
			if lines[1].ErrorCode != string(entities.AdapterErrInternal) {
				t.Fatalf("expected panic to be recorded as internal, got %+v", lines[1])
			}
			return nil
		},
	)
	f.expectOutcome(entities.QuoteStatusError, 2, 0)

	out, err := f.uc.RequestQuote(context.Background(), autoCommand())
	if err != nil {
		t.Fatalf("an all-failed run is not a request failure: %v", err)
	}
	if out.Quote.Status != entities.QuoteStatusError || len(out.Results) != 0 {
		t.Fatalf("unexpected outcome: %+v", out)
	}
}

func TestQuoteUseCase_RequestQuote_PanicDoesNotAffectSiblings(t *testing.T) {
	adapters := map[string]interfaces.IInsurerAdapter{
		"boom": panicking(),
		"ok":   priced("10"),
	}
	f := newQuoteFixture(t, adapters, AggregationConfig{})

	f.expectCreate(t)
	f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), "broker-1", entities.ProductAuto).Return([]entities.InsurerConnection{
		conn("c1", "boom", entities.ProductAuto),
		conn("c2", "ok", entities.ProductAuto),
	}, nil)
	f.quotes.EXPECT().CreateLines(gomock.Any(), gomock.Any(), gomock.Len(2)).Return(nil)
	f.expectOutcome(entities.QuoteStatusCompleted, 2, 1)

	out, err := f.uc.RequestQuote(context.Background(), autoCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Results) != 1 || out.Results[0].ConnectionID != "c2" {
		t.Fatalf("expected sibling result to survive, got %+v", out.Results)
	}
}

func TestQuoteUseCase_RequestQuote_NoInsurers(t *testing.T) {
	f := newQuoteFixture(t, nil, AggregationConfig{})

	f.expectCreate(t)
	// Store returns connections that do not support travel; they are not eligible.
	f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), "broker-1", entities.ProductTravel).Return([]entities.InsurerConnection{
		conn("c1", "a", entities.ProductAuto),
		conn("c2", "b", entities.ProductHome),
	}, nil)
	f.expectOutcome(entities.QuoteStatusNoInsurers, 0, 0)

	cmd := autoCommand()
	cmd.ProductType = "travel"
	out, err := f.uc.RequestQuote(context.Background(), cmd)
	if err != nil {
		t.Fatalf("no_insurers is not an error: %v", err)
	}
	if out.Quote.Status != entities.QuoteStatusNoInsurers || len(out.Results) != 0 || out.InsurersQueried != 0 {
		t.Fatalf("unexpected outcome: %+v", out)
	}
}

func TestQuoteUseCase_RequestQuote_SkipsInactiveConnections(t *testing.T) {
	var calls int32
	adapters := map[string]interfaces.IInsurerAdapter{
		"a": adapterFunc(func(context.Context, entities.Credentials, entities.QuoteRequest) (entities.InsurerQuote, error) {
			atomic.AddInt32(&calls, 1)
			return entities.InsurerQuote{Price: decimal.NewFromInt(5)}, nil
		}),
	}
	f := newQuoteFixture(t, adapters, AggregationConfig{})

	inactive := conn("c2", "a", entities.ProductAuto)
	inactive.Active = false

	f.expectCreate(t)
	f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), "broker-1", entities.ProductAuto).Return([]entities.InsurerConnection{
		conn("c1", "a", entities.ProductAuto), inactive,
	}, nil)
	f.quotes.EXPECT().CreateLines(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)
	f.expectOutcome(entities.QuoteStatusCompleted, 1, 1)

	out, err := f.uc.RequestQuote(context.Background(), autoCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("inactive connection was queried")
	}
	if out.Results[0].Currency != entities.DefaultCurrency {
		t.Fatalf("expected default currency, got %q", out.Results[0].Currency)
	}
}

func TestQuoteUseCase_RequestQuote_ResultCountMatchesConnections(t *testing.T) {
	adapters := map[string]interfaces.IInsurerAdapter{}
	var conns []entities.InsurerConnection
	for i := 0; i < 20; i++ {
		slug := string(rune('a' + i))
		if i%3 == 0 {
			adapters[slug] = failing(entities.AdapterErrUpstreamUnavailable)
		} else {
			adapters[slug] = priced("100")
		}
		conns = append(conns, conn("c-"+slug, slug, entities.ProductAuto))
	}
	f := newQuoteFixture(t, adapters, AggregationConfig{MaxConcurrentAdapters: 4})

	f.expectCreate(t)
	f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), "broker-1", entities.ProductAuto).Return(conns, nil)
	f.quotes.EXPECT().CreateLines(gomock.Any(), gomock.Any(), gomock.Len(20)).Return(nil)
	f.expectOutcome(entities.QuoteStatusCompleted, 20, 13)

	out, err := f.uc.RequestQuote(context.Background(), autoCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.InsurersQueried != 20 || out.InsurersSucceeded != 13 {
		t.Fatalf("unexpected counts: %d/%d", out.InsurersSucceeded, out.InsurersQueried)
	}
}

func TestQuoteUseCase_RequestQuote_NoDedupAcrossRuns(t *testing.T) {
	f := newQuoteFixture(t, nil, AggregationConfig{})

	f.expectCreate(t).Times(2)
	f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), "broker-1", entities.ProductAuto).Return(nil, nil).Times(2)
	f.expectOutcome(entities.QuoteStatusNoInsurers, 0, 0)
	f.expectOutcome(entities.QuoteStatusNoInsurers, 0, 0)

	first, err := f.uc.RequestQuote(context.Background(), autoCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.uc.RequestQuote(context.Background(), autoCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Quote.ID == "" || first.Quote.ID == second.Quote.ID {
		t.Fatalf("expected two independent aggregates, got %q and %q", first.Quote.ID, second.Quote.ID)
	}
}

func TestQuoteUseCase_RequestQuote_PersistenceFailures(t *testing.T) {
	t.Run("create quote", func(t *testing.T) {
		f := newQuoteFixture(t, nil, AggregationConfig{})
		f.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		_, err := f.uc.RequestQuote(context.Background(), autoCommand())
		if !errors.Is(err, ErrQuotePersistence) {
			t.Fatalf("expected ErrQuotePersistence, got %v", err)
		}
	})

	t.Run("create lines", func(t *testing.T) {
		f := newQuoteFixture(t, map[string]interfaces.IInsurerAdapter{"a": priced("1")}, AggregationConfig{})
		f.expectCreate(t)
		f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.InsurerConnection{conn("c1", "a", entities.ProductAuto)}, nil)
		f.quotes.EXPECT().CreateLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := f.uc.RequestQuote(context.Background(), autoCommand())
		if !errors.Is(err, ErrQuotePersistence) {
			t.Fatalf("expected ErrQuotePersistence, got %v", err)
		}
	})

	t.Run("update outcome finds no quote", func(t *testing.T) {
		f := newQuoteFixture(t, nil, AggregationConfig{})
		f.expectCreate(t)
		f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.quotes.EXPECT().UpdateOutcome(gomock.Any(), gomock.Any(), entities.QuoteStatusNoInsurers, 0, 0).Return(entities.Quote{}, nil)

		_, err := f.uc.RequestQuote(context.Background(), autoCommand())
		if !errors.Is(err, ErrQuotePersistence) {
			t.Fatalf("expected ErrQuotePersistence, got %v", err)
		}
	})

	t.Run("update outcome", func(t *testing.T) {
		f := newQuoteFixture(t, nil, AggregationConfig{})
		f.expectCreate(t)
		f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.quotes.EXPECT().UpdateOutcome(gomock.Any(), gomock.Any(), entities.QuoteStatusNoInsurers, 0, 0).Return(entities.Quote{}, errors.New("db"))

		_, err := f.uc.RequestQuote(context.Background(), autoCommand())
		if !errors.Is(err, ErrQuotePersistence) {
			t.Fatalf("expected ErrQuotePersistence, got %v", err)
		}
	})
}

func TestQuoteUseCase_GetQuote(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newQuoteFixture(t, nil, AggregationConfig{})
		if _, err := f.uc.GetQuote(context.Background(), "broker-1", " "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("other broker", func(t *testing.T) {
		f := newQuoteFixture(t, nil, AggregationConfig{})
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", BrokerID: "broker-2"}, nil)

		if _, err := f.uc.GetQuote(context.Background(), "broker-1", "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newQuoteFixture(t, nil, AggregationConfig{})
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		if _, err := f.uc.GetQuote(context.Background(), "broker-1", "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success includes error lines", func(t *testing.T) {
		f := newQuoteFixture(t, nil, AggregationConfig{})
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", BrokerID: "broker-1", Status: entities.QuoteStatusCompleted}, nil)
		f.quotes.EXPECT().ListLinesByQuoteID(gomock.Any(), "q-1").Return([]entities.QuoteLineResult{
			{ID: "l1", Status: entities.QuoteLineAvailable},
			{ID: "l2", Status: entities.QuoteLineError, ErrorCode: "timeout"},
		}, nil)

		got, err := f.uc.GetQuote(context.Background(), " broker-1 ", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Lines) != 2 {
			t.Fatalf("expected all lines, got %+v", got.Lines)
		}
	})
}

func TestQuoteUseCase_ListQuotes(t *testing.T) {
	f := newQuoteFixture(t, nil, AggregationConfig{})
	f.quotes.EXPECT().ListByBrokerID(gomock.Any(), "broker-1").Return([]entities.Quote{
		{ID: "q-1", ConversationID: "wa-1"},
		{ID: "q-2", ConversationID: "wa-2"},
		{ID: "q-3"},
	}, nil).Times(2)

	all, err := f.uc.ListQuotes(context.Background(), "broker-1", "")
	if err != nil || len(all) != 3 {
		t.Fatalf("expected 3 quotes, got %d err=%v", len(all), err)
	}
	conv, err := f.uc.ListQuotes(context.Background(), "broker-1", "wa-2")
	if err != nil || len(conv) != 1 || conv[0].ID != "q-2" {
		t.Fatalf("expected q-2 only, got %+v err=%v", conv, err)
	}

	if _, err := f.uc.ListQuotes(context.Background(), "", ""); !errors.Is(err, ErrInvalidBrokerID) {
		t.Fatalf("expected ErrInvalidBrokerID, got %v", err)
	}
}

// blocking waits for its context and reports the context error as-is.
func blocking() adapterFunc {
	return func(ctx context.Context, _ entities.Credentials, _ entities.QuoteRequest) (entities.InsurerQuote, error) {
		<-ctx.Done()
		return entities.InsurerQuote{}, ctx.Err()
	}
}

func TestQuoteUseCase_RequestQuote_CallerCancellation(t *testing.T) {
	adapters := map[string]interfaces.IInsurerAdapter{
		"acme":     priced("45"),
		"slowco":   blocking(),
		"stubborn": hanging(time.Second),
	}
	f := newQuoteFixture(t, adapters, AggregationConfig{AdapterTimeout: 5 * time.Second})

	f.expectCreate(t)
	f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), "broker-1", entities.ProductAuto).Return([]entities.InsurerConnection{
		conn("c1", "acme", entities.ProductAuto),
		conn("c2", "slowco", entities.ProductAuto),
		conn("c3", "stubborn", entities.ProductAuto),
	}, nil)

	var stored []entities.QuoteLineResult
	f.quotes.EXPECT().CreateLines(gomock.Any(), gomock.Any(), gomock.Len(3)).DoAndReturn(
		func(ctx context.Context, _ string, lines []entities.QuoteLineResult) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			stored = lines
			return nil
		},
	)
	f.quotes.EXPECT().UpdateOutcome(gomock.Any(), gomock.Any(), entities.QuoteStatusCompleted, 3, 1).DoAndReturn(
		func(ctx context.Context, id string, s entities.QuoteStatus, q, ok int) (entities.Quote, error) {
			if ctx.Err() != nil {
				return entities.Quote{}, ctx.Err()
			}
			return entities.Quote{ID: id, Status: s, InsurersQueried: q, InsurersSucceeded: ok}, nil
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	out, err := f.uc.RequestQuote(ctx, autoCommand())
	if err != nil {
		t.Fatalf("a canceled caller must not leave the aggregate pending: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("run outlived the caller: %s", elapsed)
	}
	if out.Quote.Status != entities.QuoteStatusCompleted {
		t.Fatalf("unexpected status %s", out.Quote.Status)
	}
	for _, l := range stored {
		if l.InsurerSlug == "acme" {
			continue
		}
		if l.ErrorCode != string(entities.AdapterErrCanceled) {
			t.Fatalf("line %s: expected canceled, got %q (%s)", l.ConnectionID, l.ErrorCode, l.ErrorMessage)
		}
	}
}

func TestQuoteUseCase_RequestQuote_RespectsConcurrencyCap(t *testing.T) {
	const limit = 3
	var inFlight, peak int32
	tracked := adapterFunc(func(context.Context, entities.Credentials, entities.QuoteRequest) (entities.InsurerQuote, error) {
		n := atomic.AddInt32(&inFlight, 1)
		defer atomic.AddInt32(&inFlight, -1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		return entities.InsurerQuote{Price: decimal.NewFromInt(10)}, nil
	})

	adapters := map[string]interfaces.IInsurerAdapter{}
	var conns []entities.InsurerConnection
	for i := 0; i < 12; i++ {
		slug := fmt.Sprintf("insurer-%d", i)
		adapters[slug] = tracked
		conns = append(conns, conn("c-"+slug, slug, entities.ProductAuto))
	}
	f := newQuoteFixture(t, adapters, AggregationConfig{MaxConcurrentAdapters: limit})

	f.expectCreate(t)
	f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), "broker-1", entities.ProductAuto).Return(conns, nil)
	f.quotes.EXPECT().CreateLines(gomock.Any(), gomock.Any(), gomock.Len(12)).Return(nil)
	f.expectOutcome(entities.QuoteStatusCompleted, 12, 12)

	if _, err := f.uc.RequestQuote(context.Background(), autoCommand()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&peak); got > limit {
		t.Fatalf("expected at most %d adapters in flight, saw %d", limit, got)
	}
	if got := atomic.LoadInt32(&peak); got < 2 {
		t.Fatalf("adapters never overlapped (peak %d)", got)
	}
}

func TestQuoteUseCase_RequestQuote_AdaptersRunInParallel(t *testing.T) {
	const (
		n     = 10
		delay = 100 * time.Millisecond
	)
	adapters := map[string]interfaces.IInsurerAdapter{}
	var conns []entities.InsurerConnection
	for i := 0; i < n; i++ {
		slug := fmt.Sprintf("insurer-%d", i)
		adapters[slug] = hanging(delay)
		conns = append(conns, conn("c-"+slug, slug, entities.ProductAuto))
	}
	f := newQuoteFixture(t, adapters, AggregationConfig{})

	f.expectCreate(t)
	f.conns.EXPECT().ListActiveByBrokerAndProduct(gomock.Any(), "broker-1", entities.ProductAuto).Return(conns, nil)
	f.quotes.EXPECT().CreateLines(gomock.Any(), gomock.Any(), gomock.Len(n)).Return(nil)
	f.expectOutcome(entities.QuoteStatusCompleted, n, n)

	start := time.Now()
	if _, err := f.uc.RequestQuote(context.Background(), autoCommand()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed >= n*delay/2 {
		t.Fatalf("fan-out looks sequential: %s for %d adapters of %s", elapsed, n, delay)
	}
}
