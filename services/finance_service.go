package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"khidma/dto"
	apperrors "khidma/errors"
	"khidma/models"
	"khidma/services/logger"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// MarketplaceAPI is the read-only surface of the external marketplace
// backend. The finance service depends on this interface, never on the HTTP
// client directly.
type MarketplaceAPI interface {
	FetchInvoices(ctx context.Context, from, to *time.Time) ([]models.RawInvoice, error)
	FetchOrders(ctx context.Context, from, to *time.Time) ([]models.RawOrder, error)
	FetchOffers(ctx context.Context, from, to *time.Time) ([]models.RawOffer, error)
}

// Snapshot is one fully reconciled financial picture for a date range. A
// snapshot is built whole and replaced whole; the three sources in it always
// belong to the same fetch cycle.
type Snapshot struct {
	Seq          uint64
	FromDate     *time.Time
	ToDate       *time.Time
	InvoiceLines []models.FinancialLine
	OrderLines   []models.FinancialLine
	OfferLines   []models.FinancialLine
	Summary      models.FinancialSummary
	RefreshedAt  time.Time
}

// FinanceServiceOptions configures a FinanceService.
type FinanceServiceOptions struct {
	API      MarketplaceAPI
	Redis    *redis.Client
	Melody   *melody.Melody
	Logger   logger.Logger
	CacheTTL time.Duration
}

// FinanceService owns the current snapshot and coordinates refresh cycles.
type FinanceService struct {
	api      MarketplaceAPI
	rdb      *redis.Client
	m        *melody.Melody
	logger   logger.Logger
	cacheTTL time.Duration

	mu      sync.Mutex
	seq     uint64
	current *Snapshot
}

// NewFinanceService creates a FinanceService with the given options.
func NewFinanceService(opts FinanceServiceOptions) *FinanceService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = 30 * time.Minute
	}
	return &FinanceService{
		api:      opts.API,
		rdb:      opts.Redis,
		m:        opts.Melody,
		logger:   opts.Logger,
		cacheTTL: opts.CacheTTL,
	}
}

// rangeKey identifies a date range for snapshot matching and cache keys.
func rangeKey(from, to *time.Time) string {
	f, t := "", ""
	if from != nil {
		f = from.Format("2006-01-02")
	}
	if to != nil {
		t = to.Format("2006-01-02")
	}
	return f + ":" + t
}

func summaryCacheKey(from, to *time.Time) string {
	return "summary:" + rangeKey(from, to)
}

// Refresh fetches the three sources for the range concurrently as one atomic
// unit, rebuilds the summary and publishes it. If any fetch fails the whole
// refresh fails; a partial summary would no longer reconcile. A refresh
// issued while this one is in flight supersedes it: the stale result is
// discarded, never merged.
func (s *FinanceService) Refresh(ctx context.Context, from, to *time.Time) (*Snapshot, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	var (
		rawInvoices []models.RawInvoice
		rawOrders   []models.RawOrder
		rawOffers   []models.RawOffer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if rawInvoices, err = s.api.FetchInvoices(gctx, from, to); err != nil {
			return fmt.Errorf("invoices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if rawOrders, err = s.api.FetchOrders(gctx, from, to); err != nil {
			return fmt.Errorf("orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if rawOffers, err = s.api.FetchOffers(gctx, from, to); err != nil {
			return fmt.Errorf("offers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("refresh %d [%s] failed: %v", seq, rangeKey(from, to), err)
		return nil, apperrors.NewAppError(apperrors.ErrCodeFetchFailed, "could not load financial data", err)
	}

	snapshot := &Snapshot{
		Seq:         seq,
		FromDate:    from,
		ToDate:      to,
		RefreshedAt: time.Now(),
	}
	for _, raw := range rawInvoices {
		snapshot.InvoiceLines = append(snapshot.InvoiceLines, NormalizeInvoice(raw))
	}
	for _, raw := range rawOrders {
		snapshot.OrderLines = append(snapshot.OrderLines, NormalizeOrder(raw))
	}
	for _, raw := range rawOffers {
		snapshot.OfferLines = append(snapshot.OfferLines, NormalizeOffer(raw))
	}
	snapshot.Summary = Aggregate(snapshot.InvoiceLines, snapshot.OrderLines, snapshot.OfferLines)

	s.mu.Lock()
	if seq != s.seq {
		latest := s.seq
		s.mu.Unlock()
		s.logger.Info("refresh %d superseded by %d, discarding result", seq, latest)
		return nil, apperrors.ErrRefreshSuperseded
	}
	s.current = snapshot
	s.mu.Unlock()

	if len(snapshot.Summary.Warnings) > 0 {
		s.logger.Warn("refresh %d [%s] carries %d reconciliation warnings", seq, rangeKey(from, to), len(snapshot.Summary.Warnings))
	}

	s.cacheSummary(ctx, snapshot)
	s.publishSummary(snapshot)

	return snapshot, nil
}

func (s *FinanceService) cacheSummary(ctx context.Context, snapshot *Snapshot) {
	if s.rdb == nil {
		return
	}
	key := summaryCacheKey(snapshot.FromDate, snapshot.ToDate)
	if err := SetToRedis(ctx, s.rdb, key, snapshot.Summary, s.cacheTTL); err != nil {
		s.logger.Error("failed to cache summary %s: %v", key, err)
	}
}

func (s *FinanceService) publishSummary(snapshot *Snapshot) {
	if s.m == nil {
		return
	}
	if err := BroadcastSummary(s.m, snapshot); err != nil {
		s.logger.Error("failed to broadcast summary: %v", err)
	}
}

// GetSummary returns the summary for a date range, serving the current
// snapshot when it matches, then the cache, and refreshing otherwise.
func (s *FinanceService) GetSummary(ctx context.Context, from, to *time.Time) (models.FinancialSummary, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current != nil && rangeKey(current.FromDate, current.ToDate) == rangeKey(from, to) {
		return current.Summary, nil
	}

	if s.rdb != nil {
		var cached models.FinancialSummary
		found, err := GetFromRedis(ctx, s.rdb, summaryCacheKey(from, to), &cached)
		if err != nil {
			s.logger.Error("summary cache read failed: %v", err)
		} else if found {
			return cached, nil
		}
	}

	snapshot, err := s.Refresh(ctx, from, to)
	if err != nil {
		return models.FinancialSummary{}, err
	}
	return snapshot.Summary, nil
}

// Lines returns the merged, filtered lines of the snapshot covering the
// filter's date range.
func (s *FinanceService) Lines(ctx context.Context, filters dto.LineFilters) ([]models.FinancialLine, error) {
	snapshot, err := s.snapshotFor(ctx, filters.FromDate, filters.ToDate)
	if err != nil {
		return nil, err
	}

	merged := make([]models.FinancialLine, 0,
		len(snapshot.InvoiceLines)+len(snapshot.OrderLines)+len(snapshot.OfferLines))
	merged = append(merged, snapshot.InvoiceLines...)
	merged = append(merged, snapshot.OrderLines...)
	merged = append(merged, snapshot.OfferLines...)

	return FilterLines(merged, filters), nil
}

// CurrentSnapshot returns the currently published snapshot, or nil before the
// first successful refresh.
func (s *FinanceService) CurrentSnapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *FinanceService) snapshotFor(ctx context.Context, from, to *time.Time) (*Snapshot, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current != nil && rangeKey(current.FromDate, current.ToDate) == rangeKey(from, to) {
		return current, nil
	}
	return s.Refresh(ctx, from, to)
}
