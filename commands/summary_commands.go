package commands

import (
	"context"
	"time"

	"khidma/services"
)

// SummaryCommand is a unit of financial work executed by the scheduler or a
// handler.
type SummaryCommand interface {
	Execute(ctx context.Context) error
}

// RefreshSummaryCommand rebuilds the snapshot for a fixed date range.
type RefreshSummaryCommand struct {
	service *services.FinanceService
	from    *time.Time
	to      *time.Time
}

func NewRefreshSummaryCommand(service *services.FinanceService, from, to *time.Time) *RefreshSummaryCommand {
	return &RefreshSummaryCommand{
		service: service,
		from:    from,
		to:      to,
	}
}

func (c *RefreshSummaryCommand) Execute(ctx context.Context) error {
	_, err := c.service.Refresh(ctx, c.from, c.to)
	return err
}

// RefreshCurrentMonthCommand rebuilds the month-to-date snapshot. The range
// is computed at execution time so the scheduled job always covers the
// current month.
type RefreshCurrentMonthCommand struct {
	service *services.FinanceService
}

func NewRefreshCurrentMonthCommand(service *services.FinanceService) *RefreshCurrentMonthCommand {
	return &RefreshCurrentMonthCommand{service: service}
}

func (c *RefreshCurrentMonthCommand) Execute(ctx context.Context) error {
	now := time.Now()
	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	_, err := c.service.Refresh(ctx, &firstDay, &now)
	return err
}
