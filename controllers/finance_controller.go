package controllers

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"khidma/commands"
	"khidma/config"
	"khidma/dto"
	apperrors "khidma/errors"
	"khidma/models"
	"khidma/response"
	"khidma/services"
	"khidma/types"
	"khidma/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// FinanceController exposes the reconciled financial picture to the console
// UI.
type FinanceController struct {
	service *services.FinanceService
	rdb     *redis.Client
}

func NewFinanceController(service *services.FinanceService, rdb *redis.Client) *FinanceController {
	return &FinanceController{
		service: service,
		rdb:     rdb,
	}
}

// GetFinancialSummary serves the summary for an optional fromDate/toDate
// range (dd/mm/yyyy), with totals formatted for the requested locale.
func (ctl *FinanceController) GetFinancialSummary(c *gin.Context) {
	from, err := validator.ParseDateParam(c.Query("fromDate"))
	if err != nil {
		response.BadRequest(c, "fromDate must be dd/mm/yyyy")
		return
	}
	to, err := validator.ParseDateParam(c.Query("toDate"))
	if err != nil {
		response.BadRequest(c, "toDate must be dd/mm/yyyy")
		return
	}
	if err := validator.ValidateDateRange(from, to); err != nil {
		response.BadRequest(c, "fromDate is after toDate")
		return
	}

	summary, err := ctl.service.GetSummary(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshSuperseded) {
			response.Conflict(c)
			return
		}
		response.UpstreamError(c)
		return
	}

	locale := c.DefaultQuery("locale", types.LocaleEnglish)
	resp := dto.SummaryResponse{
		FromDate:    formatDateParam(from),
		ToDate:      formatDateParam(to),
		RefreshedAt: time.Now().Format(time.RFC3339),
		Summary:     summary,
		Formatted: dto.FormattedTotals{
			TotalRevenue:    services.FormatCurrency(summary.TotalRevenue, locale),
			TotalCommission: services.FormatCurrency(summary.TotalCommission, locale),
			TotalDiscounts:  services.FormatCurrency(summary.TotalDiscounts, locale),
			NetIncome:       services.FormatCurrency(summary.NetIncome, locale),
		},
	}
	if snapshot := ctl.service.CurrentSnapshot(); snapshot != nil {
		resp.RefreshedAt = snapshot.RefreshedAt.Format(time.RFC3339)
	}

	response.Success(c, resp)
}

// GetFinancialLines serves the merged invoice/order/offer lines with
// filtering and pagination. Filters a session leaves out are filled from the
// ones it last used.
func (ctl *FinanceController) GetFinancialLines(c *gin.Context) {
	from, err := validator.ParseDateParam(c.Query("fromDate"))
	if err != nil {
		response.BadRequest(c, "fromDate must be dd/mm/yyyy")
		return
	}
	to, err := validator.ParseDateParam(c.Query("toDate"))
	if err != nil {
		response.BadRequest(c, "toDate must be dd/mm/yyyy")
		return
	}

	filters := &dto.LineFilters{
		SearchTerm: c.Query("name"),
		Status:     c.Query("status"),
		Source:     c.Query("source"),
		FromDate:   from,
		ToDate:     to,
	}

	sessionID := c.GetString("sessionId")
	if ctl.rdb != nil && sessionID != "" {
		if old, err := services.GetLastFilters(config.Ctx, ctl.rdb, sessionID); err == nil && old != nil {
			filters = services.MergeFilters(old, filters)
		}
	}

	if err := validator.ValidateFilters(filters); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.BadRequest(c, "invalid filters")
		return
	}

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	lines, err := ctl.service.Lines(c.Request.Context(), *filters)
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshSuperseded) {
			response.Conflict(c)
			return
		}
		response.UpstreamError(c)
		return
	}

	if ctl.rdb != nil && sessionID != "" {
		// filter memory is a convenience, not worth failing the request over
		_ = services.SaveLastFilters(config.Ctx, ctl.rdb, sessionID, filters)
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].OccurredAt.After(lines[j].OccurredAt)
	})

	locale := c.DefaultQuery("locale", types.LocaleEnglish)
	responses := make([]dto.LineResponse, 0, len(lines))
	for _, line := range lines {
		resp := dto.LineResponse{
			SourceType:     line.SourceType,
			ID:             line.ID,
			GrossAmount:    line.GrossAmount,
			Discount:       line.Discount,
			Commission:     line.Commission,
			NetAmount:      line.NetAmount,
			Status:         line.Status,
			OccurredAt:     line.OccurredAt.Format("2006-01-02"),
			SearchableText: line.SearchableText,
			NetClamped:     line.NetClamped,
			FormattedNet:   services.FormatCurrency(line.NetAmount, locale),
		}
		if line.SourceType == models.SourceOffer {
			resp.DiscountPercent = services.OfferDiscountPercent(line)
		}
		responses = append(responses, resp)
	}

	total := len(responses)
	start := page * limit
	end := start + limit

	if start >= total {
		responses = []dto.LineResponse{}
	} else if end > total {
		responses = responses[start:]
	} else {
		responses = responses[start:end]
	}

	response.SuccessWithPagination(c, responses, page, limit, total)
}

// RefreshSummary forces a refresh for the given range. A refresh superseded
// by a newer one reports a conflict so the caller re-requests the latest.
func (ctl *FinanceController) RefreshSummary(c *gin.Context) {
	from, err := validator.ParseDateParam(c.Query("fromDate"))
	if err != nil {
		response.BadRequest(c, "fromDate must be dd/mm/yyyy")
		return
	}
	to, err := validator.ParseDateParam(c.Query("toDate"))
	if err != nil {
		response.BadRequest(c, "toDate must be dd/mm/yyyy")
		return
	}
	if err := validator.ValidateDateRange(from, to); err != nil {
		response.BadRequest(c, "fromDate is after toDate")
		return
	}

	cmd := commands.NewRefreshSummaryCommand(ctl.service, from, to)
	if err := cmd.Execute(c.Request.Context()); err != nil {
		if errors.Is(err, apperrors.ErrRefreshSuperseded) {
			response.Conflict(c)
			return
		}
		response.UpstreamError(c)
		return
	}

	snapshot := ctl.service.CurrentSnapshot()
	if snapshot == nil {
		response.NotFound(c)
		return
	}
	response.Success(c, snapshot.Summary)
}

func formatDateParam(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(validator.DateParamLayout)
}
