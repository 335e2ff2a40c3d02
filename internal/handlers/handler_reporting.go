package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/SscSPs/contabil_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves balances derived from the journal.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// RegisterReportingRoutes registers routes related to reports.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService, now: time.Now}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/balance-tree", h.getBalanceTree)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
	}
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Debit, credit and balance of every postable account, summed from journal lines dated on or before asOf.
// @Tags reports
// @Produce  json
// @Param   asOf query string false "YYYY-MM-DD, defaults to now"
// @Success 200 {object} dto.TrialBalanceResponse
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	asOf := params.AsOfOrNow(h.now())

	report, err := h.reportingService.GetTrialBalance(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), asOf)
	if err != nil {
		respondError(c, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.TrialBalanceResponse{AsOf: asOf, TrialBalance: *report})
}

// getBalanceTree godoc
// @Summary Balance tree
// @Description The chart of accounts with every account's totals rolled up from its descendants.
// @Tags reports
// @Produce  json
// @Param   asOf query string false "YYYY-MM-DD, defaults to now"
// @Success 200 {object} dto.BalanceTreeResponse
// @Security BearerAuth
// @Router /reports/balance-tree [get]
func (h *reportingHandler) getBalanceTree(c *gin.Context) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	asOf := params.AsOfOrNow(h.now())

	roots, err := h.reportingService.GetBalanceTree(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), asOf)
	if err != nil {
		respondError(c, err, "Failed to generate balance tree")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceTreeResponse{AsOf: asOf, Accounts: dto.ToAccountTreeResponse(roots)})
}

// getIncomeStatement godoc
// @Summary Income statement
// @Description Revenue (accounts under code 4) and expenses (under code 5) moved in the period, and their result.
// @Tags reports
// @Produce  json
// @Param   from query string false "YYYY-MM-DD, inclusive; omitted starts at the first entry"
// @Param   to query string false "YYYY-MM-DD, inclusive; defaults to now"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	from, to := params.Bounds(h.now())

	report, err := h.reportingService.GetIncomeStatement(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), from, to)
	if err != nil {
		respondError(c, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, dto.IncomeStatementResponse{From: from, To: to, IncomeStatement: *report})
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Assets (code 1), liabilities (code 2) and equity (code 3) as of a date. The accumulated result of revenue and expenses is counted in equity.
// @Tags reports
// @Produce  json
// @Param   asOf query string false "YYYY-MM-DD, defaults to now"
// @Success 200 {object} dto.BalanceSheetResponse
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	asOf := params.AsOfOrNow(h.now())

	sheet, err := h.reportingService.GetBalanceSheet(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), asOf)
	if err != nil {
		respondError(c, err, "Failed to generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceSheetResponse{AsOf: asOf, BalanceSheet: *sheet})
}
