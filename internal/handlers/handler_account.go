package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/SscSPs/contabil_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	journalService portssvc.LedgerReaderSvc
}

func newAccountHandler(as portssvc.AccountSvcFacade, js portssvc.LedgerReaderSvc) *accountHandler {
	return &accountHandler{accountService: as, journalService: js}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, journalService portssvc.LedgerReaderSvc) {
	h := newAccountHandler(accountService, journalService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/tree", h.getAccountTree)
		accounts.GET("/next-code", h.nextAccountCode)
		accounts.GET("/:id", h.getAccount)
		accounts.GET("/:id/ledger", h.listAccountLedger)
		accounts.PATCH("/:id", h.updateAccount)
		accounts.PATCH("/:id/inactivate", h.inactivateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account under an optional parent. The code is generated from the parent when omitted.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Parent not found"
// @Failure 409 {object} dto.ErrorResponse "Code already in use"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	middleware.AddEventProperties(c, map[string]any{
		"entity_id":       account.AccountID,
		"account_code":    account.Code,
		"account_level":   account.Level,
		"accepts_posting": account.AcceptsPosting,
	})
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByID(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Returns one page of accounts. limit=-1 returns every match.
// @Tags accounts
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Matches code, name or description"
// @Param   sortBy query string false "createdAt, code, name or level"
// @Param   sortOrder query string false "asc or desc"
// @Param   name query string false "Name contains"
// @Param   level query int false "Exact level"
// @Param   acceptsPosting query bool false "Posting flag"
// @Param   status query string false "ACTIVE or INACTIVE"
// @Param   parentId query string false "Direct children of this account"
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.accountService.ListAccounts(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), params)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getAccountTree godoc
// @Summary Chart of accounts as a tree
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountNodeResponse
// @Security BearerAuth
// @Router /accounts/tree [get]
func (h *accountHandler) getAccountTree(c *gin.Context) {
	roots, err := h.accountService.GetAccountTree(c.Request.Context(), middleware.GetCapabilitiesFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to build account tree")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountTreeResponse(roots))
}

// nextAccountCode godoc
// @Summary Suggest the next account code
// @Description Returns the code the next child of parentId would get, or the next root code when parentId is omitted.
// @Tags accounts
// @Produce  json
// @Param   parentId query string false "Parent account ID"
// @Success 200 {object} dto.NextCodeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/next-code [get]
func (h *accountHandler) nextAccountCode(c *gin.Context) {
	var parentID *string
	if p := c.Query("parentId"); p != "" {
		parentID = &p
	}
	resp, err := h.accountService.NextAccountCode(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), parentID)
	if err != nil {
		respondError(c, err, "Failed to compute next account code")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateAccount godoc
// @Summary Update an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [patch]
func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// inactivateAccount godoc
// @Summary Inactivate an account
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already inactive"
// @Security BearerAuth
// @Router /accounts/{id}/inactivate [patch]
func (h *accountHandler) inactivateAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	account, err := h.accountService.InactivateAccount(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to inactivate account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Removes an account that has no children and no journal lines.
// @Tags accounts
// @Param   id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Account still in use"
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	if err := h.accountService.DeleteAccount(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete account")
		return
	}
	c.Status(http.StatusNoContent)
}

// listAccountLedger godoc
// @Summary Journal lines posted to an account
// @Description Newest first, token paginated. Each line carries the balance right after it; the page carries its opening and closing balance.
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLedgerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id}/ledger [get]
func (h *accountHandler) listAccountLedger(c *gin.Context) {
	var params dto.CursorParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.journalService.ListAccountLedger(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"), params)
	if err != nil {
		respondError(c, err, "Failed to list account ledger")
		return
	}
	c.JSON(http.StatusOK, resp)
}
