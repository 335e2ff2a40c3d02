package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/SscSPs/contabil_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// titleHandler exposes the title lifecycle.
type titleHandler struct {
	titleService portssvc.TitleSvcFacade
}

// RegisterTitleRoutes registers routes related to titles.
func RegisterTitleRoutes(rg *gin.RouterGroup, titleService portssvc.TitleSvcFacade) {
	registerValidators()
	h := &titleHandler{titleService: titleService}

	titles := rg.Group("/titles")
	{
		titles.POST("", h.createTitle)
		titles.GET("", h.listTitles)
		titles.GET("/:id", h.getTitle)
		titles.PATCH("/:id", h.updateTitle)
		titles.PATCH("/:id/inactivate", h.inactivateTitle)
		titles.PATCH("/:id/pay", h.payTitle)
		titles.DELETE("/:id", h.deleteTitle)
	}
}

// createTitle godoc
// @Summary Create and post a title
// @Description Creates an ACTIVE title and its balanced journal entry in one step. Nothing is stored if posting fails.
// @Tags titles
// @Accept  json
// @Produce  json
// @Param   title body dto.CreateTitleRequest true "Title"
// @Success 201 {object} dto.CreateTitleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Movement type, partner or account not found"
// @Failure 409 {object} dto.ErrorResponse "Title code already exists"
// @Security BearerAuth
// @Router /titles [post]
func (h *titleHandler) createTitle(c *gin.Context) {
	var req dto.CreateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	title, err := h.titleService.CreateTitle(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create title")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Title posted",
		slog.String("title_id", title.TitleID), slog.String("code", title.Code))
	middleware.AddEventProperties(c, titleEventProperties(title))
	c.JSON(http.StatusCreated, dto.ToCreateTitleResponse(title))
}

// getTitle godoc
// @Summary Get a title
// @Description Returns the title with its movement type, partner and journal entry.
// @Tags titles
// @Produce  json
// @Param   id path string true "Title ID"
// @Success 200 {object} dto.TitleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /titles/{id} [get]
func (h *titleHandler) getTitle(c *gin.Context) {
	title, err := h.titleService.GetTitleByID(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve title")
		return
	}
	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}

// listTitles godoc
// @Summary List titles
// @Tags titles
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size, -1 for all" default(10)
// @Param   search query string false "Matches code or description"
// @Param   sortBy query string false "createdAt, date, code or value"
// @Param   sortOrder query string false "asc or desc"
// @Param   status query string false "ACTIVE, INACTIVE or PAID"
// @Param   movementId query string false "Movement type"
// @Param   partnerId query string false "Partner"
// @Param   dateFrom query string false "YYYY-MM-DD"
// @Param   dateTo query string false "YYYY-MM-DD"
// @Success 200 {object} dto.ListTitlesResponse
// @Security BearerAuth
// @Router /titles [get]
func (h *titleHandler) listTitles(c *gin.Context) {
	var params dto.ListTitlesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.titleService.ListTitles(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), params)
	if err != nil {
		respondError(c, err, "Failed to list titles")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateTitle godoc
// @Summary Update an ACTIVE title
// @Description The journal entry already posted is not changed.
// @Tags titles
// @Accept  json
// @Produce  json
// @Param   id path string true "Title ID"
// @Param   title body dto.UpdateTitleRequest true "Fields to change"
// @Success 200 {object} dto.TitleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Title is no longer ACTIVE"
// @Security BearerAuth
// @Router /titles/{id} [patch]
func (h *titleHandler) updateTitle(c *gin.Context) {
	var req dto.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	title, err := h.titleService.UpdateTitle(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update title")
		return
	}
	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}

// inactivateTitle godoc
// @Summary Inactivate an ACTIVE title
// @Tags titles
// @Produce  json
// @Param   id path string true "Title ID"
// @Success 200 {object} dto.TitleResponse
// @Failure 409 {object} dto.ErrorResponse "Title is no longer ACTIVE"
// @Security BearerAuth
// @Router /titles/{id}/inactivate [patch]
func (h *titleHandler) inactivateTitle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	title, err := h.titleService.InactivateTitle(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to inactivate title")
		return
	}
	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}

// payTitle godoc
// @Summary Mark an ACTIVE title as paid
// @Tags titles
// @Produce  json
// @Param   id path string true "Title ID"
// @Success 200 {object} dto.TitleResponse
// @Failure 409 {object} dto.ErrorResponse "Title is no longer ACTIVE"
// @Security BearerAuth
// @Router /titles/{id}/pay [patch]
func (h *titleHandler) payTitle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	title, err := h.titleService.PayTitle(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to pay title")
		return
	}
	middleware.AddEventProperties(c, titleEventProperties(title))
	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}

// deleteTitle godoc
// @Summary Delete a title
// @Description Removes the title together with its journal entry. PAID titles cannot be removed.
// @Tags titles
// @Param   id path string true "Title ID"
// @Success 204 "No Content"
// @Failure 409 {object} dto.ErrorResponse "Title is PAID"
// @Security BearerAuth
// @Router /titles/{id} [delete]
func (h *titleHandler) deleteTitle(c *gin.Context) {
	if err := h.titleService.DeleteTitle(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete title")
		return
	}
	c.Status(http.StatusNoContent)
}

func titleEventProperties(title *domain.Title) map[string]any {
	props := map[string]any{
		"entity_id":        title.TitleID,
		"title_code":       title.Code,
		"title_status":     string(title.Status),
		"value":            title.Value.String(),
		"movement_type_id": title.MovementTypeID,
	}
	if title.PartnerID != nil {
		props["partner_id"] = *title.PartnerID
	}
	if title.Journal != nil {
		props["journal_entry_id"] = title.Journal.JournalEntryID
		props["journal_lines"] = len(title.Journal.Lines)
	}
	return props
}
