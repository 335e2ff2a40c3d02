package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/SscSPs/contabil_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type movementTypeHandler struct {
	movementTypeService portssvc.MovementTypeSvcFacade
}

// RegisterMovementTypeRoutes registers routes related to movement types.
func RegisterMovementTypeRoutes(rg *gin.RouterGroup, movementTypeService portssvc.MovementTypeSvcFacade) {
	h := &movementTypeHandler{movementTypeService: movementTypeService}

	movements := rg.Group("/movement-types")
	{
		movements.POST("", h.createMovementType)
		movements.GET("", h.listMovementTypes)
		movements.GET("/:id", h.getMovementType)
		movements.PATCH("/:id", h.updateMovementType)
		movements.PATCH("/:id/inactivate", h.inactivateMovementType)
		movements.DELETE("/:id", h.deleteMovementType)
	}
}

// createMovementType godoc
// @Summary Create a movement type
// @Description Both accounts must exist, accept postings and differ.
// @Tags movement-types
// @Accept  json
// @Produce  json
// @Param   movementType body dto.CreateMovementTypeRequest true "Movement type"
// @Success 201 {object} dto.MovementTypeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /movement-types [post]
func (h *movementTypeHandler) createMovementType(c *gin.Context) {
	var req dto.CreateMovementTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	mt, err := h.movementTypeService.CreateMovementType(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create movement type")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMovementTypeResponse(mt))
}

// getMovementType godoc
// @Summary Get a movement type
// @Tags movement-types
// @Produce  json
// @Param   id path string true "Movement type ID"
// @Success 200 {object} dto.MovementTypeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /movement-types/{id} [get]
func (h *movementTypeHandler) getMovementType(c *gin.Context) {
	mt, err := h.movementTypeService.GetMovementTypeByID(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve movement type")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementTypeResponse(mt))
}

// listMovementTypes godoc
// @Summary List movement types
// @Tags movement-types
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Matches name or description"
// @Param   status query string false "ACTIVE or INACTIVE"
// @Param   debitAccountId query string false "Debit account"
// @Param   creditAccountId query string false "Credit account"
// @Success 200 {object} dto.ListMovementTypesResponse
// @Security BearerAuth
// @Router /movement-types [get]
func (h *movementTypeHandler) listMovementTypes(c *gin.Context) {
	var params dto.ListMovementTypesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.movementTypeService.ListMovementTypes(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), params)
	if err != nil {
		respondError(c, err, "Failed to list movement types")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateMovementType godoc
// @Summary Update a movement type
// @Tags movement-types
// @Accept  json
// @Produce  json
// @Param   id path string true "Movement type ID"
// @Param   movementType body dto.UpdateMovementTypeRequest true "Fields to change"
// @Success 200 {object} dto.MovementTypeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /movement-types/{id} [patch]
func (h *movementTypeHandler) updateMovementType(c *gin.Context) {
	var req dto.UpdateMovementTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	mt, err := h.movementTypeService.UpdateMovementType(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update movement type")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementTypeResponse(mt))
}

// inactivateMovementType godoc
// @Summary Inactivate a movement type
// @Tags movement-types
// @Produce  json
// @Param   id path string true "Movement type ID"
// @Success 200 {object} dto.MovementTypeResponse
// @Failure 409 {object} dto.ErrorResponse "Already inactive"
// @Security BearerAuth
// @Router /movement-types/{id}/inactivate [patch]
func (h *movementTypeHandler) inactivateMovementType(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	mt, err := h.movementTypeService.InactivateMovementType(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to inactivate movement type")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementTypeResponse(mt))
}

// deleteMovementType godoc
// @Summary Delete a movement type
// @Tags movement-types
// @Param   id path string true "Movement type ID"
// @Success 204 "No Content"
// @Failure 409 {object} dto.ErrorResponse "Referenced by titles"
// @Security BearerAuth
// @Router /movement-types/{id} [delete]
func (h *movementTypeHandler) deleteMovementType(c *gin.Context) {
	if err := h.movementTypeService.DeleteMovementType(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete movement type")
		return
	}
	c.Status(http.StatusNoContent)
}
