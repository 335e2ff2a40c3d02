package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/SscSPs/contabil_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type partnerHandler struct {
	partnerService portssvc.PartnerSvcFacade
}

// RegisterPartnerRoutes registers routes related to partners.
func RegisterPartnerRoutes(rg *gin.RouterGroup, partnerService portssvc.PartnerSvcFacade) {
	h := &partnerHandler{partnerService: partnerService}

	partners := rg.Group("/partners")
	{
		partners.POST("", h.createPartner)
		partners.GET("", h.listPartners)
		partners.GET("/:id", h.getPartner)
		partners.PATCH("/:id", h.updatePartner)
		partners.PATCH("/:id/inactivate", h.inactivatePartner)
		partners.DELETE("/:id", h.deletePartner)
	}
}

// createPartner godoc
// @Summary Register a partner
// @Tags partners
// @Accept  json
// @Produce  json
// @Param   partner body dto.CreatePartnerRequest true "Partner"
// @Success 201 {object} dto.PartnerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners [post]
func (h *partnerHandler) createPartner(c *gin.Context) {
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	p, err := h.partnerService.CreatePartner(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create partner")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartnerResponse(p))
}

// getPartner godoc
// @Summary Get a partner
// @Tags partners
// @Produce  json
// @Param   id path string true "Partner ID"
// @Success 200 {object} dto.PartnerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/{id} [get]
func (h *partnerHandler) getPartner(c *gin.Context) {
	p, err := h.partnerService.GetPartnerByID(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve partner")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartnerResponse(p))
}

// listPartners godoc
// @Summary List partners
// @Tags partners
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Matches name, document or address"
// @Param   status query string false "ACTIVE or INACTIVE"
// @Success 200 {object} dto.ListPartnersResponse
// @Security BearerAuth
// @Router /partners [get]
func (h *partnerHandler) listPartners(c *gin.Context) {
	var params dto.ListPartnersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.partnerService.ListPartners(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), params)
	if err != nil {
		respondError(c, err, "Failed to list partners")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updatePartner godoc
// @Summary Update a partner
// @Tags partners
// @Accept  json
// @Produce  json
// @Param   id path string true "Partner ID"
// @Param   partner body dto.UpdatePartnerRequest true "Fields to change"
// @Success 200 {object} dto.PartnerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/{id} [patch]
func (h *partnerHandler) updatePartner(c *gin.Context) {
	var req dto.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	p, err := h.partnerService.UpdatePartner(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update partner")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartnerResponse(p))
}

// inactivatePartner godoc
// @Summary Inactivate a partner
// @Tags partners
// @Produce  json
// @Param   id path string true "Partner ID"
// @Success 200 {object} dto.PartnerResponse
// @Security BearerAuth
// @Router /partners/{id}/inactivate [patch]
func (h *partnerHandler) inactivatePartner(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	p, err := h.partnerService.InactivatePartner(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to inactivate partner")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartnerResponse(p))
}

// deletePartner godoc
// @Summary Delete a partner
// @Tags partners
// @Param   id path string true "Partner ID"
// @Success 204 "No Content"
// @Failure 409 {object} dto.ErrorResponse "Referenced by titles"
// @Security BearerAuth
// @Router /partners/{id} [delete]
func (h *partnerHandler) deletePartner(c *gin.Context) {
	if err := h.partnerService.DeletePartner(c.Request.Context(), middleware.GetCapabilitiesFromContext(c), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete partner")
		return
	}
	c.Status(http.StatusNoContent)
}
