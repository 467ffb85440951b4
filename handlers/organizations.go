package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saranyasailakshmi/DIV-Tech/middleware"
	"github.com/saranyasailakshmi/DIV-Tech/models"
	"github.com/saranyasailakshmi/DIV-Tech/services"
	"github.com/saranyasailakshmi/DIV-Tech/utils"
)

type OrganizationHandler struct {
	orgService services.OrganizationService
}

func NewOrganizationHandler(orgService services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.APIResponse(false, "unauthorized", nil))
		return
	}

	var req models.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(false, "invalid request body", nil))
		return
	}

	resp, err := h.orgService.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(true, "Organization created successfully", resp))
}

func (h *OrganizationHandler) List(c *gin.Context) {
	resp, err := h.orgService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(true, "Organizations fetched successfully", resp))
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	resp, err := h.orgService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(true, "Organization details fetched", resp))
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.APIResponse(false, "unauthorized", nil))
		return
	}

	var req models.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(false, "invalid request body", nil))
		return
	}

	resp, err := h.orgService.Update(c.Request.Context(), c.Param("id"), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(true, "Organization updated successfully", resp))
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.APIResponse(false, "unauthorized", nil))
		return
	}

	if err := h.orgService.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(true, "Organization deleted successfully", nil))
}
