package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saranyasailakshmi/DIV-Tech/middleware"
	"github.com/saranyasailakshmi/DIV-Tech/models"
	"github.com/saranyasailakshmi/DIV-Tech/services"
	"github.com/saranyasailakshmi/DIV-Tech/utils"
)

type MemberHandler struct {
	memberService services.MemberService
}

func NewMemberHandler(memberService services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.APIResponse(false, "unauthorized", nil))
		return
	}

	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(false, "invalid request body", nil))
		return
	}

	resp, err := h.memberService.Add(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(true, "Member added successfully", resp))
}

func (h *MemberHandler) List(c *gin.Context) {
	resp, err := h.memberService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(true, "Members fetched successfully", resp))
}

func (h *MemberHandler) Get(c *gin.Context) {
	resp, err := h.memberService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(true, "Member fetched successfully", resp))
}

func (h *MemberHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.APIResponse(false, "unauthorized", nil))
		return
	}

	var req models.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(false, "invalid request body", nil))
		return
	}

	resp, err := h.memberService.Update(c.Request.Context(), c.Param("id"), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(true, "Member updated successfully", resp))
}

func (h *MemberHandler) Remove(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.APIResponse(false, "unauthorized", nil))
		return
	}

	if err := h.memberService.Remove(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(true, "Member removed successfully", nil))
}
