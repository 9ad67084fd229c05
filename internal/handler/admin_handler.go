package handler

import (
	"net/http"
	"strconv"

	"lsbets/internal/repository"
	"lsbets/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler is the adjudication surface: pending withdrawals in, approve
// or reject decisions out, plus full listings for oversight.
type AdminHandler struct {
	withdrawals *service.WithdrawalService
	wagers      *service.WagerService
	stats       *repository.StatsRepository
}

func NewAdminHandler(withdrawals *service.WithdrawalService, wagers *service.WagerService, stats *repository.StatsRepository) *AdminHandler {
	return &AdminHandler{withdrawals: withdrawals, wagers: wagers, stats: stats}
}

func (h *AdminHandler) ListWithdrawals(c *gin.Context) {
	reqs, err := h.withdrawals.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requests": reqs})
}

type resolveRequest struct {
	Approved  *bool  `json:"approved" binding:"required"`
	AdminNote string `json:"admin_note"`
}

func (h *AdminHandler) ResolveWithdrawal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request id"})
		return
	}
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}
	resolved, err := h.withdrawals.Resolve(c.Request.Context(), uint(id), *req.Approved, req.AdminNote)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": resolved})
}

func (h *AdminHandler) ListBets(c *gin.Context) {
	bets, err := h.wagers.ListAllBets(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bets": bets})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
