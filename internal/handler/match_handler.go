package handler

import (
	"net/http"

	"lsbets/internal/matches"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matches *matches.Service
}

func NewMatchHandler(svc *matches.Service) *MatchHandler {
	return &MatchHandler{matches: svc}
}

func (h *MatchHandler) Upcoming(c *gin.Context) {
	list, err := h.matches.Upcoming(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to fetch matches"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "matches": list})
}

func (h *MatchHandler) Live(c *gin.Context) {
	list, err := h.matches.Live(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to fetch matches"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "matches": list})
}
