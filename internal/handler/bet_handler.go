package handler

import (
	"net/http"

	"lsbets/internal/middleware"
	"lsbets/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type BetHandler struct {
	wagers *service.WagerService
}

func NewBetHandler(wagers *service.WagerService) *BetHandler {
	return &BetHandler{wagers: wagers}
}

type placeBetRequest struct {
	MatchID   int64           `json:"match_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Odds      decimal.Decimal `json:"odds" binding:"required"`
	BetType   string          `json:"bet_type" binding:"required"`
	MatchData datatypes.JSON  `json:"match_data"`
}

func (h *BetHandler) Place(c *gin.Context) {
	var req placeBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}
	bet, err := h.wagers.PlaceBet(c.Request.Context(), service.PlaceBetInput{
		UserID:      middleware.GetUserID(c),
		CharacterID: middleware.GetCharacterID(c),
		MatchID:     req.MatchID,
		Amount:      req.Amount,
		Odds:        req.Odds,
		BetType:     req.BetType,
		MatchData:   req.MatchData,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"message":       "Bet placed successfully",
		"bet_id":        bet.ID,
		"potential_win": bet.PotentialWin,
	})
}

func (h *BetHandler) List(c *gin.Context) {
	bets, err := h.wagers.ListBets(c.Request.Context(), middleware.GetUserID(c), middleware.GetCharacterID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bets": bets})
}
