package handler

import (
	"net/http"

	"lsbets/internal/middleware"
	"lsbets/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BankingHandler is the user-facing money surface: deposits in, withdrawal
// requests out, balance reads.
type BankingHandler struct {
	deposits    *service.DepositService
	withdrawals *service.WithdrawalService
}

func NewBankingHandler(deposits *service.DepositService, withdrawals *service.WithdrawalService) *BankingHandler {
	return &BankingHandler{deposits: deposits, withdrawals: withdrawals}
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreatePayment returns the gateway redirect URL for a new deposit. Nothing
// is credited until the payer comes back with a token.
func (h *BankingHandler) CreatePayment(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}
	url, err := h.deposits.CreatePayment(req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Payment URL generated successfully",
		"payment_url": url,
	})
}

type depositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Token  string          `json:"token" binding:"required"`
}

func (h *BankingHandler) Deposit(c *gin.Context) {
	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}
	res, err := h.deposits.Process(c.Request.Context(), middleware.GetUserID(c), middleware.GetCharacterID(c), req.Amount, req.Token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     res.Message,
		"new_balance": res.NewBalance,
	})
}

func (h *BankingHandler) Balance(c *gin.Context) {
	balance, err := h.deposits.Balance(c.Request.Context(), middleware.GetUserID(c), middleware.GetCharacterID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "balance": balance})
}

func (h *BankingHandler) Withdraw(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}
	_, err := h.withdrawals.Create(c.Request.Context(), middleware.GetUserID(c), middleware.GetCharacterID(c), req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Withdraw request submitted successfully. It will be processed by an administrator.",
	})
}
