package service

import (
	"context"
	"errors"
	"fmt"

	"lsbets/internal/domain"
	"lsbets/internal/metrics"
	"lsbets/internal/models"
	"lsbets/pkg/gateway"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrCreditAfterPayment means the gateway confirmed the payment but the
// ledger write failed: money arrived externally and is not yet credited.
// Callers must surface this distinctly — it is the one failure class that
// needs manual reconciliation.
var ErrCreditAfterPayment = errors.New("payment confirmed but balance not credited")

// Gateway is the slice of the payment gateway the processor needs.
type Gateway interface {
	PaymentURL(amount decimal.Decimal) string
	VerifyToken(ctx context.Context, token string) (*gateway.TokenResult, error)
}

// DepositService turns confirmed gateway payments into bankroll credits.
type DepositService struct {
	gw            Gateway
	bankrolls     BankrollStore
	notifications NotificationStore
	log           *zap.Logger
}

func NewDepositService(gw Gateway, bankrolls BankrollStore, notifications NotificationStore, log *zap.Logger) *DepositService {
	return &DepositService{gw: gw, bankrolls: bankrolls, notifications: notifications, log: log}
}

// CreatePayment hands back the URL the payer must be redirected to. No
// ledger mutation happens here; funds only move once the returned token is
// verified by Process.
func (s *DepositService) CreatePayment(amount decimal.Decimal) (string, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return "", fmt.Errorf("%w: deposit amount must be positive", domain.ErrInvalidInput)
	}
	return s.gw.PaymentURL(amount), nil
}

type DepositResult struct {
	Message    string
	NewBalance decimal.Decimal
}

// Process verifies the gateway token and credits the bankroll. Only the
// literal successful_payment message counts; any other outcome leaves the
// ledger untouched and carries the raw gateway payload back for diagnostics.
func (s *DepositService) Process(ctx context.Context, userID, characterID uint, amount decimal.Decimal, token string) (*DepositResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: deposit amount must be positive", domain.ErrInvalidInput)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: missing payment token", domain.ErrInvalidInput)
	}

	res, err := s.gw.VerifyToken(ctx, token)
	if err != nil {
		s.log.Warn("gateway token verification failed",
			zap.Uint("user_id", userID),
			zap.Uint("character_id", characterID),
			zap.Error(err),
		)
		return nil, err
	}
	if res.Message != gateway.MessageSuccessfulPayment {
		s.log.Warn("payment not successful",
			zap.Uint("user_id", userID),
			zap.Uint("character_id", characterID),
			zap.String("gateway_message", res.Message),
		)
		return nil, &gateway.Error{Reason: gateway.ReasonPaymentFailed, Raw: res.Raw}
	}

	newBalance, err := s.bankrolls.Credit(ctx, userID, characterID, amount)
	if err != nil {
		// The gateway already took the money. Never swallow this into a
		// generic failure: log, count, and return the reconciliation error.
		metrics.ReconciliationAlerts.Inc()
		s.log.Error("confirmed payment failed to credit ledger",
			zap.Uint("user_id", userID),
			zap.Uint("character_id", characterID),
			zap.String("amount", amount.String()),
			zap.ByteString("gateway_response", res.Raw),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrCreditAfterPayment, err)
	}

	n := &models.Notification{
		UserID:      userID,
		CharacterID: characterID,
		Message:     fmt.Sprintf("Your deposit of $%s was successful.", amount.String()),
		Type:        domain.NotificationDepositSuccess,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		// Funds are credited; a missing notification is an annoyance, not
		// a ledger discrepancy.
		s.log.Warn("deposit notification failed", zap.Uint("user_id", userID), zap.Error(err))
	}

	metrics.DepositsCredited.Inc()
	s.log.Info("deposit credited",
		zap.Uint("user_id", userID),
		zap.Uint("character_id", characterID),
		zap.String("amount", amount.String()),
		zap.String("new_balance", newBalance.String()),
	)
	return &DepositResult{
		Message:    fmt.Sprintf("Deposit of $%s was successful. Your new balance is $%s.", amount.String(), newBalance.String()),
		NewBalance: newBalance,
	}, nil
}

func (s *DepositService) Balance(ctx context.Context, userID, characterID uint) (decimal.Decimal, error) {
	return s.bankrolls.Balance(ctx, userID, characterID)
}
