package service

import (
	"context"
	"fmt"

	"lsbets/internal/domain"
	"lsbets/internal/metrics"
	"lsbets/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WithdrawalService runs the two-phase withdrawal flow: a user files a
// request, an admin approves (debit) or rejects (notify) it. Requested funds
// are not reserved, so the store re-checks sufficiency under lock at
// approval time.
type WithdrawalService struct {
	withdrawals   WithdrawStore
	bankrolls     BankrollStore
	notifications NotificationStore
	log           *zap.Logger
}

func NewWithdrawalService(withdrawals WithdrawStore, bankrolls BankrollStore, notifications NotificationStore, log *zap.Logger) *WithdrawalService {
	return &WithdrawalService{withdrawals: withdrawals, bankrolls: bankrolls, notifications: notifications, log: log}
}

// Create files a pending request. The balance check here is advisory only —
// the funds stay spendable until an admin approves.
func (s *WithdrawalService) Create(ctx context.Context, userID, characterID uint, amount decimal.Decimal) (*models.WithdrawRequest, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", domain.ErrInvalidInput)
	}
	balance, err := s.bankrolls.Balance(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(amount) {
		return nil, domain.ErrInsufficientFunds
	}
	req := &models.WithdrawRequest{
		UserID:      userID,
		CharacterID: characterID,
		Amount:      amount,
		Status:      domain.WithdrawStatusPending,
	}
	if err := s.withdrawals.Create(ctx, req); err != nil {
		return nil, err
	}
	s.log.Info("withdraw request created",
		zap.Uint("request_id", req.ID),
		zap.Uint("user_id", userID),
		zap.Uint("character_id", characterID),
		zap.String("amount", amount.String()),
	)
	return req, nil
}

// Resolve terminal-transitions a pending request. Approval debits the
// bankroll exactly once; rejection leaves the ledger alone and tells the
// user why.
func (s *WithdrawalService) Resolve(ctx context.Context, id uint, approved bool, note string) (*models.WithdrawRequest, error) {
	if approved {
		req, err := s.withdrawals.Approve(ctx, id, note)
		if err != nil {
			return nil, err
		}
		metrics.WithdrawalsResolved.WithLabelValues(domain.WithdrawStatusApproved).Inc()
		s.log.Info("withdraw request approved",
			zap.Uint("request_id", req.ID),
			zap.Uint("user_id", req.UserID),
			zap.String("amount", req.Amount.String()),
		)
		return req, nil
	}

	req, err := s.withdrawals.Reject(ctx, id, note)
	if err != nil {
		return nil, err
	}
	reason := note
	if reason == "" {
		reason = "No reason provided"
	}
	n := &models.Notification{
		UserID:      req.UserID,
		CharacterID: req.CharacterID,
		Message:     fmt.Sprintf("Your withdrawal request for $%s was rejected. Reason: %s", req.Amount.String(), reason),
		Type:        domain.NotificationWithdrawRejected,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		s.log.Warn("rejection notification failed", zap.Uint("request_id", req.ID), zap.Error(err))
	}
	metrics.WithdrawalsResolved.WithLabelValues(domain.WithdrawStatusRejected).Inc()
	s.log.Info("withdraw request rejected",
		zap.Uint("request_id", req.ID),
		zap.Uint("user_id", req.UserID),
		zap.String("note", note),
	)
	return req, nil
}

func (s *WithdrawalService) ListAll(ctx context.Context) ([]models.WithdrawRequest, error) {
	return s.withdrawals.ListAll(ctx)
}
