package service

import (
	"context"

	"lsbets/internal/models"

	"github.com/shopspring/decimal"
)

// Store interfaces the services depend on. The gorm repositories satisfy
// them; tests substitute in-memory fakes. Implementations must make each
// method atomic per (user_id, character_id) key — composite operations like
// Place and Approve carry their funds check and debit in one unit.

type BankrollStore interface {
	Balance(ctx context.Context, userID, characterID uint) (decimal.Decimal, error)
	Credit(ctx context.Context, userID, characterID uint, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(ctx context.Context, userID, characterID uint, amount decimal.Decimal) (decimal.Decimal, error)
}

type BetStore interface {
	Place(ctx context.Context, bet *models.Bet) error
	ListByOwner(ctx context.Context, userID, characterID uint) ([]models.Bet, error)
	ListAll(ctx context.Context) ([]models.Bet, error)
}

type WithdrawStore interface {
	Create(ctx context.Context, req *models.WithdrawRequest) error
	Approve(ctx context.Context, id uint, note string) (*models.WithdrawRequest, error)
	Reject(ctx context.Context, id uint, note string) (*models.WithdrawRequest, error)
	ListAll(ctx context.Context) ([]models.WithdrawRequest, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByOwner(ctx context.Context, userID, characterID uint, limit, offset int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID, characterID uint) error
	MarkAllRead(ctx context.Context, userID, characterID uint) error
}
