package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawRequest is a user's ask to move funds out of the bankroll. Funds
// are not reserved at request time; the debit happens only when an admin
// approves, and sufficiency is re-checked then.
type WithdrawRequest struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index:idx_withdraw_owner" json:"user_id"`
	CharacterID uint            `gorm:"not null;index:idx_withdraw_owner" json:"character_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status      string          `gorm:"size:10;not null;index" json:"status"`
	AdminNote   string          `gorm:"size:255" json:"admin_note"`
	ProcessedAt *time.Time      `json:"processed_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (WithdrawRequest) TableName() string {
	return "withdraw_requests"
}
