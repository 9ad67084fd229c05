package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bankroll holds the spendable balance for one character of one account.
// Rows are created lazily on first deposit or bet and never deleted. Balance
// is only ever written inside a row-locked transaction in the repository
// layer.
type Bankroll struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;uniqueIndex:idx_bankrolls_owner" json:"user_id"`
	CharacterID uint            `gorm:"not null;uniqueIndex:idx_bankrolls_owner" json:"character_id"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Bankroll) TableName() string {
	return "bankrolls"
}
