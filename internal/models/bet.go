package models

import (
	"time"

	"lsbets/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Bet struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"not null;index:idx_bets_owner" json:"user_id"`
	CharacterID  uint            `gorm:"not null;index:idx_bets_owner" json:"character_id"`
	MatchID      int64           `gorm:"not null" json:"match_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Odds         decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"odds"`
	BetType      string          `gorm:"size:10;not null" json:"bet_type"`
	Status       string          `gorm:"size:10;not null;index" json:"status"`
	PotentialWin decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"potential_win"`
	MatchData    datatypes.JSON  `gorm:"type:jsonb" json:"match_data"` // snapshot of the match at bet time
	CreatedAt    time.Time       `json:"created_at"`
}

func (Bet) TableName() string {
	return "bets"
}

// Settle records the final outcome of a pending bet. The resolver that will
// call this once real match results are wired in does not exist yet; the
// guard keeps a settled bet from ever being settled again.
func (b *Bet) Settle(won bool) error {
	if b.Status != domain.BetStatusPending {
		return domain.ErrAlreadyProcessed
	}
	if won {
		b.Status = domain.BetStatusWon
	} else {
		b.Status = domain.BetStatusLost
	}
	return nil
}
