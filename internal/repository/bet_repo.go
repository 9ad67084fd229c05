package repository

import (
	"context"

	"lsbets/internal/domain"
	"lsbets/internal/models"

	"gorm.io/gorm"
)

type BetRepository struct {
	db *gorm.DB
}

func NewBetRepository(db *gorm.DB) *BetRepository {
	return &BetRepository{db: db}
}

// Place inserts the bet and debits the stake in a single transaction. The
// funds check happens under the bankroll row lock, so a concurrent placement
// against the same balance waits and sees the debited amount. A failed check
// rolls everything back: no bet row, no balance change.
func (r *BetRepository) Place(ctx context.Context, bet *models.Bet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := lockBankroll(tx, bet.UserID, bet.CharacterID)
		if err != nil {
			return err
		}
		if b.Balance.LessThan(bet.Amount) {
			return domain.ErrInsufficientFunds
		}
		if err := tx.Create(bet).Error; err != nil {
			return err
		}
		return tx.Model(b).Update("balance", b.Balance.Sub(bet.Amount)).Error
	})
}

func (r *BetRepository) ListByOwner(ctx context.Context, userID, characterID uint) ([]models.Bet, error) {
	var bets []models.Bet
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND character_id = ?", userID, characterID).
		Order("created_at DESC").
		Find(&bets).Error
	return bets, err
}

func (r *BetRepository) ListAll(ctx context.Context) ([]models.Bet, error) {
	var bets []models.Bet
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&bets).Error
	return bets, err
}
