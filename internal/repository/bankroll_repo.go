package repository

import (
	"context"
	"errors"

	"lsbets/internal/domain"
	"lsbets/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BankrollRepository owns every balance mutation. All writes go through a
// transaction that holds the bankroll row FOR UPDATE, so two operations on
// the same (user, character) key serialize instead of overwriting each other.
type BankrollRepository struct {
	db *gorm.DB
}

func NewBankrollRepository(db *gorm.DB) *BankrollRepository {
	return &BankrollRepository{db: db}
}

// Balance returns the current balance, zero when the owner has no bankroll
// row yet. It never reports not-found.
func (r *BankrollRepository) Balance(ctx context.Context, userID, characterID uint) (decimal.Decimal, error) {
	var b models.Bankroll
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND character_id = ?", userID, characterID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return b.Balance, nil
}

// Credit adds amount to the balance, creating the bankroll on first use, and
// returns the new balance.
func (r *BankrollRepository) Credit(ctx context.Context, userID, characterID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	var newBalance decimal.Decimal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := lockBankroll(tx, userID, characterID)
		if err != nil {
			return err
		}
		newBalance = b.Balance.Add(amount)
		return tx.Model(b).Update("balance", newBalance).Error
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// Debit subtracts amount from the balance. The sufficiency check runs under
// the row lock; when funds are short nothing is written and
// domain.ErrInsufficientFunds comes back.
func (r *BankrollRepository) Debit(ctx context.Context, userID, characterID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	var newBalance decimal.Decimal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := lockBankroll(tx, userID, characterID)
		if err != nil {
			return err
		}
		if b.Balance.LessThan(amount) {
			return domain.ErrInsufficientFunds
		}
		newBalance = b.Balance.Sub(amount)
		return tx.Model(b).Update("balance", newBalance).Error
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// lockBankroll loads the owner's bankroll row FOR UPDATE, inserting a zero
// row first if the owner never had one.
func lockBankroll(tx *gorm.DB, userID, characterID uint) (*models.Bankroll, error) {
	var b models.Bankroll
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND character_id = ?", userID, characterID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		b = models.Bankroll{UserID: userID, CharacterID: characterID, Balance: decimal.Zero}
		if err := tx.Create(&b).Error; err != nil {
			return nil, err
		}
		return &b, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
