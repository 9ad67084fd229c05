package repository

import (
	"context"
	"errors"
	"time"

	"lsbets/internal/domain"
	"lsbets/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WithdrawRepository struct {
	db *gorm.DB
}

func NewWithdrawRepository(db *gorm.DB) *WithdrawRepository {
	return &WithdrawRepository{db: db}
}

func (r *WithdrawRepository) Create(ctx context.Context, req *models.WithdrawRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// Approve commits the debit for a pending request exactly once. Request row
// and bankroll row are both locked inside one transaction, so a second
// approval (or a racing bet) cannot debit twice or drive the balance
// negative. Sufficiency is re-checked here against the balance now current,
// not the one at request time.
func (r *WithdrawRepository) Approve(ctx context.Context, id uint, note string) (*models.WithdrawRequest, error) {
	var out *models.WithdrawRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		req, err := lockRequest(tx, id)
		if err != nil {
			return err
		}
		b, err := lockBankroll(tx, req.UserID, req.CharacterID)
		if err != nil {
			return err
		}
		if b.Balance.LessThan(req.Amount) {
			return domain.ErrInsufficientFunds
		}
		now := time.Now()
		req.Status = domain.WithdrawStatusApproved
		req.AdminNote = note
		req.ProcessedAt = &now
		if err := tx.Save(req).Error; err != nil {
			return err
		}
		if err := tx.Model(b).Update("balance", b.Balance.Sub(req.Amount)).Error; err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reject terminal-transitions a pending request without touching the ledger.
func (r *WithdrawRepository) Reject(ctx context.Context, id uint, note string) (*models.WithdrawRequest, error) {
	var out *models.WithdrawRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		req, err := lockRequest(tx, id)
		if err != nil {
			return err
		}
		now := time.Now()
		req.Status = domain.WithdrawStatusRejected
		req.AdminNote = note
		req.ProcessedAt = &now
		if err := tx.Save(req).Error; err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *WithdrawRepository) ListAll(ctx context.Context) ([]models.WithdrawRequest, error) {
	var reqs []models.WithdrawRequest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func lockRequest(tx *gorm.DB, id uint) (*models.WithdrawRequest, error) {
	var req models.WithdrawRequest
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&req, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if req.Status != domain.WithdrawStatusPending {
		return nil, domain.ErrAlreadyProcessed
	}
	return &req, nil
}
