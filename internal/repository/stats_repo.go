package repository

import (
	"context"

	"lsbets/internal/domain"
	"lsbets/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardStats summarizes platform activity for the admin overview.
type DashboardStats struct {
	TotalBets          int64           `json:"total_bets"`
	PendingBets        int64           `json:"pending_bets"`
	TotalStaked        decimal.Decimal `json:"total_staked"`
	TotalBankrolls     int64           `json:"total_bankrolls"`
	TotalBalance       decimal.Decimal `json:"total_balance"`
	PendingWithdrawals int64           `json:"pending_withdrawals"`
	TotalWithdrawn     decimal.Decimal `json:"total_withdrawn"`
}

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Dashboard(ctx context.Context) (*DashboardStats, error) {
	db := r.db.WithContext(ctx)
	var s DashboardStats

	if err := db.Model(&models.Bet{}).Count(&s.TotalBets).Error; err != nil {
		return nil, err
	}
	db.Model(&models.Bet{}).Where("status = ?", domain.BetStatusPending).Count(&s.PendingBets)
	db.Model(&models.Bankroll{}).Count(&s.TotalBankrolls)
	db.Model(&models.WithdrawRequest{}).Where("status = ?", domain.WithdrawStatusPending).Count(&s.PendingWithdrawals)

	var staked struct{ Total decimal.Decimal }
	db.Model(&models.Bet{}).Select("COALESCE(SUM(amount), 0) AS total").Scan(&staked)
	s.TotalStaked = staked.Total

	var balance struct{ Total decimal.Decimal }
	db.Model(&models.Bankroll{}).Select("COALESCE(SUM(balance), 0) AS total").Scan(&balance)
	s.TotalBalance = balance.Total

	var withdrawn struct{ Total decimal.Decimal }
	db.Model(&models.WithdrawRequest{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", domain.WithdrawStatusApproved).
		Scan(&withdrawn)
	s.TotalWithdrawn = withdrawn.Total

	return &s, nil
}
