package service

import (
	"context"
	"fmt"

	"lsbets/internal/domain"
	"lsbets/internal/metrics"
	"lsbets/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// WagerService validates and places bets. The stake debit and the bet insert
// are one atomic unit in the store, so a bet is never recorded without its
// charge.
type WagerService struct {
	bets BetStore
	log  *zap.Logger
}

func NewWagerService(bets BetStore, log *zap.Logger) *WagerService {
	return &WagerService{bets: bets, log: log}
}

type PlaceBetInput struct {
	UserID      uint
	CharacterID uint
	MatchID     int64
	Amount      decimal.Decimal
	Odds        decimal.Decimal
	BetType     string
	MatchData   datatypes.JSON
}

var one = decimal.NewFromInt(1)

func (in PlaceBetInput) validate() error {
	switch {
	case in.UserID == 0 || in.CharacterID == 0:
		return fmt.Errorf("%w: missing identity", domain.ErrInvalidInput)
	case in.MatchID == 0:
		return fmt.Errorf("%w: missing match id", domain.ErrInvalidInput)
	case in.Amount.LessThanOrEqual(decimal.Zero):
		return fmt.Errorf("%w: bet amount must be positive", domain.ErrInvalidInput)
	case in.Odds.LessThanOrEqual(one):
		return fmt.Errorf("%w: odds must be greater than 1.0", domain.ErrInvalidInput)
	case !domain.ValidBetType(in.BetType):
		return fmt.Errorf("%w: bet type must be home, draw or away", domain.ErrInvalidInput)
	}
	return nil
}

// PlaceBet charges the stake and records the wager as pending. Insufficient
// funds leave both the bankroll and the bet table untouched.
func (s *WagerService) PlaceBet(ctx context.Context, in PlaceBetInput) (*models.Bet, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	bet := &models.Bet{
		UserID:       in.UserID,
		CharacterID:  in.CharacterID,
		MatchID:      in.MatchID,
		Amount:       in.Amount,
		Odds:         in.Odds,
		BetType:      in.BetType,
		Status:       domain.BetStatusPending,
		PotentialWin: in.Amount.Mul(in.Odds),
		MatchData:    in.MatchData,
	}
	if err := s.bets.Place(ctx, bet); err != nil {
		return nil, err
	}
	metrics.BetsPlaced.Inc()
	s.log.Info("bet placed",
		zap.Uint("user_id", in.UserID),
		zap.Uint("character_id", in.CharacterID),
		zap.Int64("match_id", in.MatchID),
		zap.String("amount", in.Amount.String()),
		zap.String("potential_win", bet.PotentialWin.String()),
	)
	return bet, nil
}

func (s *WagerService) ListBets(ctx context.Context, userID, characterID uint) ([]models.Bet, error) {
	return s.bets.ListByOwner(ctx, userID, characterID)
}

func (s *WagerService) ListAllBets(ctx context.Context) ([]models.Bet, error) {
	return s.bets.ListAll(ctx)
}
