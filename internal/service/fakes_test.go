package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"lsbets/internal/domain"
	"lsbets/internal/models"

	"github.com/shopspring/decimal"
)

// In-memory stores with the same atomicity contract as the gorm
// repositories: one mutex guards every balance mutation, and composite
// operations hold it across their check and their write.

type ownerKey struct {
	userID      uint
	characterID uint
}

type fakeBankrollStore struct {
	mu       sync.Mutex
	balances map[ownerKey]decimal.Decimal

	creditErr error
}

func newFakeBankrollStore() *fakeBankrollStore {
	return &fakeBankrollStore{balances: make(map[ownerKey]decimal.Decimal)}
}

func (s *fakeBankrollStore) set(userID, characterID uint, balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[ownerKey{userID, characterID}] = balance
}

func (s *fakeBankrollStore) Balance(_ context.Context, userID, characterID uint) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[ownerKey{userID, characterID}], nil
}

func (s *fakeBankrollStore) Credit(_ context.Context, userID, characterID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creditErr != nil {
		return decimal.Zero, s.creditErr
	}
	k := ownerKey{userID, characterID}
	s.balances[k] = s.balances[k].Add(amount)
	return s.balances[k], nil
}

func (s *fakeBankrollStore) Debit(_ context.Context, userID, characterID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debitLocked(userID, characterID, amount)
}

func (s *fakeBankrollStore) debitLocked(userID, characterID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	k := ownerKey{userID, characterID}
	if s.balances[k].LessThan(amount) {
		return decimal.Zero, domain.ErrInsufficientFunds
	}
	s.balances[k] = s.balances[k].Sub(amount)
	return s.balances[k], nil
}

type fakeBetStore struct {
	bankrolls *fakeBankrollStore
	mu        sync.Mutex
	bets      []models.Bet
	nextID    uint
}

func newFakeBetStore(bankrolls *fakeBankrollStore) *fakeBetStore {
	return &fakeBetStore{bankrolls: bankrolls, nextID: 1}
}

func (s *fakeBetStore) Place(_ context.Context, bet *models.Bet) error {
	s.bankrolls.mu.Lock()
	defer s.bankrolls.mu.Unlock()
	if _, err := s.bankrolls.debitLocked(bet.UserID, bet.CharacterID, bet.Amount); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	bet.ID = s.nextID
	s.nextID++
	s.bets = append(s.bets, *bet)
	return nil
}

func (s *fakeBetStore) ListByOwner(_ context.Context, userID, characterID uint) ([]models.Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Bet
	for _, b := range s.bets {
		if b.UserID == userID && b.CharacterID == characterID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeBetStore) ListAll(_ context.Context) ([]models.Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Bet(nil), s.bets...), nil
}

type fakeWithdrawStore struct {
	bankrolls *fakeBankrollStore
	mu        sync.Mutex
	requests  map[uint]*models.WithdrawRequest
	nextID    uint
}

func newFakeWithdrawStore(bankrolls *fakeBankrollStore) *fakeWithdrawStore {
	return &fakeWithdrawStore{bankrolls: bankrolls, requests: make(map[uint]*models.WithdrawRequest), nextID: 1}
}

func (s *fakeWithdrawStore) Create(_ context.Context, req *models.WithdrawRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	req.ID = s.nextID
	s.nextID++
	cp := *req
	s.requests[req.ID] = &cp
	return nil
}

func (s *fakeWithdrawStore) Approve(_ context.Context, id uint, note string) (*models.WithdrawRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if req.Status != domain.WithdrawStatusPending {
		return nil, domain.ErrAlreadyProcessed
	}
	s.bankrolls.mu.Lock()
	defer s.bankrolls.mu.Unlock()
	if _, err := s.bankrolls.debitLocked(req.UserID, req.CharacterID, req.Amount); err != nil {
		return nil, err
	}
	now := time.Now()
	req.Status = domain.WithdrawStatusApproved
	req.AdminNote = note
	req.ProcessedAt = &now
	cp := *req
	return &cp, nil
}

func (s *fakeWithdrawStore) Reject(_ context.Context, id uint, note string) (*models.WithdrawRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if req.Status != domain.WithdrawStatusPending {
		return nil, domain.ErrAlreadyProcessed
	}
	now := time.Now()
	req.Status = domain.WithdrawStatusRejected
	req.AdminNote = note
	req.ProcessedAt = &now
	cp := *req
	return &cp, nil
}

func (s *fakeWithdrawStore) ListAll(_ context.Context) ([]models.WithdrawRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WithdrawRequest, 0, len(s.requests))
	for _, req := range s.requests {
		out = append(out, *req)
	}
	return out, nil
}

type fakeNotificationStore struct {
	mu            sync.Mutex
	notifications []models.Notification
	createErr     error
}

func (s *fakeNotificationStore) Create(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	n.ID = uint(len(s.notifications) + 1)
	s.notifications = append(s.notifications, *n)
	return nil
}

func (s *fakeNotificationStore) ListByOwner(_ context.Context, userID, characterID uint, limit, offset int) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var owned []models.Notification
	for _, n := range s.notifications {
		if n.UserID == userID && n.CharacterID == characterID {
			owned = append(owned, n)
		}
	}
	if offset >= len(owned) {
		return nil, nil
	}
	owned = owned[offset:]
	if limit < len(owned) {
		owned = owned[:limit]
	}
	return owned, nil
}

func (s *fakeNotificationStore) MarkRead(_ context.Context, id, userID, characterID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		n := &s.notifications[i]
		if n.ID == id && n.UserID == userID && n.CharacterID == characterID {
			n.Read = true
		}
	}
	return nil
}

func (s *fakeNotificationStore) MarkAllRead(_ context.Context, userID, characterID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		n := &s.notifications[i]
		if n.UserID == userID && n.CharacterID == characterID {
			n.Read = true
		}
	}
	return nil
}

var errStoreDown = errors.New("store unavailable")
