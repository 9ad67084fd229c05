package domain

const (
	RolePlayer = "PLAYER"
	RoleAdmin  = "ADMIN"
)

const (
	BetTypeHome = "home"
	BetTypeDraw = "draw"
	BetTypeAway = "away"
)

const (
	BetStatusPending = "pending"
	BetStatusWon     = "won"
	BetStatusLost    = "lost"
)

const (
	WithdrawStatusPending  = "pending"
	WithdrawStatusApproved = "approved"
	WithdrawStatusRejected = "rejected"
)

// Notification types. bet_won and bet_lost are reserved for the settlement
// resolver; nothing emits them yet.
const (
	NotificationWithdrawRejected = "withdraw_rejected"
	NotificationBetWon           = "bet_won"
	NotificationBetLost          = "bet_lost"
	NotificationDepositSuccess   = "deposit_success"
)

func ValidBetType(t string) bool {
	return t == BetTypeHome || t == BetTypeDraw || t == BetTypeAway
}
