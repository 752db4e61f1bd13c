// Package model defines the data models for the datacash rewards wallet.
package model

// Account represents one user's persisted profile: credential, balance,
// transaction history, per-day sell counters and referral stats.
// JSON field names match the legacy localStorage layout (pass, balance,
// history, sellCount, referrals); day values use the ISO form instead of
// locale-formatted dates.
type Account struct {
	Secret    string         `json:"pass"`
	Balance   int64          `json:"balance"`
	History   []Transaction  `json:"history"`
	SellCount map[string]int `json:"sellCount"`
	Referrals ReferralStats  `json:"referrals"`
}

// Transaction represents a balance change record. Immutable once appended.
type Transaction struct {
	Date   Day    `json:"date"`
	Desc   string `json:"desc"`
	Amount int64  `json:"amount"`
	Type   string `json:"type,omitempty"`
}

// ReferralStats tracks how many signups an account has referred and the
// total credits earned from them.
type ReferralStats struct {
	Count  int   `json:"count"`
	Earned int64 `json:"earned"`
}

// AccountStore maps account identifiers (case-sensitive) to accounts.
// It grows by one entry per signup and never shrinks.
type AccountStore map[string]*Account

// Transaction types for categorizing balance changes.
const (
	TxTypeSignupBonus   = "signup_bonus"   // one-time credit on account creation
	TxTypeSell          = "sell"           // rate-limited sell action credit
	TxTypeReferralBonus = "referral_bonus" // credit to the referrer on a referred signup
)

// NewAccount creates an account with the given credential, carrying the
// signup bonus as its opening balance and sole history entry.
func NewAccount(secret string, bonus int64, day Day) *Account {
	return &Account{
		Secret:  secret,
		Balance: bonus,
		History: []Transaction{
			{Date: day, Desc: "Signup Bonus", Amount: bonus, Type: TxTypeSignupBonus},
		},
		SellCount: make(map[string]int),
	}
}

// SellsOn returns how many times the sell action was performed on the given
// day. A missing counter counts as zero.
func (a *Account) SellsOn(day Day) int {
	if a.SellCount == nil {
		return 0
	}
	return a.SellCount[day.String()]
}
