package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"datacash/internal/model"
)

// ReferralEngine credits a referrer when a new account signs up through
// their link. It runs only inside signup, against the in-memory store, so
// the new account and the referrer persist in the same write.
type ReferralEngine struct {
	ledger Ledger
	bonus  int64
}

// NewReferralEngine creates a ReferralEngine with the fixed per-referral
// bonus.
func NewReferralEngine(bonus int64) *ReferralEngine {
	return &ReferralEngine{bonus: bonus}
}

// Apply credits the referrer of newID, if any. Unknown referrer identifiers
// are silently ignored; a new account cannot reference itself because its
// identifier did not exist before this signup. Reports whether a referrer
// was credited.
func (e *ReferralEngine) Apply(accounts model.AccountStore, referrerID, newID string, day model.Day) bool {
	if referrerID == "" {
		return false
	}
	referrer, ok := accounts[referrerID]
	if !ok {
		log.Debug().Str("referrer", referrerID).Str("account", newID).
			Msg("Unknown referrer, bonus skipped")
		return false
	}

	desc := fmt.Sprintf("Referral bonus from %s", newID)
	e.ledger.Credit(referrer, e.bonus, model.TxTypeReferralBonus, desc, day)
	referrer.Referrals.Count++
	referrer.Referrals.Earned += e.bonus

	log.Info().
		Str("referrer", referrerID).
		Str("account", newID).
		Int64("bonus", e.bonus).
		Msg("Referral bonus credited")
	return true
}
