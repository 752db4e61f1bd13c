package service

import (
	"datacash/internal/model"
)

// SellLimiter enforces the per-calendar-day cap on the sell action.
// Callers hold the account lock across CanPerform and Record so the
// check-then-act pair is one logical unit.
type SellLimiter struct {
	cap int
}

// NewSellLimiter creates a limiter with the given daily cap.
func NewSellLimiter(dailyCap int) *SellLimiter {
	return &SellLimiter{cap: dailyCap}
}

// Cap returns the configured daily cap.
func (l *SellLimiter) Cap() int { return l.cap }

// Used returns how many sells the account performed on the given day.
func (l *SellLimiter) Used(acc *model.Account, day model.Day) int {
	return acc.SellsOn(day)
}

// CanPerform reports whether the account may sell on the given day.
// A day with no counter counts as zero; a fresh day resets the budget.
func (l *SellLimiter) CanPerform(acc *model.Account, day model.Day) bool {
	return acc.SellsOn(day) < l.cap
}

// Record increments the account's counter for the given day. It must only
// be called after CanPerform returned true for the same day.
func (l *SellLimiter) Record(acc *model.Account, day model.Day) {
	if acc.SellCount == nil {
		acc.SellCount = make(map[string]int)
	}
	acc.SellCount[day.String()]++
}
