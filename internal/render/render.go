// Package render builds the user-facing dashboard text and referral links.
// It consumes account state and never mutates it.
package render

import (
	"fmt"
	"net/url"
	"strings"

	"datacash/internal/model"
)

// ReferralLink builds the signup link that credits the given account when a
// new user registers through it.
func ReferralLink(baseURL, accountID string) string {
	return baseURL + "signup?ref=" + url.QueryEscape(accountID)
}

// SellUsageNote formats the daily sell usage line.
func SellUsageNote(used, limit int) string {
	return fmt.Sprintf("Today's sells: %d/%d", used, limit)
}

// ReferralStatsNote formats the referral earnings line.
func ReferralStatsNote(stats model.ReferralStats) string {
	return fmt.Sprintf("You have earned ₹%d from %d referrals.", stats.Earned, stats.Count)
}

// Dashboard renders the full dashboard view for an account.
func Dashboard(id string, acc *model.Account, used, limit int, baseURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi, %s\n", id)
	fmt.Fprintf(&b, "Balance: ₹%d\n\n", acc.Balance)

	b.WriteString("History:\n")
	if len(acc.History) == 0 {
		b.WriteString("  (empty)\n")
	}
	for _, tx := range acc.History {
		fmt.Fprintf(&b, "  %s  %-28s ₹%d\n", tx.Date, tx.Desc, tx.Amount)
	}

	b.WriteString("\n")
	b.WriteString(SellUsageNote(used, limit))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Referral link: %s\n", ReferralLink(baseURL, id))
	b.WriteString(ReferralStatsNote(acc.Referrals))
	b.WriteString("\n")

	return b.String()
}
