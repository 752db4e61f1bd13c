// Package service provides business logic implementations.
package service

import (
	"datacash/internal/model"
)

// Ledger owns balance mutation and history for a single account. All flows
// in this system are additive; no debit operation exists.
type Ledger struct{}

// Credit increments the account balance by amount and prepends exactly one
// transaction to the history. Callers pass amount > 0.
func (Ledger) Credit(acc *model.Account, amount int64, txType, desc string, day model.Day) {
	acc.Balance += amount
	acc.History = append([]model.Transaction{
		{Date: day, Desc: desc, Amount: amount, Type: txType},
	}, acc.History...)
}

// Balance returns the account's current balance.
func (Ledger) Balance(acc *model.Account) int64 { return acc.Balance }

// History returns the account's transactions, newest first.
func (Ledger) History(acc *model.Account) []model.Transaction { return acc.History }
