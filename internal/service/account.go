package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"datacash/internal/model"
	"datacash/internal/pkg/lock"
	"datacash/internal/repository"
)

// Common errors for wallet operations. Every error is terminal for the
// triggering call; failed operations leave persisted state untouched.
var (
	ErrMissingFields      = errors.New("identifier and credential are required")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSellLimitReached   = errors.New("daily sell limit reached")
	ErrNoSession          = errors.New("no active session")
)

// SellDesc is the history label for a completed sell action.
const SellDesc = "200MB Sold"

// AccountService handles signup, login, session and the sell action.
// Every mutating call loads the whole account store, mutates it in memory
// and saves it back as a single write.
type AccountService struct {
	accounts *repository.AccountRepository
	sessions *repository.SessionRepository
	locks    *lock.AccountLock
	ledger   Ledger
	limiter  *SellLimiter
	referral *ReferralEngine

	signupBonus int64
	sellReward  int64

	now func() time.Time // swapped in tests
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(
	accounts *repository.AccountRepository,
	sessions *repository.SessionRepository,
	locks *lock.AccountLock,
	limiter *SellLimiter,
	referral *ReferralEngine,
	signupBonus int64,
	sellReward int64,
) *AccountService {
	return &AccountService{
		accounts:    accounts,
		sessions:    sessions,
		locks:       locks,
		limiter:     limiter,
		referral:    referral,
		signupBonus: signupBonus,
		sellReward:  sellReward,
		now:         time.Now,
	}
}

// today returns the UTC calendar day of the current instant. Crossing
// midnight mid-session simply keys the next sell under a fresh day.
func (s *AccountService) today() model.Day {
	return model.DayOf(s.now())
}

// Signup creates a new account with the signup bonus, credits the referrer
// when the referral identifier resolves, persists both in one write and
// logs the new account in.
// Returns ErrMissingFields or ErrDuplicateAccount; on failure nothing is
// persisted.
func (s *AccountService) Signup(ctx context.Context, id, secret, referrerID string) (*model.Account, error) {
	id = strings.TrimSpace(id)
	if id == "" || secret == "" {
		return nil, ErrMissingFields
	}

	var acc *model.Account
	err := s.locks.WithLock(id, func() error {
		store, err := s.accounts.Load(ctx)
		if err != nil {
			return err
		}
		if _, exists := store[id]; exists {
			return ErrDuplicateAccount
		}

		day := s.today()
		acc = model.NewAccount(secret, s.signupBonus, day)
		store[id] = acc

		s.referral.Apply(store, referrerID, id, day)

		if err := s.accounts.Save(ctx, store); err != nil {
			return err
		}
		return s.sessions.Set(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateAccount) {
			return nil, err
		}
		return nil, fmt.Errorf("signup failed: %w", err)
	}

	log.Info().Str("account", id).Int64("bonus", s.signupBonus).Msg("Account created")
	return acc, nil
}

// Login authenticates an account by exact credential match and sets the
// session. Unknown identifier and wrong credential both surface as
// ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, id, secret string) (*model.Account, error) {
	id = strings.TrimSpace(id)
	if id == "" || secret == "" {
		return nil, ErrMissingFields
	}

	store, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	acc, ok := store[id]
	if !ok || acc.Secret != secret {
		return nil, ErrInvalidCredentials
	}

	if err := s.sessions.Set(ctx, id); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	log.Info().Str("account", id).Msg("Logged in")
	return acc, nil
}

// Logout clears the session unconditionally. Logging out twice yields the
// same logged-out state as once.
func (s *AccountService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// CurrentAccount resolves the session to its account. Returns ErrNoSession
// when logged out or when the pointer dangles.
func (s *AccountService) CurrentAccount(ctx context.Context) (string, *model.Account, error) {
	id, ok, err := s.sessions.Current(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if !ok {
		return "", nil, ErrNoSession
	}

	store, err := s.accounts.Load(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	acc, ok := store[id]
	if !ok {
		// Dangling pointer: accounts are never deleted, but treat it as
		// logged out rather than failing every later call.
		return "", nil, ErrNoSession
	}
	return id, acc, nil
}

// Sell performs the rate-limited sell action for the current account:
// credits the sell reward and counts the sell against today's cap.
// Returns ErrNoSession or ErrSellLimitReached; a rejected sell changes
// nothing.
func (s *AccountService) Sell(ctx context.Context) (*model.Account, error) {
	id, _, err := s.CurrentAccount(ctx)
	if err != nil {
		return nil, err
	}

	var acc *model.Account
	err = s.locks.WithLock(id, func() error {
		store, err := s.accounts.Load(ctx)
		if err != nil {
			return err
		}
		acc = store[id]
		if acc == nil {
			return ErrNoSession
		}

		day := s.today()
		if !s.limiter.CanPerform(acc, day) {
			return ErrSellLimitReached
		}

		s.ledger.Credit(acc, s.sellReward, model.TxTypeSell, SellDesc, day)
		s.limiter.Record(acc, day)

		return s.accounts.Save(ctx, store)
	})
	if err != nil {
		if errors.Is(err, ErrSellLimitReached) || errors.Is(err, ErrNoSession) {
			return nil, err
		}
		return nil, fmt.Errorf("sell failed: %w", err)
	}

	log.Info().
		Str("account", id).
		Int64("reward", s.sellReward).
		Int("used_today", s.limiter.Used(acc, s.today())).
		Msg("Data sold")
	return acc, nil
}

// SellUsage returns how many sells the account performed today and the
// daily cap.
func (s *AccountService) SellUsage(acc *model.Account) (used, cap int) {
	return s.limiter.Used(acc, s.today()), s.limiter.Cap()
}
