// Package cli implements the interactive front end: it collects form input,
// navigates between the auth and dashboard views and prints what the render
// package produces. All business rules live in the service layer.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"datacash/internal/render"
	"datacash/internal/service"
)

// UI drives the menu loop over an AccountService.
type UI struct {
	wallet  *service.AccountService
	baseURL string
	in      *bufio.Reader
	out     io.Writer
}

// NewUI creates a UI reading from in and writing to out.
func NewUI(wallet *service.AccountService, baseURL string, in *bufio.Reader, out io.Writer) *UI {
	return &UI{wallet: wallet, baseURL: baseURL, in: in, out: out}
}

// Run is the top-level navigation loop. A persisted session skips straight
// to the dashboard, like the original page bootstrap.
func (ui *UI) Run(ctx context.Context) {
	for {
		if _, _, err := ui.wallet.CurrentAccount(ctx); err == nil {
			if !ui.dashboard(ctx) {
				return
			}
			continue
		}
		if !ui.authMenu(ctx) {
			return
		}
	}
}

// authMenu handles the logged-out views. Returns false to exit the program.
func (ui *UI) authMenu(ctx context.Context) bool {
	fmt.Fprintln(ui.out, "\n=== datacash ===")
	fmt.Fprintln(ui.out, "1) Sign up")
	fmt.Fprintln(ui.out, "2) Log in")
	fmt.Fprintln(ui.out, "0) Exit")
	fmt.Fprint(ui.out, "> ")

	switch ui.readLine() {
	case "1":
		ui.handleSignup(ctx)
	case "2":
		ui.handleLogin(ctx)
	case "0":
		return false
	}
	return true
}

func (ui *UI) handleSignup(ctx context.Context) {
	fmt.Fprintln(ui.out, "\n=== Sign up ===")
	fmt.Fprint(ui.out, "Username: ")
	id := ui.readLine()
	fmt.Fprint(ui.out, "Password: ")
	secret := ui.readLine()
	fmt.Fprint(ui.out, "Referral code (optional): ")
	ref := ui.readLine()

	acc, err := ui.wallet.Signup(ctx, id, secret, ref)
	if err != nil {
		ui.printError(err)
		return
	}
	fmt.Fprintf(ui.out, "Signup successful! Bonus ₹%d added.\n", acc.Balance)
}

func (ui *UI) handleLogin(ctx context.Context) {
	fmt.Fprintln(ui.out, "\n=== Log in ===")
	fmt.Fprint(ui.out, "Username: ")
	id := ui.readLine()
	fmt.Fprint(ui.out, "Password: ")
	secret := ui.readLine()

	if _, err := ui.wallet.Login(ctx, id, secret); err != nil {
		ui.printError(err)
	}
}

// dashboard handles the logged-in view. Returns false to exit the program.
func (ui *UI) dashboard(ctx context.Context) bool {
	id, acc, err := ui.wallet.CurrentAccount(ctx)
	if err != nil {
		ui.printError(err)
		return true
	}
	used, limit := ui.wallet.SellUsage(acc)
	fmt.Fprintln(ui.out)
	fmt.Fprint(ui.out, render.Dashboard(id, acc, used, limit, ui.baseURL))

	fmt.Fprintln(ui.out, "\n1) Sell 200MB data")
	fmt.Fprintln(ui.out, "2) Log out")
	fmt.Fprintln(ui.out, "0) Exit")
	fmt.Fprint(ui.out, "> ")

	switch ui.readLine() {
	case "1":
		acc, err := ui.wallet.Sell(ctx)
		if err != nil {
			ui.printError(err)
			return true
		}
		fmt.Fprintf(ui.out, "Sold! ₹%d credited. New balance: ₹%d\n",
			acc.History[0].Amount, acc.Balance)
	case "2":
		if err := ui.wallet.Logout(ctx); err != nil {
			ui.printError(err)
		}
	case "0":
		return false
	}
	return true
}

// printError maps service errors to the user-visible messages of the
// original page.
func (ui *UI) printError(err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		fmt.Fprintln(ui.out, "Enter all fields")
	case errors.Is(err, service.ErrDuplicateAccount):
		fmt.Fprintln(ui.out, "Username already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		fmt.Fprintln(ui.out, "Invalid credentials")
	case errors.Is(err, service.ErrSellLimitReached):
		fmt.Fprintln(ui.out, "Daily sell limit reached! (4 times only)")
	case errors.Is(err, service.ErrNoSession):
		fmt.Fprintln(ui.out, "Please login again.")
	default:
		fmt.Fprintln(ui.out, "Error:", err)
	}
}

func (ui *UI) readLine() string {
	line, _ := ui.in.ReadString('\n')
	return strings.TrimSpace(line)
}
