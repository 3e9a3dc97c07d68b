package entity

import (
	"fmt"
	"io"
	"os"
)

// InsufficientBalanceNotice is printed when a withdrawal exceeds the balance.
const InsufficientBalanceNotice = "Insufficient Balance!"

// Account holds a fixed ID and a mutable balance.
// Deposit and SetBalance accept any amount, including negatives.
type Account struct {
	accountID int
	balance   float64
	out       io.Writer
}

func NewAccount(id int) *Account {
	return &Account{accountID: id, out: os.Stdout}
}

func (a *Account) AccountID() int { return a.accountID }

func (a *Account) Balance() float64 { return a.balance }

func (a *Account) SetBalance(amount float64) { a.balance = amount }

// SetOutput redirects the insufficient balance notice. nil restores stdout.
func (a *Account) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	a.out = w
}

func (a *Account) Deposit(amount float64) {
	a.balance += amount
}

// Withdraw subtracts amount when the balance covers it. Otherwise the balance
// is left untouched and InsufficientBalanceNotice is written to the output
// (stdout for an Account not built with NewAccount).
func (a *Account) Withdraw(amount float64) {
	if amount <= a.balance {
		a.balance -= amount
		return
	}
	w := a.out
	if w == nil {
		w = os.Stdout
	}
	_, _ = fmt.Fprintln(w, InsufficientBalanceNotice)
}
