package application

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/finsmart/finsmart/internal/domain/entity"
	"github.com/finsmart/finsmart/pkg/helpers"
)

// WelcomeBanner is the first line of every demo transcript.
const WelcomeBanner = "Welcome to FinSmart++!"

// Fixed inputs of the demo run.
const (
	demoUserID    = 1
	demoUserName  = "John Doe"
	demoUserEmail = "john@example.com"
	demoPassword  = "1234"

	demoAccountID = 1001
	demoDeposit   = 500
	demoWithdraw  = 100
)

// DemoService runs the fixed User/Account walkthrough and prints a transcript to Out (stdout when nil).
type DemoService struct {
	Out    io.Writer
	Logger *logrus.Logger
}

// DemoResult is what a run produced, for callers that don't want to parse the transcript.
type DemoResult struct {
	RunID     string
	UserID    int
	LoggedIn  bool
	AccountID int
	Balance   float64
}

// NewDemoService builds a DemoService writing to out and logging to logger (either may be nil).
func NewDemoService(out io.Writer, logger *logrus.Logger) *DemoService {
	return &DemoService{Out: out, Logger: logger}
}

// printer remembers the first write error so the transcript code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, a...)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Run performs the walkthrough once. The returned error is only ever a write failure on Out.
func (s *DemoService) Run() (DemoResult, error) {
	res := DemoResult{RunID: helpers.NewRunID()}
	logger := s.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	log := logger.WithField("run_id", res.RunID)

	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	p := &printer{w: out}
	p.println(WelcomeBanner)

	user := entity.NewUser(demoUserID, demoUserName, demoUserEmail)
	user.SetPassword(demoPassword)
	res.UserID = user.UserID()
	res.LoggedIn = user.Login(demoUserEmail, demoPassword)
	log.WithFields(logrus.Fields{"user_id": res.UserID, "logged_in": res.LoggedIn}).Debug("user login checked")

	p.println("User ID:", user.UserID())
	p.println("Name:", user.Name())
	p.println("Email:", user.Email())
	p.println("Login:", res.LoggedIn)

	acc := entity.NewAccount(demoAccountID)
	acc.SetOutput(out)
	acc.Deposit(demoDeposit)
	acc.Withdraw(demoWithdraw)
	res.AccountID = acc.AccountID()
	res.Balance = acc.Balance()
	log.WithFields(logrus.Fields{"account_id": res.AccountID, "balance": res.Balance}).Debug("account updated")

	p.println("Account ID:", acc.AccountID())
	p.println("Current Balance:", formatAmount(acc.Balance()))

	if p.err != nil {
		helpers.LogError(log, "demo output failed", p.err, nil)
		return res, fmt.Errorf("write demo output: %w", p.err)
	}
	helpers.LogInfo(log, "demo finished", logrus.Fields{"balance": res.Balance})
	return res, nil
}
