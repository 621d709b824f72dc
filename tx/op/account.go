package op

import (
	"errors"
	"fmt"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/db"
)

var (
	ErrAccountExist       = errors.New("account already exist")
	ErrInvalidInitBalance = errors.New("invalid initial balance")
)

// Operation for creating a new account.
type CreateAccount struct {
	AM           *account.Manager
	SrcAccountID string
	DstAccountID string
	Balance      int64
}

func (op *CreateAccount) Apply(dt db.Tx) error {
	if op.SrcAccountID == "" || op.DstAccountID == "" {
		return ErrInvalidAccountID
	}
	// The initial balance should cover the base reserve of
	// the account itself.
	if op.Balance < op.AM.BaseReserve() {
		return ErrInvalidInitBalance
	}

	_, err := op.AM.GetAccount(dt, op.DstAccountID)
	if err == nil {
		return ErrAccountExist
	}
	if err != account.ErrAccountNotExist {
		return fmt.Errorf("get dst account failed: %v", err)
	}

	srcAccount, err := op.AM.GetAccount(dt, op.SrcAccountID)
	if err != nil {
		return fmt.Errorf("get src account failed: %v", err)
	}
	if err := op.AM.SubBalance(srcAccount, op.Balance); err != nil {
		return err
	}
	if err := op.AM.SaveAccount(dt, srcAccount); err != nil {
		return fmt.Errorf("save src account failed: %v", err)
	}

	if err := op.AM.CreateAccount(dt, op.DstAccountID, op.Balance, ""); err != nil {
		return fmt.Errorf("create account failed: %v", err)
	}

	return nil
}
