package op

import (
	"errors"
	"fmt"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/lumpb"
)

var (
	ErrEmptySetOptions = errors.New("set options op changes nothing")
)

// SetOptions changes the signers, thresholds and master
// weight of the source account, empty fields are left
// unchanged.
type SetOptions struct {
	AM              *account.Manager
	SrcAccountID    string
	Signer          *lumpb.Signer
	Thresholds      *lumpb.Thresholds
	MasterWeight    uint32
	SetMasterWeight bool
}

func (s *SetOptions) Apply(dt db.Tx) error {
	if s.SrcAccountID == "" {
		return ErrInvalidAccountID
	}
	if s.Signer == nil && s.Thresholds == nil && !s.SetMasterWeight {
		return ErrEmptySetOptions
	}

	srcAccount, err := s.AM.GetAccount(dt, s.SrcAccountID)
	if err != nil {
		return fmt.Errorf("get src account failed: %v", err)
	}

	if s.Signer != nil {
		if !crypto.IsValidAccountKey(s.Signer.SignerID) {
			return errors.New("invalid signer account key")
		}
		if s.Signer.SignerID == s.SrcAccountID {
			return errors.New("master key cannot be an extra signer")
		}
		if err := s.AM.UpdateSigner(srcAccount, s.Signer); err != nil {
			return err
		}
	}

	if s.Thresholds != nil {
		if err := s.AM.SetThresholds(srcAccount, s.Thresholds); err != nil {
			return err
		}
	}

	if s.SetMasterWeight {
		if err := s.AM.SetMasterWeight(srcAccount, s.MasterWeight); err != nil {
			return err
		}
	}

	if err := s.AM.SaveAccount(dt, srcAccount); err != nil {
		return fmt.Errorf("save src account failed: %v", err)
	}

	return nil
}
