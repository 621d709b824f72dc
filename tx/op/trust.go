package op

import (
	"errors"
	"fmt"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/lumpb"
)

var (
	ErrInvalidTrustLimit    = errors.New("invalid trust limit")
	ErrTrustBalanceNonZero  = errors.New("trust balance is not zero")
	ErrNotAssetIssuer       = errors.New("source account is not the asset issuer")
	ErrSelfTrustMeaningless = errors.New("issuer cannot trust its own asset")
)

// Trust manages create, update and delete of the
// trust to issued assets. A zero limit deletes the
// trustline when its balance is zero.
type Trust struct {
	AM           *account.Manager
	SrcAccountID string
	Asset        *lumpb.Asset
	Limit        int64
}

func (t *Trust) Apply(dt db.Tx) error {
	if err := ValidateAsset(t.Asset); err != nil {
		return fmt.Errorf("validate trust asset failed: %v", err)
	}
	if t.Asset.AssetType == lumpb.AssetType_NATIVE {
		return errors.New("trust to the native asset is implicit")
	}
	if t.Limit < 0 {
		return ErrInvalidTrustLimit
	}
	if t.SrcAccountID == "" {
		return ErrInvalidAccountID
	}
	if t.SrcAccountID == t.Asset.Issuer {
		return ErrSelfTrustMeaningless
	}

	// the asset issuer should exist
	if _, err := t.AM.GetAccount(dt, t.Asset.Issuer); err != nil {
		return fmt.Errorf("get asset issuer failed: %v", err)
	}

	srcAccount, err := t.AM.GetAccount(dt, t.SrcAccountID)
	if err != nil {
		return fmt.Errorf("get src account failed: %v", err)
	}

	trust, err := t.AM.GetTrust(dt, t.SrcAccountID, t.Asset)
	if err == account.ErrTrustNotExist {
		if t.Limit == 0 {
			// deleting a nonexistent trust is a noop
			return nil
		}
		if err := t.AM.CreateTrust(dt, t.SrcAccountID, t.Asset, t.Limit); err != nil {
			return fmt.Errorf("create trust failed: %v", err)
		}
		srcAccount.EntryCount++
		if err := t.AM.SaveAccount(dt, srcAccount); err != nil {
			return fmt.Errorf("save src account failed: %v", err)
		}
		return adjustSponsorEntries(t.AM, dt, srcAccount.Sponsor, 1)
	}
	if err != nil {
		return fmt.Errorf("get trust failed: %v", err)
	}

	if t.Limit == 0 {
		if trust.Balance != 0 {
			return ErrTrustBalanceNonZero
		}
		if err := t.AM.DeleteTrust(dt, t.SrcAccountID, t.Asset); err != nil {
			return fmt.Errorf("delete trust failed: %v", err)
		}
		srcAccount.EntryCount--
		if err := t.AM.SaveAccount(dt, srcAccount); err != nil {
			return fmt.Errorf("save src account failed: %v", err)
		}
		return adjustSponsorEntries(t.AM, dt, srcAccount.Sponsor, -1)
	}

	if t.Limit < trust.Balance {
		return ErrInvalidTrustLimit
	}
	trust.Limit = t.Limit
	if err := t.AM.SaveTrust(dt, trust); err != nil {
		return fmt.Errorf("save trust failed: %v", err)
	}

	return nil
}

// AllowTrust authorizes or de-authorizes the trustline of
// the trustor account, the source of the operation should
// be the issuer of the asset.
type AllowTrust struct {
	AM           *account.Manager
	SrcAccountID string
	TrustorID    string
	Asset        *lumpb.Asset
	Authorize    bool
}

func (a *AllowTrust) Apply(dt db.Tx) error {
	if err := ValidateAsset(a.Asset); err != nil {
		return fmt.Errorf("validate allow trust asset failed: %v", err)
	}
	if a.Asset.AssetType == lumpb.AssetType_NATIVE {
		return errors.New("cannot authorize the native asset")
	}
	if a.SrcAccountID == "" || a.TrustorID == "" {
		return ErrInvalidAccountID
	}
	if a.SrcAccountID != a.Asset.Issuer {
		return ErrNotAssetIssuer
	}

	trust, err := a.AM.GetTrust(dt, a.TrustorID, a.Asset)
	if err != nil {
		if err == account.ErrTrustNotExist {
			return err
		}
		return fmt.Errorf("get trustor trust failed: %v", err)
	}

	if a.Authorize {
		trust.Authorized = 1
	} else {
		trust.Authorized = 0
	}
	if err := a.AM.SaveTrust(dt, trust); err != nil {
		return fmt.Errorf("save trustor trust failed: %v", err)
	}

	return nil
}
