package op

import (
	"errors"
	"fmt"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/lumpb"
)

var (
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrInvalidAccountID     = errors.New("invalid accountID")
	ErrPaymentNotAuthorized = errors.New("payment is not authorized")
)

// Peer to peer payment in specified asset.
type Payment struct {
	AM           *account.Manager
	SrcAccountID string
	DstAccountID string
	Asset        *lumpb.Asset
	Amount       int64
}

func (p *Payment) Apply(dt db.Tx) error {
	if err := ValidateAsset(p.Asset); err != nil {
		return fmt.Errorf("validate payment asset failed: %v", err)
	}
	if p.Amount <= 0 {
		return ErrInvalidPaymentAmount
	}
	if p.SrcAccountID == "" || p.DstAccountID == "" {
		return ErrInvalidAccountID
	}

	if p.Asset.AssetType == lumpb.AssetType_NATIVE {
		return p.applyNative(dt)
	}
	return p.applyCustom(dt)
}

func (p *Payment) applyNative(dt db.Tx) error {
	srcAccount, err := p.AM.GetAccount(dt, p.SrcAccountID)
	if err != nil {
		return fmt.Errorf("get src account failed: %v", err)
	}
	dstAccount, err := p.AM.GetAccount(dt, p.DstAccountID)
	if err != nil {
		return fmt.Errorf("get dst account failed: %v", err)
	}

	if err := p.AM.SubBalance(srcAccount, p.Amount); err != nil {
		return err
	}
	if err := p.AM.AddBalance(dstAccount, p.Amount); err != nil {
		return err
	}

	if err := p.AM.SaveAccount(dt, srcAccount); err != nil {
		return fmt.Errorf("save src account failed: %v", err)
	}
	if err := p.AM.SaveAccount(dt, dstAccount); err != nil {
		return fmt.Errorf("save dst account failed: %v", err)
	}

	return nil
}

func (p *Payment) applyCustom(dt db.Tx) error {
	// the asset issuer should exist
	if _, err := p.AM.GetAccount(dt, p.Asset.Issuer); err != nil {
		return fmt.Errorf("get asset issuer failed: %v", err)
	}

	srcTrust, err := p.AM.GetTrust(dt, p.SrcAccountID, p.Asset)
	if err != nil {
		return fmt.Errorf("get src trust failed: %v", err)
	}
	if srcTrust.Authorized == 0 {
		return ErrPaymentNotAuthorized
	}

	dstTrust, err := p.AM.GetTrust(dt, p.DstAccountID, p.Asset)
	if err != nil {
		return fmt.Errorf("get dst trust failed: %v", err)
	}
	if dstTrust.Authorized == 0 {
		return ErrPaymentNotAuthorized
	}

	if err := p.AM.SubTrustBalance(srcTrust, p.Amount); err != nil {
		return err
	}
	if err := p.AM.AddTrustBalance(dstTrust, p.Amount); err != nil {
		return err
	}

	// The issuer trust is implicit and is never saved.
	if srcTrust.AccountID != p.Asset.Issuer {
		if err := p.AM.SaveTrust(dt, srcTrust); err != nil {
			return fmt.Errorf("save src trust failed: %v", err)
		}
	}
	if dstTrust.AccountID != p.Asset.Issuer {
		if err := p.AM.SaveTrust(dt, dstTrust); err != nil {
			return fmt.Errorf("save dst trust failed: %v", err)
		}
	}

	return nil
}

// Clawback of an issued asset from a holder account back
// to the issuer, the source of the operation should be the
// issuer of the asset.
type Clawback struct {
	AM            *account.Manager
	SrcAccountID  string
	FromAccountID string
	Asset         *lumpb.Asset
	Amount        int64
}

func (c *Clawback) Apply(dt db.Tx) error {
	if err := ValidateAsset(c.Asset); err != nil {
		return fmt.Errorf("validate clawback asset failed: %v", err)
	}
	if c.Asset.AssetType == lumpb.AssetType_NATIVE {
		return errors.New("cannot claw back the native asset")
	}
	if c.Amount <= 0 {
		return ErrInvalidPaymentAmount
	}
	if c.SrcAccountID == "" || c.FromAccountID == "" {
		return ErrInvalidAccountID
	}
	if c.SrcAccountID != c.Asset.Issuer {
		return errors.New("clawback source is not the asset issuer")
	}

	trust, err := c.AM.GetTrust(dt, c.FromAccountID, c.Asset)
	if err != nil {
		if err == account.ErrTrustNotExist {
			return err
		}
		return fmt.Errorf("get holder trust failed: %v", err)
	}

	if err := c.AM.SubTrustBalance(trust, c.Amount); err != nil {
		return err
	}
	if err := c.AM.SaveTrust(dt, trust); err != nil {
		return fmt.Errorf("save holder trust failed: %v", err)
	}

	return nil
}
