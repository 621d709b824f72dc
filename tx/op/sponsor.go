package op

import (
	"errors"
	"fmt"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/db"
)

var (
	ErrAlreadySponsored = errors.New("account is already sponsored")
	ErrNotSponsored     = errors.New("account is not sponsored")
	ErrSelfSponsorship  = errors.New("account cannot sponsor itself")
)

// BeginSponsor moves the base reserve obligation of the
// destination account to the source account.
type BeginSponsor struct {
	AM           *account.Manager
	SrcAccountID string
	DstAccountID string
}

func (b *BeginSponsor) Apply(dt db.Tx) error {
	if b.SrcAccountID == "" || b.DstAccountID == "" {
		return ErrInvalidAccountID
	}
	if b.SrcAccountID == b.DstAccountID {
		return ErrSelfSponsorship
	}

	dstAccount, err := b.AM.GetAccount(dt, b.DstAccountID)
	if err != nil {
		return fmt.Errorf("get dst account failed: %v", err)
	}
	if dstAccount.Sponsor != "" {
		return ErrAlreadySponsored
	}

	srcAccount, err := b.AM.GetAccount(dt, b.SrcAccountID)
	if err != nil {
		return fmt.Errorf("get src account failed: %v", err)
	}

	// The sponsor carries the entries of the sponsored account
	// plus the base reserve of the account itself.
	srcAccount.EntryCount += dstAccount.EntryCount + 1
	dstAccount.Sponsor = b.SrcAccountID

	if err := b.AM.SaveAccount(dt, srcAccount); err != nil {
		return fmt.Errorf("save src account failed: %v", err)
	}
	if err := b.AM.SaveAccount(dt, dstAccount); err != nil {
		return fmt.Errorf("save dst account failed: %v", err)
	}

	return nil
}

// The sponsor of an account carries the reserve obligation of
// entries created or deleted while the sponsorship lasts.
func adjustSponsorEntries(am *account.Manager, dt db.Tx, sponsorID string, delta int32) error {
	if sponsorID == "" {
		return nil
	}
	sponsor, err := am.GetAccount(dt, sponsorID)
	if err != nil {
		return fmt.Errorf("get sponsor account failed: %v", err)
	}
	sponsor.EntryCount += delta
	if sponsor.EntryCount < 0 {
		sponsor.EntryCount = 0
	}
	if err := am.SaveAccount(dt, sponsor); err != nil {
		return fmt.Errorf("save sponsor account failed: %v", err)
	}
	return nil
}

// EndSponsor removes the sponsorship of the source account
// and takes the reserve obligation back.
type EndSponsor struct {
	AM           *account.Manager
	SrcAccountID string
}

func (e *EndSponsor) Apply(dt db.Tx) error {
	if e.SrcAccountID == "" {
		return ErrInvalidAccountID
	}

	srcAccount, err := e.AM.GetAccount(dt, e.SrcAccountID)
	if err != nil {
		return fmt.Errorf("get src account failed: %v", err)
	}
	if srcAccount.Sponsor == "" {
		return ErrNotSponsored
	}

	sponsor, err := e.AM.GetAccount(dt, srcAccount.Sponsor)
	if err != nil {
		return fmt.Errorf("get sponsor account failed: %v", err)
	}

	sponsor.EntryCount -= srcAccount.EntryCount + 1
	if sponsor.EntryCount < 0 {
		sponsor.EntryCount = 0
	}
	srcAccount.Sponsor = ""

	if err := e.AM.SaveAccount(dt, sponsor); err != nil {
		return fmt.Errorf("save sponsor account failed: %v", err)
	}
	if err := e.AM.SaveAccount(dt, srcAccount); err != nil {
		return fmt.Errorf("save src account failed: %v", err)
	}

	return nil
}
