package op

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminet/go-luminet/lumpb"
)

func TestSponsorship(t *testing.T) {
	am, d := newTestManager(t)

	sponsor := createTestAccount(t, am, d, 1000)
	sponsored := createTestAccount(t, am, d, 100)

	bs := &BeginSponsor{
		AM:           am,
		SrcAccountID: sponsor,
		DstAccountID: sponsored,
	}
	err := applyOp(t, d, bs)
	assert.Nil(t, err)

	acc, err := am.GetAccount(d, sponsored)
	assert.Nil(t, err)
	assert.Equal(t, sponsor, acc.Sponsor)

	sponsorAcc, err := am.GetAccount(d, sponsor)
	assert.Nil(t, err)
	assert.Equal(t, int32(1), sponsorAcc.EntryCount)

	// Sponsoring an already sponsored account should fail.
	err = applyOp(t, d, bs)
	assert.Equal(t, ErrAlreadySponsored, err)

	es := &EndSponsor{
		AM:           am,
		SrcAccountID: sponsored,
	}
	err = applyOp(t, d, es)
	assert.Nil(t, err)

	acc, err = am.GetAccount(d, sponsored)
	assert.Nil(t, err)
	assert.Equal(t, "", acc.Sponsor)
	sponsorAcc, err = am.GetAccount(d, sponsor)
	assert.Nil(t, err)
	assert.Equal(t, int32(0), sponsorAcc.EntryCount)

	// Ending a nonexistent sponsorship should fail.
	err = applyOp(t, d, es)
	assert.Equal(t, ErrNotSponsored, err)

	// Self sponsorship is rejected.
	bs = &BeginSponsor{
		AM:           am,
		SrcAccountID: sponsor,
		DstAccountID: sponsor,
	}
	err = applyOp(t, d, bs)
	assert.Equal(t, ErrSelfSponsorship, err)
}

func TestSponsoredEntryReserve(t *testing.T) {
	am, d := newTestManager(t)

	sponsor := createTestAccount(t, am, d, 1000)
	sponsored := createTestAccount(t, am, d, 100)
	issuer := createTestAccount(t, am, d, 1000)
	asset := &lumpb.Asset{AssetType: lumpb.AssetType_CUSTOM, AssetName: "XYZ", Issuer: issuer}

	err := applyOp(t, d, &BeginSponsor{
		AM:           am,
		SrcAccountID: sponsor,
		DstAccountID: sponsored,
	})
	assert.Nil(t, err)

	// A trustline created while sponsored moves its reserve
	// obligation to the sponsor.
	err = applyOp(t, d, &Trust{
		AM:           am,
		SrcAccountID: sponsored,
		Asset:        asset,
		Limit:        1000,
	})
	assert.Nil(t, err)

	sponsorAcc, err := am.GetAccount(d, sponsor)
	assert.Nil(t, err)
	assert.Equal(t, int32(2), sponsorAcc.EntryCount)
	sponsoredAcc, err := am.GetAccount(d, sponsored)
	assert.Nil(t, err)
	assert.Equal(t, int32(1), sponsoredAcc.EntryCount)

	// Deleting the trustline hands the obligation back.
	err = applyOp(t, d, &Trust{
		AM:           am,
		SrcAccountID: sponsored,
		Asset:        asset,
		Limit:        0,
	})
	assert.Nil(t, err)

	sponsorAcc, err = am.GetAccount(d, sponsor)
	assert.Nil(t, err)
	assert.Equal(t, int32(1), sponsorAcc.EntryCount)

	// Ending the sponsorship leaves no residue on the sponsor.
	err = applyOp(t, d, &EndSponsor{AM: am, SrcAccountID: sponsored})
	assert.Nil(t, err)
	sponsorAcc, err = am.GetAccount(d, sponsor)
	assert.Nil(t, err)
	assert.Equal(t, int32(0), sponsorAcc.EntryCount)
}
