package op

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/db/memdb"
	"github.com/luminet/go-luminet/lumpb"
)

func newTestManager(t *testing.T) (*account.Manager, db.Database) {
	d := memdb.New()
	am := account.NewManager(d, 10)
	return am, d
}

func createTestAccount(t *testing.T, am *account.Manager, d db.Database, balance int64) string {
	pk, _, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	err = am.CreateAccount(d, pk, balance, "")
	assert.Nil(t, err)
	return pk
}

func applyOp(t *testing.T, d db.Database, o Op) error {
	dt, err := d.Begin()
	assert.Nil(t, err)
	if err := o.Apply(dt); err != nil {
		assert.Nil(t, dt.Rollback())
		return err
	}
	assert.Nil(t, dt.Commit())
	return nil
}

func TestNativePayment(t *testing.T) {
	am, d := newTestManager(t)

	src := createTestAccount(t, am, d, 1000)
	dst := createTestAccount(t, am, d, 1000)

	p := &Payment{
		AM:           am,
		SrcAccountID: src,
		DstAccountID: dst,
		Asset:        &lumpb.Asset{AssetType: lumpb.AssetType_NATIVE},
		Amount:       500,
	}
	err := applyOp(t, d, p)
	assert.Nil(t, err)

	srcAcc, err := am.GetAccount(d, src)
	assert.Nil(t, err)
	assert.Equal(t, int64(500), srcAcc.Balance)
	dstAcc, err := am.GetAccount(d, dst)
	assert.Nil(t, err)
	assert.Equal(t, int64(1500), dstAcc.Balance)

	// Payment above the balance should fail and change nothing.
	p.Amount = 5000
	err = applyOp(t, d, p)
	assert.Equal(t, account.ErrBalanceUnderflow, err)
	srcAcc, err = am.GetAccount(d, src)
	assert.Nil(t, err)
	assert.Equal(t, int64(500), srcAcc.Balance)

	// Payment with a non-positive amount should fail.
	p.Amount = 0
	err = applyOp(t, d, p)
	assert.Equal(t, ErrInvalidPaymentAmount, err)
}

func TestCustomPayment(t *testing.T) {
	am, d := newTestManager(t)

	issuer := createTestAccount(t, am, d, 1000)
	holder := createTestAccount(t, am, d, 1000)
	asset := &lumpb.Asset{AssetType: lumpb.AssetType_CUSTOM, AssetName: "ABC", Issuer: issuer}

	err := am.CreateTrust(d, holder, asset, 10000)
	assert.Nil(t, err)

	// Issuance is a payment from the issuer.
	p := &Payment{
		AM:           am,
		SrcAccountID: issuer,
		DstAccountID: holder,
		Asset:        asset,
		Amount:       300,
	}
	err = applyOp(t, d, p)
	assert.Nil(t, err)

	trust, err := am.GetTrust(d, holder, asset)
	assert.Nil(t, err)
	assert.Equal(t, int64(300), trust.Balance)

	// A payment to an account without a trustline should fail.
	other := createTestAccount(t, am, d, 1000)
	p = &Payment{
		AM:           am,
		SrcAccountID: holder,
		DstAccountID: other,
		Asset:        asset,
		Amount:       100,
	}
	err = applyOp(t, d, p)
	assert.NotNil(t, err)

	// A payment over a de-authorized trustline should fail.
	trust.Authorized = 0
	assert.Nil(t, am.SaveTrust(d, trust))
	p = &Payment{
		AM:           am,
		SrcAccountID: holder,
		DstAccountID: issuer,
		Asset:        asset,
		Amount:       100,
	}
	err = applyOp(t, d, p)
	assert.Equal(t, ErrPaymentNotAuthorized, err)
}

func TestClawback(t *testing.T) {
	am, d := newTestManager(t)

	issuer := createTestAccount(t, am, d, 1000)
	holder := createTestAccount(t, am, d, 1000)
	asset := &lumpb.Asset{AssetType: lumpb.AssetType_CUSTOM, AssetName: "ABC", Issuer: issuer}

	err := am.CreateTrust(d, holder, asset, 10000)
	assert.Nil(t, err)
	trust, err := am.GetTrust(d, holder, asset)
	assert.Nil(t, err)
	assert.Nil(t, am.AddTrustBalance(trust, 500))
	assert.Nil(t, am.SaveTrust(d, trust))

	c := &Clawback{
		AM:            am,
		SrcAccountID:  issuer,
		FromAccountID: holder,
		Asset:         asset,
		Amount:        200,
	}
	err = applyOp(t, d, c)
	assert.Nil(t, err)

	trust, err = am.GetTrust(d, holder, asset)
	assert.Nil(t, err)
	assert.Equal(t, int64(300), trust.Balance)

	// Clawing back more than the held balance should fail.
	c.Amount = 1000
	err = applyOp(t, d, c)
	assert.Equal(t, account.ErrBalanceUnderflow, err)

	// Only the issuer can claw back.
	c.SrcAccountID = holder
	c.Amount = 100
	err = applyOp(t, d, c)
	assert.NotNil(t, err)
}
