package account

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/db/memdb"
	"github.com/luminet/go-luminet/lumpb"
)

func TestCreateAndGetAccount(t *testing.T) {
	am := NewManager(memdb.New(), 10)

	pk, _, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)

	err = am.CreateAccount(am.database, pk, 1000, "")
	assert.Nil(t, err)

	acc, err := am.GetAccount(am.database, pk)
	assert.Nil(t, err)
	assert.Equal(t, pk, acc.AccountID)
	assert.Equal(t, int64(1000), acc.Balance)
	assert.Equal(t, uint32(1), acc.MasterWeight)
	assert.Equal(t, uint64(0), acc.SeqNum)

	// The returned account is a deep copy, mutating it should
	// not affect a following read.
	acc.Balance = 0
	again, err := am.GetAccount(am.database, pk)
	assert.Nil(t, err)
	assert.Equal(t, int64(1000), again.Balance)

	_, err = am.GetAccount(am.database, "missing")
	assert.NotNil(t, err)
}

func TestBalance(t *testing.T) {
	am := NewManager(memdb.New(), 10)

	acc := &lumpb.Account{AccountID: "acc", Balance: 100}

	err := am.AddBalance(acc, 50)
	assert.Nil(t, err)
	assert.Equal(t, int64(150), acc.Balance)

	err = am.SubBalance(acc, 150)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), acc.Balance)

	err = am.SubBalance(acc, 1)
	assert.Equal(t, ErrBalanceUnderflow, err)

	// An account with entries cannot spend the reserved balance.
	acc = &lumpb.Account{AccountID: "acc", Balance: 100, EntryCount: 5}
	err = am.SubBalance(acc, 60)
	assert.Equal(t, ErrBalanceUnderflow, err)
	err = am.SubBalance(acc, 50)
	assert.Nil(t, err)

	// A sponsored account has no local reserve obligation.
	acc = &lumpb.Account{AccountID: "acc", Balance: 100, EntryCount: 5, Sponsor: "sponsor"}
	err = am.SubBalance(acc, 100)
	assert.Nil(t, err)
}

func TestUpdateSigner(t *testing.T) {
	am := NewManager(memdb.New(), 10)

	acc := &lumpb.Account{AccountID: "acc", MasterWeight: 1}

	err := am.UpdateSigner(acc, &lumpb.Signer{SignerID: "A", Weight: 1})
	assert.Nil(t, err)
	err = am.UpdateSigner(acc, &lumpb.Signer{SignerID: "B", Weight: 2})
	assert.Nil(t, err)
	assert.Equal(t, 2, len(acc.Signers))

	// Updating an existing signer changes its weight in place.
	err = am.UpdateSigner(acc, &lumpb.Signer{SignerID: "A", Weight: 3})
	assert.Nil(t, err)
	assert.Equal(t, 2, len(acc.Signers))
	assert.Equal(t, uint32(3), acc.Signers[0].Weight)

	// A zero weight removes the signer.
	err = am.UpdateSigner(acc, &lumpb.Signer{SignerID: "A", Weight: 0})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(acc.Signers))
	assert.Equal(t, "B", acc.Signers[0].SignerID)

	// An oversized weight is rejected.
	err = am.UpdateSigner(acc, &lumpb.Signer{SignerID: "C", Weight: 256})
	assert.Equal(t, ErrInvalidWeight, err)
}

func TestThresholds(t *testing.T) {
	am := NewManager(memdb.New(), 10)

	acc := &lumpb.Account{AccountID: "acc", MasterWeight: 1, Thresholds: &lumpb.Thresholds{}}

	err := am.SetThresholds(acc, &lumpb.Thresholds{Low: 1, Medium: 2, High: 3})
	assert.Nil(t, err)
	assert.Equal(t, uint32(2), acc.Thresholds.Medium)

	err = am.SetThresholds(acc, &lumpb.Thresholds{High: 256})
	assert.Equal(t, ErrInvalidThreshold, err)

	err = am.SetMasterWeight(acc, 0)
	assert.Nil(t, err)
	assert.Equal(t, uint32(0), acc.MasterWeight)
}

func TestTrust(t *testing.T) {
	am := NewManager(memdb.New(), 10)

	issuer, _, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	holder, _, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)

	asset := &lumpb.Asset{AssetType: lumpb.AssetType_CUSTOM, AssetName: "ABC", Issuer: issuer}

	err = am.CreateTrust(am.database, holder, asset, 1000)
	assert.Nil(t, err)

	trust, err := am.GetTrust(am.database, holder, asset)
	assert.Nil(t, err)
	assert.Equal(t, int64(1000), trust.Limit)
	assert.Equal(t, int32(1), trust.Authorized)

	err = am.AddTrustBalance(trust, 500)
	assert.Nil(t, err)
	// The trust balance cannot exceed the limit.
	err = am.AddTrustBalance(trust, 600)
	assert.NotNil(t, err)

	err = am.SubTrustBalance(trust, 500)
	assert.Nil(t, err)
	err = am.SubTrustBalance(trust, 1)
	assert.Equal(t, ErrBalanceUnderflow, err)

	// The issuer implicitly trusts its own asset.
	trust, err = am.GetTrust(am.database, issuer, asset)
	assert.Nil(t, err)
	assert.Equal(t, int32(1), trust.Authorized)

	err = am.DeleteTrust(am.database, holder, asset)
	assert.Nil(t, err)
	_, err = am.GetTrust(am.database, holder, asset)
	assert.Equal(t, ErrTrustNotExist, err)
}
