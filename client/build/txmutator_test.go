package build

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/lumpb"
)

func testAccountID(t *testing.T) string {
	pk, _, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	return pk
}

func TestAccountIDMutator(t *testing.T) {
	tx := &lumpb.Tx{}

	m := &AccountID{}
	assert.NotNil(t, m.Mutate(tx))

	m = &AccountID{AccountID: "random"}
	assert.NotNil(t, m.Mutate(tx))

	pk := testAccountID(t)
	m = &AccountID{AccountID: pk}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, pk, tx.AccountID)
}

func TestSeqNumMutator(t *testing.T) {
	tx := &lumpb.Tx{}

	m := &SeqNum{}
	assert.NotNil(t, m.Mutate(tx))

	m = &SeqNum{SeqNum: 7}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, uint64(7), tx.SeqNum)
}

func TestNoteMutator(t *testing.T) {
	tx := &lumpb.Tx{}

	long := make([]byte, 129)
	m := &Note{Note: string(long)}
	assert.NotNil(t, m.Mutate(tx))

	m = &Note{Note: "bootcamp"}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, "bootcamp", tx.Note)
}

func TestFeeMutator(t *testing.T) {
	tx := &lumpb.Tx{OpList: []*lumpb.Op{{}, {}}}

	m := &Fee{BaseFee: -1}
	assert.NotNil(t, m.Mutate(tx))

	m = &Fee{BaseFee: 100}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, int64(200), tx.Fee)
}

func TestTimeBoundsMutator(t *testing.T) {
	tx := &lumpb.Tx{}

	m := &TimeBounds{MinTime: 100, MaxTime: 10}
	assert.NotNil(t, m.Mutate(tx))

	m = &TimeBounds{MinTime: 10, MaxTime: 100}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, int64(10), tx.TimeBounds.MinTime)
	assert.Equal(t, int64(100), tx.TimeBounds.MaxTime)
}

func TestPaymentMutator(t *testing.T) {
	tx := &lumpb.Tx{}
	dst := testAccountID(t)
	issuer := testAccountID(t)

	m := &Payment{AccountID: dst, Amount: 0, Asset: &Asset{AssetType: NATIVE}}
	assert.NotNil(t, m.Mutate(tx))

	m = &Payment{AccountID: dst, Amount: 100, Asset: &Asset{AssetType: CUSTOM, AssetName: "TOOLONG", Issuer: issuer}}
	assert.NotNil(t, m.Mutate(tx))

	m = &Payment{AccountID: dst, Amount: 100, Asset: &Asset{AssetType: NATIVE}}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, 1, len(tx.OpList))
	assert.Equal(t, lumpb.OpType_PAYMENT, tx.OpList[0].OpType)

	m = &Payment{AccountID: dst, Amount: 100, Asset: &Asset{AssetType: CUSTOM, AssetName: "ABC", Issuer: issuer}}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, 2, len(tx.OpList))
}

func TestTrustMutator(t *testing.T) {
	tx := &lumpb.Tx{}
	issuer := testAccountID(t)

	m := &Trust{Asset: &Asset{AssetType: NATIVE}, Limit: 100}
	assert.NotNil(t, m.Mutate(tx))

	m = &Trust{Asset: &Asset{AssetType: CUSTOM, AssetName: "ABC", Issuer: issuer}, Limit: -1}
	assert.NotNil(t, m.Mutate(tx))

	m = &Trust{Asset: &Asset{AssetType: CUSTOM, AssetName: "ABC", Issuer: issuer}, Limit: 10000}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, lumpb.OpType_TRUST, tx.OpList[0].OpType)
}

func TestSetOptionsMutator(t *testing.T) {
	tx := &lumpb.Tx{}
	signer := testAccountID(t)

	m := &SetOptions{}
	assert.NotNil(t, m.Mutate(tx))

	m = &SetOptions{Signer: &Signer{SignerID: "random", Weight: 1}}
	assert.NotNil(t, m.Mutate(tx))

	m = &SetOptions{
		Signer:     &Signer{SignerID: signer, Weight: 2},
		Thresholds: &Thresholds{Low: 1, Medium: 2, High: 3},
	}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, lumpb.OpType_SET_OPTIONS, tx.OpList[0].OpType)

	op := tx.OpList[0].GetSetOptions()
	assert.Equal(t, signer, op.Signer.SignerID)
	assert.Equal(t, uint32(3), op.Thresholds.High)
}

func TestAllowTrustMutator(t *testing.T) {
	tx := &lumpb.Tx{}
	holder := testAccountID(t)
	issuer := testAccountID(t)

	m := &AllowTrust{AccountID: holder, Asset: &Asset{AssetType: NATIVE}}
	assert.NotNil(t, m.Mutate(tx))

	m = &AllowTrust{AccountID: holder, Asset: &Asset{AssetType: CUSTOM, AssetName: "ABC", Issuer: issuer}, Authorize: true}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, lumpb.OpType_ALLOW_TRUST, tx.OpList[0].OpType)
}

func TestClawbackMutator(t *testing.T) {
	tx := &lumpb.Tx{}
	holder := testAccountID(t)
	issuer := testAccountID(t)

	m := &Clawback{AccountID: holder, Asset: &Asset{AssetType: CUSTOM, AssetName: "ABC", Issuer: issuer}, Amount: 0}
	assert.NotNil(t, m.Mutate(tx))

	m = &Clawback{AccountID: holder, Asset: &Asset{AssetType: CUSTOM, AssetName: "ABC", Issuer: issuer}, Amount: 100}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, lumpb.OpType_CLAWBACK, tx.OpList[0].OpType)
}

func TestSponsorMutators(t *testing.T) {
	tx := &lumpb.Tx{}
	sponsored := testAccountID(t)

	m := &BeginSponsor{AccountID: "random"}
	assert.NotNil(t, m.Mutate(tx))

	m = &BeginSponsor{AccountID: sponsored}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, lumpb.OpType_BEGIN_SPONSOR, tx.OpList[0].OpType)

	es := &EndSponsor{SrcID: sponsored}
	assert.Nil(t, es.Mutate(tx))
	assert.Equal(t, lumpb.OpType_END_SPONSOR, tx.OpList[1].OpType)
	assert.Equal(t, sponsored, tx.OpList[1].AccountID)
}
