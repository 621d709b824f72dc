package op

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/lumpb"
)

func TestSetOptions(t *testing.T) {
	am, d := newTestManager(t)

	src := createTestAccount(t, am, d, 1000)
	signer, _, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)

	so := &SetOptions{
		AM:           am,
		SrcAccountID: src,
		Signer:       &lumpb.Signer{SignerID: signer, Weight: 2},
		Thresholds:   &lumpb.Thresholds{Low: 1, Medium: 2, High: 3},
	}
	err = applyOp(t, d, so)
	assert.Nil(t, err)

	acc, err := am.GetAccount(d, src)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(acc.Signers))
	assert.Equal(t, uint32(2), acc.Signers[0].Weight)
	assert.Equal(t, uint32(3), acc.Thresholds.High)

	// Reduce the master weight to zero.
	so = &SetOptions{
		AM:              am,
		SrcAccountID:    src,
		MasterWeight:    0,
		SetMasterWeight: true,
	}
	err = applyOp(t, d, so)
	assert.Nil(t, err)
	acc, err = am.GetAccount(d, src)
	assert.Nil(t, err)
	assert.Equal(t, uint32(0), acc.MasterWeight)

	// Remove the signer with a zero weight.
	so = &SetOptions{
		AM:           am,
		SrcAccountID: src,
		Signer:       &lumpb.Signer{SignerID: signer, Weight: 0},
	}
	err = applyOp(t, d, so)
	assert.Nil(t, err)
	acc, err = am.GetAccount(d, src)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(acc.Signers))

	// An empty op changes nothing and is rejected.
	so = &SetOptions{AM: am, SrcAccountID: src}
	err = applyOp(t, d, so)
	assert.Equal(t, ErrEmptySetOptions, err)

	// The master key cannot be added as an extra signer.
	so = &SetOptions{
		AM:           am,
		SrcAccountID: src,
		Signer:       &lumpb.Signer{SignerID: src, Weight: 1},
	}
	err = applyOp(t, d, so)
	assert.NotNil(t, err)
}
