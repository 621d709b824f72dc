package op

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminet/go-luminet/crypto"
)

func TestCreateAccount(t *testing.T) {
	am, d := newTestManager(t)

	src := createTestAccount(t, am, d, 1000)
	dst, _, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)

	ca := &CreateAccount{
		AM:           am,
		SrcAccountID: src,
		DstAccountID: dst,
		Balance:      500,
	}
	err = applyOp(t, d, ca)
	assert.Nil(t, err)

	srcAcc, err := am.GetAccount(d, src)
	assert.Nil(t, err)
	assert.Equal(t, int64(500), srcAcc.Balance)

	dstAcc, err := am.GetAccount(d, dst)
	assert.Nil(t, err)
	assert.Equal(t, int64(500), dstAcc.Balance)
	assert.Equal(t, uint32(1), dstAcc.MasterWeight)

	// Creating an existing account should fail.
	err = applyOp(t, d, ca)
	assert.Equal(t, ErrAccountExist, err)

	// The initial balance should cover the base reserve.
	other, _, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	ca = &CreateAccount{
		AM:           am,
		SrcAccountID: src,
		DstAccountID: other,
		Balance:      am.BaseReserve() - 1,
	}
	err = applyOp(t, d, ca)
	assert.Equal(t, ErrInvalidInitBalance, err)
}
