package build

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/db/memdb"
	"github.com/luminet/go-luminet/ledger"
	"github.com/luminet/go-luminet/lumpb"
)

// managerLoader adapts a local account manager to AccountLoader.
type managerLoader struct {
	d  db.Database
	am *account.Manager
}

func (l *managerLoader) LoadAccount(accountID string) (*lumpb.Account, error) {
	return l.am.GetAccount(l.d, accountID)
}

func newTestLoader(t *testing.T) (*managerLoader, string) {
	d := memdb.New()
	am := account.NewManager(d, ledger.GenesisBaseReserve)

	pk, _, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	assert.Nil(t, am.CreateAccount(d, pk, 100000000, ""))

	return &managerLoader{d: d, am: am}, pk
}

func TestAssemble(t *testing.T) {
	loader, src := newTestLoader(t)
	dst := testAccountID(t)

	a := NewAssembler(loader)
	env, err := a.Assemble(src,
		&Payment{AccountID: dst, Amount: 1000, Asset: &Asset{AssetType: NATIVE}},
	)
	assert.Nil(t, err)
	assert.Equal(t, src, env.TxEnv.Tx.AccountID)
	assert.Equal(t, uint64(1), env.TxEnv.Tx.SeqNum)
	assert.Equal(t, BaseFee, env.TxEnv.Tx.Fee)

	// Unknown account.
	_, err = a.Assemble(testAccountID(t),
		&Payment{AccountID: dst, Amount: 1000, Asset: &Asset{AssetType: NATIVE}},
	)
	assert.NotNil(t, err)
}

func TestAssembleAt(t *testing.T) {
	loader, src := newTestLoader(t)
	dst := testAccountID(t)

	a := NewAssembler(loader)
	env, err := a.AssembleAt(src, 1,
		&Payment{AccountID: dst, Amount: 1000, Asset: &Asset{AssetType: NATIVE}},
	)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), env.TxEnv.Tx.SeqNum)

	// The account consumes the sequence number after the
	// snapshot was taken.
	acc, err := loader.am.GetAccount(loader.d, src)
	assert.Nil(t, err)
	acc.SeqNum = 1
	assert.Nil(t, loader.am.SaveAccount(loader.d, acc))

	_, err = a.AssembleAt(src, 1,
		&Payment{AccountID: dst, Amount: 1000, Asset: &Asset{AssetType: NATIVE}},
	)
	assert.Equal(t, ErrStaleSeqNum, err)
}
