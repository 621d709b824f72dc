package contract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/db/memdb"
	"github.com/luminet/go-luminet/ledger"
	"github.com/luminet/go-luminet/lumpb"
)

type testHost struct {
	cm *Manager
	am *account.Manager

	ownerPK   string
	ownerSeed string
}

func newTestHost(t *testing.T) *testHost {
	d := memdb.New()
	am := account.NewManager(d, ledger.GenesisBaseReserve)
	cm := NewManager(&ManagerContext{Database: d, AM: am})

	pk, seed, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	assert.Nil(t, am.CreateAccount(d, pk, 100000000, ""))

	return &testHost{cm: cm, am: am, ownerPK: pk, ownerSeed: seed}
}

func (h *testHost) deploy(t *testing.T) string {
	contractID, err := h.cm.Deploy(h.ownerPK, CounterName)
	assert.Nil(t, err)
	return contractID
}

func (h *testHost) signedInvocation(t *testing.T, seed string, contractID string, method string, value int64) (*lumpb.ContractInvocation, string) {
	accountID, err := crypto.GetAccountID(seed)
	assert.Nil(t, err)
	ci := &lumpb.ContractInvocation{
		AccountID:  accountID,
		ContractID: contractID,
		Method:     method,
		Value:      value,
	}
	payload, err := lumpb.Encode(ci)
	assert.Nil(t, err)
	signature, err := crypto.Sign(seed, payload)
	assert.Nil(t, err)
	return ci, signature
}

func TestDeployContract(t *testing.T) {
	h := newTestHost(t)

	contractID := h.deploy(t)
	assert.True(t, crypto.IsValidContractKey(contractID))

	c, err := h.cm.GetContract(contractID)
	assert.Nil(t, err)
	assert.Equal(t, h.ownerPK, c.Owner)
	assert.Equal(t, CounterName, c.Name)
	assert.Equal(t, int64(0), c.Count)

	// Unknown program name.
	_, err = h.cm.Deploy(h.ownerPK, "amm")
	assert.NotNil(t, err)

	// Unknown owner account.
	strangerPK, _, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	_, err = h.cm.Deploy(strangerPK, CounterName)
	assert.NotNil(t, err)
}

func TestSimulateContract(t *testing.T) {
	h := newTestHost(t)
	contractID := h.deploy(t)

	// Simulation needs no signature and leaves the state alone.
	result, err := h.cm.Simulate(&lumpb.ContractInvocation{
		AccountID:  h.ownerPK,
		ContractID: contractID,
		Method:     "add",
		Value:      10,
	})
	assert.Nil(t, err)
	assert.Equal(t, int64(10), result)

	c, err := h.cm.GetContract(contractID)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), c.Count)

	_, err = h.cm.Simulate(&lumpb.ContractInvocation{
		AccountID:  h.ownerPK,
		ContractID: contractID,
		Method:     "multiply",
		Value:      10,
	})
	assert.Equal(t, ErrUnknownMethod, err)
}

func TestInvokeContract(t *testing.T) {
	h := newTestHost(t)
	contractID := h.deploy(t)

	ci, signature := h.signedInvocation(t, h.ownerSeed, contractID, "add", 10)
	result, err := h.cm.Invoke(ci, signature)
	assert.Nil(t, err)
	assert.Equal(t, int64(10), result)

	ci, signature = h.signedInvocation(t, h.ownerSeed, contractID, "subtract", 4)
	result, err = h.cm.Invoke(ci, signature)
	assert.Nil(t, err)
	assert.Equal(t, int64(6), result)

	c, err := h.cm.GetContract(contractID)
	assert.Nil(t, err)
	assert.Equal(t, int64(6), c.Count)

	ci, signature = h.signedInvocation(t, h.ownerSeed, contractID, "count", 0)
	result, err = h.cm.Invoke(ci, signature)
	assert.Nil(t, err)
	assert.Equal(t, int64(6), result)
}

func TestInvokeSaturates(t *testing.T) {
	h := newTestHost(t)
	contractID := h.deploy(t)

	// Subtracting below zero floors at zero.
	ci, signature := h.signedInvocation(t, h.ownerSeed, contractID, "subtract", 100)
	result, err := h.cm.Invoke(ci, signature)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), result)

	// Adding beyond the maximum caps at the maximum.
	ci, signature = h.signedInvocation(t, h.ownerSeed, contractID, "add", math.MaxInt64)
	_, err = h.cm.Invoke(ci, signature)
	assert.Nil(t, err)

	ci, signature = h.signedInvocation(t, h.ownerSeed, contractID, "add", 1)
	result, err = h.cm.Invoke(ci, signature)
	assert.Nil(t, err)
	assert.Equal(t, int64(math.MaxInt64), result)
}

func TestInvokeAuthorization(t *testing.T) {
	h := newTestHost(t)
	contractID := h.deploy(t)

	// A stranger with no account cannot invoke.
	_, strangerSeed, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	ci, signature := h.signedInvocation(t, strangerSeed, contractID, "add", 10)
	_, err = h.cm.Invoke(ci, signature)
	assert.NotNil(t, err)

	// A signature by a key the account does not recognize is
	// refused.
	ci, _ = h.signedInvocation(t, h.ownerSeed, contractID, "add", 10)
	_, wrongSig := h.signedInvocation(t, strangerSeed, contractID, "add", 10)
	_, err = h.cm.Invoke(ci, wrongSig)
	assert.Equal(t, ErrUnauthorized, err)

	// An extra signer of the account can invoke once its weight
	// reaches the low threshold.
	delegatePK, delegateSeed, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	acc, err := h.am.GetAccount(h.cm.database, h.ownerPK)
	assert.Nil(t, err)
	assert.Nil(t, h.am.UpdateSigner(acc, &lumpb.Signer{SignerID: delegatePK, Weight: 1}))
	assert.Nil(t, h.am.SaveAccount(h.cm.database, acc))

	ci = &lumpb.ContractInvocation{
		AccountID:  h.ownerPK,
		ContractID: contractID,
		Method:     "add",
		Value:      5,
	}
	payload, err := lumpb.Encode(ci)
	assert.Nil(t, err)
	signature, err = crypto.Sign(delegateSeed, payload)
	assert.Nil(t, err)
	result, err := h.cm.Invoke(ci, signature)
	assert.Nil(t, err)
	assert.Equal(t, int64(5), result)
}

// hostInvoker adapts the host manager to the Invoker interface
// for the counter binding.
type hostInvoker struct {
	cm *Manager
}

func (h *hostInvoker) SimulateContract(ci *lumpb.ContractInvocation) (int64, error) {
	return h.cm.Simulate(ci)
}

func (h *hostInvoker) InvokeContract(ci *lumpb.ContractInvocation, signature string) (int64, error) {
	return h.cm.Invoke(ci, signature)
}

func TestControlledCounter(t *testing.T) {
	h := newTestHost(t)

	contractID, err := h.cm.Deploy(h.ownerPK, ControlledCounterName)
	assert.Nil(t, err)

	userPK, userSeed, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	assert.Nil(t, h.am.CreateAccount(h.cm.database, userPK, 100000000, ""))

	invoker := &hostInvoker{cm: h.cm}
	owner, err := NewControlledCounterClient(invoker, contractID, h.ownerSeed)
	assert.Nil(t, err)
	user, err := NewControlledCounterClient(invoker, contractID, userSeed)
	assert.Nil(t, err)

	count, err := user.Count()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), count)

	// Adding without the counter role is refused.
	_, err = user.Add(1)
	assert.Equal(t, ErrNoRole, err)

	// Only the owner can grant the role.
	assert.Equal(t, ErrNotOwner, user.Grant(userPK))
	assert.Nil(t, owner.Grant(userPK))

	count, err = user.Add(1)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), count)

	count, err = user.Add(2)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), count)

	// Subtracting needs no role, only the invoker's signature.
	count, err = user.Subtract(1)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), count)

	// Pushing the count over the cap resets it to zero and
	// strips the counter role of the invoker.
	count, err = user.Add(100)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), count)
	_, err = user.Add(1)
	assert.Equal(t, ErrNoRole, err)

	// The role can be granted again and revoked by the owner.
	assert.Nil(t, owner.Grant(userPK))
	count, err = user.Add(7)
	assert.Nil(t, err)
	assert.Equal(t, int64(7), count)
	assert.Equal(t, ErrNotOwner, user.Revoke(userPK))
	assert.Nil(t, owner.Revoke(userPK))
	_, err = user.Add(1)
	assert.Equal(t, ErrNoRole, err)
}

func TestCounterClient(t *testing.T) {
	h := newTestHost(t)
	contractID := h.deploy(t)

	cc, err := NewCounterClient(&hostInvoker{cm: h.cm}, contractID, h.ownerSeed)
	assert.Nil(t, err)

	count, err := cc.Count()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), count)

	count, err = cc.Add(42)
	assert.Nil(t, err)
	assert.Equal(t, int64(42), count)

	count, err = cc.Subtract(2)
	assert.Nil(t, err)
	assert.Equal(t, int64(40), count)

	count, err = cc.Count()
	assert.Nil(t, err)
	assert.Equal(t, int64(40), count)
}
