package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/db/memdb"
	"github.com/luminet/go-luminet/lumpb"
)

type testKeypair struct {
	pk   string
	seed string
}

func newKeypair(t *testing.T) testKeypair {
	pk, seed, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	return testKeypair{pk: pk, seed: seed}
}

// multisigLedger builds a ledger with the scenario account of
// the threshold tests: signers {master:1, A:1, B:2} and
// thresholds {low:1, medium:2, high:3}.
type multisigLedger struct {
	lm *Manager
	am *account.Manager
	d  db.Database

	master testKeypair
	a      testKeypair
	b      testKeypair
	dst    testKeypair
}

func newMultisigLedger(t *testing.T) *multisigLedger {
	d := memdb.New()
	am := account.NewManager(d, GenesisBaseReserve)
	lm := NewManager(&ManagerContext{
		Database: d,
		AM:       am,
		BaseFee:  GenesisBaseFee,
	})

	s := &multisigLedger{
		lm:     lm,
		am:     am,
		d:      d,
		master: newKeypair(t),
		a:      newKeypair(t),
		b:      newKeypair(t),
		dst:    newKeypair(t),
	}

	err := am.CreateAccount(d, s.master.pk, 100000000, "")
	assert.Nil(t, err)
	err = am.CreateAccount(d, s.dst.pk, 100000000, "")
	assert.Nil(t, err)

	acc, err := am.GetAccount(d, s.master.pk)
	assert.Nil(t, err)
	assert.Nil(t, am.UpdateSigner(acc, &lumpb.Signer{SignerID: s.a.pk, Weight: 1}))
	assert.Nil(t, am.UpdateSigner(acc, &lumpb.Signer{SignerID: s.b.pk, Weight: 2}))
	assert.Nil(t, am.SetThresholds(acc, &lumpb.Thresholds{Low: 1, Medium: 2, High: 3}))
	assert.Nil(t, am.SaveAccount(d, acc))

	return s
}

func (s *multisigLedger) paymentTx(t *testing.T, seqNum uint64) *lumpb.Tx {
	return &lumpb.Tx{
		AccountID: s.master.pk,
		Fee:       GenesisBaseFee,
		SeqNum:    seqNum,
		OpList: []*lumpb.Op{
			{
				OpType: lumpb.OpType_PAYMENT,
				Op: &lumpb.Op_Payment{
					Payment: &lumpb.PaymentOp{
						AccountID: s.dst.pk,
						Asset:     &lumpb.Asset{AssetType: lumpb.AssetType_NATIVE},
						Amount:    1000,
					},
				},
			},
		},
	}
}

func signedEnvelope(t *testing.T, tx *lumpb.Tx, seeds ...string) *lumpb.TxEnvelope {
	payload, err := lumpb.Encode(tx)
	assert.Nil(t, err)

	env := &lumpb.TxEnvelope{Tx: tx}
	for _, seed := range seeds {
		signature, err := crypto.Sign(seed, payload)
		assert.Nil(t, err)
		signerID, err := crypto.GetAccountID(seed)
		assert.Nil(t, err)
		env.Signatures = append(env.Signatures, &lumpb.Signature{
			SignerID:  signerID,
			Signature: signature,
		})
	}
	return env
}

func (s *multisigLedger) seqNum(t *testing.T) uint64 {
	acc, err := s.am.GetAccount(s.d, s.master.pk)
	assert.Nil(t, err)
	return acc.SeqNum
}

func TestPaymentThreshold(t *testing.T) {
	s := newMultisigLedger(t)

	// A payment requires the medium threshold of two. Signer A
	// alone has weight one and fails.
	tx := s.paymentTx(t, 1)
	err := s.lm.CloseTxEnvelope(signedEnvelope(t, tx, s.a.seed))
	assert.Equal(t, ErrInsufficientWeight, err)

	// The sequence number was consumed by the failed attempt.
	assert.Equal(t, uint64(1), s.seqNum(t))

	// Signer B alone has weight two and succeeds.
	tx = s.paymentTx(t, 2)
	err = s.lm.CloseTxEnvelope(signedEnvelope(t, tx, s.b.seed))
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), s.seqNum(t))

	dst, err := s.am.GetAccount(s.d, s.dst.pk)
	assert.Nil(t, err)
	assert.Equal(t, int64(100001000), dst.Balance)
}

func TestSetOptionsThreshold(t *testing.T) {
	s := newMultisigLedger(t)

	removeSigner := func(seqNum uint64) *lumpb.Tx {
		return &lumpb.Tx{
			AccountID: s.master.pk,
			Fee:       GenesisBaseFee,
			SeqNum:    seqNum,
			OpList: []*lumpb.Op{
				{
					OpType: lumpb.OpType_SET_OPTIONS,
					Op: &lumpb.Op_SetOptions{
						SetOptions: &lumpb.SetOptionsOp{
							Signer: &lumpb.Signer{SignerID: s.a.pk, Weight: 0},
						},
					},
				},
			},
		}
	}

	// Removing a signer requires the high threshold of three.
	err := s.lm.CloseTxEnvelope(signedEnvelope(t, removeSigner(1), s.a.seed))
	assert.Equal(t, ErrInsufficientWeight, err)

	err = s.lm.CloseTxEnvelope(signedEnvelope(t, removeSigner(2), s.b.seed))
	assert.Equal(t, ErrInsufficientWeight, err)

	// master(1) + B(2) meets the high threshold.
	err = s.lm.CloseTxEnvelope(signedEnvelope(t, removeSigner(3), s.master.seed, s.b.seed))
	assert.Nil(t, err)

	acc, err := s.am.GetAccount(s.d, s.master.pk)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(acc.Signers))
	assert.Equal(t, s.b.pk, acc.Signers[0].SignerID)
}

func TestAllowTrustThreshold(t *testing.T) {
	s := newMultisigLedger(t)

	asset := &lumpb.Asset{AssetType: lumpb.AssetType_CUSTOM, AssetName: "ABC", Issuer: s.master.pk}
	err := s.am.CreateTrust(s.d, s.dst.pk, asset, 10000)
	assert.Nil(t, err)

	// Authorizing a trustline requires the low threshold of one,
	// any single recognized signer works.
	tx := &lumpb.Tx{
		AccountID: s.master.pk,
		Fee:       GenesisBaseFee,
		SeqNum:    1,
		OpList: []*lumpb.Op{
			{
				OpType: lumpb.OpType_ALLOW_TRUST,
				Op: &lumpb.Op_AllowTrust{
					AllowTrust: &lumpb.AllowTrustOp{
						AccountID: s.dst.pk,
						Asset:     asset,
						Authorize: false,
					},
				},
			},
		},
	}
	err = s.lm.CloseTxEnvelope(signedEnvelope(t, tx, s.a.seed))
	assert.Nil(t, err)

	trust, err := s.am.GetTrust(s.d, s.dst.pk, asset)
	assert.Nil(t, err)
	assert.Equal(t, int32(0), trust.Authorized)
}

func TestSequenceNumber(t *testing.T) {
	s := newMultisigLedger(t)

	// A tx with a wrong sequence number is rejected without
	// consuming anything.
	tx := s.paymentTx(t, 5)
	err := s.lm.CloseTxEnvelope(signedEnvelope(t, tx, s.b.seed))
	assert.Equal(t, ErrSeqNumMismatch, err)
	assert.Equal(t, uint64(0), s.seqNum(t))

	// A failed attempt consumes the sequence number, replaying
	// the same envelope is then rejected.
	tx = s.paymentTx(t, 1)
	env := signedEnvelope(t, tx, s.a.seed)
	err = s.lm.CloseTxEnvelope(env)
	assert.Equal(t, ErrInsufficientWeight, err)
	assert.Equal(t, uint64(1), s.seqNum(t))

	err = s.lm.CloseTxEnvelope(env)
	assert.Equal(t, ErrSeqNumMismatch, err)
	assert.Equal(t, uint64(1), s.seqNum(t))
}

func TestSigningIsCommutative(t *testing.T) {
	s := newMultisigLedger(t)

	// The signature order does not affect the validity.
	tx := s.paymentTx(t, 1)
	err := s.lm.CloseTxEnvelope(signedEnvelope(t, tx, s.a.seed, s.b.seed))
	assert.Nil(t, err)

	tx = s.paymentTx(t, 2)
	err = s.lm.CloseTxEnvelope(signedEnvelope(t, tx, s.b.seed, s.a.seed))
	assert.Nil(t, err)
}

func TestDuplicateSigner(t *testing.T) {
	s := newMultisigLedger(t)

	// A duplicate signature contributes its weight only once.
	tx := s.paymentTx(t, 1)
	err := s.lm.CloseTxEnvelope(signedEnvelope(t, tx, s.a.seed, s.a.seed))
	assert.Equal(t, ErrInsufficientWeight, err)
}

func TestUnrecognizedSigner(t *testing.T) {
	s := newMultisigLedger(t)

	// A valid signature of an unrecognized signer contributes
	// zero weight.
	stranger := newKeypair(t)
	tx := s.paymentTx(t, 1)
	err := s.lm.CloseTxEnvelope(signedEnvelope(t, tx, stranger.seed))
	assert.Equal(t, ErrInsufficientWeight, err)

	// A signature which does not verify invalidates the set.
	tx = s.paymentTx(t, 2)
	env := signedEnvelope(t, tx, s.b.seed)
	env.Signatures[0].Signature = "3x" + env.Signatures[0].Signature[2:]
	err = s.lm.CloseTxEnvelope(env)
	assert.Equal(t, ErrInvalidSignature, err)
}

func TestTimeBounds(t *testing.T) {
	s := newMultisigLedger(t)

	// An expired envelope is refused and the sequence number
	// is still consumed.
	tx := s.paymentTx(t, 1)
	tx.TimeBounds = &lumpb.TimeBounds{MaxTime: time.Now().Unix() - 10}
	err := s.lm.CloseTxEnvelope(signedEnvelope(t, tx, s.b.seed))
	assert.Equal(t, ErrTxExpired, err)
	assert.Equal(t, uint64(1), s.seqNum(t))

	// An envelope within its bounds applies normally.
	tx = s.paymentTx(t, 2)
	tx.TimeBounds = &lumpb.TimeBounds{MaxTime: time.Now().Unix() + 300}
	err = s.lm.CloseTxEnvelope(signedEnvelope(t, tx, s.b.seed))
	assert.Nil(t, err)
}

func TestAllOrNothing(t *testing.T) {
	s := newMultisigLedger(t)

	// The second op overdraws the account, the first op should
	// not be applied either.
	tx := &lumpb.Tx{
		AccountID: s.master.pk,
		Fee:       2 * GenesisBaseFee,
		SeqNum:    1,
		OpList: []*lumpb.Op{
			{
				OpType: lumpb.OpType_PAYMENT,
				Op: &lumpb.Op_Payment{
					Payment: &lumpb.PaymentOp{
						AccountID: s.dst.pk,
						Asset:     &lumpb.Asset{AssetType: lumpb.AssetType_NATIVE},
						Amount:    1000,
					},
				},
			},
			{
				OpType: lumpb.OpType_PAYMENT,
				Op: &lumpb.Op_Payment{
					Payment: &lumpb.PaymentOp{
						AccountID: s.dst.pk,
						Asset:     &lumpb.Asset{AssetType: lumpb.AssetType_NATIVE},
						Amount:    900000000,
					},
				},
			},
		},
	}
	err := s.lm.CloseTxEnvelope(signedEnvelope(t, tx, s.b.seed))
	assert.NotNil(t, err)

	// The sequence number and the fee are still consumed.
	acc, err := s.am.GetAccount(s.d, s.master.pk)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), acc.SeqNum)
	assert.Equal(t, int64(100000000-2*GenesisBaseFee), acc.Balance)

	dst, err := s.am.GetAccount(s.d, s.dst.pk)
	assert.Nil(t, err)
	assert.Equal(t, int64(100000000), dst.Balance)
}

func TestConcurrentEnvelopes(t *testing.T) {
	s := newMultisigLedger(t)

	// Two distinct envelopes bearing the same sequence number
	// submitted from two goroutines. Exactly one of them may
	// consume the sequence number per round.
	for i := 0; i < 100; i++ {
		seqNum := s.seqNum(t) + 1

		first := s.paymentTx(t, seqNum)
		second := s.paymentTx(t, seqNum)
		second.OpList[0].GetPayment().Amount = 2000

		errs := make(chan error, 2)
		for _, tx := range []*lumpb.Tx{first, second} {
			env := signedEnvelope(t, tx, s.b.seed)
			go func() {
				errs <- s.lm.CloseTxEnvelope(env)
			}()
		}

		applied := 0
		for j := 0; j < 2; j++ {
			err := <-errs
			if err == nil {
				applied++
			} else {
				assert.Equal(t, ErrSeqNumMismatch, err)
			}
		}
		assert.Equal(t, 1, applied)
		assert.Equal(t, seqNum, s.seqNum(t))
	}
}

func TestEnvelopeValidation(t *testing.T) {
	s := newMultisigLedger(t)

	// Empty op list.
	tx := &lumpb.Tx{AccountID: s.master.pk, Fee: GenesisBaseFee, SeqNum: 1}
	err := s.lm.CloseTxEnvelope(signedEnvelope(t, tx, s.b.seed))
	assert.Equal(t, ErrInvalidTx, err)

	// Insufficient fee.
	tx = s.paymentTx(t, 1)
	tx.Fee = GenesisBaseFee - 1
	err = s.lm.CloseTxEnvelope(signedEnvelope(t, tx, s.b.seed))
	assert.Equal(t, ErrInsufficientFee, err)
}
