// Copyright 2020 The go-luminet Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/log"
	"github.com/luminet/go-luminet/lumpb"
	"github.com/luminet/go-luminet/tx/op"
)

var (
	ErrInvalidTx          = errors.New("tx is invalid")
	ErrSeqNumMismatch     = errors.New("tx seqnum mismatch")
	ErrTxExpired          = errors.New("tx timebound expired")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrInsufficientWeight = errors.New("insufficient signature weight")
	ErrInsufficientFee    = errors.New("insufficient fee")
)

// ManagerContext represents contextual information the ledger
// manager needs.
type ManagerContext struct {
	Database db.Database
	AM       *account.Manager
	BaseFee  int64
}

func ValidateManagerContext(mc *ManagerContext) error {
	if mc == nil {
		return errors.New("ledger manager context is nil")
	}
	if mc.Database == nil {
		return errors.New("database instance is nil")
	}
	if mc.AM == nil {
		return errors.New("account manager is nil")
	}
	if mc.BaseFee <= 0 {
		return errors.New("base fee is not positive")
	}
	return nil
}

// Manager closes submitted transaction envelopes against the
// current ledger state. It replicates the ledger side semantics:
// the sequence number of the source account is consumed exactly
// once per applied submission whether or not the operations
// succeed, the signature weight is judged against the current
// signer and threshold configuration of the account, and the
// operations apply in list order all-or-nothing.
type Manager struct {
	database db.Database
	bucket   string

	baseFee int64

	am *account.Manager

	// Envelopes are closed one at a time. The rpc server and the
	// node event loop both submit envelopes, and closing is a
	// get-modify-save of the source account.
	closeMutex sync.Mutex

	// number of transactions applied so far
	txCount uint64
}

func NewManager(ctx *ManagerContext) *Manager {
	if err := ValidateManagerContext(ctx); err != nil {
		log.Fatalf("ledger manager context is invalid: %v", err)
	}
	m := &Manager{
		database: ctx.Database,
		bucket:   "LEDGER",
		baseFee:  ctx.BaseFee,
		am:       ctx.AM,
	}
	err := m.database.NewBucket(m.bucket)
	if err != nil {
		log.Fatalf("create ledger bucket failed: %v", err)
	}
	return m
}

// BaseFee returns the base fee of one operation.
func (m *Manager) BaseFee() int64 {
	return m.baseFee
}

// TxCount returns the number of transactions applied.
func (m *Manager) TxCount() uint64 {
	m.closeMutex.Lock()
	defer m.closeMutex.Unlock()
	return m.txCount
}

// CloseTxEnvelope validates and applies the transaction envelope.
func (m *Manager) CloseTxEnvelope(env *lumpb.TxEnvelope) error {
	m.closeMutex.Lock()
	defer m.closeMutex.Unlock()

	if err := m.validateTxEnvelope(env); err != nil {
		return err
	}
	tx := env.Tx

	acc, err := m.am.GetAccount(m.database, tx.AccountID)
	if err != nil {
		return err
	}

	if tx.SeqNum != acc.SeqNum+1 {
		return ErrSeqNumMismatch
	}

	// The sequence number is consumed and the fee is charged
	// now, whatever happens to the rest of the envelope. This
	// prevents a replay of a failed envelope.
	acc.SeqNum = tx.SeqNum
	if err := m.am.SubBalance(acc, tx.Fee); err != nil {
		return fmt.Errorf("charge tx fee failed: %v", err)
	}
	if err := m.am.SaveAccount(m.database, acc); err != nil {
		return fmt.Errorf("save account failed: %v", err)
	}
	m.txCount++

	if tb := tx.TimeBounds; tb != nil {
		now := time.Now().Unix()
		if tb.MaxTime > 0 && now > tb.MaxTime {
			return ErrTxExpired
		}
		if tb.MinTime > 0 && now < tb.MinTime {
			return ErrTxExpired
		}
	}

	// Judge the signature weight against the current signer
	// and threshold configuration of the source account.
	payload, err := lumpb.Encode(tx)
	if err != nil {
		return fmt.Errorf("encode tx failed: %v", err)
	}
	weight, err := SignerWeight(acc, payload, env.Signatures)
	if err != nil {
		return err
	}
	required := RequiredWeight(acc, RequiredLevel(tx))
	if weight == 0 || weight < required {
		return ErrInsufficientWeight
	}

	// Apply the operations in list order, either all of them
	// succeed or none of them is applied.
	dt, err := m.database.Begin()
	if err != nil {
		return fmt.Errorf("begin db tx failed: %v", err)
	}
	for i, o := range tx.OpList {
		top, err := m.buildOp(o, tx.AccountID)
		if err != nil {
			dt.Rollback()
			return fmt.Errorf("op %d is invalid: %v", i, err)
		}
		if err := top.Apply(dt); err != nil {
			dt.Rollback()
			return fmt.Errorf("apply op %d failed: %v", i, err)
		}
	}
	if err := dt.Commit(); err != nil {
		return fmt.Errorf("commit db tx failed: %v", err)
	}

	return nil
}

func (m *Manager) validateTxEnvelope(env *lumpb.TxEnvelope) error {
	if env == nil || env.Tx == nil {
		return ErrInvalidTx
	}
	tx := env.Tx
	if tx.AccountID == "" {
		return ErrInvalidTx
	}
	if len(tx.OpList) == 0 || len(tx.OpList) > MaxOpCount {
		return ErrInvalidTx
	}
	if len(tx.Note) > MaxNoteLength {
		return ErrInvalidTx
	}
	if tx.Fee < m.baseFee*int64(len(tx.OpList)) {
		return ErrInsufficientFee
	}
	return nil
}

// buildOp maps the wire operation to its application logic, the
// source of the operation defaults to the source of the tx.
func (m *Manager) buildOp(o *lumpb.Op, txSource string) (op.Op, error) {
	source := o.AccountID
	if source == "" {
		source = txSource
	}

	switch o.OpType {
	case lumpb.OpType_CREATE_ACCOUNT:
		ca := o.GetCreateAccount()
		if ca == nil {
			return nil, errors.New("create account op is nil")
		}
		return &op.CreateAccount{
			AM:           m.am,
			SrcAccountID: source,
			DstAccountID: ca.AccountID,
			Balance:      ca.Balance,
		}, nil
	case lumpb.OpType_PAYMENT:
		p := o.GetPayment()
		if p == nil {
			return nil, errors.New("payment op is nil")
		}
		return &op.Payment{
			AM:           m.am,
			SrcAccountID: source,
			DstAccountID: p.AccountID,
			Asset:        p.Asset,
			Amount:       p.Amount,
		}, nil
	case lumpb.OpType_TRUST:
		t := o.GetTrust()
		if t == nil {
			return nil, errors.New("trust op is nil")
		}
		return &op.Trust{
			AM:           m.am,
			SrcAccountID: source,
			Asset:        t.Asset,
			Limit:        t.Limit,
		}, nil
	case lumpb.OpType_SET_OPTIONS:
		so := o.GetSetOptions()
		if so == nil {
			return nil, errors.New("set options op is nil")
		}
		return &op.SetOptions{
			AM:              m.am,
			SrcAccountID:    source,
			Signer:          so.Signer,
			Thresholds:      so.Thresholds,
			MasterWeight:    so.MasterWeight,
			SetMasterWeight: so.SetMasterWeight,
		}, nil
	case lumpb.OpType_ALLOW_TRUST:
		at := o.GetAllowTrust()
		if at == nil {
			return nil, errors.New("allow trust op is nil")
		}
		return &op.AllowTrust{
			AM:           m.am,
			SrcAccountID: source,
			TrustorID:    at.AccountID,
			Asset:        at.Asset,
			Authorize:    at.Authorize,
		}, nil
	case lumpb.OpType_CLAWBACK:
		c := o.GetClawback()
		if c == nil {
			return nil, errors.New("clawback op is nil")
		}
		return &op.Clawback{
			AM:            m.am,
			SrcAccountID:  source,
			FromAccountID: c.AccountID,
			Asset:         c.Asset,
			Amount:        c.Amount,
		}, nil
	case lumpb.OpType_BEGIN_SPONSOR:
		bs := o.GetBeginSponsor()
		if bs == nil {
			return nil, errors.New("begin sponsor op is nil")
		}
		return &op.BeginSponsor{
			AM:           m.am,
			SrcAccountID: source,
			DstAccountID: bs.AccountID,
		}, nil
	case lumpb.OpType_END_SPONSOR:
		if o.GetEndSponsor() == nil {
			return nil, errors.New("end sponsor op is nil")
		}
		return &op.EndSponsor{
			AM:           m.am,
			SrcAccountID: source,
		}, nil
	}
	return nil, fmt.Errorf("unknown op type: %v", o.OpType)
}
