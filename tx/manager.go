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

package tx

import (
	"errors"
	"fmt"

	"github.com/deckarep/golang-set"
	lru "github.com/hashicorp/golang-lru"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/ledger"
	"github.com/luminet/go-luminet/log"
	"github.com/luminet/go-luminet/lumpb"
	"github.com/luminet/go-luminet/rpc/rpcpb"
)

var (
	ErrAccountNotExist = errors.New("source account not exist")
	ErrInsufficientFee = errors.New("insufficient fee")
	ErrStaleSeqNum     = errors.New("stale sequence number")
	ErrInsufficientBal = errors.New("insufficient balance for fee")
	ErrDuplicateTx     = errors.New("duplicate tx")
)

// ManagerContext represents contextual information Manager needs.
type ManagerContext struct {
	Database    db.Database
	AM          *account.Manager
	LM          *ledger.Manager
	BaseFee     int64
	BaseReserve int64
}

func ValidateManagerContext(mc *ManagerContext) error {
	if mc == nil {
		return errors.New("manager context is nil")
	}
	if mc.Database == nil {
		return errors.New("database instance is nil")
	}
	if mc.AM == nil {
		return errors.New("account manager is nil")
	}
	if mc.LM == nil {
		return errors.New("ledger manager is nil")
	}
	if mc.BaseFee <= 0 {
		return errors.New("base fee is non-positive")
	}
	if mc.BaseReserve <= 0 {
		return errors.New("base reserve is non-positive")
	}
	return nil
}

// Manager is the admission gateway for tx envelopes. It runs fast
// pre-checks on submission, records the tx status and hands admitted
// envelopes to the ledger manager for application.
type Manager struct {
	database db.Database
	bucket   string

	baseFee     int64
	baseReserve int64

	am *account.Manager
	lm *ledger.Manager

	// Tx keys currently being processed.
	pending mapset.Set

	statusCache *lru.Cache
}

// NewManager creates an instance of Manager with ManagerContext.
func NewManager(ctx *ManagerContext) *Manager {
	if err := ValidateManagerContext(ctx); err != nil {
		log.Fatalf("tx manager context is invalid: %v", err)
	}
	m := &Manager{
		database:    ctx.Database,
		bucket:      "TX",
		baseFee:     ctx.BaseFee,
		baseReserve: ctx.BaseReserve,
		am:          ctx.AM,
		lm:          ctx.LM,
		pending:     mapset.NewSet(),
	}
	err := m.database.NewBucket(m.bucket)
	if err != nil {
		log.Fatalf("create tx bucket failed: %v", err)
	}
	cache, err := lru.New(10000)
	if err != nil {
		log.Fatalf("create tx status cache failed: %v", err)
	}
	m.statusCache = cache
	return m
}

// SubmitTx runs admission pre-checks on the envelope and hands it to
// the ledger manager. The resulting tx status is recorded under txKey
// either way.
func (m *Manager) SubmitTx(txKey string, txenv *lumpb.TxEnvelope) error {
	if !m.pending.Add(txKey) {
		return ErrDuplicateTx
	}
	defer m.pending.Remove(txKey)

	// A tx which was already confirmed should keep its status.
	if s, err := m.GetTxStatus(txKey); err == nil && s.StatusCode == rpcpb.TxStatusCode_CONFIRMED {
		return ErrDuplicateTx
	}

	if err := m.precheck(txenv.Tx); err != nil {
		status := &rpcpb.TxStatus{
			StatusCode:   rpcpb.TxStatusCode_REJECTED,
			ErrorMessage: err.Error(),
		}
		if uerr := m.UpdateTxStatus(txKey, status); uerr != nil {
			log.Errorf("update status of tx %s failed: %v", txKey, uerr)
		}
		return err
	}

	status := &rpcpb.TxStatus{StatusCode: rpcpb.TxStatusCode_ACCEPTED}
	if err := m.UpdateTxStatus(txKey, status); err != nil {
		return fmt.Errorf("update status of tx %s failed: %v", txKey, err)
	}

	err := m.lm.CloseTxEnvelope(txenv)
	if err != nil {
		status = &rpcpb.TxStatus{
			StatusCode:   rpcpb.TxStatusCode_FAILED,
			ErrorMessage: err.Error(),
		}
	} else {
		status = &rpcpb.TxStatus{StatusCode: rpcpb.TxStatusCode_CONFIRMED}
	}
	if uerr := m.UpdateTxStatus(txKey, status); uerr != nil {
		log.Errorf("update status of tx %s failed: %v", txKey, uerr)
	}

	return err
}

// Check the source account and fee before the envelope reaches the
// ledger manager. A rejected envelope never consumes a sequence number.
func (m *Manager) precheck(tx *lumpb.Tx) error {
	if tx == nil || len(tx.OpList) == 0 {
		return errors.New("tx is empty")
	}

	acc, err := m.am.GetAccount(m.database, tx.AccountID)
	if err != nil {
		return fmt.Errorf("get account %s failed: %v", tx.AccountID, err)
	}
	if acc == nil {
		return ErrAccountNotExist
	}

	if tx.Fee < m.baseFee*int64(len(tx.OpList)) {
		return ErrInsufficientFee
	}

	if tx.SeqNum <= acc.SeqNum {
		return ErrStaleSeqNum
	}

	// The account should be able to pay the fee without
	// touching its reserve.
	balance := acc.Balance - m.baseReserve*int64(acc.EntryCount)
	if balance < tx.Fee {
		return ErrInsufficientBal
	}

	return nil
}

// GetTxStatus returns the current status of the tx.
func (m *Manager) GetTxStatus(txKey string) (*rpcpb.TxStatus, error) {
	if s, ok := m.statusCache.Get(txKey); ok {
		return s.(*rpcpb.TxStatus), nil
	}

	b, err := m.database.Get(m.bucket, []byte(txKey))
	if err != nil {
		return nil, fmt.Errorf("get status of tx %s failed: %v", txKey, err)
	}
	if b == nil {
		return &rpcpb.TxStatus{StatusCode: rpcpb.TxStatusCode_NOTEXIST}, nil
	}

	status, err := rpcpb.DecodeTxStatus(b)
	if err != nil {
		return nil, fmt.Errorf("decode status of tx %s failed: %v", txKey, err)
	}

	return status, nil
}

// UpdateTxStatus updates the status of the tx.
func (m *Manager) UpdateTxStatus(txKey string, status *rpcpb.TxStatus) error {
	b, err := lumpb.Encode(status)
	if err != nil {
		return fmt.Errorf("encode tx status failed: %v", err)
	}
	err = m.database.Put(m.bucket, []byte(txKey), b)
	if err != nil {
		return fmt.Errorf("save tx status failed: %v", err)
	}

	m.statusCache.Add(txKey, status)

	return nil
}
