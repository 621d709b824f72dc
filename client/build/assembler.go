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

package build

import (
	"errors"
	"fmt"

	"github.com/luminet/go-luminet/lumpb"
)

var (
	ErrStaleSeqNum = errors.New("account sequence number has moved")
)

// AccountLoader fetches the current state of an account. The
// node rpc client implements it, tests can plug in a local
// account manager.
type AccountLoader interface {
	LoadAccount(accountID string) (*lumpb.Account, error)
}

// Assembler builds tx envelopes against the live account state
// obtained through an AccountLoader.
type Assembler struct {
	loader AccountLoader
}

func NewAssembler(loader AccountLoader) *Assembler {
	return &Assembler{loader: loader}
}

// Assemble builds an envelope for the account using the next
// sequence number of its current state.
func (a *Assembler) Assemble(accountID string, ms ...TxMutator) (*Envelope, error) {
	acc, err := a.loader.LoadAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("load account %s failed: %v", accountID, err)
	}
	if acc == nil {
		return nil, fmt.Errorf("account %s not exist", accountID)
	}
	return a.assemble(accountID, acc.SeqNum+1, ms)
}

// AssembleAt builds an envelope with a sequence number the
// caller snapshotted earlier. If the account has consumed the
// sequence number in the meantime the method fails with
// ErrStaleSeqNum instead of building an envelope doomed to be
// rejected.
func (a *Assembler) AssembleAt(accountID string, seqNum uint64, ms ...TxMutator) (*Envelope, error) {
	acc, err := a.loader.LoadAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("load account %s failed: %v", accountID, err)
	}
	if acc == nil {
		return nil, fmt.Errorf("account %s not exist", accountID)
	}
	if seqNum != acc.SeqNum+1 {
		return nil, ErrStaleSeqNum
	}
	return a.assemble(accountID, seqNum, ms)
}

func (a *Assembler) assemble(accountID string, seqNum uint64, ms []TxMutator) (*Envelope, error) {
	t := NewTx()

	mutators := []TxMutator{
		&AccountID{AccountID: accountID},
		&SeqNum{SeqNum: seqNum},
	}
	mutators = append(mutators, ms...)

	if err := t.Add(mutators...); err != nil {
		return nil, fmt.Errorf("build tx failed: %v", err)
	}

	return t.Envelope()
}
