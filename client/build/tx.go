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

// Package build assembles tx envelopes with composable mutators
// and manages their signatures.
package build

import (
	"errors"
	"fmt"

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/ledger"
	"github.com/luminet/go-luminet/lumpb"
)

var BaseFee = ledger.GenesisBaseFee

// Tx serves as the main object for building a transaction.
type Tx struct {
	Tx *lumpb.Tx
}

func NewTx() *Tx {
	return &Tx{Tx: &lumpb.Tx{}}
}

// Add adds one or more mutators to the underlying transaction
// builder and if any of the mutations fails the method fails.
// Once all mutators have run the total fee is computed and the
// tx is validated.
func (t *Tx) Add(ms ...TxMutator) error {
	var err error

	for _, m := range ms {
		err = m.Mutate(t.Tx)
		if err != nil {
			return err
		}
	}

	// Add a fee mutator to compute the total fee. An explicit
	// Fee mutator supplied above would be overridden here so
	// callers can only raise the base fee through BaseFee.
	fm := Fee{BaseFee: BaseFee}
	err = fm.Mutate(t.Tx)
	if err != nil {
		return err
	}

	if err := t.validate(); err != nil {
		return fmt.Errorf("tx is invalid: %v", err)
	}

	return nil
}

func (t *Tx) validate() error {
	if t.Tx.AccountID == "" {
		return errors.New("empty account id")
	}
	if len(t.Tx.OpList) == 0 {
		return errors.New("empty op list")
	}
	if len(t.Tx.OpList) > ledger.MaxOpCount {
		return errors.New("too many ops")
	}
	return nil
}

// Envelope wraps the built tx into an envelope which can
// collect signatures.
func (t *Tx) Envelope() (*Envelope, error) {
	if t.Tx == nil {
		return nil, ErrNilTx
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("tx is invalid: %v", err)
	}
	return NewEnvelope(t.Tx), nil
}

// Sign the transaction data with the supplied secret seed.
func (t *Tx) Sign(seed string) ([]byte, string, error) {
	if t.Tx == nil {
		return nil, "", ErrNilTx
	}

	seedKey, err := crypto.DecodeKey(seed)
	if err != nil {
		return nil, "", fmt.Errorf("decode seed key failed: %v", err)
	}
	if seedKey.Code != crypto.KeyTypeSeed {
		return nil, "", errors.New("incorrect seed key type")
	}

	payload, err := lumpb.Encode(t.Tx)
	if err != nil {
		return nil, "", fmt.Errorf("encode tx failed: %v", err)
	}
	signature, err := crypto.Sign(seed, payload)
	if err != nil {
		return nil, "", fmt.Errorf("sign the tx failed: %v", err)
	}

	return payload, signature, nil
}

// Get the tx key.
func (t *Tx) GetTxKey() (string, error) {
	if t.Tx == nil {
		return "", ErrNilTx
	}
	return lumpb.GetTxKey(t.Tx)
}
