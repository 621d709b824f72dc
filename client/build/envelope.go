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

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/lumpb"
)

var (
	ErrNilEnvelope = errors.New("envelope is nil")
)

// EnvelopeSigner signs envelope payloads on behalf of one account. It
// abstracts away the custody of the seed so that a remote or
// hardware-backed signer can be plugged in.
type EnvelopeSigner interface {
	// AccountID returns the public key of the signing account.
	AccountID() string
	// Sign signs the supplied data.
	Sign(data []byte) (string, error)
}

// SeedSigner is an EnvelopeSigner holding a local secret seed.
type SeedSigner struct {
	Seed string
}

func (s *SeedSigner) AccountID() string {
	accountID, err := crypto.GetAccountID(s.Seed)
	if err != nil {
		return ""
	}
	return accountID
}

func (s *SeedSigner) Sign(data []byte) (string, error) {
	return crypto.Sign(s.Seed, data)
}

// Envelope wraps a built tx and collects signatures over its
// encoded payload. The signatures live outside of the payload
// so signing and serialization never change the payload bytes
// and signatures can be added in any order.
type Envelope struct {
	TxEnv *lumpb.TxEnvelope
}

// NewEnvelope creates an envelope around the tx.
func NewEnvelope(tx *lumpb.Tx) *Envelope {
	return &Envelope{
		TxEnv: &lumpb.TxEnvelope{Tx: tx},
	}
}

// UnmarshalEnvelope reconstructs an envelope from its encoded
// form. Signatures collected before serialization survive the
// round trip.
func UnmarshalEnvelope(b []byte) (*Envelope, error) {
	txenv, err := lumpb.DecodeTxEnvelope(b)
	if err != nil {
		return nil, fmt.Errorf("decode tx envelope failed: %v", err)
	}
	if txenv.Tx == nil {
		return nil, errors.New("envelope without tx")
	}
	return &Envelope{TxEnv: txenv}, nil
}

// Marshal encodes the envelope for submission or hand-off to
// another signer.
func (e *Envelope) Marshal() ([]byte, error) {
	if e == nil || e.TxEnv == nil {
		return nil, ErrNilEnvelope
	}
	return lumpb.Encode(e.TxEnv)
}

// Payload returns the bytes which signatures are computed over.
func (e *Envelope) Payload() ([]byte, error) {
	if e == nil || e.TxEnv == nil {
		return nil, ErrNilEnvelope
	}
	return lumpb.Encode(e.TxEnv.Tx)
}

// Sign signs the envelope with the supplied secret seed and
// appends the signature.
func (e *Envelope) Sign(seed string) error {
	seedKey, err := crypto.DecodeKey(seed)
	if err != nil {
		return fmt.Errorf("decode seed key failed: %v", err)
	}
	if seedKey.Code != crypto.KeyTypeSeed {
		return errors.New("incorrect seed key type")
	}
	return e.SignWith(&SeedSigner{Seed: seed})
}

// SignWith signs the envelope with the supplied signer and
// appends the signature.
func (e *Envelope) SignWith(signer EnvelopeSigner) error {
	payload, err := e.Payload()
	if err != nil {
		return err
	}

	signerID := signer.AccountID()
	if !crypto.IsValidAccountKey(signerID) {
		return errors.New("invalid signer account key")
	}

	signature, err := signer.Sign(payload)
	if err != nil {
		return fmt.Errorf("sign the tx failed: %v", err)
	}

	for _, s := range e.TxEnv.Signatures {
		if s.SignerID == signerID {
			// Re-signing by the same signer replaces the
			// previous signature.
			s.Signature = signature
			return nil
		}
	}

	e.TxEnv.Signatures = append(e.TxEnv.Signatures, &lumpb.Signature{
		SignerID:  signerID,
		Signature: signature,
	})

	return nil
}

// TxKey returns the key of the wrapped tx.
func (e *Envelope) TxKey() (string, error) {
	if e == nil || e.TxEnv == nil {
		return "", ErrNilEnvelope
	}
	return lumpb.GetTxKey(e.TxEnv.Tx)
}
