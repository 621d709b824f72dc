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
	"github.com/deckarep/golang-set"

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/lumpb"
)

// Level is the threshold level an operation requires
// from the signers of its source account.
type Level uint8

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	}
	return ""
}

// OpLevel maps an operation to its required threshold level.
// Authorizing a trustline is a low risk operation, changing
// the signers or thresholds of an account is a high risk one
// and everything which moves value sits in between.
func OpLevel(op *lumpb.Op) Level {
	switch op.OpType {
	case lumpb.OpType_ALLOW_TRUST:
		return LevelLow
	case lumpb.OpType_SET_OPTIONS:
		return LevelHigh
	default:
		return LevelMedium
	}
}

// RequiredLevel returns the threshold level of a transaction
// which is the maximum level across its operations.
func RequiredLevel(tx *lumpb.Tx) Level {
	level := LevelLow
	for _, op := range tx.OpList {
		if l := OpLevel(op); l > level {
			level = l
		}
	}
	return level
}

// RequiredWeight resolves the threshold level to the concrete
// weight the account demands for it.
func RequiredWeight(acc *lumpb.Account, level Level) uint32 {
	t := acc.Thresholds
	if t == nil {
		return 0
	}
	switch level {
	case LevelLow:
		return t.Low
	case LevelMedium:
		return t.Medium
	default:
		return t.High
	}
}

// SignerWeight sums the weights of all the distinct recognized
// signers which produced a valid signature over the payload.
// The master key of the account contributes its master weight,
// signatures of unrecognized signers contribute zero weight and
// a signature which fails to verify invalidates the whole set.
func SignerWeight(acc *lumpb.Account, payload []byte, signatures []*lumpb.Signature) (uint32, error) {
	seen := mapset.NewSet()

	var weight uint32
	for _, sig := range signatures {
		if !crypto.Verify(sig.SignerID, sig.Signature, payload) {
			return 0, ErrInvalidSignature
		}
		if seen.Contains(sig.SignerID) {
			continue
		}
		seen.Add(sig.SignerID)

		if sig.SignerID == acc.AccountID {
			weight += acc.MasterWeight
			continue
		}
		for _, s := range acc.Signers {
			if s.SignerID == sig.SignerID {
				weight += s.Weight
				break
			}
		}
	}

	return weight, nil
}
