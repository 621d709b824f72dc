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

package types

// Signer represents an extra signer of an account.
type Signer struct {
	// Public key of the signer.
	SignerID string
	// Weight of the signer in threshold resolution.
	Weight uint32
}

// Thresholds represents the three operation threshold values
// of an account.
type Thresholds struct {
	Low    uint32
	Medium uint32
	High   uint32
}

// Account represents a Luminet account in the Luminet network.
type Account struct {
	// Public key of this account.
	AccountID string
	// The account balance in LUM.
	Balance int64
	// Latest transaction sequence number.
	SeqNum uint64
	// Number of entries belong to the account.
	EntryCount int32
	// Weight of the master key in threshold resolution.
	MasterWeight uint32
	// Operation thresholds of the account.
	Thresholds Thresholds
	// Extra signers of the account.
	Signers []Signer
	// Account covering the reserve of this account, empty
	// when the account pays its own reserve.
	Sponsor string
}
