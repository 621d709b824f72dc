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

// Message types mirroring account.proto, marshaled through
// the reflection based wire codec of github.com/golang/protobuf.

package lumpb

import (
	proto "github.com/golang/protobuf/proto"
)

type Account struct {
	AccountID string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	// Balance of the native asset.
	Balance int64 `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	// Sequence number of the latest applied transaction.
	SeqNum uint64 `protobuf:"varint,3,opt,name=seq_num,json=seqNum,proto3" json:"seq_num,omitempty"`
	// Number of entries (trustlines etc.) owned by the account.
	EntryCount int32 `protobuf:"varint,4,opt,name=entry_count,json=entryCount,proto3" json:"entry_count,omitempty"`
	// Weight of the master key, implicit one unless changed
	// by a SetOptionsOp.
	MasterWeight uint32      `protobuf:"varint,5,opt,name=master_weight,json=masterWeight,proto3" json:"master_weight,omitempty"`
	Thresholds   *Thresholds `protobuf:"bytes,6,opt,name=thresholds,proto3" json:"thresholds,omitempty"`
	// Additional signers of the account.
	Signers []*Signer `protobuf:"bytes,7,rep,name=signers,proto3" json:"signers,omitempty"`
	// Account which sponsors the base reserves of this
	// account, empty when not sponsored.
	Sponsor string `protobuf:"bytes,8,opt,name=sponsor,proto3" json:"sponsor,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

func (m *Account) GetAccountID() string {
	if m != nil {
		return m.AccountID
	}
	return ""
}

func (m *Account) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

func (m *Account) GetSeqNum() uint64 {
	if m != nil {
		return m.SeqNum
	}
	return 0
}

func (m *Account) GetEntryCount() int32 {
	if m != nil {
		return m.EntryCount
	}
	return 0
}

func (m *Account) GetMasterWeight() uint32 {
	if m != nil {
		return m.MasterWeight
	}
	return 0
}

func (m *Account) GetThresholds() *Thresholds {
	if m != nil {
		return m.Thresholds
	}
	return nil
}

func (m *Account) GetSigners() []*Signer {
	if m != nil {
		return m.Signers
	}
	return nil
}

func (m *Account) GetSponsor() string {
	if m != nil {
		return m.Sponsor
	}
	return ""
}

// Trustline of an account to an issued asset.
type Trust struct {
	AccountID  string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Asset      *Asset `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Balance    int64  `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
	Limit      int64  `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	Authorized int32  `protobuf:"varint,5,opt,name=authorized,proto3" json:"authorized,omitempty"`
}

func (m *Trust) Reset()         { *m = Trust{} }
func (m *Trust) String() string { return proto.CompactTextString(m) }
func (*Trust) ProtoMessage()    {}

func (m *Trust) GetAccountID() string {
	if m != nil {
		return m.AccountID
	}
	return ""
}

func (m *Trust) GetAsset() *Asset {
	if m != nil {
		return m.Asset
	}
	return nil
}

func (m *Trust) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

func (m *Trust) GetLimit() int64 {
	if m != nil {
		return m.Limit
	}
	return 0
}

func (m *Trust) GetAuthorized() int32 {
	if m != nil {
		return m.Authorized
	}
	return 0
}

func init() {
	proto.RegisterType((*Account)(nil), "lumpb.Account")
	proto.RegisterType((*Trust)(nil), "lumpb.Trust")
}
