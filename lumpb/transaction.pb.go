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

// Message types mirroring transaction.proto, marshaled through
// the reflection based wire codec of github.com/golang/protobuf.

package lumpb

import (
	proto "github.com/golang/protobuf/proto"
)

type AssetType int32

const (
	AssetType_NATIVE AssetType = 0
	AssetType_CUSTOM AssetType = 1
)

var AssetType_name = map[int32]string{
	0: "NATIVE",
	1: "CUSTOM",
}

var AssetType_value = map[string]int32{
	"NATIVE": 0,
	"CUSTOM": 1,
}

func (x AssetType) String() string {
	return proto.EnumName(AssetType_name, int32(x))
}

type OpType int32

const (
	OpType_UNKNOWN        OpType = 0
	OpType_CREATE_ACCOUNT OpType = 1
	OpType_PAYMENT        OpType = 2
	OpType_TRUST          OpType = 3
	OpType_SET_OPTIONS    OpType = 4
	OpType_ALLOW_TRUST    OpType = 5
	OpType_CLAWBACK       OpType = 6
	OpType_BEGIN_SPONSOR  OpType = 7
	OpType_END_SPONSOR    OpType = 8
)

var OpType_name = map[int32]string{
	0: "UNKNOWN",
	1: "CREATE_ACCOUNT",
	2: "PAYMENT",
	3: "TRUST",
	4: "SET_OPTIONS",
	5: "ALLOW_TRUST",
	6: "CLAWBACK",
	7: "BEGIN_SPONSOR",
	8: "END_SPONSOR",
}

var OpType_value = map[string]int32{
	"UNKNOWN":        0,
	"CREATE_ACCOUNT": 1,
	"PAYMENT":        2,
	"TRUST":          3,
	"SET_OPTIONS":    4,
	"ALLOW_TRUST":    5,
	"CLAWBACK":       6,
	"BEGIN_SPONSOR":  7,
	"END_SPONSOR":    8,
}

func (x OpType) String() string {
	return proto.EnumName(OpType_name, int32(x))
}

type Asset struct {
	AssetType AssetType `protobuf:"varint,1,opt,name=asset_type,json=assetType,proto3,enum=lumpb.AssetType" json:"asset_type,omitempty"`
	AssetName string    `protobuf:"bytes,2,opt,name=asset_name,json=assetName,proto3" json:"asset_name,omitempty"`
	Issuer    string    `protobuf:"bytes,3,opt,name=issuer,proto3" json:"issuer,omitempty"`
}

func (m *Asset) Reset()         { *m = Asset{} }
func (m *Asset) String() string { return proto.CompactTextString(m) }
func (*Asset) ProtoMessage()    {}

func (m *Asset) GetAssetType() AssetType {
	if m != nil {
		return m.AssetType
	}
	return AssetType_NATIVE
}

func (m *Asset) GetAssetName() string {
	if m != nil {
		return m.AssetName
	}
	return ""
}

func (m *Asset) GetIssuer() string {
	if m != nil {
		return m.Issuer
	}
	return ""
}

type CreateAccountOp struct {
	AccountID string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Balance   int64  `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *CreateAccountOp) Reset()         { *m = CreateAccountOp{} }
func (m *CreateAccountOp) String() string { return proto.CompactTextString(m) }
func (*CreateAccountOp) ProtoMessage()    {}

func (m *CreateAccountOp) GetAccountID() string {
	if m != nil {
		return m.AccountID
	}
	return ""
}

func (m *CreateAccountOp) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

type PaymentOp struct {
	AccountID string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Asset     *Asset `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Amount    int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *PaymentOp) Reset()         { *m = PaymentOp{} }
func (m *PaymentOp) String() string { return proto.CompactTextString(m) }
func (*PaymentOp) ProtoMessage()    {}

func (m *PaymentOp) GetAccountID() string {
	if m != nil {
		return m.AccountID
	}
	return ""
}

func (m *PaymentOp) GetAsset() *Asset {
	if m != nil {
		return m.Asset
	}
	return nil
}

func (m *PaymentOp) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type TrustOp struct {
	Asset *Asset `protobuf:"bytes,1,opt,name=asset,proto3" json:"asset,omitempty"`
	Limit int64  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *TrustOp) Reset()         { *m = TrustOp{} }
func (m *TrustOp) String() string { return proto.CompactTextString(m) }
func (*TrustOp) ProtoMessage()    {}

func (m *TrustOp) GetAsset() *Asset {
	if m != nil {
		return m.Asset
	}
	return nil
}

func (m *TrustOp) GetLimit() int64 {
	if m != nil {
		return m.Limit
	}
	return 0
}

type Signer struct {
	SignerID string `protobuf:"bytes,1,opt,name=signer_id,json=signerId,proto3" json:"signer_id,omitempty"`
	Weight   uint32 `protobuf:"varint,2,opt,name=weight,proto3" json:"weight,omitempty"`
}

func (m *Signer) Reset()         { *m = Signer{} }
func (m *Signer) String() string { return proto.CompactTextString(m) }
func (*Signer) ProtoMessage()    {}

func (m *Signer) GetSignerID() string {
	if m != nil {
		return m.SignerID
	}
	return ""
}

func (m *Signer) GetWeight() uint32 {
	if m != nil {
		return m.Weight
	}
	return 0
}

type Thresholds struct {
	Low    uint32 `protobuf:"varint,1,opt,name=low,proto3" json:"low,omitempty"`
	Medium uint32 `protobuf:"varint,2,opt,name=medium,proto3" json:"medium,omitempty"`
	High   uint32 `protobuf:"varint,3,opt,name=high,proto3" json:"high,omitempty"`
}

func (m *Thresholds) Reset()         { *m = Thresholds{} }
func (m *Thresholds) String() string { return proto.CompactTextString(m) }
func (*Thresholds) ProtoMessage()    {}

func (m *Thresholds) GetLow() uint32 {
	if m != nil {
		return m.Low
	}
	return 0
}

func (m *Thresholds) GetMedium() uint32 {
	if m != nil {
		return m.Medium
	}
	return 0
}

func (m *Thresholds) GetHigh() uint32 {
	if m != nil {
		return m.High
	}
	return 0
}

type SetOptionsOp struct {
	Signer          *Signer     `protobuf:"bytes,1,opt,name=signer,proto3" json:"signer,omitempty"`
	Thresholds      *Thresholds `protobuf:"bytes,2,opt,name=thresholds,proto3" json:"thresholds,omitempty"`
	MasterWeight    uint32      `protobuf:"varint,3,opt,name=master_weight,json=masterWeight,proto3" json:"master_weight,omitempty"`
	SetMasterWeight bool        `protobuf:"varint,4,opt,name=set_master_weight,json=setMasterWeight,proto3" json:"set_master_weight,omitempty"`
}

func (m *SetOptionsOp) Reset()         { *m = SetOptionsOp{} }
func (m *SetOptionsOp) String() string { return proto.CompactTextString(m) }
func (*SetOptionsOp) ProtoMessage()    {}

func (m *SetOptionsOp) GetSigner() *Signer {
	if m != nil {
		return m.Signer
	}
	return nil
}

func (m *SetOptionsOp) GetThresholds() *Thresholds {
	if m != nil {
		return m.Thresholds
	}
	return nil
}

func (m *SetOptionsOp) GetMasterWeight() uint32 {
	if m != nil {
		return m.MasterWeight
	}
	return 0
}

func (m *SetOptionsOp) GetSetMasterWeight() bool {
	if m != nil {
		return m.SetMasterWeight
	}
	return false
}

type AllowTrustOp struct {
	AccountID string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Asset     *Asset `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Authorize bool   `protobuf:"varint,3,opt,name=authorize,proto3" json:"authorize,omitempty"`
}

func (m *AllowTrustOp) Reset()         { *m = AllowTrustOp{} }
func (m *AllowTrustOp) String() string { return proto.CompactTextString(m) }
func (*AllowTrustOp) ProtoMessage()    {}

func (m *AllowTrustOp) GetAccountID() string {
	if m != nil {
		return m.AccountID
	}
	return ""
}

func (m *AllowTrustOp) GetAsset() *Asset {
	if m != nil {
		return m.Asset
	}
	return nil
}

func (m *AllowTrustOp) GetAuthorize() bool {
	if m != nil {
		return m.Authorize
	}
	return false
}

type ClawbackOp struct {
	AccountID string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Asset     *Asset `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Amount    int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ClawbackOp) Reset()         { *m = ClawbackOp{} }
func (m *ClawbackOp) String() string { return proto.CompactTextString(m) }
func (*ClawbackOp) ProtoMessage()    {}

func (m *ClawbackOp) GetAccountID() string {
	if m != nil {
		return m.AccountID
	}
	return ""
}

func (m *ClawbackOp) GetAsset() *Asset {
	if m != nil {
		return m.Asset
	}
	return nil
}

func (m *ClawbackOp) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type BeginSponsorOp struct {
	AccountID string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *BeginSponsorOp) Reset()         { *m = BeginSponsorOp{} }
func (m *BeginSponsorOp) String() string { return proto.CompactTextString(m) }
func (*BeginSponsorOp) ProtoMessage()    {}

func (m *BeginSponsorOp) GetAccountID() string {
	if m != nil {
		return m.AccountID
	}
	return ""
}

type EndSponsorOp struct {
}

func (m *EndSponsorOp) Reset()         { *m = EndSponsorOp{} }
func (m *EndSponsorOp) String() string { return proto.CompactTextString(m) }
func (*EndSponsorOp) ProtoMessage()    {}

type Op struct {
	OpType OpType `protobuf:"varint,1,opt,name=op_type,json=opType,proto3,enum=lumpb.OpType" json:"op_type,omitempty"`
	// Source account of the operation, default to the account
	// of the transaction when empty.
	AccountID string `protobuf:"bytes,2,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	// Types that are valid to be assigned to Op:
	//	*Op_CreateAccount
	//	*Op_Payment
	//	*Op_Trust
	//	*Op_SetOptions
	//	*Op_AllowTrust
	//	*Op_Clawback
	//	*Op_BeginSponsor
	//	*Op_EndSponsor
	Op isOp_Op `protobuf_oneof:"op"`
}

func (m *Op) Reset()         { *m = Op{} }
func (m *Op) String() string { return proto.CompactTextString(m) }
func (*Op) ProtoMessage()    {}

type isOp_Op interface {
	isOp_Op()
}

type Op_CreateAccount struct {
	CreateAccount *CreateAccountOp `protobuf:"bytes,3,opt,name=create_account,json=createAccount,proto3,oneof"`
}

type Op_Payment struct {
	Payment *PaymentOp `protobuf:"bytes,4,opt,name=payment,proto3,oneof"`
}

type Op_Trust struct {
	Trust *TrustOp `protobuf:"bytes,5,opt,name=trust,proto3,oneof"`
}

type Op_SetOptions struct {
	SetOptions *SetOptionsOp `protobuf:"bytes,6,opt,name=set_options,json=setOptions,proto3,oneof"`
}

type Op_AllowTrust struct {
	AllowTrust *AllowTrustOp `protobuf:"bytes,7,opt,name=allow_trust,json=allowTrust,proto3,oneof"`
}

type Op_Clawback struct {
	Clawback *ClawbackOp `protobuf:"bytes,8,opt,name=clawback,proto3,oneof"`
}

type Op_BeginSponsor struct {
	BeginSponsor *BeginSponsorOp `protobuf:"bytes,9,opt,name=begin_sponsor,json=beginSponsor,proto3,oneof"`
}

type Op_EndSponsor struct {
	EndSponsor *EndSponsorOp `protobuf:"bytes,10,opt,name=end_sponsor,json=endSponsor,proto3,oneof"`
}

func (*Op_CreateAccount) isOp_Op() {}
func (*Op_Payment) isOp_Op()       {}
func (*Op_Trust) isOp_Op()         {}
func (*Op_SetOptions) isOp_Op()    {}
func (*Op_AllowTrust) isOp_Op()    {}
func (*Op_Clawback) isOp_Op()      {}
func (*Op_BeginSponsor) isOp_Op()  {}
func (*Op_EndSponsor) isOp_Op()    {}

func (m *Op) GetOpType() OpType {
	if m != nil {
		return m.OpType
	}
	return OpType_UNKNOWN
}

func (m *Op) GetAccountID() string {
	if m != nil {
		return m.AccountID
	}
	return ""
}

func (m *Op) GetOp() isOp_Op {
	if m != nil {
		return m.Op
	}
	return nil
}

func (m *Op) GetCreateAccount() *CreateAccountOp {
	if x, ok := m.GetOp().(*Op_CreateAccount); ok {
		return x.CreateAccount
	}
	return nil
}

func (m *Op) GetPayment() *PaymentOp {
	if x, ok := m.GetOp().(*Op_Payment); ok {
		return x.Payment
	}
	return nil
}

func (m *Op) GetTrust() *TrustOp {
	if x, ok := m.GetOp().(*Op_Trust); ok {
		return x.Trust
	}
	return nil
}

func (m *Op) GetSetOptions() *SetOptionsOp {
	if x, ok := m.GetOp().(*Op_SetOptions); ok {
		return x.SetOptions
	}
	return nil
}

func (m *Op) GetAllowTrust() *AllowTrustOp {
	if x, ok := m.GetOp().(*Op_AllowTrust); ok {
		return x.AllowTrust
	}
	return nil
}

func (m *Op) GetClawback() *ClawbackOp {
	if x, ok := m.GetOp().(*Op_Clawback); ok {
		return x.Clawback
	}
	return nil
}

func (m *Op) GetBeginSponsor() *BeginSponsorOp {
	if x, ok := m.GetOp().(*Op_BeginSponsor); ok {
		return x.BeginSponsor
	}
	return nil
}

func (m *Op) GetEndSponsor() *EndSponsorOp {
	if x, ok := m.GetOp().(*Op_EndSponsor); ok {
		return x.EndSponsor
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*Op) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Op_CreateAccount)(nil),
		(*Op_Payment)(nil),
		(*Op_Trust)(nil),
		(*Op_SetOptions)(nil),
		(*Op_AllowTrust)(nil),
		(*Op_Clawback)(nil),
		(*Op_BeginSponsor)(nil),
		(*Op_EndSponsor)(nil),
	}
}

type TimeBounds struct {
	MinTime int64 `protobuf:"varint,1,opt,name=min_time,json=minTime,proto3" json:"min_time,omitempty"`
	MaxTime int64 `protobuf:"varint,2,opt,name=max_time,json=maxTime,proto3" json:"max_time,omitempty"`
}

func (m *TimeBounds) Reset()         { *m = TimeBounds{} }
func (m *TimeBounds) String() string { return proto.CompactTextString(m) }
func (*TimeBounds) ProtoMessage()    {}

func (m *TimeBounds) GetMinTime() int64 {
	if m != nil {
		return m.MinTime
	}
	return 0
}

func (m *TimeBounds) GetMaxTime() int64 {
	if m != nil {
		return m.MaxTime
	}
	return 0
}

type Tx struct {
	AccountID  string      `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Fee        int64       `protobuf:"varint,2,opt,name=fee,proto3" json:"fee,omitempty"`
	SeqNum     uint64      `protobuf:"varint,3,opt,name=seq_num,json=seqNum,proto3" json:"seq_num,omitempty"`
	Note       string      `protobuf:"bytes,4,opt,name=note,proto3" json:"note,omitempty"`
	TimeBounds *TimeBounds `protobuf:"bytes,5,opt,name=time_bounds,json=timeBounds,proto3" json:"time_bounds,omitempty"`
	OpList     []*Op       `protobuf:"bytes,6,rep,name=op_list,json=opList,proto3" json:"op_list,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

func (m *Tx) GetAccountID() string {
	if m != nil {
		return m.AccountID
	}
	return ""
}

func (m *Tx) GetFee() int64 {
	if m != nil {
		return m.Fee
	}
	return 0
}

func (m *Tx) GetSeqNum() uint64 {
	if m != nil {
		return m.SeqNum
	}
	return 0
}

func (m *Tx) GetNote() string {
	if m != nil {
		return m.Note
	}
	return ""
}

func (m *Tx) GetTimeBounds() *TimeBounds {
	if m != nil {
		return m.TimeBounds
	}
	return nil
}

func (m *Tx) GetOpList() []*Op {
	if m != nil {
		return m.OpList
	}
	return nil
}

type Signature struct {
	SignerID  string `protobuf:"bytes,1,opt,name=signer_id,json=signerId,proto3" json:"signer_id,omitempty"`
	Signature string `protobuf:"bytes,2,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *Signature) Reset()         { *m = Signature{} }
func (m *Signature) String() string { return proto.CompactTextString(m) }
func (*Signature) ProtoMessage()    {}

func (m *Signature) GetSignerID() string {
	if m != nil {
		return m.SignerID
	}
	return ""
}

func (m *Signature) GetSignature() string {
	if m != nil {
		return m.Signature
	}
	return ""
}

type TxEnvelope struct {
	Tx         *Tx          `protobuf:"bytes,1,opt,name=tx,proto3" json:"tx,omitempty"`
	Signatures []*Signature `protobuf:"bytes,2,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

func (m *TxEnvelope) Reset()         { *m = TxEnvelope{} }
func (m *TxEnvelope) String() string { return proto.CompactTextString(m) }
func (*TxEnvelope) ProtoMessage()    {}

func (m *TxEnvelope) GetTx() *Tx {
	if m != nil {
		return m.Tx
	}
	return nil
}

func (m *TxEnvelope) GetSignatures() []*Signature {
	if m != nil {
		return m.Signatures
	}
	return nil
}

func init() {
	proto.RegisterEnum("lumpb.AssetType", AssetType_name, AssetType_value)
	proto.RegisterEnum("lumpb.OpType", OpType_name, OpType_value)
	proto.RegisterType((*Asset)(nil), "lumpb.Asset")
	proto.RegisterType((*CreateAccountOp)(nil), "lumpb.CreateAccountOp")
	proto.RegisterType((*PaymentOp)(nil), "lumpb.PaymentOp")
	proto.RegisterType((*TrustOp)(nil), "lumpb.TrustOp")
	proto.RegisterType((*Signer)(nil), "lumpb.Signer")
	proto.RegisterType((*Thresholds)(nil), "lumpb.Thresholds")
	proto.RegisterType((*SetOptionsOp)(nil), "lumpb.SetOptionsOp")
	proto.RegisterType((*AllowTrustOp)(nil), "lumpb.AllowTrustOp")
	proto.RegisterType((*ClawbackOp)(nil), "lumpb.ClawbackOp")
	proto.RegisterType((*BeginSponsorOp)(nil), "lumpb.BeginSponsorOp")
	proto.RegisterType((*EndSponsorOp)(nil), "lumpb.EndSponsorOp")
	proto.RegisterType((*Op)(nil), "lumpb.Op")
	proto.RegisterType((*TimeBounds)(nil), "lumpb.TimeBounds")
	proto.RegisterType((*Tx)(nil), "lumpb.Tx")
	proto.RegisterType((*Signature)(nil), "lumpb.Signature")
	proto.RegisterType((*TxEnvelope)(nil), "lumpb.TxEnvelope")
}
