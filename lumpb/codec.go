package lumpb

import (
	"github.com/golang/protobuf/proto"

	"github.com/luminet/go-luminet/crypto"
)

// Encode pb message to bytes
func Encode(msg proto.Message) ([]byte, error) {
	b, err := proto.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Compute sha256 checksum of proto message
func SHA256Hash(msg proto.Message) (string, error) {
	b, err := Encode(msg)
	if err != nil {
		return "", err
	}
	return crypto.SHA256Hash(b), nil
}

// Compute sha256 checksum of proto message in raw bytes
func SHA256HashBytes(msg proto.Message) ([32]byte, error) {
	b, err := Encode(msg)
	if err != nil {
		return [32]byte{}, err
	}
	return crypto.SHA256HashBytes(b), nil
}

// Compute the tx key of the transaction
func GetTxKey(tx *Tx) (string, error) {
	b, err := Encode(tx)
	if err != nil {
		return "", err
	}
	txKey := &crypto.LumKey{
		Code: crypto.KeyTypeTx,
		Hash: crypto.SHA256HashBytes(b),
	}
	return crypto.EncodeKey(txKey), nil
}

// Decode pb message to Tx
func DecodeTx(b []byte) (*Tx, error) {
	tx := &Tx{}
	if err := proto.Unmarshal(b, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Decode pb message to TxEnvelope
func DecodeTxEnvelope(b []byte) (*TxEnvelope, error) {
	env := &TxEnvelope{}
	if err := proto.Unmarshal(b, env); err != nil {
		return nil, err
	}
	return env, nil
}

// Decode pb message to Account
func DecodeAccount(b []byte) (*Account, error) {
	acc := &Account{}
	if err := proto.Unmarshal(b, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Decode pb message to Trust
func DecodeTrust(b []byte) (*Trust, error) {
	trust := &Trust{}
	if err := proto.Unmarshal(b, trust); err != nil {
		return nil, err
	}
	return trust, nil
}

// Decode pb message to Contract
func DecodeContract(b []byte) (*Contract, error) {
	c := &Contract{}
	if err := proto.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Decode pb message to ContractInvocation
func DecodeContractInvocation(b []byte) (*ContractInvocation, error) {
	ci := &ContractInvocation{}
	if err := proto.Unmarshal(b, ci); err != nil {
		return nil, err
	}
	return ci, nil
}
