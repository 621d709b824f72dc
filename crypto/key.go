package crypto

import (
	"bytes"
	"encoding/binary"
	"errors"

	b58 "github.com/mr-tron/base58/base58"
)

type KeyType uint8

// enumeration of key type
const (
	_ KeyType = iota // skip zero
	KeyTypeAccountID
	KeyTypeSeed
	KeyTypeTx
	KeyTypeNodeID
	KeyTypeContractID
)

var (
	ErrInvalidKey = errors.New("invalid key string")
)

// LumKey is the internal key to represent various key hash,
// Code is for identifying the type of certain key hash.
type LumKey struct {
	Code KeyType
	Hash [32]byte
}

// decode base58 encoded key string to LumKey
func DecodeKey(key string) (*LumKey, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	b, err := b58.Decode(key)
	if err != nil {
		return nil, ErrInvalidKey
	}

	var lumKey LumKey
	r := bytes.NewReader(b)
	err = binary.Read(r, binary.BigEndian, &lumKey)
	if err != nil {
		return nil, ErrInvalidKey
	}

	switch lumKey.Code {
	case KeyTypeAccountID:
		fallthrough
	case KeyTypeSeed:
		fallthrough
	case KeyTypeTx:
		fallthrough
	case KeyTypeContractID:
		fallthrough
	case KeyTypeNodeID:
		return &lumKey, nil
	}
	return nil, ErrInvalidKey
}

// encode LumKey to base58 encoded key string
func EncodeKey(lumKey *LumKey) string {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, lumKey)
	return b58.Encode(buf.Bytes())
}

// check the validity of supplied key string
func IsValidKey(key string) bool {
	if _, err := DecodeKey(key); err != nil {
		return false
	}
	return true
}

// check whether the key string is a valid account key
func IsValidAccountKey(key string) bool {
	k, err := DecodeKey(key)
	if err != nil {
		return false
	}
	return k.Code == KeyTypeAccountID
}

// check whether the key string is a valid tx key
func IsValidTxKey(key string) bool {
	k, err := DecodeKey(key)
	if err != nil {
		return false
	}
	return k.Code == KeyTypeTx
}

// check whether the key string is a valid contract key
func IsValidContractKey(key string) bool {
	k, err := DecodeKey(key)
	if err != nil {
		return false
	}
	return k.Code == KeyTypeContractID
}
