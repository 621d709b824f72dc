package rpcpb

import (
	"github.com/golang/protobuf/proto"
)

// Decode pb message to TxStatus
func DecodeTxStatus(b []byte) (*TxStatus, error) {
	status := &TxStatus{}
	if err := proto.Unmarshal(b, status); err != nil {
		return nil, err
	}
	return status, nil
}
