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

package rpc

import (
	"bytes"
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/future"
	"github.com/luminet/go-luminet/log"
	"github.com/luminet/go-luminet/lumpb"
	"github.com/luminet/go-luminet/rpc/rpcpb"
)

// NodeServer creates a gRPC server to accept requests from clients,
// it does not contain any handlers of internal components, all the
// requests are processed by passing futures to internal Node which
// controls all the internal components to generate corresponding
// responses and errors.
type NodeServer struct {
	networkID string // Hash of the networkID.
	addr      string // Network address of this node.
	nodeID    string // ID of this node (public key).

	// Future for adding tx.
	txFuture chan<- *future.Tx
	// Future for querying tx status.
	txsFuture chan<- *future.TxStatus
	// Future for querying accounts.
	accountFuture chan<- *future.Account
	// Future for funding new accounts.
	fundFuture chan<- *future.Fund
	// Future for deploying contracts.
	deployFuture chan<- *future.Deploy
	// Future for running contract invocations.
	contractFuture chan<- *future.Contract
}

// ServerContext represents contextual information for running server.
type ServerContext struct {
	NetworkID      string
	Addr           string
	NodeID         string
	TxFuture       chan *future.Tx
	TxStatusFuture chan *future.TxStatus
	AccountFuture  chan *future.Account
	FundFuture     chan *future.Fund
	DeployFuture   chan *future.Deploy
	ContractFuture chan *future.Contract
}

func ValidateServerContext(sc *ServerContext) error {
	if sc == nil {
		return errors.New("server context is nil")
	}
	if sc.NetworkID == "" {
		return errors.New("empty network ID")
	}
	if sc.Addr == "" {
		return errors.New("empty local network address")
	}
	if sc.NodeID == "" {
		return errors.New("empty local node ID")
	}
	if sc.TxFuture == nil {
		return errors.New("tx future channel is nil")
	}
	if sc.TxStatusFuture == nil {
		return errors.New("txstatus future channel is nil")
	}
	if sc.AccountFuture == nil {
		return errors.New("account future channel is nil")
	}
	if sc.FundFuture == nil {
		return errors.New("fund future channel is nil")
	}
	if sc.DeployFuture == nil {
		return errors.New("deploy future channel is nil")
	}
	if sc.ContractFuture == nil {
		return errors.New("contract future channel is nil")
	}
	return nil
}

// NewNodeServer creates a NodeServer instance with server context.
func NewNodeServer(ctx *ServerContext) *NodeServer {
	if err := ValidateServerContext(ctx); err != nil {
		log.Fatalf("validate server context failed: %v", err)
	}
	server := &NodeServer{
		networkID:      ctx.NetworkID,
		addr:           ctx.Addr,
		nodeID:         ctx.NodeID,
		txFuture:       ctx.TxFuture,
		txsFuture:      ctx.TxStatusFuture,
		accountFuture:  ctx.AccountFuture,
		fundFuture:     ctx.FundFuture,
		deployFuture:   ctx.DeployFuture,
		contractFuture: ctx.ContractFuture,
	}
	return server
}

// SubmitTx accepts an encoded tx envelope and hands it to the node.
func (s *NodeServer) SubmitTx(ctx context.Context, req *rpcpb.SubmitTxRequest) (*rpcpb.SubmitTxResponse, error) {
	resp := &rpcpb.SubmitTxResponse{}

	log.Infow("received new tx submission", "txKey", req.TxKey)

	if s.networkID != req.NetworkID {
		return resp, status.Error(codes.InvalidArgument, "incompatible network id.")
	}

	txenv, err := lumpb.DecodeTxEnvelope(req.Data)
	if err != nil {
		return resp, status.Error(codes.InvalidArgument, "decode tx envelope failed")
	}
	if txenv.Tx == nil {
		return resp, status.Error(codes.InvalidArgument, "tx envelope without tx")
	}

	// Verify the tx key.
	txKey, err := crypto.DecodeKey(req.TxKey)
	if err != nil {
		return resp, status.Error(codes.InvalidArgument, "decode tx key failed")
	}
	if txKey.Code != crypto.KeyTypeTx {
		return resp, status.Error(codes.InvalidArgument, "invalid tx key type")
	}
	txHash, err := lumpb.SHA256HashBytes(txenv.Tx)
	if err != nil {
		return resp, status.Error(codes.Internal, "compute tx hash failed")
	}
	if !bytes.Equal(txHash[:], txKey.Hash[:]) {
		return resp, status.Error(codes.InvalidArgument, "tx key hash mismatch")
	}

	f := &future.Tx{TxKey: req.TxKey, TxEnv: txenv}
	f.Init()
	s.txFuture <- f
	if err := f.Error(); err != nil {
		return resp, status.Errorf(codes.Internal, "submit tx failed: %v", err)
	}

	resp.TxKey = req.TxKey

	return resp, nil
}

// QueryTx queries the status of the transaction.
func (s *NodeServer) QueryTx(ctx context.Context, req *rpcpb.QueryTxRequest) (*rpcpb.QueryTxResponse, error) {
	resp := &rpcpb.QueryTxResponse{}

	log.Infow("received new tx query", "txKey", req.TxKey)

	if s.networkID != req.NetworkID {
		return resp, status.Error(codes.InvalidArgument, "incompatible network id.")
	}

	if !crypto.IsValidTxKey(req.TxKey) {
		return resp, status.Errorf(codes.InvalidArgument, "invalid tx key")
	}

	f := &future.TxStatus{TxKey: req.TxKey}
	f.Init()
	s.txsFuture <- f
	if err := f.Error(); err != nil {
		return resp, status.Errorf(codes.Internal, "query tx status failed: %v", err)
	}

	resp.TxStatus = f.TxStatus

	return resp, nil
}

// GetAccount queries the account information.
func (s *NodeServer) GetAccount(ctx context.Context, req *rpcpb.GetAccountRequest) (*rpcpb.GetAccountResponse, error) {
	resp := &rpcpb.GetAccountResponse{}

	if s.networkID != req.NetworkID {
		return resp, status.Error(codes.InvalidArgument, "incompatible network id.")
	}

	if !crypto.IsValidAccountKey(req.AccountID) {
		return resp, status.Errorf(codes.InvalidArgument, "invalid account id")
	}

	f := &future.Account{AccountID: req.AccountID}
	f.Init()
	s.accountFuture <- f
	if err := f.Error(); err != nil {
		return resp, status.Errorf(codes.Internal, "get account failed: %v", err)
	}
	if f.Account == nil {
		return resp, status.Error(codes.NotFound, "account not found")
	}

	b, err := lumpb.Encode(f.Account)
	if err != nil {
		return resp, status.Error(codes.Internal, "encode account failed")
	}
	resp.Data = b

	return resp, nil
}

// Fund creates and funds a new account from the master account.
func (s *NodeServer) Fund(ctx context.Context, req *rpcpb.FundRequest) (*rpcpb.FundResponse, error) {
	resp := &rpcpb.FundResponse{}

	if s.networkID != req.NetworkID {
		return resp, status.Error(codes.InvalidArgument, "incompatible network id.")
	}

	if !crypto.IsValidAccountKey(req.AccountID) {
		return resp, status.Errorf(codes.InvalidArgument, "invalid account id")
	}
	if req.Balance <= 0 {
		return resp, status.Errorf(codes.InvalidArgument, "non-positive balance")
	}

	f := &future.Fund{AccountID: req.AccountID, Balance: req.Balance}
	f.Init()
	s.fundFuture <- f
	if err := f.Error(); err != nil {
		return resp, status.Errorf(codes.Internal, "fund account failed: %v", err)
	}

	resp.TxKey = f.TxKey

	return resp, nil
}

// DeployContract deploys a contract owned by the requesting account.
func (s *NodeServer) DeployContract(ctx context.Context, req *rpcpb.DeployContractRequest) (*rpcpb.DeployContractResponse, error) {
	resp := &rpcpb.DeployContractResponse{}

	if s.networkID != req.NetworkID {
		return resp, status.Error(codes.InvalidArgument, "incompatible network id.")
	}

	if !crypto.IsValidAccountKey(req.AccountID) {
		return resp, status.Errorf(codes.InvalidArgument, "invalid account id")
	}
	if req.Name == "" {
		return resp, status.Error(codes.InvalidArgument, "empty contract name")
	}

	// Deployment is authorized by the master key of the owner.
	if !crypto.Verify(req.AccountID, req.Signature, []byte(req.Name)) {
		return resp, status.Error(codes.InvalidArgument, "signature verification failed")
	}

	f := &future.Deploy{AccountID: req.AccountID, Name: req.Name}
	f.Init()
	s.deployFuture <- f
	if err := f.Error(); err != nil {
		return resp, status.Errorf(codes.Internal, "deploy contract failed: %v", err)
	}

	resp.ContractID = f.ContractID

	return resp, nil
}

// SimulateContract runs a contract invocation without applying it.
func (s *NodeServer) SimulateContract(ctx context.Context, req *rpcpb.SimulateContractRequest) (*rpcpb.SimulateContractResponse, error) {
	resp := &rpcpb.SimulateContractResponse{}

	if s.networkID != req.NetworkID {
		return resp, status.Error(codes.InvalidArgument, "incompatible network id.")
	}

	ci, err := lumpb.DecodeContractInvocation(req.Data)
	if err != nil {
		return resp, status.Error(codes.InvalidArgument, "decode invocation failed")
	}

	f := &future.Contract{Invocation: ci}
	f.Init()
	s.contractFuture <- f
	if err := f.Error(); err != nil {
		return resp, status.Errorf(codes.Internal, "simulate contract failed: %v", err)
	}

	resp.Result = f.Result

	return resp, nil
}

// InvokeContract applies a signed contract invocation.
func (s *NodeServer) InvokeContract(ctx context.Context, req *rpcpb.InvokeContractRequest) (*rpcpb.InvokeContractResponse, error) {
	resp := &rpcpb.InvokeContractResponse{}

	if s.networkID != req.NetworkID {
		return resp, status.Error(codes.InvalidArgument, "incompatible network id.")
	}

	ci, err := lumpb.DecodeContractInvocation(req.Data)
	if err != nil {
		return resp, status.Error(codes.InvalidArgument, "decode invocation failed")
	}
	if req.Signature == "" {
		return resp, status.Error(codes.InvalidArgument, "empty signature")
	}

	f := &future.Contract{Invocation: ci, Signature: req.Signature, Apply: true}
	f.Init()
	s.contractFuture <- f
	if err := f.Error(); err != nil {
		return resp, status.Errorf(codes.Internal, "invoke contract failed: %v", err)
	}

	resp.Result = f.Result

	return resp, nil
}
