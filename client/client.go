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

// Package client talks to luminet nodes over gRPC.
package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"

	"github.com/luminet/go-luminet/client/types"
	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/lumpb"
	"github.com/luminet/go-luminet/rpc/rpcpb"
)

// GrpcClient manages the gRPC connections to luminet servers and
// works as a load balancer to the backend luminet servers.
type GrpcClient struct {
	networkID     string
	coreEndpoints string
	client        rpcpb.NodeClient
}

// New creates a GrpcClient to the given target servers.
func New(networkID, coreEndpoints string) (*GrpcClient, error) {
	// Connect to node servers.
	r := NewResolver()
	b := grpc.RoundRobin(r)
	conn, err := grpc.Dial(coreEndpoints, grpc.WithInsecure(), grpc.WithBalancer(b), grpc.WithBlock(), grpc.WithTimeout(time.Second))
	if err != nil {
		return nil, fmt.Errorf("connect to core servers failed: %v", err)
	}
	client := rpcpb.NewNodeClient(conn)
	gc := &GrpcClient{
		networkID:     networkID,
		coreEndpoints: coreEndpoints,
		client:        client,
	}
	return gc, nil
}

// SubmitTx submits the encoded tx envelope to luminet servers
// and returns the tx key the status can be queried with.
func (c *GrpcClient) SubmitTx(txKey string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(time.Second))
	defer cancel()

	req := &rpcpb.SubmitTxRequest{
		NetworkID: c.networkID,
		TxKey:     txKey,
		Data:      data,
	}
	resp, err := c.client.SubmitTx(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.TxKey, nil
}

// QueryTx queries the tx status from luminet servers and returns
// current tx status.
func (c *GrpcClient) QueryTx(txKey string) (*types.TxStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(time.Second))
	defer cancel()

	req := &rpcpb.QueryTxRequest{
		NetworkID: c.networkID,
		TxKey:     txKey,
	}
	resp, err := c.client.QueryTx(ctx, req)
	if err != nil {
		return nil, err
	}

	status := &types.TxStatus{
		ErrorMessage: resp.TxStatus.ErrorMessage,
	}
	switch resp.TxStatus.StatusCode {
	case rpcpb.TxStatusCode_NOTEXIST:
		status.StatusCode = types.NotExist
	case rpcpb.TxStatusCode_REJECTED:
		status.StatusCode = types.Rejected
	case rpcpb.TxStatusCode_ACCEPTED:
		status.StatusCode = types.Accepted
	case rpcpb.TxStatusCode_CONFIRMED:
		status.StatusCode = types.Confirmed
	case rpcpb.TxStatusCode_FAILED:
		status.StatusCode = types.Failed
	default:
		status.StatusCode = types.Unknown
	}

	return status, nil
}

// GetAccount gets the account with the requested account id.
func (c *GrpcClient) GetAccount(accountID string) (*types.Account, error) {
	acc, err := c.LoadAccount(accountID)
	if err != nil {
		return nil, err
	}

	account := &types.Account{
		AccountID:    acc.AccountID,
		Balance:      acc.Balance,
		SeqNum:       acc.SeqNum,
		EntryCount:   acc.EntryCount,
		MasterWeight: acc.MasterWeight,
		Sponsor:      acc.Sponsor,
	}
	if acc.Thresholds != nil {
		account.Thresholds = types.Thresholds{
			Low:    acc.Thresholds.Low,
			Medium: acc.Thresholds.Medium,
			High:   acc.Thresholds.High,
		}
	}
	for _, signer := range acc.Signers {
		account.Signers = append(account.Signers, types.Signer{
			SignerID: signer.SignerID,
			Weight:   signer.Weight,
		})
	}

	return account, nil
}

// LoadAccount gets the raw account with the requested account id.
// It makes GrpcClient usable as an account loader for envelope
// assembly.
func (c *GrpcClient) LoadAccount(accountID string) (*lumpb.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(time.Second))
	defer cancel()

	req := &rpcpb.GetAccountRequest{
		NetworkID: c.networkID,
		AccountID: accountID,
	}
	resp, err := c.client.GetAccount(ctx, req)
	if err != nil {
		return nil, err
	}

	acc, err := lumpb.DecodeAccount(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("decode account failed: %v", err)
	}

	return acc, nil
}

// Fund asks the luminet servers to create and fund the account
// from the master account. It only works on test networks.
func (c *GrpcClient) Fund(accountID string, balance int64) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(time.Second))
	defer cancel()

	req := &rpcpb.FundRequest{
		NetworkID: c.networkID,
		AccountID: accountID,
		Balance:   balance,
	}
	resp, err := c.client.Fund(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.TxKey, nil
}

// DeployContract deploys a contract owned by the account behind
// the seed and returns the id of the new contract.
func (c *GrpcClient) DeployContract(name string, seed string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(time.Second))
	defer cancel()

	accountID, err := crypto.GetAccountID(seed)
	if err != nil {
		return "", fmt.Errorf("derive account id failed: %v", err)
	}
	signature, err := crypto.Sign(seed, []byte(name))
	if err != nil {
		return "", fmt.Errorf("sign contract name failed: %v", err)
	}

	req := &rpcpb.DeployContractRequest{
		NetworkID: c.networkID,
		AccountID: accountID,
		Name:      name,
		Signature: signature,
	}
	resp, err := c.client.DeployContract(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.ContractID, nil
}

// SimulateContract runs the invocation on the luminet servers
// without applying its result.
func (c *GrpcClient) SimulateContract(ci *lumpb.ContractInvocation) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(time.Second))
	defer cancel()

	data, err := lumpb.Encode(ci)
	if err != nil {
		return 0, fmt.Errorf("encode invocation failed: %v", err)
	}

	req := &rpcpb.SimulateContractRequest{
		NetworkID: c.networkID,
		Data:      data,
	}
	resp, err := c.client.SimulateContract(ctx, req)
	if err != nil {
		return 0, err
	}

	return resp.Result, nil
}

// InvokeContract applies the signed invocation on the luminet
// servers.
func (c *GrpcClient) InvokeContract(ci *lumpb.ContractInvocation, signature string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(time.Second))
	defer cancel()

	data, err := lumpb.Encode(ci)
	if err != nil {
		return 0, fmt.Errorf("encode invocation failed: %v", err)
	}

	req := &rpcpb.InvokeContractRequest{
		NetworkID: c.networkID,
		Data:      data,
		Signature: signature,
	}
	resp, err := c.client.InvokeContract(ctx, req)
	if err != nil {
		return 0, err
	}

	return resp.Result, nil
}
