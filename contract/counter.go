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

package contract

import (
	"errors"
	"fmt"

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/lumpb"
)

// Invoker sends contract invocations to a node. The grpc client
// of the node implements it.
type Invoker interface {
	SimulateContract(ci *lumpb.ContractInvocation) (int64, error)
	InvokeContract(ci *lumpb.ContractInvocation, signature string) (int64, error)
}

// CounterClient is a typed binding of the counter contract. Read
// methods are simulated, mutating methods are signed with the
// account seed and sent for application.
type CounterClient struct {
	invoker    Invoker
	contractID string
	accountID  string
	seed       string
}

// NewCounterClient creates a counter binding for the contract
// invoked on behalf of the account behind the seed.
func NewCounterClient(invoker Invoker, contractID string, seed string) (*CounterClient, error) {
	if invoker == nil {
		return nil, errors.New("invoker is nil")
	}
	if !crypto.IsValidContractKey(contractID) {
		return nil, errors.New("invalid contract key")
	}
	accountID, err := crypto.GetAccountID(seed)
	if err != nil {
		return nil, fmt.Errorf("derive account id failed: %v", err)
	}
	return &CounterClient{
		invoker:    invoker,
		contractID: contractID,
		accountID:  accountID,
		seed:       seed,
	}, nil
}

// Count returns the current counter value.
func (c *CounterClient) Count() (int64, error) {
	return c.invoker.SimulateContract(c.invocation("count", 0))
}

// Add adds the amount to the counter and returns the new value.
func (c *CounterClient) Add(amount int64) (int64, error) {
	return c.signAndSend(c.invocation("add", amount))
}

// Subtract subtracts the amount from the counter and returns
// the new value.
func (c *CounterClient) Subtract(amount int64) (int64, error) {
	return c.signAndSend(c.invocation("subtract", amount))
}

func (c *CounterClient) invocation(method string, value int64) *lumpb.ContractInvocation {
	return &lumpb.ContractInvocation{
		AccountID:  c.accountID,
		ContractID: c.contractID,
		Method:     method,
		Value:      value,
	}
}

func (c *CounterClient) signAndSend(ci *lumpb.ContractInvocation) (int64, error) {
	payload, err := lumpb.Encode(ci)
	if err != nil {
		return 0, fmt.Errorf("encode invocation failed: %v", err)
	}
	signature, err := crypto.Sign(c.seed, payload)
	if err != nil {
		return 0, fmt.Errorf("sign invocation failed: %v", err)
	}
	return c.invoker.InvokeContract(ci, signature)
}

// ControlledCounterClient is a typed binding of the controlled
// counter contract. Only accounts granted the counter role by
// the contract owner can add to the count.
type ControlledCounterClient struct {
	counter *CounterClient
}

// NewControlledCounterClient creates a controlled counter
// binding for the contract invoked on behalf of the account
// behind the seed.
func NewControlledCounterClient(invoker Invoker, contractID string, seed string) (*ControlledCounterClient, error) {
	counter, err := NewCounterClient(invoker, contractID, seed)
	if err != nil {
		return nil, err
	}
	return &ControlledCounterClient{counter: counter}, nil
}

// Count returns the current counter value.
func (c *ControlledCounterClient) Count() (int64, error) {
	return c.counter.Count()
}

// Add adds the amount to the counter and returns the new value.
// The invoking account must hold the counter role, and an add
// pushing the count over the cap resets it to zero and strips
// the role.
func (c *ControlledCounterClient) Add(amount int64) (int64, error) {
	return c.counter.Add(amount)
}

// Subtract subtracts the amount from the counter and returns
// the new value.
func (c *ControlledCounterClient) Subtract(amount int64) (int64, error) {
	return c.counter.Subtract(amount)
}

// Grant gives the counter role to the account. Only the owner
// of the contract can grant roles.
func (c *ControlledCounterClient) Grant(accountID string) error {
	ci := c.counter.invocation("grant", 0)
	ci.Target = accountID
	_, err := c.counter.signAndSend(ci)
	return err
}

// Revoke removes the counter role from the account. Only the
// owner of the contract can revoke roles.
func (c *ControlledCounterClient) Revoke(accountID string) error {
	ci := c.counter.invocation("revoke", 0)
	ci.Target = accountID
	_, err := c.counter.signAndSend(ci)
	return err
}
