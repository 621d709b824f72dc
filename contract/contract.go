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

// Package contract hosts deployed contracts and runs their
// invocations against the store.
package contract

import (
	"errors"
	"fmt"
	"math"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/log"
	"github.com/luminet/go-luminet/lumpb"
)

var (
	ErrContractNotExist = errors.New("contract not exist")
	ErrUnknownMethod    = errors.New("unknown contract method")
	ErrUnauthorized     = errors.New("invocation not authorized")
	ErrNegativeValue    = errors.New("negative method argument")
	ErrNoRole           = errors.New("invoker has no counter role")
	ErrNotOwner         = errors.New("invoker is not the contract owner")
)

// Contract programs understood by the host.
const (
	CounterName           = "counter"
	ControlledCounterName = "controlled-counter"
)

// The counter role of the controlled counter program.
const CounterRole = "counter"

// A controlled counter that would exceed this value resets to
// zero and strips the counter role of the invoker.
const ControlledCounterCap = int64(100)

// ManagerContext represents contextual information Manager needs.
type ManagerContext struct {
	Database db.Database
	AM       *account.Manager
}

func ValidateManagerContext(mc *ManagerContext) error {
	if mc == nil {
		return errors.New("manager context is nil")
	}
	if mc.Database == nil {
		return errors.New("database instance is nil")
	}
	if mc.AM == nil {
		return errors.New("account manager is nil")
	}
	return nil
}

// Manager manages deployed contracts. An invocation is either
// simulated against the current state or, when authorized by
// the invoking account, applied to it.
type Manager struct {
	database db.Database
	bucket   string

	am *account.Manager
}

// NewManager creates an instance of Manager with ManagerContext.
func NewManager(ctx *ManagerContext) *Manager {
	if err := ValidateManagerContext(ctx); err != nil {
		log.Fatalf("contract manager context is invalid: %v", err)
	}
	m := &Manager{
		database: ctx.Database,
		bucket:   "CONTRACT",
		am:       ctx.AM,
	}
	err := m.database.NewBucket(m.bucket)
	if err != nil {
		log.Fatalf("create contract bucket failed: %v", err)
	}
	return m
}

// Deploy creates a contract owned by the account and returns
// the id of the contract.
func (m *Manager) Deploy(owner string, name string) (string, error) {
	if !crypto.IsValidAccountKey(owner) {
		return "", errors.New("invalid owner account key")
	}
	if name != CounterName && name != ControlledCounterName {
		return "", fmt.Errorf("unknown contract program %s", name)
	}

	acc, err := m.am.GetAccount(m.database, owner)
	if err != nil {
		return "", fmt.Errorf("get account %s failed: %v", owner, err)
	}
	if acc == nil {
		return "", errors.New("owner account not exist")
	}

	contractID, err := crypto.GetContractID()
	if err != nil {
		return "", fmt.Errorf("generate contract id failed: %v", err)
	}

	c := &lumpb.Contract{
		ContractID: contractID,
		Owner:      owner,
		Name:       name,
	}
	if err := m.saveContract(c); err != nil {
		return "", err
	}

	return contractID, nil
}

// GetContract loads the contract state from the store.
func (m *Manager) GetContract(contractID string) (*lumpb.Contract, error) {
	if !crypto.IsValidContractKey(contractID) {
		return nil, errors.New("invalid contract key")
	}
	b, err := m.database.Get(m.bucket, []byte(contractID))
	if err != nil {
		return nil, fmt.Errorf("get contract %s failed: %v", contractID, err)
	}
	if b == nil {
		return nil, ErrContractNotExist
	}
	c, err := lumpb.DecodeContract(b)
	if err != nil {
		return nil, fmt.Errorf("decode contract %s failed: %v", contractID, err)
	}
	return c, nil
}

func (m *Manager) saveContract(c *lumpb.Contract) error {
	b, err := lumpb.Encode(c)
	if err != nil {
		return fmt.Errorf("encode contract failed: %v", err)
	}
	err = m.database.Put(m.bucket, []byte(c.ContractID), b)
	if err != nil {
		return fmt.Errorf("save contract failed: %v", err)
	}
	return nil
}

// Simulate runs the invocation against the current contract
// state without applying the result. Simulation needs no
// authorization.
func (m *Manager) Simulate(ci *lumpb.ContractInvocation) (int64, error) {
	c, err := m.GetContract(ci.ContractID)
	if err != nil {
		return 0, err
	}
	result, err := run(c, ci)
	if err != nil {
		return 0, err
	}
	return result, nil
}

// Invoke verifies the signature of the invoking account and
// applies the invocation to the contract state. The invoker is
// authorized when the weight of the verified signer reaches the
// low threshold of the account.
func (m *Manager) Invoke(ci *lumpb.ContractInvocation, signature string) (int64, error) {
	c, err := m.GetContract(ci.ContractID)
	if err != nil {
		return 0, err
	}

	if err := m.authorize(ci, signature); err != nil {
		return 0, err
	}

	result, err := run(c, ci)
	if err != nil {
		return 0, err
	}

	if err := m.saveContract(c); err != nil {
		return 0, err
	}

	return result, nil
}

// Find the signer of the invocation among the keys of the
// invoking account and check its weight against the low
// threshold of the account.
func (m *Manager) authorize(ci *lumpb.ContractInvocation, signature string) error {
	acc, err := m.am.GetAccount(m.database, ci.AccountID)
	if err != nil {
		return fmt.Errorf("get account %s failed: %v", ci.AccountID, err)
	}
	if acc == nil {
		return errors.New("invoking account not exist")
	}

	payload, err := lumpb.Encode(ci)
	if err != nil {
		return fmt.Errorf("encode invocation failed: %v", err)
	}

	var weight uint32
	if crypto.Verify(acc.AccountID, signature, payload) {
		weight = acc.MasterWeight
	} else {
		for _, signer := range acc.Signers {
			if crypto.Verify(signer.SignerID, signature, payload) {
				weight = signer.Weight
				break
			}
		}
	}

	var required uint32
	if acc.Thresholds != nil {
		required = acc.Thresholds.Low
	}
	if weight == 0 || weight < required {
		return ErrUnauthorized
	}

	return nil
}

// Run the invocation against the program of the contract.
func run(c *lumpb.Contract, ci *lumpb.ContractInvocation) (int64, error) {
	if ci.Value < 0 {
		return 0, ErrNegativeValue
	}
	switch c.Name {
	case CounterName:
		return runCounter(c, ci.Method, ci.Value)
	case ControlledCounterName:
		return runControlledCounter(c, ci)
	}
	return 0, fmt.Errorf("unknown contract program %s", c.Name)
}

// Run the counter method with saturating math on the counter value.
func runCounter(c *lumpb.Contract, method string, value int64) (int64, error) {
	switch method {
	case "count":
		return c.Count, nil
	case "add":
		if c.Count > math.MaxInt64-value {
			c.Count = math.MaxInt64
		} else {
			c.Count += value
		}
		return c.Count, nil
	case "subtract":
		if c.Count < value {
			c.Count = 0
		} else {
			c.Count -= value
		}
		return c.Count, nil
	}
	return 0, ErrUnknownMethod
}

// The controlled counter only lets accounts holding the counter
// role add to the count. An add pushing the count over the cap
// resets the count to zero and strips the role of the invoker.
// The owner grants and revokes roles.
func runControlledCounter(c *lumpb.Contract, ci *lumpb.ContractInvocation) (int64, error) {
	switch ci.Method {
	case "count":
		return c.Count, nil
	case "add":
		if getRole(c, ci.AccountID) != CounterRole {
			return 0, ErrNoRole
		}
		next := c.Count
		if next > math.MaxInt64-ci.Value {
			next = math.MaxInt64
		} else {
			next += ci.Value
		}
		if next > ControlledCounterCap {
			removeRole(c, ci.AccountID)
			c.Count = 0
		} else {
			c.Count = next
		}
		return c.Count, nil
	case "subtract":
		if c.Count < ci.Value {
			c.Count = 0
		} else {
			c.Count -= ci.Value
		}
		return c.Count, nil
	case "grant":
		if ci.AccountID != c.Owner {
			return 0, ErrNotOwner
		}
		if !crypto.IsValidAccountKey(ci.Target) {
			return 0, errors.New("invalid target account key")
		}
		setRole(c, ci.Target, CounterRole)
		return c.Count, nil
	case "revoke":
		if ci.AccountID != c.Owner {
			return 0, ErrNotOwner
		}
		removeRole(c, ci.Target)
		return c.Count, nil
	}
	return 0, ErrUnknownMethod
}

func getRole(c *lumpb.Contract, accountID string) string {
	for _, r := range c.Roles {
		if r.AccountID == accountID {
			return r.Role
		}
	}
	return ""
}

func setRole(c *lumpb.Contract, accountID string, role string) {
	for _, r := range c.Roles {
		if r.AccountID == accountID {
			r.Role = role
			return
		}
	}
	c.Roles = append(c.Roles, &lumpb.ContractRole{AccountID: accountID, Role: role})
}

func removeRole(c *lumpb.Contract, accountID string) {
	for i, r := range c.Roles {
		if r.AccountID == accountID {
			c.Roles = append(c.Roles[:i], c.Roles[i+1:]...)
			return
		}
	}
}
