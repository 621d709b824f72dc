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

package test

import (
	"errors"
	"fmt"

	"github.com/luminet/go-luminet/client"
	"github.com/luminet/go-luminet/client/build"
	"github.com/luminet/go-luminet/crypto"
)

func init() {
	Register(&MultisigPayment{})
}

// MultisigPayment tests paying from an account guarded by an
// extra signer and custom thresholds.
type MultisigPayment struct{}

func (m *MultisigPayment) Desc() string {
	return "testcase: multisig payment"
}

func (m *MultisigPayment) Run(c *client.GrpcClient) error {
	srcAccountID, srcSeed, err := fundTestAccount(c)
	if err != nil {
		return fmt.Errorf("fund source account failed: %v", err)
	}
	dstAccountID, _, err := fundTestAccount(c)
	if err != nil {
		return fmt.Errorf("fund destination account failed: %v", err)
	}
	delegateID, delegateSeed, err := crypto.GetAccountKeypair()
	if err != nil {
		return fmt.Errorf("get delegate keypair failed: %v", err)
	}

	// Add the delegate signer and raise the thresholds so that
	// the master key alone can no longer move funds.
	a := build.NewAssembler(c)
	env, err := a.Assemble(srcAccountID,
		&build.SetOptions{
			Signer:     &build.Signer{SignerID: delegateID, Weight: 2},
			Thresholds: &build.Thresholds{Low: 1, Medium: 2, High: 3},
		},
	)
	if err != nil {
		return fmt.Errorf("assemble setoptions tx failed: %v", err)
	}
	if err := submitEnvelope(c, env, srcSeed); err != nil {
		return err
	}

	srcAcc, err := c.GetAccount(srcAccountID)
	if err != nil {
		return fmt.Errorf("get source account failed: %v", err)
	}
	if len(srcAcc.Signers) != 1 || srcAcc.Signers[0].SignerID != delegateID {
		return errors.New("delegate signer not saved on the account")
	}
	if srcAcc.Thresholds.Medium != 2 {
		return errors.New("thresholds not saved on the account")
	}

	amount := int64(10000000000)
	payment := &build.Payment{
		AccountID: dstAccountID,
		Amount:    amount,
		Asset:     &build.Asset{AssetType: build.NATIVE},
	}

	// The master key has weight one which is below the medium
	// threshold, so the payment should not go through.
	env, err = a.Assemble(srcAccountID, payment)
	if err != nil {
		return fmt.Errorf("assemble underweighted payment tx failed: %v", err)
	}
	if err := submitEnvelope(c, env, srcSeed); err == nil {
		return errors.New("underweighted payment unexpectedly went through")
	}

	// The delegate alone meets the medium threshold.
	env, err = a.Assemble(srcAccountID, payment)
	if err != nil {
		return fmt.Errorf("assemble delegate payment tx failed: %v", err)
	}
	if err := submitEnvelope(c, env, delegateSeed); err != nil {
		return err
	}

	dstAcc, err := c.GetAccount(dstAccountID)
	if err != nil {
		return fmt.Errorf("get destination account failed: %v", err)
	}
	if dstAcc.Balance != fundBalance+amount {
		return fmt.Errorf("dst account with unexpected balance: %d", dstAcc.Balance)
	}
	return nil
}
