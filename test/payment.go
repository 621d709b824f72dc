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
	"fmt"

	"github.com/luminet/go-luminet/client"
	"github.com/luminet/go-luminet/client/build"
	"github.com/luminet/go-luminet/ledger"
)

func init() {
	Register(&OneToOnePayment{})
}

var baseFee = ledger.GenesisBaseFee

// OneToOnePayment tests the correctness of a point-to-point payment.
type OneToOnePayment struct{}

func (p *OneToOnePayment) Desc() string {
	return "testcase: one-to-one payment"
}

func (p *OneToOnePayment) Run(c *client.GrpcClient) error {
	srcAccountID, srcSeed, err := fundTestAccount(c)
	if err != nil {
		return fmt.Errorf("fund source account failed: %v", err)
	}
	dstAccountID, _, err := fundTestAccount(c)
	if err != nil {
		return fmt.Errorf("fund destination account failed: %v", err)
	}

	amount := int64(10000000000) // Pay 1 LUM.
	a := build.NewAssembler(c)
	env, err := a.Assemble(srcAccountID,
		&build.Payment{
			AccountID: dstAccountID,
			Amount:    amount,
			Asset:     &build.Asset{AssetType: build.NATIVE},
		},
	)
	if err != nil {
		return fmt.Errorf("assemble payment tx failed: %v", err)
	}
	if err := submitEnvelope(c, env, srcSeed); err != nil {
		return err
	}

	// Check the balance of the accounts.
	srcAcc, err := c.GetAccount(srcAccountID)
	if err != nil {
		return fmt.Errorf("get source account failed: %v", err)
	}
	dstAcc, err := c.GetAccount(dstAccountID)
	if err != nil {
		return fmt.Errorf("get destination account failed: %v", err)
	}
	if srcAcc.Balance != fundBalance-amount-baseFee {
		return fmt.Errorf("src account with unexpected balance: %d", srcAcc.Balance)
	}
	if dstAcc.Balance != fundBalance+amount {
		return fmt.Errorf("dst account with unexpected balance: %d", dstAcc.Balance)
	}
	return nil
}
