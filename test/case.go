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
	"time"

	"github.com/luminet/go-luminet/client"
	"github.com/luminet/go-luminet/client/build"
	"github.com/luminet/go-luminet/client/types"
	"github.com/luminet/go-luminet/crypto"
)

var cases []TestCase

// Register the input test case in the global cases slice.
func Register(tc TestCase) {
	cases = append(cases, tc)
}

// GetAll returns all the registered test cases.
func GetAll() []TestCase {
	return cases
}

// TestCase abstracts a generic test case to run against a live
// luminet network. Each concrete test case should have the Desc
// and Run methods implemented.
type TestCase interface {
	Desc() string
	Run(c *client.GrpcClient) error
}

// Balance every funded test account starts with.
const fundBalance = int64(100000000000)

// Create a fresh account funded by the master account and wait
// until the funding tx is confirmed.
func fundTestAccount(c *client.GrpcClient) (accountID string, seed string, err error) {
	accountID, seed, err = crypto.GetAccountKeypair()
	if err != nil {
		return "", "", fmt.Errorf("get account keypair failed: %v", err)
	}
	txKey, err := c.Fund(accountID, fundBalance)
	if err != nil {
		return "", "", fmt.Errorf("fund account failed: %v", err)
	}
	if err := waitTx(c, txKey); err != nil {
		return "", "", err
	}
	account, err := c.GetAccount(accountID)
	if err != nil {
		return "", "", fmt.Errorf("get account failed: %v", err)
	}
	if account.Balance != fundBalance {
		return "", "", fmt.Errorf("funded account with unexpected balance: %d", account.Balance)
	}
	return accountID, seed, nil
}

// Sign the envelope with each seed, submit it and wait for the
// tx to be confirmed.
func submitEnvelope(c *client.GrpcClient, env *build.Envelope, seeds ...string) error {
	for _, seed := range seeds {
		if err := env.Sign(seed); err != nil {
			return fmt.Errorf("sign envelope failed: %v", err)
		}
	}
	data, err := env.Marshal()
	if err != nil {
		return fmt.Errorf("marshal envelope failed: %v", err)
	}
	txKey, err := env.TxKey()
	if err != nil {
		return fmt.Errorf("get tx key failed: %v", err)
	}
	if _, err := c.SubmitTx(txKey, data); err != nil {
		return fmt.Errorf("submit tx failed: %v", err)
	}
	return waitTx(c, txKey)
}

// Wait until the tx settles with a terminal status.
func waitTx(c *client.GrpcClient, txKey string) error {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	timer := time.NewTimer(30 * time.Second)
	defer timer.Stop()
	for {
		select {
		case <-ticker.C:
			status, err := c.QueryTx(txKey)
			if err != nil {
				return fmt.Errorf("query tx failed: %v", err)
			}
			switch status.StatusCode {
			case types.NotExist:
				return errors.New("tx not found")
			case types.Rejected:
				return fmt.Errorf("tx rejected: %v", status.ErrorMessage)
			case types.Accepted:
				continue
			case types.Confirmed:
				return nil
			case types.Failed:
				return fmt.Errorf("tx failed: %v", status.ErrorMessage)
			default:
				return errors.New("tx status unknown")
			}
		case <-timer.C:
			return errors.New("query result takes too long")
		}
	}
}
