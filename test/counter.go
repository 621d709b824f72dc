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
	"github.com/luminet/go-luminet/contract"
)

func init() {
	Register(&CounterContract{})
}

// CounterContract tests deploying and invoking a counter contract.
type CounterContract struct{}

func (cc *CounterContract) Desc() string {
	return "testcase: counter contract"
}

func (cc *CounterContract) Run(c *client.GrpcClient) error {
	_, seed, err := fundTestAccount(c)
	if err != nil {
		return fmt.Errorf("fund owner account failed: %v", err)
	}

	contractID, err := c.DeployContract(contract.CounterName, seed)
	if err != nil {
		return fmt.Errorf("deploy counter contract failed: %v", err)
	}

	counter, err := contract.NewCounterClient(c, contractID, seed)
	if err != nil {
		return fmt.Errorf("create counter client failed: %v", err)
	}

	count, err := counter.Count()
	if err != nil {
		return fmt.Errorf("count failed: %v", err)
	}
	if count != 0 {
		return fmt.Errorf("fresh counter with unexpected count: %d", count)
	}

	count, err = counter.Add(5)
	if err != nil {
		return fmt.Errorf("add failed: %v", err)
	}
	if count != 5 {
		return fmt.Errorf("unexpected count after add: %d", count)
	}

	count, err = counter.Subtract(2)
	if err != nil {
		return fmt.Errorf("subtract failed: %v", err)
	}
	if count != 3 {
		return fmt.Errorf("unexpected count after subtract: %d", count)
	}

	count, err = counter.Count()
	if err != nil {
		return fmt.Errorf("count failed: %v", err)
	}
	if count != 3 {
		return fmt.Errorf("unexpected final count: %d", count)
	}
	return nil
}
