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

package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luminet/go-luminet/contract"
	"github.com/luminet/go-luminet/log"
)

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Work with counter contracts",
}

var counterDeployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy a new counter contract",
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()
		contractID, err := c.DeployContract(contract.CounterName, counterSeed)
		if err != nil {
			log.Fatalf("deploy contract failed: %v", err)
		}
		fmt.Println("contract ID:", contractID)
	},
}

var counterCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Read the current value of a counter contract",
	Run: func(cmd *cobra.Command, args []string) {
		count, err := newCounter().Count()
		if err != nil {
			log.Fatalf("count failed: %v", err)
		}
		fmt.Println("count:", count)
	},
}

var counterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an amount to a counter contract",
	Run: func(cmd *cobra.Command, args []string) {
		count, err := newCounter().Add(counterAmount)
		if err != nil {
			log.Fatalf("add failed: %v", err)
		}
		fmt.Println("count:", count)
	},
}

var counterSubtractCmd = &cobra.Command{
	Use:   "subtract",
	Short: "Subtract an amount from a counter contract",
	Run: func(cmd *cobra.Command, args []string) {
		count, err := newCounter().Subtract(counterAmount)
		if err != nil {
			log.Fatalf("subtract failed: %v", err)
		}
		fmt.Println("count:", count)
	},
}

var (
	counterContractID string
	counterSeed       string
	counterAmount     int64
)

func newCounter() *contract.CounterClient {
	cc, err := contract.NewCounterClient(newClient(), counterContractID, counterSeed)
	if err != nil {
		log.Fatalf("create counter client failed: %v", err)
	}
	return cc
}

func init() {
	counterDeployCmd.Flags().StringVar(&counterSeed, "seed", "", "seed of the deploying account")
	counterDeployCmd.MarkFlagRequired("seed")

	for _, c := range []*cobra.Command{counterCountCmd, counterAddCmd, counterSubtractCmd} {
		c.Flags().StringVar(&counterContractID, "contractid", "", "ID of the counter contract")
		c.MarkFlagRequired("contractid")
		c.Flags().StringVar(&counterSeed, "seed", "", "seed of the invoking account")
		c.MarkFlagRequired("seed")
	}
	counterAddCmd.Flags().Int64Var(&counterAmount, "amount", 1, "amount to add")
	counterSubtractCmd.Flags().Int64Var(&counterAmount, "amount", 1, "amount to subtract")

	counterCmd.AddCommand(counterDeployCmd, counterCountCmd, counterAddCmd, counterSubtractCmd)
	rootCmd.AddCommand(counterCmd)
}
