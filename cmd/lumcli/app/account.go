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

	"github.com/luminet/go-luminet/log"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage and query accounts",
}

var fundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Create and fund an account from the master account",
	Long: `Create and fund an account from the master account of the test
network. The account must not exist yet.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()
		txKey, err := c.Fund(fundAccountID, fundBalance)
		if err != nil {
			log.Fatalf("fund account failed: %v", err)
		}
		waitForTx(c, txKey)
	},
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the state of an account",
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()
		acc, err := c.GetAccount(queryAccountID)
		if err != nil {
			log.Fatalf("get account failed: %v", err)
		}
		fmt.Printf("AccountID:    %s\n", acc.AccountID)
		fmt.Printf("Balance:      %d\n", acc.Balance)
		fmt.Printf("SeqNum:       %d\n", acc.SeqNum)
		fmt.Printf("EntryCount:   %d\n", acc.EntryCount)
		fmt.Printf("MasterWeight: %d\n", acc.MasterWeight)
		fmt.Printf("Thresholds:   low=%d medium=%d high=%d\n", acc.Thresholds.Low, acc.Thresholds.Medium, acc.Thresholds.High)
		for _, s := range acc.Signers {
			fmt.Printf("Signer:       %s weight=%d\n", s.SignerID, s.Weight)
		}
		if acc.Sponsor != "" {
			fmt.Printf("Sponsor:      %s\n", acc.Sponsor)
		}
	},
}

var (
	fundAccountID  string
	fundBalance    int64
	queryAccountID string
)

func init() {
	fundCmd.Flags().StringVar(&fundAccountID, "accountid", "", "account to create and fund")
	fundCmd.MarkFlagRequired("accountid")
	fundCmd.Flags().Int64Var(&fundBalance, "balance", 100000000, "initial balance of the account")
	accountCmd.AddCommand(fundCmd)

	queryCmd.Flags().StringVar(&queryAccountID, "accountid", "", "account to query")
	queryCmd.MarkFlagRequired("accountid")
	accountCmd.AddCommand(queryCmd)

	rootCmd.AddCommand(accountCmd)
}
