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
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/luminet/go-luminet/client"
	"github.com/luminet/go-luminet/client/build"
	"github.com/luminet/go-luminet/client/types"
	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/log"
)

var rootCmd = &cobra.Command{
	Use:   "lumcli",
	Short: "lumcli talks to luminet nodes",
	Long:  `lumcli builds, signs and submits transactions to luminet nodes and queries ledger state.`,
}

var (
	endpoints string
	networkID string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&endpoints, "endpoints", "e", "127.0.0.1:9019", "comma separated addresses of luminet nodes")
	rootCmd.PersistentFlags().StringVarP(&networkID, "networkid", "i", "luminet test network", "network ID the nodes run with")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// The servers compare against the hash of the network ID.
func netID() string {
	return crypto.SHA256Hash([]byte(networkID))
}

func newClient() *client.GrpcClient {
	c, err := client.New(netID(), endpoints)
	if err != nil {
		log.Fatalf("connect to luminet nodes failed: %v", err)
	}
	return c
}

// Sign the envelope with every seed, submit it and wait for the result.
func signAndSubmit(c *client.GrpcClient, env *build.Envelope, seeds []string) {
	for _, seed := range seeds {
		if err := env.Sign(seed); err != nil {
			log.Fatalf("sign envelope failed: %v", err)
		}
	}
	data, err := env.Marshal()
	if err != nil {
		log.Fatalf("marshal envelope failed: %v", err)
	}
	txKey, err := env.TxKey()
	if err != nil {
		log.Fatalf("compute tx key failed: %v", err)
	}
	if _, err := c.SubmitTx(txKey, data); err != nil {
		log.Fatalf("submit tx failed: %v", err)
	}
	waitForTx(c, txKey)
}

// Poll the status of the tx until it settles.
func waitForTx(c *client.GrpcClient, txKey string) {
	for i := 0; i < 10; i++ {
		status, err := c.QueryTx(txKey)
		if err != nil {
			log.Fatalf("query tx failed: %v", err)
		}
		switch status.StatusCode {
		case types.Confirmed:
			fmt.Printf("tx %s confirmed\n", txKey)
			return
		case types.Rejected, types.Failed:
			fmt.Printf("tx %s %s: %s\n", txKey, status.StatusCode, status.ErrorMessage)
			return
		}
		time.Sleep(time.Second)
	}
	fmt.Printf("tx %s still pending\n", txKey)
}
