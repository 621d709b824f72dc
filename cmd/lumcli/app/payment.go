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
	"github.com/spf13/cobra"

	"github.com/luminet/go-luminet/client/build"
	"github.com/luminet/go-luminet/log"
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Send a payment",
	Long: `Send a payment from the source account to the destination account.
The envelope is signed with every supplied seed so payments from
multisig accounts can be authorized by several signers at once.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()

		asset := &build.Asset{AssetType: build.NATIVE}
		if payAssetName != "" {
			asset = &build.Asset{
				AssetType: build.CUSTOM,
				AssetName: payAssetName,
				Issuer:    payAssetIssuer,
			}
		}

		a := build.NewAssembler(c)
		env, err := a.Assemble(payFrom,
			&build.Payment{AccountID: payTo, Amount: payAmount, Asset: asset},
		)
		if err != nil {
			log.Fatalf("assemble payment failed: %v", err)
		}

		signAndSubmit(c, env, paySeeds)
	},
}

var (
	payFrom        string
	payTo          string
	payAmount      int64
	payAssetName   string
	payAssetIssuer string
	paySeeds       []string
)

func init() {
	paymentCmd.Flags().StringVar(&payFrom, "from", "", "source account of the payment")
	paymentCmd.MarkFlagRequired("from")
	paymentCmd.Flags().StringVar(&payTo, "to", "", "destination account of the payment")
	paymentCmd.MarkFlagRequired("to")
	paymentCmd.Flags().Int64Var(&payAmount, "amount", 0, "amount to pay")
	paymentCmd.MarkFlagRequired("amount")
	paymentCmd.Flags().StringVar(&payAssetName, "asset", "", "name of the custom asset, native LUM when omitted")
	paymentCmd.Flags().StringVar(&payAssetIssuer, "issuer", "", "issuer of the custom asset")
	paymentCmd.Flags().StringSliceVar(&paySeeds, "seed", nil, "seeds to sign the envelope with")
	paymentCmd.MarkFlagRequired("seed")
	rootCmd.AddCommand(paymentCmd)
}
