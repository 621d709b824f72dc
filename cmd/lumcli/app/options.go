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

var setOptionsCmd = &cobra.Command{
	Use:   "setoptions",
	Short: "Change the signers and thresholds of an account",
	Long: `Change the extra signers, operation thresholds and master weight
of an account. Supplying --signer with --weight 0 removes the signer.
Changing options requires signatures meeting the high threshold of
the account, so several seeds may be needed.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()

		so := &build.SetOptions{}
		if optSigner != "" {
			so.Signer = &build.Signer{
				SignerID: optSigner,
				Weight:   optWeight,
			}
		}
		if cmd.Flags().Changed("low") || cmd.Flags().Changed("medium") || cmd.Flags().Changed("high") {
			so.Thresholds = &build.Thresholds{
				Low:    optLow,
				Medium: optMedium,
				High:   optHigh,
			}
		}
		if cmd.Flags().Changed("masterweight") {
			so.MasterWeight = optMasterWeight
			so.SetMasterWeight = true
		}

		a := build.NewAssembler(c)
		env, err := a.Assemble(optAccount, so)
		if err != nil {
			log.Fatalf("assemble setoptions failed: %v", err)
		}

		signAndSubmit(c, env, optSeeds)
	},
}

var (
	optAccount      string
	optSigner       string
	optWeight       uint32
	optLow          uint32
	optMedium       uint32
	optHigh         uint32
	optMasterWeight uint32
	optSeeds        []string
)

func init() {
	setOptionsCmd.Flags().StringVar(&optAccount, "accountid", "", "account to change the options of")
	setOptionsCmd.MarkFlagRequired("accountid")
	setOptionsCmd.Flags().StringVar(&optSigner, "signer", "", "account ID of the signer to add or update")
	setOptionsCmd.Flags().Uint32Var(&optWeight, "weight", 0, "weight of the signer, zero removes it")
	setOptionsCmd.Flags().Uint32Var(&optLow, "low", 0, "low operation threshold")
	setOptionsCmd.Flags().Uint32Var(&optMedium, "medium", 0, "medium operation threshold")
	setOptionsCmd.Flags().Uint32Var(&optHigh, "high", 0, "high operation threshold")
	setOptionsCmd.Flags().Uint32Var(&optMasterWeight, "masterweight", 0, "weight of the master key")
	setOptionsCmd.Flags().StringSliceVar(&optSeeds, "seed", nil, "seeds to sign the envelope with")
	setOptionsCmd.MarkFlagRequired("seed")
	rootCmd.AddCommand(setOptionsCmd)
}
