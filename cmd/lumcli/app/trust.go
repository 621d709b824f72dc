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

var trustCmd = &cobra.Command{
	Use:   "trust",
	Short: "Create or update a trustline for a custom asset",
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()

		a := build.NewAssembler(c)
		env, err := a.Assemble(trustFrom,
			&build.Trust{
				Asset: &build.Asset{
					AssetType: build.CUSTOM,
					AssetName: trustAssetName,
					Issuer:    trustIssuer,
				},
				Limit: trustLimit,
			},
		)
		if err != nil {
			log.Fatalf("assemble trust failed: %v", err)
		}

		signAndSubmit(c, env, trustSeeds)
	},
}

var allowTrustCmd = &cobra.Command{
	Use:   "allowtrust",
	Short: "Authorize or deauthorize a trustline for an asset you issue",
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()

		a := build.NewAssembler(c)
		env, err := a.Assemble(allowTrustIssuer,
			&build.AllowTrust{
				AccountID: allowTrustAccount,
				Asset: &build.Asset{
					AssetType: build.CUSTOM,
					AssetName: allowTrustAssetName,
					Issuer:    allowTrustIssuer,
				},
				Authorize: allowTrustAuthorize,
			},
		)
		if err != nil {
			log.Fatalf("assemble allowtrust failed: %v", err)
		}

		signAndSubmit(c, env, allowTrustSeeds)
	},
}

var (
	trustFrom      string
	trustAssetName string
	trustIssuer    string
	trustLimit     int64
	trustSeeds     []string

	allowTrustIssuer    string
	allowTrustAccount   string
	allowTrustAssetName string
	allowTrustAuthorize bool
	allowTrustSeeds     []string
)

func init() {
	trustCmd.Flags().StringVar(&trustFrom, "from", "", "account creating the trustline")
	trustCmd.MarkFlagRequired("from")
	trustCmd.Flags().StringVar(&trustAssetName, "asset", "", "name of the asset to trust")
	trustCmd.MarkFlagRequired("asset")
	trustCmd.Flags().StringVar(&trustIssuer, "issuer", "", "issuer of the asset")
	trustCmd.MarkFlagRequired("issuer")
	trustCmd.Flags().Int64Var(&trustLimit, "limit", 0, "maximum amount of the asset to hold")
	trustCmd.MarkFlagRequired("limit")
	trustCmd.Flags().StringSliceVar(&trustSeeds, "seed", nil, "seeds to sign the envelope with")
	trustCmd.MarkFlagRequired("seed")
	rootCmd.AddCommand(trustCmd)

	allowTrustCmd.Flags().StringVar(&allowTrustIssuer, "issuerid", "", "issuing account of the asset")
	allowTrustCmd.MarkFlagRequired("issuerid")
	allowTrustCmd.Flags().StringVar(&allowTrustAccount, "accountid", "", "account holding the trustline")
	allowTrustCmd.MarkFlagRequired("accountid")
	allowTrustCmd.Flags().StringVar(&allowTrustAssetName, "asset", "", "name of the asset")
	allowTrustCmd.MarkFlagRequired("asset")
	allowTrustCmd.Flags().BoolVar(&allowTrustAuthorize, "authorize", true, "whether to authorize the trustline")
	allowTrustCmd.Flags().StringSliceVar(&allowTrustSeeds, "seed", nil, "seeds to sign the envelope with")
	allowTrustCmd.MarkFlagRequired("seed")
	rootCmd.AddCommand(allowTrustCmd)
}
