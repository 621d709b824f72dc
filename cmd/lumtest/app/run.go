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

	"github.com/luminet/go-luminet/client"
	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/log"
	"github.com/luminet/go-luminet/test"
)

var (
	endpoints string
	networkID string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the series of test cases.",
	Run: func(cmd *cobra.Command, args []string) {
		cli, err := client.New(crypto.SHA256Hash([]byte(networkID)), endpoints)
		if err != nil {
			log.Fatalf("create network client failed: %v", err)
		}

		cases := test.GetAll()
		for _, c := range cases {
			log.Infow("run the test case", "desc", c.Desc())
			err := c.Run(cli)
			if err != nil {
				log.Errorw("testcase failed", "desc", c.Desc(), "err", err.Error())
			}
		}
		log.Infof("finished all the %d testcases", len(cases))
	},
}

func init() {
	runCmd.Flags().StringVarP(&endpoints, "endpoints", "", "", "Endpoints of the luminet nodes.")
	runCmd.Flags().StringVarP(&networkID, "networkid", "", "", "Network ID the nodes run with.")
	runCmd.MarkFlagRequired("endpoints")
	runCmd.MarkFlagRequired("networkid")
	rootCmd.AddCommand(runCmd)
}
