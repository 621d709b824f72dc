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
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luminet/go-luminet/log"
	"github.com/luminet/go-luminet/node"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the node with config",
	Long: `Start a luminet node with specified configuration, the program will
try to recover from previous saved states if the --newnode command arg
is not specified or it will bootstrap a completely new node.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Read in config file.
		if cfgFile == "" {
			log.Fatal(errors.New("config file not provided"))
		}
		v := viper.New()
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		// Init node config from viper.
		c, err := node.NewConfig(v)
		if err != nil {
			log.Fatal(err)
		}
		// Bootstrap a luminet node.
		n := node.NewNode(c)
		n.Start(newnode)
	},
}

var (
	cfgFile string
	newnode bool
)

func init() {
	startCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "path of the config file")
	startCmd.MarkFlagRequired("config")
	startCmd.Flags().BoolVarP(&newnode, "newnode", "n", false, "bootstrap a new node")
	rootCmd.AddCommand(startCmd)
}
