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

// Package node wires the managers, the store and the gRPC server
// into a runnable luminet node.
package node

import (
	"fmt"
	"net"
	"strings"
	"time"

	"google.golang.org/grpc"

	"github.com/luminet/go-luminet/account"
	"github.com/luminet/go-luminet/client/build"
	"github.com/luminet/go-luminet/contract"
	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/db/boltdb"
	"github.com/luminet/go-luminet/db/memdb"
	"github.com/luminet/go-luminet/future"
	"github.com/luminet/go-luminet/ledger"
	"github.com/luminet/go-luminet/log"
	"github.com/luminet/go-luminet/rpc"
	"github.com/luminet/go-luminet/rpc/rpcpb"
	"github.com/luminet/go-luminet/tx"
)

// Node is the central controller for luminet.
type Node struct {
	database db.Database

	// Network address of this node.
	addr string
	// NodeID and seed of this node.
	nodeID string
	seed   string
	// Start time of the node.
	startTime int64

	config *Config

	server *rpc.NodeServer
	am     *account.Manager
	lm     *ledger.Manager
	tm     *tx.Manager
	cm     *contract.Manager

	// Channel for stopping all the subroutines.
	stopChan chan struct{}

	// Futures for tasks with error responses.
	txFuture       chan *future.Tx
	txsFuture      chan *future.TxStatus
	accountFuture  chan *future.Account
	fundFuture     chan *future.Fund
	deployFuture   chan *future.Deploy
	contractFuture chan *future.Contract
}

// NewNode creates a Node which controls all the sub tasks.
func NewNode(conf *Config) *Node {
	// Get outbound IP.
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()
	netAddr := conn.LocalAddr().(*net.UDPAddr)

	log.Infof("local IP is: %s", netAddr.String())

	addr := strings.Split(netAddr.String(), ":")[0] + ":" + conf.Port
	nodeID := conf.NodeID

	// Create the database store.
	var database db.Database
	switch conf.DBBackend {
	case "boltdb":
		database = boltdb.New(conf.DBPath)
	case "memdb":
		database = memdb.New()
	default:
		log.Fatalf("unsupported db backend %s", conf.DBBackend)
	}

	am := account.NewManager(database, conf.BaseReserve)

	lm := ledger.NewManager(&ledger.ManagerContext{
		Database: database,
		AM:       am,
		BaseFee:  conf.BaseFee,
	})

	tm := tx.NewManager(&tx.ManagerContext{
		Database:    database,
		AM:          am,
		LM:          lm,
		BaseFee:     conf.BaseFee,
		BaseReserve: conf.BaseReserve,
	})

	cm := contract.NewManager(&contract.ManagerContext{
		Database: database,
		AM:       am,
	})

	txFuture := make(chan *future.Tx)
	txsFuture := make(chan *future.TxStatus)
	accountFuture := make(chan *future.Account)
	fundFuture := make(chan *future.Fund)
	deployFuture := make(chan *future.Deploy)
	contractFuture := make(chan *future.Contract)

	serverCtx := &rpc.ServerContext{
		NetworkID:      conf.NetworkID,
		Addr:           addr,
		NodeID:         nodeID,
		TxFuture:       txFuture,
		TxStatusFuture: txsFuture,
		AccountFuture:  accountFuture,
		FundFuture:     fundFuture,
		DeployFuture:   deployFuture,
		ContractFuture: contractFuture,
	}
	nodeServer := rpc.NewNodeServer(serverCtx)

	node := &Node{
		config:         conf,
		database:       database,
		server:         nodeServer,
		am:             am,
		lm:             lm,
		tm:             tm,
		cm:             cm,
		addr:           addr,
		nodeID:         nodeID,
		seed:           conf.Seed,
		startTime:      time.Now().Unix(),
		stopChan:       make(chan struct{}),
		txFuture:       txFuture,
		txsFuture:      txsFuture,
		accountFuture:  accountFuture,
		fundFuture:     fundFuture,
		deployFuture:   deployFuture,
		contractFuture: contractFuture,
	}

	return node
}

// Start checks the provided configurations, if the config is valid,
// it will trigger sub goroutines to do the sub tasks.
func (n *Node) Start(newnode bool) {
	// Start the node server.
	go n.serveNode()

	// Start the node event loop.
	go n.eventLoop()

	if newnode {
		err := n.am.CreateMasterAccount(n.config.NetworkIDBytes[:], n.config.MasterBalance)
		if err != nil {
			log.Fatalf("create master account failed: %v", err)
		}
	}

	for {
		select {
		case <-n.stopChan:
			return
		}
	}
}

// Close node by signaling all the goroutines to stop.
func (n *Node) Stop() {
	close(n.stopChan)
	if err := n.database.Close(); err != nil {
		log.Errorf("close database failed: %v", err)
	}
}

// Event loop for processing internal queries.
func (n *Node) eventLoop() {
	logger := log.Named("node")
	for {
		select {
		case txs := <-n.txsFuture:
			txstatus, err := n.tm.GetTxStatus(txs.TxKey)
			if err != nil {
				logger.Errorw("query tx status failed", "err", err, "tx", txs.TxKey)
			}
			txs.TxStatus = txstatus
			txs.Respond(err)
		case acc := <-n.accountFuture:
			account, err := n.am.GetAccount(n.database, acc.AccountID)
			if err != nil {
				logger.Errorw("get account failed", "err", err, "accountID", acc.AccountID)
			}
			acc.Account = account
			acc.Respond(err)
		case ff := <-n.fundFuture:
			txKey, err := n.fundAccount(ff.AccountID, ff.Balance)
			if err != nil {
				logger.Errorw("fund account failed", "err", err, "accountID", ff.AccountID)
			}
			ff.TxKey = txKey
			ff.Respond(err)
		case df := <-n.deployFuture:
			contractID, err := n.cm.Deploy(df.AccountID, df.Name)
			if err != nil {
				logger.Errorw("deploy contract failed", "err", err, "accountID", df.AccountID)
			}
			df.ContractID = contractID
			df.Respond(err)
		case cf := <-n.contractFuture:
			var result int64
			var err error
			if cf.Apply {
				result, err = n.cm.Invoke(cf.Invocation, cf.Signature)
			} else {
				result, err = n.cm.Simulate(cf.Invocation)
			}
			if err != nil {
				logger.Errorw("run contract invocation failed", "err", err, "contractID", cf.Invocation.ContractID)
			}
			cf.Result = result
			cf.Respond(err)
		case <-n.stopChan:
			logger.Info("shutdown event loop")
			return
		}
	}
}

// ServeNode starts a listener on the port and starts to accept external requests.
func (n *Node) serveNode() {
	listener, err := net.Listen("tcp", ":"+n.config.Port)
	if err != nil {
		log.Fatal(err)
	}

	s := grpc.NewServer()
	rpcpb.RegisterNodeServer(s, n.server)

	logger := log.Named("rpc")
	logger.Infof("start to serve gRPC server on %s", n.addr)
	go s.Serve(listener)

	for {
		select {
		case txf := <-n.txFuture:
			err := n.tm.SubmitTx(txf.TxKey, txf.TxEnv)
			if err != nil {
				logger.Errorf("submit tx failed: %v", err)
			}
			txf.Respond(err)
		case <-n.stopChan:
			logger.Infof("gracefully shutdown gRPC server")
			s.GracefulStop()
			return
		}
	}
}

// Fund a new account by submitting a create account tx from
// the master account.
func (n *Node) fundAccount(accountID string, balance int64) (string, error) {
	masterPK, masterSeed, err := crypto.GetAccountKeypairFromSeed(n.config.NetworkIDBytes[:])
	if err != nil {
		return "", fmt.Errorf("derive master keypair failed: %v", err)
	}

	acc, err := n.am.GetAccount(n.database, masterPK)
	if err != nil {
		return "", fmt.Errorf("get master account failed: %v", err)
	}
	if acc == nil {
		return "", fmt.Errorf("master account not exist")
	}

	t := build.NewTx()
	err = t.Add(
		&build.AccountID{AccountID: masterPK},
		&build.SeqNum{SeqNum: acc.SeqNum + 1},
		&build.CreateAccount{AccountID: accountID, Balance: balance},
	)
	if err != nil {
		return "", fmt.Errorf("build create account tx failed: %v", err)
	}

	env, err := t.Envelope()
	if err != nil {
		return "", fmt.Errorf("build tx envelope failed: %v", err)
	}
	if err := env.Sign(masterSeed); err != nil {
		return "", fmt.Errorf("sign tx envelope failed: %v", err)
	}

	txKey, err := env.TxKey()
	if err != nil {
		return "", fmt.Errorf("get tx key failed: %v", err)
	}

	if err := n.tm.SubmitTx(txKey, env.TxEnv); err != nil {
		return "", err
	}

	return txKey, nil
}
