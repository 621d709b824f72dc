// Package future defines some futures as messages
// to communicate between rpc server and node.
package future

import (
	"github.com/luminet/go-luminet/lumpb"
	"github.com/luminet/go-luminet/rpc/rpcpb"
)

type Future interface {
	Error() error
}

// Allow a future to respond an error in the future
type deferError struct {
	err       error
	errChan   chan error
	responded bool
}

// Every future should call this method to initialize
// underlying error channel
func (d *deferError) Init() {
	d.errChan = make(chan error, 1)
}

// Each future should respond error once and multiple
// calling with different error on the same future will
// have no effects.
func (d *deferError) Respond(err error) {
	if d.errChan == nil || d.responded {
		return
	}
	d.errChan <- err
	close(d.errChan)
	d.responded = true
}

// Error always return the first responded error
func (d *deferError) Error() error {
	if d.err != nil {
		return d.err
	}
	if d.errChan == nil {
		panic("waiting for response on nil channel")
	}
	d.err = <-d.errChan
	return d.err
}

// Future for node server to hand a tx envelope to the tx manager
type Tx struct {
	deferError
	TxKey string
	TxEnv *lumpb.TxEnvelope
}

// Future for node server to query tx status
type TxStatus struct {
	deferError
	TxKey    string
	TxStatus *rpcpb.TxStatus
}

// Future for node server to query accounts
type Account struct {
	deferError
	AccountID string
	Account   *lumpb.Account
}

// Future for node server to fund a new account from the master account
type Fund struct {
	deferError
	AccountID string
	Balance   int64
	TxKey     string
}

// Future for node server to deploy a contract
type Deploy struct {
	deferError
	AccountID  string
	Name       string
	ContractID string
}

// Future for node server to run a contract invocation
type Contract struct {
	deferError
	Invocation *lumpb.ContractInvocation
	// Signature of the encoded invocation, empty for simulation.
	Signature string
	Apply     bool
	Result    int64
}
