package node

import (
	"crypto/sha256"
	"errors"

	"github.com/spf13/viper"

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/ledger"
)

type Config struct {
	// Base58 encoded hash of the network ID, used to fence off
	// requests from other networks.
	NetworkID string
	// Raw hash of the network ID, the master account keypair is
	// derived from it.
	NetworkIDBytes [32]byte
	// Listen port of the server.
	Port string
	// Node ID (public key derived from seed).
	NodeID string
	// Seed of this node.
	Seed string
	// Database backend, boltdb or memdb.
	DBBackend string
	// Database file path.
	DBPath string
	// Fee of a single op.
	BaseFee int64
	// Reserve of a single account entry.
	BaseReserve int64
	// Initial balance of the master account.
	MasterBalance int64
}

func NewConfig(v *viper.Viper) (*Config, error) {
	if v.GetString("network_id") == "" {
		return nil, errors.New("network ID is missing")
	}
	if v.GetString("port") == "" {
		return nil, errors.New("network port is missing")
	}
	if v.GetString("node_id") == "" {
		return nil, errors.New("node ID is empty")
	}
	if v.GetString("seed") == "" {
		return nil, errors.New("node seed is empty")
	}
	if !crypto.IsValidKey(v.GetString("node_id")) {
		return nil, errors.New("node ID is invalid")
	}
	if v.GetString("db_backend") == "" {
		return nil, errors.New("db backend is empty")
	}
	if v.GetString("db_backend") != "boltdb" && v.GetString("db_backend") != "memdb" {
		return nil, errors.New("unsupported db backend")
	}
	if v.GetString("db_backend") == "boltdb" && v.GetString("db_path") == "" {
		return nil, errors.New("db path is empty")
	}

	v.SetDefault("base_fee", ledger.GenesisBaseFee)
	v.SetDefault("base_reserve", ledger.GenesisBaseReserve)
	v.SetDefault("master_balance", ledger.GenesisTotalSupply)

	networkIDBytes := sha256.Sum256([]byte(v.GetString("network_id")))

	u := Config{
		NetworkID:      crypto.SHA256Hash([]byte(v.GetString("network_id"))),
		NetworkIDBytes: networkIDBytes,
		Port:           v.GetString("port"),
		NodeID:         v.GetString("node_id"),
		Seed:           v.GetString("seed"),
		DBBackend:      v.GetString("db_backend"),
		DBPath:         v.GetString("db_path"),
		BaseFee:        v.GetInt64("base_fee"),
		BaseReserve:    v.GetInt64("base_reserve"),
		MasterBalance:  v.GetInt64("master_balance"),
	}

	return &u, nil
}
