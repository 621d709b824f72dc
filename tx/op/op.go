package op

import (
	"errors"

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/lumpb"
)

// Op represents the interface with which various
// transaction operations should comply.
type Op interface {
	Apply(dt db.Tx) error
}

func ValidateAsset(asset *lumpb.Asset) error {
	if asset == nil {
		return errors.New("asset is nil")
	}
	if asset.AssetType == lumpb.AssetType_NATIVE {
		return nil
	}
	if len(asset.AssetName) <= 0 || len(asset.AssetName) > 4 {
		return errors.New("invalid asset name")
	}
	if !crypto.IsValidAccountKey(asset.Issuer) {
		return errors.New("invalid asset issuer account key")
	}
	return nil
}
