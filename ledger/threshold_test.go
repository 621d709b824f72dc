package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminet/go-luminet/lumpb"
)

func TestOpLevel(t *testing.T) {
	assert.Equal(t, LevelLow, OpLevel(&lumpb.Op{OpType: lumpb.OpType_ALLOW_TRUST}))
	assert.Equal(t, LevelHigh, OpLevel(&lumpb.Op{OpType: lumpb.OpType_SET_OPTIONS}))
	assert.Equal(t, LevelMedium, OpLevel(&lumpb.Op{OpType: lumpb.OpType_PAYMENT}))
	assert.Equal(t, LevelMedium, OpLevel(&lumpb.Op{OpType: lumpb.OpType_CREATE_ACCOUNT}))
	assert.Equal(t, LevelMedium, OpLevel(&lumpb.Op{OpType: lumpb.OpType_TRUST}))
	assert.Equal(t, LevelMedium, OpLevel(&lumpb.Op{OpType: lumpb.OpType_CLAWBACK}))
	assert.Equal(t, LevelMedium, OpLevel(&lumpb.Op{OpType: lumpb.OpType_BEGIN_SPONSOR}))
}

func TestRequiredLevel(t *testing.T) {
	// The required level of a tx is the maximum across its ops.
	tx := &lumpb.Tx{
		OpList: []*lumpb.Op{
			{OpType: lumpb.OpType_ALLOW_TRUST},
			{OpType: lumpb.OpType_PAYMENT},
		},
	}
	assert.Equal(t, LevelMedium, RequiredLevel(tx))

	tx.OpList = append(tx.OpList, &lumpb.Op{OpType: lumpb.OpType_SET_OPTIONS})
	assert.Equal(t, LevelHigh, RequiredLevel(tx))

	tx = &lumpb.Tx{
		OpList: []*lumpb.Op{{OpType: lumpb.OpType_ALLOW_TRUST}},
	}
	assert.Equal(t, LevelLow, RequiredLevel(tx))
}

func TestRequiredWeight(t *testing.T) {
	acc := &lumpb.Account{
		Thresholds: &lumpb.Thresholds{Low: 1, Medium: 2, High: 3},
	}
	assert.Equal(t, uint32(1), RequiredWeight(acc, LevelLow))
	assert.Equal(t, uint32(2), RequiredWeight(acc, LevelMedium))
	assert.Equal(t, uint32(3), RequiredWeight(acc, LevelHigh))

	// Missing thresholds resolve to zero.
	acc = &lumpb.Account{}
	assert.Equal(t, uint32(0), RequiredWeight(acc, LevelHigh))
}
