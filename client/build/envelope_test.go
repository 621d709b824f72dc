package build

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/lumpb"
)

func testEnvelope(t *testing.T, src string) *Envelope {
	dst := testAccountID(t)

	tx := NewTx()
	err := tx.Add(
		&AccountID{AccountID: src},
		&SeqNum{SeqNum: 1},
		&Payment{AccountID: dst, Amount: 1000, Asset: &Asset{AssetType: NATIVE}},
	)
	assert.Nil(t, err)

	env, err := tx.Envelope()
	assert.Nil(t, err)
	return env
}

func TestEnvelopeSign(t *testing.T) {
	src, seed, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)

	env := testEnvelope(t, src)
	assert.Nil(t, env.Sign(seed))
	assert.Equal(t, 1, len(env.TxEnv.Signatures))
	assert.Equal(t, src, env.TxEnv.Signatures[0].SignerID)

	payload, err := env.Payload()
	assert.Nil(t, err)
	assert.True(t, crypto.Verify(src, env.TxEnv.Signatures[0].Signature, payload))

	// Signing with an account id instead of a seed fails.
	assert.NotNil(t, env.Sign(src))

	// Re-signing by the same signer does not duplicate the
	// signature.
	assert.Nil(t, env.Sign(seed))
	assert.Equal(t, 1, len(env.TxEnv.Signatures))
}

func TestEnvelopeSignCommutative(t *testing.T) {
	src, seedA, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	_, seedB, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)

	envAB := testEnvelope(t, src)
	assert.Nil(t, envAB.Sign(seedA))
	assert.Nil(t, envAB.Sign(seedB))

	envBA := testEnvelope(t, src)
	// The dst account differs between the two envelopes so
	// compare signatures over the same envelope payload instead
	// of the whole envelope.
	envBA.TxEnv.Tx = envAB.TxEnv.Tx
	assert.Nil(t, envBA.Sign(seedB))
	assert.Nil(t, envBA.Sign(seedA))

	// Both orders produce valid signatures over the same
	// payload with the same distinct signer set.
	payloadAB, err := envAB.Payload()
	assert.Nil(t, err)
	payloadBA, err := envBA.Payload()
	assert.Nil(t, err)
	assert.Equal(t, payloadAB, payloadBA)

	signers := func(env *Envelope) map[string]string {
		m := make(map[string]string)
		for _, s := range env.TxEnv.Signatures {
			m[s.SignerID] = s.Signature
		}
		return m
	}
	assert.Equal(t, signers(envAB), signers(envBA))
}

func TestEnvelopeRoundTrip(t *testing.T) {
	src, seedA, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)
	_, seedB, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)

	env := testEnvelope(t, src)
	payload, err := env.Payload()
	assert.Nil(t, err)
	txKey, err := env.TxKey()
	assert.Nil(t, err)

	assert.Nil(t, env.Sign(seedA))

	// Hand off the partially signed envelope and reconstruct it.
	b, err := env.Marshal()
	assert.Nil(t, err)
	env2, err := UnmarshalEnvelope(b)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(env2.TxEnv.Signatures))

	// The signing payload and the tx key are not perturbed by
	// the round trip.
	payload2, err := env2.Payload()
	assert.Nil(t, err)
	assert.Equal(t, payload, payload2)
	txKey2, err := env2.TxKey()
	assert.Nil(t, err)
	assert.Equal(t, txKey, txKey2)

	// The second signer signs the reconstructed envelope and
	// both signatures verify.
	assert.Nil(t, env2.Sign(seedB))
	assert.Equal(t, 2, len(env2.TxEnv.Signatures))
	for _, s := range env2.TxEnv.Signatures {
		assert.True(t, crypto.Verify(s.SignerID, s.Signature, payload))
	}
}

func TestEnvelopeSignWith(t *testing.T) {
	src, seed, err := crypto.GetAccountKeypair()
	assert.Nil(t, err)

	env := testEnvelope(t, src)
	assert.Nil(t, env.SignWith(&SeedSigner{Seed: seed}))
	assert.Equal(t, src, env.TxEnv.Signatures[0].SignerID)
}

func TestUnmarshalEnvelopeInvalid(t *testing.T) {
	_, err := UnmarshalEnvelope([]byte("not an envelope"))
	assert.NotNil(t, err)

	b, err := lumpb.Encode(&lumpb.TxEnvelope{})
	assert.Nil(t, err)
	_, err = UnmarshalEnvelope(b)
	assert.NotNil(t, err)
}
