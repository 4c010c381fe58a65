package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryPubkeyFromBase58(t *testing.T) {
	t.Run("valid 32-byte pubkey", func(t *testing.T) {
		p, err := TryPubkeyFromBase58("So11111111111111111111111111111111111111112")
		assert.NoError(t, err)
		assert.Equal(t, "So11111111111111111111111111111111111111112", p.String())
	})

	t.Run("invalid base58", func(t *testing.T) {
		_, err := TryPubkeyFromBase58("not-base58-0OIl")
		assert.Error(t, err)
	})

	t.Run("wrong length", func(t *testing.T) {
		// base58("abc") 解码后长度不足 32 字节
		_, err := TryPubkeyFromBase58("abc")
		assert.Error(t, err)
	})
}

func TestTryPubkeyFromBytes(t *testing.T) {
	raw := make([]byte, 32)
	raw[0] = 0x7f
	p, err := TryPubkeyFromBytes(raw)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x7f), p[0])

	_, err = TryPubkeyFromBytes(raw[:31])
	assert.Error(t, err)
}

func TestPubkeyIsZero(t *testing.T) {
	var zero Pubkey
	assert.True(t, zero.IsZero())
	assert.False(t, PubkeyFromBase58("So11111111111111111111111111111111111111112").IsZero())
}
