package relevance

import (
	"encoding/binary"
	"testing"

	"lst-valuation-sol/internal/consts"
	"lst-valuation-sol/internal/logic/domain"
	"lst-valuation-sol/internal/logic/marinade"
	"lst-valuation-sol/internal/types"

	"github.com/stretchr/testify/assert"
)

func ixWithMethod(program types.Pubkey, method uint64) domain.Instruction {
	data := make([]byte, 16)
	binary.BigEndian.PutUint64(data[:8], method)
	return domain.Instruction{ProgramID: program, Data: data}
}

func txWithInstructions(ixs ...domain.Instruction) *domain.Transaction {
	return &domain.Transaction{
		Signature:    "test-signature",
		Instructions: ixs,
	}
}

func TestInstructionClassifierRelevant(t *testing.T) {
	c := NewInstructionClassifier()
	otherProgram := consts.TokenProgram

	t.Run("no instructions is never relevant", func(t *testing.T) {
		assert.False(t, c.Relevant(txWithInstructions()))
	})

	t.Run("single registered tag is always relevant", func(t *testing.T) {
		tx := txWithInstructions(ixWithMethod(consts.MarinadeProgram, marinade.DepositMethod))
		assert.True(t, c.Relevant(tx))
	})

	t.Run("registered tag on wrong program", func(t *testing.T) {
		tx := txWithInstructions(ixWithMethod(otherProgram, marinade.DepositMethod))
		assert.False(t, c.Relevant(tx))
	})

	t.Run("unregistered tag on target program", func(t *testing.T) {
		tx := txWithInstructions(ixWithMethod(consts.MarinadeProgram, marinade.MethodID("pause")))
		assert.False(t, c.Relevant(tx))
	})

	t.Run("payload shorter than tag is skipped", func(t *testing.T) {
		tx := txWithInstructions(domain.Instruction{
			ProgramID: consts.MarinadeProgram,
			Data:      []byte{0xf2, 0x23, 0xc6}, // 不足 8 字节
		})
		assert.False(t, c.Relevant(tx))
	})

	t.Run("one match among unrelated instructions", func(t *testing.T) {
		tx := txWithInstructions(
			ixWithMethod(otherProgram, 0xdeadbeef),
			domain.Instruction{ProgramID: consts.MarinadeProgram, Data: nil},
			ixWithMethod(consts.MarinadeProgram, marinade.MethodID("liquid_unstake")),
		)
		assert.True(t, c.Relevant(tx))
	})
}

func TestForName(t *testing.T) {
	c, err := ForName("")
	assert.NoError(t, err)
	assert.Equal(t, "instruction", c.Name())

	c, err = ForName("balance")
	assert.NoError(t, err)
	assert.Equal(t, "balance", c.Name())

	_, err = ForName("bogus")
	assert.Error(t, err)
}
