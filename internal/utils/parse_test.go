package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lst-valuation-sol/internal/consts"
)

func TestParseUint64(t *testing.T) {
	assert.Equal(t, uint64(0), ParseUint64(""))
	assert.Equal(t, uint64(0), ParseUint64("abc"))
	assert.Equal(t, uint64(123456789), ParseUint64("123456789"))
	assert.Equal(t, uint64(18446744073709551615), ParseUint64("18446744073709551615"))
	assert.Equal(t, uint64(0), ParseUint64("-1"))
}

func TestIsSPLToken(t *testing.T) {
	assert.True(t, IsSPLToken(consts.TokenProgramStr))
	assert.True(t, IsSPLToken(consts.TokenProgram2022Str))
	assert.False(t, IsSPLToken(consts.MarinadeProgramStr))
	assert.False(t, IsSPLToken(""))
}
