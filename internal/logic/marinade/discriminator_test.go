package marinade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodIDDeterministic(t *testing.T) {
	for _, name := range MutatingMethodNames() {
		assert.Equal(t, MethodID(name), MethodID(name), "name=%s", name)
	}
}

func TestDepositLiteralMatchesDerived(t *testing.T) {
	// 固定字面量必须与按名称推导的 anchor tag 一致
	assert.Equal(t, DepositMethod, MethodID("deposit"))
}

func TestMutatingSetNoCollisions(t *testing.T) {
	names := MutatingMethodNames()
	seen := make(map[uint64]string, len(names))
	for _, name := range names {
		id := MethodID(name)
		prev, dup := seen[id]
		require.False(t, dup, "tag collision: %s vs %s", prev, name)
		seen[id] = name
	}
	assert.Len(t, seen, len(names))
}

func TestIsStateMutating(t *testing.T) {
	assert.True(t, IsStateMutating(DepositMethod))
	assert.True(t, IsStateMutating(MethodID("liquid_unstake")))
	assert.True(t, IsStateMutating(MethodID("withdraw_stake_account")))

	// 不影响估值的指令不在登记集合内
	assert.False(t, IsStateMutating(MethodID("change_authority")))
	assert.False(t, IsStateMutating(MethodID("set_validator_score")))
	assert.False(t, IsStateMutating(MethodID("pause")))
	assert.False(t, IsStateMutating(0))
}

func TestMutatingMethodName(t *testing.T) {
	name, ok := MutatingMethodName(DepositMethod)
	require.True(t, ok)
	assert.Equal(t, "deposit", name)

	_, ok = MutatingMethodName(MethodID("resume"))
	assert.False(t, ok)
}

func TestMutatingMethodNamesIsCopy(t *testing.T) {
	names := MutatingMethodNames()
	names[0] = "tampered"
	assert.Equal(t, "initialize", MutatingMethodNames()[0])
}

func TestDecodeAmountArg(t *testing.T) {
	data := make([]byte, 16)
	// tag 之后为 borsh 编码的 u64（little-endian）
	for i, b := range []byte{0x40, 0xe2, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00} { // 123456
		data[8+i] = b
	}

	amount, ok := DecodeAmountArg(DepositMethod, data)
	require.True(t, ok)
	assert.Equal(t, uint64(123456), amount)

	// 未登记金额参数的指令
	_, ok = DecodeAmountArg(MethodID("claim"), data)
	assert.False(t, ok)

	// 数据不足
	_, ok = DecodeAmountArg(DepositMethod, data[:10])
	assert.False(t, ok)
}
