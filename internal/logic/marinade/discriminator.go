package marinade

import (
	"crypto/sha256"
	"encoding/binary"
)

// anchor 程序的指令 tag：sha256("global:<方法名>") 的前 8 字节。
// 这里统一按大端序读成 uint64，便于当作常量比较与打印。
func MethodID(name string) uint64 {
	sum := sha256.Sum256([]byte("global:" + name))
	return binary.BigEndian.Uint64(sum[:8])
}

// AccountTag 是 anchor 账户判别 tag：sha256("account:<类型名>") 的前 8 字节。
func AccountTag(name string) uint64 {
	sum := sha256.Sum256([]byte("account:" + name))
	return binary.BigEndian.Uint64(sum[:8])
}

// DepositMethod 是 deposit 指令的固定 tag 字面量，
// 与 MethodID("deposit") 推导结果一致（单测中互相校验）。
const DepositMethod uint64 = 0xf223c68952e1f2b6

// StateAccountTag 是 State 账户数据前 8 字节的预期值。
var StateAccountTag = AccountTag("State")

// 会改变活跃质押总额 / 储备金 / 冷却中余额 / mSOL 供应量的指令全集，
// 取自协议公布的指令表。该表是人工维护的封闭清单：协议新增指令时
// 必须在这里补登，未登记的 tag 一律按"不影响估值"处理（保守默认）。
var mutatingMethodNames = []string{
	"initialize",
	"add_validator",
	"remove_validator",
	"deposit",
	"deposit_stake_account",
	"liquid_unstake",
	"add_liquidity",
	"remove_liquidity",
	"order_unstake",
	"claim",
	"stake_reserve",
	"update_active",
	"update_deactivated",
	"deactivate_stake",
	"emergency_unstake",
	"partial_unstake",
	"merge_stakes",
	"redelegate",
	"withdraw_stake_account",
}

// tag → 方法名，进程启动时构建一次，之后只读。
var stateMutatingMethods = func() map[uint64]string {
	m := make(map[uint64]string, len(mutatingMethodNames))
	for _, name := range mutatingMethodNames {
		m[MethodID(name)] = name
	}
	return m
}()

// IsStateMutating 判断指令 tag 是否属于影响估值的已登记集合。
func IsStateMutating(method uint64) bool {
	_, ok := stateMutatingMethods[method]
	return ok
}

// MutatingMethodName 返回已登记 tag 对应的方法名。
func MutatingMethodName(method uint64) (string, bool) {
	name, ok := stateMutatingMethods[method]
	return name, ok
}

// MutatingMethodNames 返回登记清单的副本（只读语义，调用方可安全持有）。
func MutatingMethodNames() []string {
	out := make([]string, len(mutatingMethodNames))
	copy(out, mutatingMethodNames)
	return out
}
