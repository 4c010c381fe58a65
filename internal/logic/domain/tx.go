package domain

import (
	"lst-valuation-sol/internal/types"
)

// Transaction 表示已解析的链上交易结构，包含指令、账户与余额变动信息。
type Transaction struct {
	Signature string       // 交易签名（base58 字符串）
	Slot      uint64       // 所属区块 Slot（Solana 高度单位）
	BlockTime *int64       // 区块时间戳（Unix 秒级），RPC 可能缺失
	Signer    types.Pubkey // 交易发起者（通常为 accountKeys[0]）

	// 完整账户列表：静态 accountKeys + Address Lookup Table 扩展的
	// writable / readonly 地址，保持链上顺序，供 accountIndex 索引使用
	AccountKeys []types.Pubkey

	Instructions []Instruction // 主指令列表（保持原始顺序）

	// 余额快照：与 AccountKeys 对齐的 lamports 余额，以及涉及
	// SPL Token 账户的 token 余额变更；余额差分策略依赖这两组数据
	PreLamports   []int64
	PostLamports  []int64
	TokenBalances map[types.Pubkey]*TokenBalance
}

// KeyIndex 返回 pubkey 在完整账户列表中的位置，不存在时返回 -1。
func (tx *Transaction) KeyIndex(key types.Pubkey) int {
	for i, k := range tx.AccountKeys {
		if k == key {
			return i
		}
	}
	return -1
}

// LamportDiff 返回指定账户执行前后的 lamports 余额，余额快照缺失或
// 账户不在本交易中时 ok=false。
func (tx *Transaction) LamportDiff(key types.Pubkey) (pre, post int64, ok bool) {
	idx := tx.KeyIndex(key)
	if idx < 0 || idx >= len(tx.PreLamports) || idx >= len(tx.PostLamports) {
		return 0, 0, false
	}
	return tx.PreLamports[idx], tx.PostLamports[idx], true
}
