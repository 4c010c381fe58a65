package domain

import "lst-valuation-sol/internal/types"

// TokenBalance 表示某个 SPL Token 账户在交易执行前后的余额信息。
type TokenBalance struct {
	Decimals     uint8  // Token 精度（如 mSOL 是 9）
	PreBalance   uint64 // 交易执行前余额（最小单位）
	PostBalance  uint64 // 交易执行后余额
	HasPre       bool   // Pre 快照中是否存在该账户
	HasPost      bool   // Post 快照中是否存在该账户（账户可能在交易中被销毁）
	TokenAccount types.Pubkey
	Token        types.Pubkey
	Owner        string
}
