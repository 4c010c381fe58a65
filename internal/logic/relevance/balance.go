package relevance

import (
	"lst-valuation-sol/internal/consts"
	"lst-valuation-sol/internal/logic/domain"
	"lst-valuation-sol/internal/pkg/logger"
	"lst-valuation-sol/internal/types"
)

// BalanceDiffClassifier 通过交易自带的前后余额快照判定相关性，
// 免去一次额外的账户查询：
//   - 储备金维度：Marinade 储备 PDA 在完整账户列表中的 lamports 前后有差；
//   - 供应量维度：本交易内 mSOL mint 名下 token 余额合计前后有差
//     （转账只改分布不改合计，合计变化即发生了 mint/burn）。
//
// 任一快照列表缺失时硬判"不相关"（非错误）。已知局限：只动冷却中
// 余额、不触碰储备与供应量的操作（如 emergency_unstake）在余额快照上
// 不可见，本策略会漏判——这正是两种策略可能分歧的边界，不做合并。
type BalanceDiffClassifier struct {
	reserve  types.Pubkey
	msolMint types.Pubkey
}

func NewBalanceDiffClassifier() *BalanceDiffClassifier {
	return &BalanceDiffClassifier{
		reserve:  consts.MarinadeReserve,
		msolMint: consts.MSOLMint,
	}
}

func (c *BalanceDiffClassifier) Name() string { return "balance" }

func (c *BalanceDiffClassifier) Relevant(tx *domain.Transaction) bool {
	if len(tx.PreLamports) == 0 || len(tx.PostLamports) == 0 {
		return false
	}

	if pre, post, ok := tx.LamportDiff(c.reserve); ok && pre != post {
		logger.Debugf("[relevance:balance] 储备金变动 %d -> %d, tx=%s", pre, post, tx.Signature)
		return true
	}

	var preSum, postSum uint64
	seen := false
	for _, tb := range tx.TokenBalances {
		if !tb.Token.Equals(c.msolMint) {
			continue
		}
		seen = true
		if tb.HasPre {
			preSum += tb.PreBalance
		}
		if tb.HasPost {
			postSum += tb.PostBalance
		}
	}
	if seen && preSum != postSum {
		logger.Debugf("[relevance:balance] mSOL 合计变动 %d -> %d, tx=%s", preSum, postSum, tx.Signature)
		return true
	}
	return false
}
