package relevance

import (
	"encoding/binary"

	"lst-valuation-sol/internal/consts"
	"lst-valuation-sol/internal/logic/domain"
	"lst-valuation-sol/internal/logic/marinade"
	"lst-valuation-sol/internal/pkg/logger"
	"lst-valuation-sol/internal/types"
)

// InstructionClassifier 通过指令 tag 匹配判定相关性：
// 程序地址命中 Marinade 主程序，且指令前 8 字节落在已登记的
// mutating tag 集合内，即视为相关。
//
// 程序地址比对基于完整账户列表（静态 accountKeys + lookup table 扩展，
// 上游 txadapter 已合并），否则 v0 交易会漏判。
// 未登记的 tag 按"不相关"处理——这是沿用协议侧的保守默认，
// 改变该默认会直接改变哪些交易被报告为影响价格。
type InstructionClassifier struct {
	program types.Pubkey
}

func NewInstructionClassifier() *InstructionClassifier {
	return &InstructionClassifier{program: consts.MarinadeProgram}
}

func (c *InstructionClassifier) Name() string { return "instruction" }

func (c *InstructionClassifier) Relevant(tx *domain.Transaction) bool {
	for _, ix := range tx.Instructions {
		if !ix.ProgramID.Equals(c.program) {
			continue
		}
		// 不足 8 字节的 payload 无法携带 tag
		if len(ix.Data) < 8 {
			continue
		}
		method := binary.BigEndian.Uint64(ix.Data[:8])
		if !marinade.IsStateMutating(method) {
			continue
		}

		name, _ := marinade.MutatingMethodName(method)
		if amount, ok := marinade.DecodeAmountArg(method, ix.Data); ok {
			logger.Debugf("[relevance:instruction] 命中 %s, amount=%d, tx=%s", name, amount, tx.Signature)
		} else {
			logger.Debugf("[relevance:instruction] 命中 %s, tx=%s", name, tx.Signature)
		}
		return true
	}
	return false
}
