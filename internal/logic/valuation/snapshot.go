package valuation

import (
	"lst-valuation-sol/internal/consts"
	"lst-valuation-sol/internal/types"
)

// Snapshot 是一次估值的最终输出记录。
// Assets 与 Amounts 等长且按下标对齐；单一标的资产时各有一个元素。
type Snapshot struct {
	BlockTime int64          `json:"block_time"`
	Price     uint64         `json:"price"`   // 每单位 mSOL 对应的 SOL（整数截断）
	Token     types.Pubkey   `json:"token"`   // mSOL mint
	Program   types.Pubkey   `json:"program"` // Marinade 主程序
	Assets    []types.Pubkey `json:"assets"`  // 标的资产 mint 列表
	Amounts   []uint64       `json:"amounts"` // 对应的标的资产数量（lamports）
}

// Assemble 仅做打包：根据已算好的 backing/price 与区块时间组装 Snapshot。
// blockTime 缺失返回 nil（无结果是一等输出，不是错误）；相关性与算术
// 判断都在上游完成，这里不做任何决策。
func Assemble(backing, price uint64, blockTime *int64) *Snapshot {
	if blockTime == nil {
		return nil
	}
	return &Snapshot{
		BlockTime: *blockTime,
		Price:     price,
		Token:     consts.MSOLMint,
		Program:   consts.MarinadeProgram,
		Assets:    []types.Pubkey{consts.WSOLMint},
		Amounts:   []uint64{backing},
	}
}
