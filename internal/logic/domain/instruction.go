package domain

import "lst-valuation-sol/internal/types"

// Instruction 表示链上的一条原始主指令。
type Instruction struct {
	ProgramID types.Pubkey   // 所调用的程序地址（例如 Marinade 主程序）
	Accounts  []types.Pubkey // 指令涉及的账户列表，保持原始顺序
	Data      []byte         // 指令数据（前 8 字节为 anchor 方法 tag，若存在）
}
