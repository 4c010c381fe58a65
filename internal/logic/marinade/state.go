package marinade

import (
	"encoding/binary"
	"fmt"

	"lst-valuation-sol/internal/types"
)

// Marinade State 账户为 anchor 定长布局：8 字节账户 tag 之后按声明顺序
// 紧凑排列（little-endian，无对齐填充）。估值所需字段的偏移如下，
// 任何一个偏移读不到都视为整体解码失败，绝不返回半解码结果。
//
// 布局（字节偏移，均相对账户数据起始）：
//
//	0   - account tag（sha256("account:State") 前 8 字节）
//	8   - msol_mint (Pubkey, 32)
//	150 - stake_system 起始
//	226 - stake_system.delayed_unstake_cooling_down (u64)
//	264 - validator_system 起始
//	376 - validator_system.total_active_balance (u64)
//	496 - available_reserve_balance (u64)
//	504 - msol_supply (u64)
//	512 - msol_price (u64, 2^32 定点)
//	520 - circulating_ticket_count (u64)
//	528 - circulating_ticket_balance (u64)
//	568 - emergency_cooling_down (u64)
const (
	stateMinLen = 576 // 覆盖到 emergency_cooling_down 末尾

	offStateTag                  = 0
	offMsolMint                  = 8
	offDelayedUnstakeCoolingDown = 226
	offTotalActiveBalance        = 376
	offAvailableReserveBalance   = 496
	offMsolSupply                = 504
	offMsolPrice                 = 512
	offCirculatingTicketCount    = 520
	offCirculatingTicketBalance  = 528
	offEmergencyCoolingDown      = 568
)

// State 是 Marinade 全局状态账户中与 mSOL 估值相关的字段快照。
type State struct {
	MsolMint types.Pubkey // mSOL mint 地址（用于与常量配置交叉校验）

	TotalActiveBalance        uint64 // 活跃质押总额（lamports）
	DelayedUnstakeCoolingDown uint64 // 延迟解押冷却中金额
	EmergencyCoolingDown      uint64 // 紧急解押冷却中金额
	AvailableReserveBalance   uint64 // 可用储备金
	CirculatingTicketCount    uint64 // 未兑付 ticket 数量
	CirculatingTicketBalance  uint64 // 未兑付 ticket 总额（lamports）
	MsolSupply                uint64 // mSOL 总供应量（最小单位）
	MsolPrice                 uint64 // 协议预计算价格（2^32 定点，口径见 valuation 包）
}

// DecodeError 表示账户数据与 State 布局不匹配。
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "marinade state decode failed: " + e.Reason
}

func decodeErrorf(format string, args ...any) *DecodeError {
	return &DecodeError{Reason: fmt.Sprintf(format, args...)}
}

// DecodeState 按固定布局解码 State 账户数据。纯函数，不做任何网络访问；
// 长度不足或账户 tag 不符时整体失败，返回 *DecodeError。
func DecodeState(data []byte) (*State, error) {
	if len(data) < stateMinLen {
		return nil, decodeErrorf("data too short: got=%d, want>=%d", len(data), stateMinLen)
	}

	if tag := binary.BigEndian.Uint64(data[offStateTag : offStateTag+8]); tag != StateAccountTag {
		return nil, decodeErrorf("account tag mismatch: got=0x%016x, want=0x%016x", tag, StateAccountTag)
	}

	mint, err := types.TryPubkeyFromBytes(data[offMsolMint : offMsolMint+32])
	if err != nil {
		return nil, decodeErrorf("msol_mint field: %v", err)
	}

	u64 := func(off int) uint64 {
		return binary.LittleEndian.Uint64(data[off : off+8])
	}

	return &State{
		MsolMint:                  mint,
		TotalActiveBalance:        u64(offTotalActiveBalance),
		DelayedUnstakeCoolingDown: u64(offDelayedUnstakeCoolingDown),
		EmergencyCoolingDown:      u64(offEmergencyCoolingDown),
		AvailableReserveBalance:   u64(offAvailableReserveBalance),
		CirculatingTicketCount:    u64(offCirculatingTicketCount),
		CirculatingTicketBalance:  u64(offCirculatingTicketBalance),
		MsolSupply:                u64(offMsolSupply),
		MsolPrice:                 u64(offMsolPrice),
	}, nil
}
