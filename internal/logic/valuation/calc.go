package valuation

import (
	"fmt"

	"lst-valuation-sol/internal/logic/marinade"
)

// ComputationError 表示估值算术前置条件被破坏（减法下溢、零供应量）。
// 与解码错误分开上抛，调用方可据此区分"数据坏了"与"交易不相关"。
type ComputationError struct {
	Reason string
}

func (e *ComputationError) Error() string {
	return "valuation computation failed: " + e.Reason
}

func computationErrorf(format string, args ...any) *ComputationError {
	return &ComputationError{Reason: fmt.Sprintf(format, args...)}
}

// BackingLamports 计算支撑 mSOL 的 SOL 总量（lamports）：
//
//	active + emergency_cooling_down + reserve − circulating_ticket_balance
//
// 全程 uint64；合法协议状态下减法不会下溢，一旦下溢说明解码出错或
// 状态本身不一致，按 ComputationError 上抛而非静默回绕。
func BackingLamports(s *marinade.State) (uint64, error) {
	total := s.TotalActiveBalance + s.EmergencyCoolingDown + s.AvailableReserveBalance
	if s.CirculatingTicketBalance > total {
		return 0, computationErrorf(
			"ticket balance exceeds gross backing: tickets=%d, gross=%d",
			s.CirculatingTicketBalance, total)
	}
	return total - s.CirculatingTicketBalance, nil
}

// Price 计算每单位 mSOL 对应的 SOL 数量，整数截断除法。
// 供应量为零是错误而非 panic 条件，且与解码错误可区分。
func Price(s *marinade.State) (uint64, error) {
	backing, err := BackingLamports(s)
	if err != nil {
		return 0, err
	}
	if s.MsolSupply == 0 {
		return 0, computationErrorf("msol supply is zero")
	}
	return backing / s.MsolSupply, nil
}

// PrecomputedPrice 返回协议自己维护的价格字段（2^32 定点数）。
// 注意口径不同：该字段的分子还包含 delayed_unstake 冷却中金额，
// 与 Price 的重算路径不可互换，二者只能择一使用。
func PrecomputedPrice(s *marinade.State) uint64 {
	return s.MsolPrice
}
