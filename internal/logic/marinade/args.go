package marinade

import (
	"github.com/near/borsh-go"
)

// 携带单个 u64 金额参数的指令集合（anchor 参数为 borsh 编码，位于 8 字节 tag 之后）：
//   - deposit / add_liquidity: lamports
//   - liquid_unstake / order_unstake / remove_liquidity: mSOL / LP token 数量
var (
	methodAddLiquidity    = MethodID("add_liquidity")
	methodRemoveLiquidity = MethodID("remove_liquidity")
	methodLiquidUnstake   = MethodID("liquid_unstake")
	methodOrderUnstake    = MethodID("order_unstake")
)

// DecodeAmountArg 解出金额类指令的参数值，仅用于日志与排查，
// 不参与估值计算；无法解出时 ok=false。
func DecodeAmountArg(method uint64, data []byte) (amount uint64, ok bool) {
	if len(data) < 16 {
		return 0, false
	}

	switch method {
	case DepositMethod, methodAddLiquidity, methodRemoveLiquidity, methodLiquidUnstake, methodOrderUnstake:
	default:
		return 0, false
	}

	var args struct {
		Amount uint64
	}
	if err := borsh.Deserialize(&args, data[8:16]); err != nil {
		return 0, false
	}
	return args.Amount, true
}
