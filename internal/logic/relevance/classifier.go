package relevance

import (
	"fmt"

	"lst-valuation-sol/internal/logic/domain"
)

// Classifier 判定一笔交易是否改变了协议中影响 mSOL 估值的状态。
// 两种策略语义并不等价（见各实现注释），只能在构造期二选一，绝不混用。
type Classifier interface {
	// Relevant 返回 true 表示交易可能改变了估值相关状态。
	// 交易格式异常一律按"不相关"处理，不向上抛错。
	Relevant(tx *domain.Transaction) bool

	// Name 返回策略名，用于日志与配置比对。
	Name() string
}

// ForName 按配置字符串构造对应策略。
func ForName(strategy string) (Classifier, error) {
	switch strategy {
	case "", "instruction":
		return NewInstructionClassifier(), nil
	case "balance":
		return NewBalanceDiffClassifier(), nil
	default:
		return nil, fmt.Errorf("unknown relevance strategy %q", strategy)
	}
}
