package analyzer

import (
	"context"
	"fmt"

	"lst-valuation-sol/internal/consts"
	"lst-valuation-sol/internal/logic/domain"
	"lst-valuation-sol/internal/logic/marinade"
	"lst-valuation-sol/internal/logic/relevance"
	"lst-valuation-sol/internal/logic/valuation"
	"lst-valuation-sol/internal/pkg/logger"
	"lst-valuation-sol/internal/types"
)

// AccountFetcher 是账户数据的阻塞式获取边界，由 rpcfetch 实现。
// minSlot 表示结果不得早于该 slot 的链上状态。
type AccountFetcher interface {
	AccountBytes(ctx context.Context, addr types.Pubkey, minSlot uint64) ([]byte, error)
}

// Analyzer 串起 判定→取状态→解码→算价→打包 的单交易流水线。
// 每次调用独立无共享可变状态（mutating tag 登记表只读），
// 多 goroutine 并发调用安全；结果不缓存，重复调用重新取数。
type Analyzer struct {
	classifier relevance.Classifier
	fetcher    AccountFetcher
}

func New(classifier relevance.Classifier, fetcher AccountFetcher) *Analyzer {
	return &Analyzer{classifier: classifier, fetcher: fetcher}
}

// Analyze 分析一笔交易，返回估值快照。
// (nil, nil) 表示"本交易未改变价格"或必要元数据缺失——无结果是一等输出。
// 返回 error 仅限：透传的 transport 失败、*marinade.DecodeError、
// *valuation.ComputationError。
func (a *Analyzer) Analyze(ctx context.Context, tx *domain.Transaction) (*valuation.Snapshot, error) {
	if tx == nil {
		return nil, nil
	}

	if !a.classifier.Relevant(tx) {
		return nil, nil
	}

	if tx.BlockTime == nil {
		logger.Warnf("[analyzer] 交易相关但缺失 blockTime, tx=%s", tx.Signature)
		return nil, nil
	}

	raw, err := a.fetcher.AccountBytes(ctx, consts.MarinadeState, tx.Slot)
	if err != nil {
		return nil, fmt.Errorf("fetch marinade state (slot>=%d): %w", tx.Slot, err)
	}

	state, err := marinade.DecodeState(raw)
	if err != nil {
		return nil, err
	}
	if !state.MsolMint.Equals(consts.MSOLMint) {
		// 布局校验已通过、mint 却对不上，说明状态账户配置有误
		logger.Warnf("[analyzer] State.msol_mint=%s 与配置 %s 不一致", state.MsolMint, consts.MSOLMintStr)
	}

	backing, err := valuation.BackingLamports(state)
	if err != nil {
		return nil, err
	}
	price, err := valuation.Price(state)
	if err != nil {
		return nil, err
	}

	snap := valuation.Assemble(backing, price, tx.BlockTime)
	logger.Infof("[analyzer] tx=%s relevant=%s backing=%d price=%d supply=%d",
		tx.Signature, a.classifier.Name(), backing, price, state.MsolSupply)
	return snap, nil
}
