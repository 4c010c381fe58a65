package analyzer

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"lst-valuation-sol/internal/consts"
	"lst-valuation-sol/internal/logic/domain"
	"lst-valuation-sol/internal/logic/marinade"
	"lst-valuation-sol/internal/logic/relevance"
	"lst-valuation-sol/internal/logic/valuation"
	"lst-valuation-sol/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeTestState 构造合法布局的 State 账户数据。
// 布局常量在 marinade 包内部，这里按公开偏移事实重建，避免跨包导出。
func encodeTestState(active, cooling, reserve, tickets, supply uint64) []byte {
	data := make([]byte, 576)
	binary.BigEndian.PutUint64(data[0:8], marinade.StateAccountTag)
	copy(data[8:40], consts.MSOLMint[:])
	binary.LittleEndian.PutUint64(data[376:384], active)
	binary.LittleEndian.PutUint64(data[568:576], cooling)
	binary.LittleEndian.PutUint64(data[496:504], reserve)
	binary.LittleEndian.PutUint64(data[528:536], tickets)
	binary.LittleEndian.PutUint64(data[504:512], supply)
	return data
}

type fakeFetcher struct {
	data    []byte
	err     error
	lastMin uint64
}

func (f *fakeFetcher) AccountBytes(_ context.Context, _ types.Pubkey, minSlot uint64) ([]byte, error) {
	f.lastMin = minSlot
	return f.data, f.err
}

func depositTx(blockTime *int64) *domain.Transaction {
	data := make([]byte, 16)
	binary.BigEndian.PutUint64(data[:8], marinade.DepositMethod)
	return &domain.Transaction{
		Signature: "deposit-signature",
		Slot:      312_345_678,
		BlockTime: blockTime,
		Instructions: []domain.Instruction{
			{ProgramID: consts.MarinadeProgram, Data: data},
		},
	}
}

func TestAnalyzeRelevantDeposit(t *testing.T) {
	blockTime := int64(1_735_689_600)
	fetcher := &fakeFetcher{data: encodeTestState(100, 20, 30, 10, 50)}
	a := New(relevance.NewInstructionClassifier(), fetcher)

	snap, err := a.Analyze(context.Background(), depositTx(&blockTime))
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, uint64(140), snap.Amounts[0])
	assert.Equal(t, uint64(2), snap.Price)
	assert.Equal(t, blockTime, snap.BlockTime)
	// 状态按交易所在 slot 下限获取
	assert.Equal(t, uint64(312_345_678), fetcher.lastMin)
}

func TestAnalyzeNotRelevant(t *testing.T) {
	blockTime := int64(1_735_689_600)
	fetcher := &fakeFetcher{err: errors.New("must not be called")}
	a := New(relevance.NewInstructionClassifier(), fetcher)

	tx := &domain.Transaction{Signature: "noop", BlockTime: &blockTime}
	snap, err := a.Analyze(context.Background(), tx)
	assert.NoError(t, err)
	assert.Nil(t, snap)
}

func TestAnalyzeMissingBlockTime(t *testing.T) {
	fetcher := &fakeFetcher{data: encodeTestState(100, 20, 30, 10, 50)}
	a := New(relevance.NewInstructionClassifier(), fetcher)

	snap, err := a.Analyze(context.Background(), depositTx(nil))
	assert.NoError(t, err)
	assert.Nil(t, snap)
}

func TestAnalyzeDecodeFailureSurfaces(t *testing.T) {
	blockTime := int64(1_735_689_600)
	fetcher := &fakeFetcher{data: []byte{0x01, 0x02}} // 布局不符
	a := New(relevance.NewInstructionClassifier(), fetcher)

	// 相关交易解码失败必须以 DecodeError 上抛，绝不降级为"不相关"
	snap, err := a.Analyze(context.Background(), depositTx(&blockTime))
	require.Error(t, err)
	assert.Nil(t, snap)

	var decodeErr *marinade.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestAnalyzeTransportFailureSurfaces(t *testing.T) {
	blockTime := int64(1_735_689_600)
	transportErr := errors.New("rpc: 429 too many requests")
	fetcher := &fakeFetcher{err: transportErr}
	a := New(relevance.NewInstructionClassifier(), fetcher)

	_, err := a.Analyze(context.Background(), depositTx(&blockTime))
	require.Error(t, err)
	assert.True(t, errors.Is(err, transportErr))
}

func TestAnalyzeComputationFailureSurfaces(t *testing.T) {
	blockTime := int64(1_735_689_600)
	fetcher := &fakeFetcher{data: encodeTestState(100, 0, 0, 0, 0)} // 零供应量
	a := New(relevance.NewInstructionClassifier(), fetcher)

	_, err := a.Analyze(context.Background(), depositTx(&blockTime))
	require.Error(t, err)

	var compErr *valuation.ComputationError
	assert.True(t, errors.As(err, &compErr))
}

func TestAnalyzeNilTransaction(t *testing.T) {
	a := New(relevance.NewInstructionClassifier(), &fakeFetcher{})
	snap, err := a.Analyze(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, snap)
}
