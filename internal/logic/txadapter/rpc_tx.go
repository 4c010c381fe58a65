package txadapter

import (
	"fmt"

	"lst-valuation-sol/internal/logic/domain"
	"lst-valuation-sol/internal/types"
	"lst-valuation-sol/internal/utils"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
)

// FromRPC 将 RPC 返回的交易转换为内部 domain.Transaction。
// 任何结构异常（账户索引越界、地址长度非法）返回 error，
// 由调用方决定降级策略（相关性判定场景降级为"不相关"）。
func FromRPC(signature string, tx *client.Transaction) (*domain.Transaction, error) {
	if tx == nil {
		return nil, fmt.Errorf("nil transaction for %s", signature)
	}
	if tx.Meta == nil {
		return nil, fmt.Errorf("transaction %s has no meta", signature)
	}

	accountKeys, err := buildFullAccountKeys(
		tx.Transaction.Message.Accounts,
		tx.Meta.LoadedAddresses.Writable,
		tx.Meta.LoadedAddresses.Readonly,
	)
	if err != nil {
		return nil, err
	}
	if len(accountKeys) == 0 {
		return nil, fmt.Errorf("transaction %s has empty account keys", signature)
	}

	instructions, err := buildInstructions(tx, accountKeys)
	if err != nil {
		return nil, err
	}

	balances, err := buildTokenBalances(tx, accountKeys)
	if err != nil {
		return nil, err
	}

	return &domain.Transaction{
		Signature:     signature,
		Slot:          tx.Slot,
		BlockTime:     tx.BlockTime,
		Signer:        accountKeys[0],
		AccountKeys:   accountKeys,
		Instructions:  instructions,
		PreLamports:   tx.Meta.PreBalances,
		PostLamports:  tx.Meta.PostBalances,
		TokenBalances: balances,
	}, nil
}

// buildFullAccountKeys 构造交易中完整的账户 Pubkey 列表：
// 静态 message.accountKeys 拼接 Address Lookup Table 加载的
// writable / readonly 地址，保持链上顺序，供 accountIndex 索引。
// 不合并 lookup table 地址会导致 v0 交易的程序地址/余额索引漏判。
func buildFullAccountKeys(
	static []common.PublicKey, loadedWritable, loadedReadonly []string,
) ([]types.Pubkey, error) {
	total := len(static) + len(loadedWritable) + len(loadedReadonly)
	pubkeys := make([]types.Pubkey, 0, total)

	for _, k := range static {
		pubkeys = append(pubkeys, types.Pubkey(k))
	}
	for _, s := range loadedWritable {
		p, err := types.TryPubkeyFromBase58(s)
		if err != nil {
			return nil, fmt.Errorf("loaded writable address: %w", err)
		}
		pubkeys = append(pubkeys, p)
	}
	for _, s := range loadedReadonly {
		p, err := types.TryPubkeyFromBase58(s)
		if err != nil {
			return nil, fmt.Errorf("loaded readonly address: %w", err)
		}
		pubkeys = append(pubkeys, p)
	}
	return pubkeys, nil
}

// buildInstructions 将编译态主指令解析为 ProgramID / 账户已解引用的结构。
func buildInstructions(tx *client.Transaction, accountKeys []types.Pubkey) ([]domain.Instruction, error) {
	raw := tx.Transaction.Message.Instructions
	instructions := make([]domain.Instruction, 0, len(raw))

	for i, inst := range raw {
		if inst.ProgramIDIndex < 0 || inst.ProgramIDIndex >= len(accountKeys) {
			return nil, fmt.Errorf("instruction %d: program index %d out of range (keys=%d)",
				i, inst.ProgramIDIndex, len(accountKeys))
		}
		accounts := make([]types.Pubkey, 0, len(inst.Accounts))
		for _, idx := range inst.Accounts {
			if idx < 0 || idx >= len(accountKeys) {
				return nil, fmt.Errorf("instruction %d: account index %d out of range (keys=%d)",
					i, idx, len(accountKeys))
			}
			accounts = append(accounts, accountKeys[idx])
		}
		instructions = append(instructions, domain.Instruction{
			ProgramID: accountKeys[inst.ProgramIDIndex],
			Accounts:  accounts,
			Data:      inst.Data,
		})
	}
	return instructions, nil
}

// buildTokenBalances 构建 token account → 前后余额 的映射。
// 先处理 Post（账户最终状态），再补充 Pre；只出现在 Pre 中的账户
// 可能已在交易中被销毁，同样保留（HasPost=false）。
func buildTokenBalances(tx *client.Transaction, accountKeys []types.Pubkey) (map[types.Pubkey]*domain.TokenBalance, error) {
	postList := tx.Meta.PostTokenBalances
	preList := tx.Meta.PreTokenBalances

	balances := make(map[types.Pubkey]*domain.TokenBalance, len(postList)+len(preList))

	for _, post := range postList {
		// 仅处理标准 SPL Token（TokenProgram / Token2022），跳过非标准模拟账户
		if !utils.IsSPLToken(post.ProgramId) {
			continue
		}
		if post.AccountIndex >= uint64(len(accountKeys)) {
			return nil, fmt.Errorf("post token balance: account index %d out of range", post.AccountIndex)
		}
		token, err := types.TryPubkeyFromBase58(post.Mint)
		if err != nil {
			return nil, fmt.Errorf("post token balance mint: %w", err)
		}
		account := accountKeys[post.AccountIndex]
		balances[account] = &domain.TokenBalance{
			TokenAccount: account,
			Token:        token,
			Decimals:     post.UITokenAmount.Decimals,
			PostBalance:  utils.ParseUint64(post.UITokenAmount.Amount),
			HasPost:      true,
			Owner:        post.Owner,
		}
	}

	for _, pre := range preList {
		if !utils.IsSPLToken(pre.ProgramId) {
			continue
		}
		if pre.AccountIndex >= uint64(len(accountKeys)) {
			return nil, fmt.Errorf("pre token balance: account index %d out of range", pre.AccountIndex)
		}
		account := accountKeys[pre.AccountIndex]
		if tb, ok := balances[account]; ok {
			tb.HasPre = true
			tb.PreBalance = utils.ParseUint64(pre.UITokenAmount.Amount)
			continue
		}
		token, err := types.TryPubkeyFromBase58(pre.Mint)
		if err != nil {
			return nil, fmt.Errorf("pre token balance mint: %w", err)
		}
		balances[account] = &domain.TokenBalance{
			TokenAccount: account,
			Token:        token,
			Decimals:     pre.UITokenAmount.Decimals,
			PreBalance:   utils.ParseUint64(pre.UITokenAmount.Amount),
			HasPre:       true,
			Owner:        pre.Owner,
		}
	}

	return balances, nil
}
