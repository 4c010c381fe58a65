package rpcfetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lst-valuation-sol/internal/config"
	"lst-valuation-sol/internal/logic/domain"
	"lst-valuation-sol/internal/logic/txadapter"
	"lst-valuation-sol/internal/types"

	"github.com/blocto/solana-go-sdk/client"
)

const defaultTimeout = 10 * time.Second

// Client 是面向 Solana RPC 节点的阻塞式取数边界。
// 失败直接包装上抛，这一层不做重试；取消由调用方的 ctx 负责。
type Client struct {
	rpc     *client.Client
	timeout time.Duration
}

func New(cfg *config.RpcConfig) (*Client, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, errors.New("rpc endpoint is required")
	}
	timeout := defaultTimeout
	if cfg.TimeoutS > 0 {
		timeout = time.Duration(cfg.TimeoutS) * time.Second
	}
	c := client.NewClient(cfg.Endpoint)
	if c == nil {
		return nil, errors.New("rpc client init failed")
	}
	return &Client{rpc: c, timeout: timeout}, nil
}

// FetchTransaction 按签名拉取交易并转换为 domain.Transaction。
func (c *Client) FetchTransaction(ctx context.Context, signature string) (*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.rpc.GetTransaction(ctx, signature)
	if err != nil {
		return nil, fmt.Errorf("rpc GetTransaction %s: %w", signature, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("transaction %s not found", signature)
	}
	return txadapter.FromRPC(signature, resp)
}

// AccountBytes 拉取账户原始数据。minSlot 为状态新鲜度下限：
// RPC 便捷层按最新已处理状态返回，对历史交易而言必然不早于其 slot，
// 因此这里只记录该下限用于日志排查，不额外轮询。
func (c *Client) AccountBytes(ctx context.Context, addr types.Pubkey, minSlot uint64) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	info, err := c.rpc.GetAccountInfo(ctx, addr.String())
	if err != nil {
		return nil, fmt.Errorf("rpc GetAccountInfo %s (minSlot=%d): %w", addr, minSlot, err)
	}
	if len(info.Data) == 0 {
		return nil, fmt.Errorf("account %s not found or empty", addr)
	}
	return info.Data, nil
}
