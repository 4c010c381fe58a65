package svc

import (
	"lst-valuation-sol/internal/cache"
	"lst-valuation-sol/internal/config"
	"lst-valuation-sol/internal/logic/analyzer"
	"lst-valuation-sol/internal/logic/relevance"
	"lst-valuation-sol/internal/pkg/logger"
	"lst-valuation-sol/internal/rpcfetch"
)

// ServiceContext 包含分析器进程的共享资源。
type ServiceContext struct {
	Config    config.AnalyzerConfig
	RpcClient *rpcfetch.Client
	RateCache *cache.RateCache
	Analyzer  *analyzer.Analyzer
}

// NewServiceContext 创建一个新的服务上下文。
func NewServiceContext(c config.AnalyzerConfig) (*ServiceContext, error) {
	rpcClient, err := rpcfetch.New(&c.RpcConf)
	if err != nil {
		logger.Errorf("RPC client 初始化失败: %v", err)
		return nil, err
	}

	classifier, err := relevance.ForName(c.Strategy)
	if err != nil {
		return nil, err
	}

	ctx := &ServiceContext{
		Config:    c,
		RpcClient: rpcClient,
		RateCache: cache.NewRateCache(),
		Analyzer:  analyzer.New(classifier, rpcClient),
	}

	logger.Infof("服务上下文初始化完成, strategy=%s", classifier.Name())
	return ctx, nil
}
