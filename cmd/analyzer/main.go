package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"lst-valuation-sol/internal/config"
	"lst-valuation-sol/internal/pkg/logger"
	"lst-valuation-sol/internal/service"
	"lst-valuation-sol/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"
)

var (
	configFile = flag.String("f", "etc/analyzer.yaml", "the config file")
	txSig      = flag.String("tx", "", "analyze a single transaction signature and exit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()

	var c config.AnalyzerConfig
	conf.MustLoad(*configFile, &c)

	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		panic(err)
	}
	defer logger.Sync()

	serviceContext, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}

	// 单笔交易模式：分析后直接输出并退出
	if *txSig != "" {
		analyzeOnce(serviceContext, *txSig)
		return
	}

	// 服务模式：周期性同步最新汇率
	rateSyncService, err := service.NewRateSyncService(&c.RateSyncConf, serviceContext.RpcClient, serviceContext.RateCache)
	if err != nil {
		panic(err)
	}

	sg := zerosvc.NewServiceGroup()
	sg.Add(rateSyncService)

	logx.Infof("Starting rate sync service")
	sg.Start()

	// 等待退出信号
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logx.Info("Shutting down services...")
	sg.Stop()
}

func analyzeOnce(serviceContext *svc.ServiceContext, signature string) {
	ctx := context.Background()

	tx, err := serviceContext.RpcClient.FetchTransaction(ctx, signature)
	if err != nil {
		logger.Errorf("拉取交易失败: %v", err)
		os.Exit(1)
	}

	snap, err := serviceContext.Analyzer.Analyze(ctx, tx)
	if err != nil {
		logger.Errorf("分析失败: %v", err)
		os.Exit(1)
	}
	if snap == nil {
		fmt.Println("not applicable: transaction did not move the rate")
		return
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		logger.Errorf("序列化失败: %v", err)
		os.Exit(1)
	}
	fmt.Println(string(raw))
}
