package config

import (
	"lst-valuation-sol/internal/pkg/logger"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径）
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// RpcConfig 表示 Solana RPC 节点配置
type RpcConfig struct {
	Endpoint string `yaml:"endpoint"`  // RPC 节点地址，例如 https://api.mainnet-beta.solana.com
	TimeoutS int    `yaml:"timeout_s"` // 单次请求超时时间（秒），<=0 时取默认 10 秒
}

// RateSyncConfig 表示汇率同步服务配置
type RateSyncConfig struct {
	SyncIntervalS int    `yaml:"sync_interval_s"` // 同步汇率的时间间隔（秒）
	RedisAddr     string `yaml:"redis_addr"`      // 最新汇率发布到的 Redis 地址，为空时关闭发布
	RedisKey      string `yaml:"redis_key"`       // 最新汇率在 Redis 中的 key
}

// AnalyzerConfig 是主配置结构体，用于驱动估值分析器
type AnalyzerConfig struct {
	LogConf      LogConfig      `yaml:"logger"`    // 日志配置
	RpcConf      RpcConfig      `yaml:"rpc"`       // RPC 节点配置
	RateSyncConf RateSyncConfig `yaml:"rate_sync"` // 汇率同步服务配置

	// 相关性判定策略："instruction"（指令 tag 匹配）或 "balance"（余额差分）
	Strategy string `yaml:"strategy"`
}
