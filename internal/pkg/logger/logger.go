package logger

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOption 日志初始化参数，由 config.LogConfig 转换而来
type LogOption struct {
	Format   string // 日志格式："console" 或 "json"
	LogDir   string // 日志目录，为空时仅输出到 stdout
	Level    string // 日志级别：debug / info / warn / error
	Compress bool   // 是否压缩旧日志文件
}

var sugar *zap.SugaredLogger

func init() {
	// 默认 console logger，保证 Init 之前的调用不会 panic
	l, _ := zap.NewDevelopment(zap.AddCallerSkip(1))
	sugar = l.Sugar()
}

// Init 按配置重建全局 logger，进程启动时调用一次
func Init(opt LogOption) error {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if strings.EqualFold(opt.Format, "json") {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	level := zapcore.InfoLevel
	switch strings.ToLower(opt.Level) {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	ws := zapcore.AddSync(os.Stdout)
	if opt.LogDir != "" {
		if err := os.MkdirAll(opt.LogDir, 0o755); err != nil {
			return err
		}
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(opt.LogDir, "app.log"),
			MaxSize:    256, // 单文件上限（MB）
			MaxBackups: 10,
			MaxAge:     14, // 保留天数
			Compress:   opt.Compress,
		}
		ws = zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), zapcore.AddSync(rotator))
	}

	core := zapcore.NewCore(encoder, ws, level)
	sugar = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
	return nil
}

// Sync 进程退出前刷新缓冲
func Sync() {
	_ = sugar.Sync()
}

func Debugf(format string, args ...any) { sugar.Debugf(format, args...) }
func Infof(format string, args ...any)  { sugar.Infof(format, args...) }
func Warnf(format string, args ...any)  { sugar.Warnf(format, args...) }
func Errorf(format string, args ...any) { sugar.Errorf(format, args...) }
