package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"lst-valuation-sol/internal/cache"
	"lst-valuation-sol/internal/config"
	"lst-valuation-sol/internal/consts"
	"lst-valuation-sol/internal/logic/analyzer"
	"lst-valuation-sol/internal/logic/marinade"
	"lst-valuation-sol/internal/logic/valuation"
	"lst-valuation-sol/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKey = "lst:msol:latest_rate"

// RateSyncService 周期性拉取 Marinade State 并重算 mSOL 估值，
// 写入内存缓存；配置了 Redis 时同时发布最新快照供其它服务消费。
type RateSyncService struct {
	rateCache *cache.RateCache
	fetcher   analyzer.AccountFetcher
	interval  time.Duration
	stopChan  chan struct{}
	rdb       *redis.Client
	redisKey  string
	ctx       context.Context
	cancel    func(err error)
}

func NewRateSyncService(cfg *config.RateSyncConfig, fetcher analyzer.AccountFetcher, rateCache *cache.RateCache) (*RateSyncService, error) {
	interval := time.Duration(cfg.SyncIntervalS) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	s := &RateSyncService{
		rateCache: rateCache,
		fetcher:   fetcher,
		interval:  interval,
		stopChan:  make(chan struct{}),
		ctx:       ctx,
		cancel:    cancel,
	}

	if cfg.RedisAddr != "" {
		s.rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		s.redisKey = cfg.RedisKey
		if s.redisKey == "" {
			s.redisKey = defaultRedisKey
		}
	}

	// 初始同步：失败重试数次，成功后才返回
	const retryCount = 3
	for i := 0; i <= retryCount; i++ {
		if err := s.update(); err != nil {
			logger.Warnf("[RateSyncService] 第 %d 次 update() 失败: %v", i+1, err)
			time.Sleep(2 * time.Second)
			continue
		}
		if _, ok := rateCache.Latest(); ok {
			logger.Infof("[RateSyncService] 初始汇率同步成功")
			return s, nil
		}
	}
	cancel(errors.New("initial sync failed"))
	return nil, fmt.Errorf("[RateSyncService] 初始同步失败")
}

func (s *RateSyncService) Start() {
	s.scheduleNext()
	<-s.stopChan
}

func (s *RateSyncService) scheduleNext() {
	time.AfterFunc(s.interval, func() {
		if err := s.update(); err != nil {
			logger.Warnf("[RateSyncService] 周期性更新失败: %v", err)
		}
		// 如果没有被 Stop，就继续调度
		select {
		case <-s.ctx.Done():
			return
		default:
			s.scheduleNext()
		}
	})
}

func (s *RateSyncService) Stop() {
	s.cancel(errors.New("RateSyncService stop"))
	if s.rdb != nil {
		_ = s.rdb.Close()
	}
	select {
	case <-s.stopChan:
		// 已关闭，无需重复关闭
	default:
		close(s.stopChan)
	}
}

func (s *RateSyncService) update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[RateSyncService] update panic: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("update panic: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	raw, err := s.fetcher.AccountBytes(ctx, consts.MarinadeState, 0)
	if err != nil {
		return fmt.Errorf("fetch marinade state: %w", err)
	}

	state, err := marinade.DecodeState(raw)
	if err != nil {
		return err
	}
	backing, err := valuation.BackingLamports(state)
	if err != nil {
		return err
	}
	price, err := valuation.Price(state)
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	s.rateCache.Insert(cache.RatePoint{
		Timestamp:       now,
		Price:           price,
		BackingLamports: backing,
	})
	logger.Infof("[RateSyncService] 同步成功: backing=%d price=%d supply=%d 耗时=%v",
		backing, price, state.MsolSupply, time.Since(start))

	return s.publish(ctx, valuation.Assemble(backing, price, &now))
}

// publish 将最新快照发布到 Redis；未配置 Redis 时为空操作。
func (s *RateSyncService) publish(ctx context.Context, snap *valuation.Snapshot) error {
	if s.rdb == nil || snap == nil {
		return nil
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.rdb.Set(ctx, s.redisKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}
