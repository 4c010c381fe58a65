package cache

import (
	"sort"
	"sync"
)

// RatePoint 表示某一时刻的 mSOL 估值点。
type RatePoint struct {
	Timestamp       int64  // 区块时间（Unix 秒级）
	Price           uint64 // 每单位 mSOL 对应的 SOL（整数截断）
	BackingLamports uint64 // 支撑 mSOL 的 SOL 总量
}

// RateCache 保存按时间升序排列的估值点，供同步服务与查询方共享。
// 仅服务于周期性同步路径；单交易分析流水线不经过任何缓存。
type RateCache struct {
	mu     sync.RWMutex
	points []RatePoint
}

func NewRateCache() *RateCache {
	return &RateCache{}
}

// Insert 插入一个估值点，保持时间升序；时间戳重复时忽略。
func (rc *RateCache) Insert(point RatePoint) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	const maxCapacity = 400
	const retainCount = 300

	if len(rc.points) >= maxCapacity {
		// 将后半段复制到前半段，截断为 retainCount 长度
		copy(rc.points[:retainCount], rc.points[len(rc.points)-retainCount:])
		rc.points = rc.points[:retainCount]
	}

	// 顺序插入优化：常规路径是追加最新点
	if n := len(rc.points); n == 0 || point.Timestamp > rc.points[n-1].Timestamp {
		rc.points = append(rc.points, point)
		return
	}

	insertIdx := sort.Search(len(rc.points), func(i int) bool {
		return rc.points[i].Timestamp >= point.Timestamp
	})
	if insertIdx < len(rc.points) && rc.points[insertIdx].Timestamp == point.Timestamp {
		return
	}

	rc.points = append(rc.points, RatePoint{})
	copy(rc.points[insertIdx+1:], rc.points[insertIdx:])
	rc.points[insertIdx] = point
}

// Latest 返回最新估值点。
func (rc *RateCache) Latest() (RatePoint, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	if len(rc.points) == 0 {
		return RatePoint{}, false
	}
	return rc.points[len(rc.points)-1], true
}

// GetAt 返回不晚于 blockTime 的最近估值点；早于全部历史时取最老的点。
func (rc *RateCache) GetAt(blockTime int64) (RatePoint, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	count := len(rc.points)
	if count == 0 {
		return RatePoint{}, false
	}

	// 边界快速判断：比最老还早 or 比最新还晚
	if blockTime >= rc.points[count-1].Timestamp {
		return rc.points[count-1], true
	}
	if blockTime < rc.points[0].Timestamp {
		return rc.points[0], true
	}

	// 二分查找：找到第一个 >= blockTime 的点
	idx := sort.Search(count, func(i int) bool {
		return rc.points[i].Timestamp >= blockTime
	})
	if idx < count && rc.points[idx].Timestamp == blockTime {
		return rc.points[idx], true
	}
	if idx > 0 {
		idx--
	}
	return rc.points[idx], true
}

// Len 返回当前缓存的估值点数量。
func (rc *RateCache) Len() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return len(rc.points)
}
