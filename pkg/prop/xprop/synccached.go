package xprop

import (
	"reflect"
	"sync"
	"time"

	"github.com/omeyang/xprops/pkg/observability/xmetrics"
	"github.com/omeyang/xprops/pkg/prop/xslot"
)

// SyncCached 是并发安全的记忆化类级属性，契约与 [Cached] 完全一致，
// 并额外保证：同一属主的并发首次访问至多执行一次计算函数。
// 必须通过 [NewSyncCached] 创建。
//
// 首次访问是双重检查模式：无锁快路径先查槽位，未命中才获取互斥锁，
// 持锁后再查一次，确认缺席才执行计算。所有写操作全程持有同一把锁。
// 锁粒度是访问器实例级：不同属主在同一访问器上的首次访问串行。
//
// 互斥锁不可重入：计算函数递归读取同一访问器会死锁，不受支持。
type SyncCached[V any] struct {
	name     string
	compute  Compute[V]
	recorder xmetrics.Recorder

	mu    sync.Mutex         // 保护计算与全部写操作
	slots xslot.SyncStore[V] // 无锁读取的快路径
}

// NewSyncCached 创建并发安全的记忆化类级属性。
// compute 为 nil 时返回 [ErrNilCompute]。
func NewSyncCached[V any](compute Compute[V], opts ...Option) (*SyncCached[V], error) {
	if compute == nil {
		return nil, ErrNilCompute
	}
	o := newOptions(compute, opts)
	return &SyncCached[V]{
		name:     o.name,
		compute:  compute,
		recorder: o.recorder,
	}, nil
}

// Name 返回属性的诊断名称。
func (c *SyncCached[V]) Name() string {
	return c.name
}

// Get 通过属主类型读取属性值。
// 槽位存在时无锁返回缓存值；缺席时在互斥锁内执行计算函数，
// 对每个属主至多一次，所有并发读取方得到同一个值。
// owner 为 nil 时返回 [ErrNoOwner]。
// 计算函数的错误原样传播，槽位保持缺席，下次读取重试。
func (c *SyncCached[V]) Get(owner reflect.Type) (V, error) {
	var zero V
	if owner == nil {
		return zero, named(ErrNoOwner, c.name)
	}

	// 无竞争快路径
	if v, ok := c.slots.Load(owner); ok {
		record(c.recorder, c.name, xmetrics.OpHit, nil, 0)
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// 双重检查：等锁期间其他 goroutine 可能已完成计算
	if v, ok := c.slots.Load(owner); ok {
		record(c.recorder, c.name, xmetrics.OpHit, nil, 0)
		return v, nil
	}

	start := time.Now()
	v, err := c.compute(owner)
	record(c.recorder, c.name, xmetrics.OpCompute, err, time.Since(start))
	if err != nil {
		return zero, err
	}
	c.slots.Store(owner, v)
	return v, nil
}

// GetFrom 通过实例读取属性值，属主取实例的运行时类型。
// instance 为 nil 时返回 [ErrNoOwner]。
func (c *SyncCached[V]) GetFrom(instance any) (V, error) {
	owner, err := xslot.Of(instance)
	if err != nil {
		var zero V
		return zero, named(ErrNoOwner, c.name)
	}
	return c.Get(owner)
}

// SetFrom 通过实例直接写入缓存值，不执行计算函数。
// instance 为 nil 时返回 [ErrNoInstance]，调用方应改用显式 Set。
func (c *SyncCached[V]) SetFrom(instance any, value V) error {
	owner, err := xslot.Of(instance)
	if err != nil {
		return named(ErrNoInstance, c.name)
	}
	c.Set(owner, value)
	return nil
}

// DeleteFrom 通过实例移除缓存槽位；槽位缺席时为幂等空操作。
// instance 为 nil 时返回 [ErrNoInstance]，调用方应改用显式 Invalidate。
func (c *SyncCached[V]) DeleteFrom(instance any) error {
	owner, err := xslot.Of(instance)
	if err != nil {
		return named(ErrNoInstance, c.name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots.Delete(owner)
	record(c.recorder, c.name, xmetrics.OpDelete, nil, 0)
	return nil
}

// Set 显式写入属主的缓存值，绕过计算函数，总是成功。
// owner 为 nil 时为空操作。
func (c *SyncCached[V]) Set(owner reflect.Type, value V) {
	if owner == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots.Store(owner, value)
	record(c.recorder, c.name, xmetrics.OpSet, nil, 0)
}

// Invalidate 显式失效属主的缓存槽位；幂等，从不出错，
// 即使该属主从未被缓存。owner 为 nil 时为空操作。
func (c *SyncCached[V]) Invalidate(owner reflect.Type) {
	if owner == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots.Delete(owner)
	record(c.recorder, c.name, xmetrics.OpInvalidate, nil, 0)
}

// Cached 报告属主当前是否持有缓存槽位。
func (c *SyncCached[V]) Cached(owner reflect.Type) bool {
	if owner == nil {
		return false
	}
	_, ok := c.slots.Load(owner)
	return ok
}
