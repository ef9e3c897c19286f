package xprop

import (
	"reflect"
	"time"

	"github.com/omeyang/xprops/pkg/observability/xmetrics"
	"github.com/omeyang/xprops/pkg/prop/xslot"
)

// Cached 是记忆化的类级属性：首次读取时计算并按属主类型缓存，
// 之后返回同一缓存值，直到显式失效或覆盖。
// 必须通过 [NewCached] 创建。
//
// Cached 不做任何同步，仅适用于单 goroutine 场景；
// 并发首次访问可能多次执行计算函数。需要并发保证时使用 [SyncCached]。
type Cached[V any] struct {
	name     string
	compute  Compute[V]
	recorder xmetrics.Recorder
	slots    *xslot.Store[V]
}

// NewCached 创建记忆化类级属性（非并发安全）。
// compute 为 nil 时返回 [ErrNilCompute]。
func NewCached[V any](compute Compute[V], opts ...Option) (*Cached[V], error) {
	if compute == nil {
		return nil, ErrNilCompute
	}
	o := newOptions(compute, opts)
	return &Cached[V]{
		name:     o.name,
		compute:  compute,
		recorder: o.recorder,
		slots:    xslot.NewStore[V](),
	}, nil
}

// Name 返回属性的诊断名称。
func (c *Cached[V]) Name() string {
	return c.name
}

// Get 通过属主类型读取属性值。
// 槽位存在时原样返回缓存值；缺席时执行计算函数恰好一次，
// 写入槽位并返回。owner 为 nil 时返回 [ErrNoOwner]。
// 计算函数的错误原样传播，且槽位保持缺席，下次读取重试。
func (c *Cached[V]) Get(owner reflect.Type) (V, error) {
	var zero V
	if owner == nil {
		return zero, named(ErrNoOwner, c.name)
	}

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
func (c *Cached[V]) GetFrom(instance any) (V, error) {
	owner, err := xslot.Of(instance)
	if err != nil {
		var zero V
		return zero, named(ErrNoOwner, c.name)
	}
	return c.Get(owner)
}

// SetFrom 通过实例直接写入缓存值，不执行计算函数。
// instance 为 nil 时返回 [ErrNoInstance]，调用方应改用显式 Set。
func (c *Cached[V]) SetFrom(instance any, value V) error {
	owner, err := xslot.Of(instance)
	if err != nil {
		return named(ErrNoInstance, c.name)
	}
	c.Set(owner, value)
	return nil
}

// DeleteFrom 通过实例移除缓存槽位；槽位缺席时为幂等空操作。
// instance 为 nil 时返回 [ErrNoInstance]，调用方应改用显式 Invalidate。
func (c *Cached[V]) DeleteFrom(instance any) error {
	owner, err := xslot.Of(instance)
	if err != nil {
		return named(ErrNoInstance, c.name)
	}
	c.slots.Delete(owner)
	record(c.recorder, c.name, xmetrics.OpDelete, nil, 0)
	return nil
}

// Set 显式写入属主的缓存值，绕过计算函数，总是成功。
// owner 为 nil 时为空操作。
func (c *Cached[V]) Set(owner reflect.Type, value V) {
	if owner == nil {
		return
	}
	c.slots.Store(owner, value)
	record(c.recorder, c.name, xmetrics.OpSet, nil, 0)
}

// Invalidate 显式失效属主的缓存槽位；幂等，从不出错，
// 即使该属主从未被缓存。owner 为 nil 时为空操作。
func (c *Cached[V]) Invalidate(owner reflect.Type) {
	if owner == nil {
		return
	}
	c.slots.Delete(owner)
	record(c.recorder, c.name, xmetrics.OpInvalidate, nil, 0)
}

// Cached 报告属主当前是否持有缓存槽位。
func (c *Cached[V]) Cached(owner reflect.Type) bool {
	if owner == nil {
		return false
	}
	_, ok := c.slots.Load(owner)
	return ok
}
