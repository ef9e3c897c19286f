package xprop

import (
	"reflect"
	"time"

	"github.com/omeyang/xprops/pkg/observability/xmetrics"
	"github.com/omeyang/xprops/pkg/prop/xslot"
)

// Property 是只读的类级属性：每次访问都重新执行计算函数，不缓存。
// 必须通过 [New] 创建。所有方法可并发调用，前提是计算函数自身并发安全。
type Property[V any] struct {
	name     string
	compute  Compute[V]
	recorder xmetrics.Recorder
}

// New 创建只读类级属性。
// compute 为 nil 时返回 [ErrNilCompute]。
func New[V any](compute Compute[V], opts ...Option) (*Property[V], error) {
	if compute == nil {
		return nil, ErrNilCompute
	}
	o := newOptions(compute, opts)
	return &Property[V]{
		name:     o.name,
		compute:  compute,
		recorder: o.recorder,
	}, nil
}

// Name 返回属性的诊断名称。
func (p *Property[V]) Name() string {
	return p.name
}

// Get 通过属主类型读取属性值，每次访问都重新计算。
// owner 为 nil 时返回 [ErrNoOwner]。计算函数的错误原样传播。
func (p *Property[V]) Get(owner reflect.Type) (V, error) {
	var zero V
	if owner == nil {
		return zero, named(ErrNoOwner, p.name)
	}

	start := time.Now()
	v, err := p.compute(owner)
	record(p.recorder, p.name, xmetrics.OpCompute, err, time.Since(start))
	if err != nil {
		return zero, err
	}
	return v, nil
}

// GetFrom 通过实例读取属性值，属主取实例的运行时类型。
// instance 为 nil 时返回 [ErrNoOwner]。
func (p *Property[V]) GetFrom(instance any) (V, error) {
	owner, err := xslot.Of(instance)
	if err != nil {
		var zero V
		return zero, named(ErrNoOwner, p.name)
	}
	return p.Get(owner)
}

// SetFrom 总是失败：只读属性不接受写入。
// 返回的错误在名称可用时会标明属性名。
func (p *Property[V]) SetFrom(any, V) error {
	return named(ErrReadOnly, p.name)
}

// DeleteFrom 总是失败：只读属性不接受删除。
func (p *Property[V]) DeleteFrom(any) error {
	return named(ErrReadOnly, p.name)
}
