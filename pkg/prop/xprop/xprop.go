package xprop

import (
	"context"
	"reflect"
	"time"

	"github.com/omeyang/xprops/pkg/observability/xmetrics"
)

const componentName = "xprop"

// Compute 是类级属性的计算函数：以属主类型为入参，产出属性值。
// 错误会原样传播给读取方，记忆化变体在出错时不写入槽位。
type Compute[V any] func(owner reflect.Type) (V, error)

// record 记录一次属性操作事件；rec 为 nil 时零开销返回。
// 属性操作本身没有调用方 context，统一使用 Background。
func record(rec xmetrics.Recorder, name string, op xmetrics.Op, err error, elapsed time.Duration) {
	if rec == nil {
		return
	}
	xmetrics.Record(context.Background(), rec, xmetrics.Event{
		Component: componentName,
		Property:  name,
		Op:        op,
		Err:       err,
		Elapsed:   elapsed,
	})
}
