package xmetrics

import (
	"context"
	"time"
)

// Op 表示被观测的属性操作类型。
type Op string

const (
	// OpCompute 表示调用计算函数填充槽位。
	OpCompute Op = "compute"
	// OpHit 表示读取命中已有槽位。
	OpHit Op = "hit"
	// OpSet 表示直接写入槽位（绕过计算）。
	OpSet Op = "set"
	// OpDelete 表示通过实例删除槽位。
	OpDelete Op = "delete"
	// OpInvalidate 表示显式失效槽位。
	OpInvalidate Op = "invalidate"
)

// Status 表示操作结果状态。
type Status string

const (
	// StatusOK 表示成功。
	StatusOK Status = "ok"
	// StatusError 表示失败。
	StatusError Status = "error"
)

// Event 表示一次属性操作观测事件。
type Event struct {
	// Component 标识组件名称，如 "xprop"。
	Component string
	// Property 标识属性名称。
	Property string
	// Op 标识操作类型。
	Op Op
	// Err 表示操作错误；nil 表示成功。
	Err error
	// Elapsed 表示操作耗时；仅 compute 操作会被记录为直方图。
	Elapsed time.Duration
}

// Status 根据 Err 推导事件状态。
func (e Event) Status() Status {
	if e.Err != nil {
		return StatusError
	}
	return StatusOK
}

// Recorder 定义统一的观测记录接口。
type Recorder interface {
	// Record 记录一次属性操作事件。
	Record(ctx context.Context, ev Event)
}

// NoopRecorder 是空实现。
type NoopRecorder struct{}

// Record 空实现，不做任何处理。
func (NoopRecorder) Record(context.Context, Event) {}

// Record 使用 rec 记录事件，nil rec 时直接返回。
// nil ctx 会被替换为 context.Background()，
// 确保自定义 Recorder 实现不会因 nil context 而 panic。
func Record(ctx context.Context, rec Recorder, ev Event) {
	if rec == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	rec.Record(ctx, ev)
}
