package xprop

import (
	"github.com/omeyang/xprops/pkg/observability/xmetrics"
	"github.com/omeyang/xprops/pkg/prop/xslot"
)

// Option 定义访问器的可选配置函数类型。
type Option func(*options)

type options struct {
	name     string
	recorder xmetrics.Recorder
}

// newOptions 应用可选配置；名称默认从计算函数符号派生。
func newOptions(compute any, opts []Option) options {
	o := options{name: xslot.FuncName(compute)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithName 显式指定属性名，用于诊断与错误消息。
// 默认从计算函数的符号派生。空名称将被忽略，保持默认值。
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithRecorder 注入观测记录器。
// 默认为 nil：不记录任何指标，读取路径仅多一次 nil 判断。
// 传入 nil 将被忽略。
func WithRecorder(rec xmetrics.Recorder) Option {
	return func(o *options) {
		if rec != nil {
			o.recorder = rec
		}
	}
}
