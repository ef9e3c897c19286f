package xmetrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	defaultInstrumentationName = "github.com/omeyang/xprops/xmetrics"
	unknownComponent           = "unknown"
	unknownProperty            = "unknown"

	metricOperationTotal  = "xprops.operation.total"
	metricComputeDuration = "xprops.compute.duration"
)

type otelConfig struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
}

// Option 定义 OTel Recorder 的配置选项。
type Option func(*otelConfig)

// WithInstrumentationName 设置 OTel instrumentation 名称。
// 空名称将被忽略，保持默认值。
func WithInstrumentationName(name string) Option {
	return func(cfg *otelConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider。
// nil provider 将被忽略，保持全局默认。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// NewOTelRecorder 创建基于 OpenTelemetry 的 Recorder。
// 仪表创建失败时 fail-fast 返回包装错误。
func NewOTelRecorder(opts ...Option) (Recorder, error) {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	total, err := meter.Int64Counter(
		metricOperationTotal,
		metric.WithDescription("total property operations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xmetrics: create counter failed: %w", err)
	}

	duration, err := meter.Float64Histogram(
		metricComputeDuration,
		metric.WithDescription("compute function duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("xmetrics: create histogram failed: %w", err)
	}

	return &otelRecorder{
		total:    total,
		duration: duration,
	}, nil
}

type otelRecorder struct {
	total    metric.Int64Counter
	duration metric.Float64Histogram
}

// Record 记录操作计数；compute 操作额外记录耗时直方图。
func (r *otelRecorder) Record(ctx context.Context, ev Event) {
	if ctx == nil {
		ctx = context.Background()
	}

	component := ev.Component
	if component == "" {
		component = unknownComponent
	}
	property := ev.Property
	if property == "" {
		property = unknownProperty
	}

	attrs := metric.WithAttributes(
		attribute.String("component", component),
		attribute.String("property", property),
		attribute.String("operation", string(ev.Op)),
		attribute.String("status", string(ev.Status())),
	)

	r.total.Add(ctx, 1, attrs)
	if ev.Op == OpCompute {
		r.duration.Record(ctx, ev.Elapsed.Seconds(), attrs)
	}
}
