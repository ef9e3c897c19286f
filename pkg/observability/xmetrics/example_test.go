package xmetrics_test

import (
	"context"
	"fmt"
	"time"

	"github.com/omeyang/xprops/pkg/observability/xmetrics"
)

type printRecorder struct{}

func (printRecorder) Record(_ context.Context, ev xmetrics.Event) {
	fmt.Printf("%s %s/%s %s\n", ev.Op, ev.Component, ev.Property, ev.Status())
}

func ExampleRecord() {
	rec := printRecorder{}

	xmetrics.Record(context.Background(), rec, xmetrics.Event{
		Component: "xprop",
		Property:  "threshold",
		Op:        xmetrics.OpCompute,
		Elapsed:   2 * time.Millisecond,
	})

	// nil Recorder 是安全的空操作
	xmetrics.Record(context.Background(), nil, xmetrics.Event{Op: xmetrics.OpHit})

	// Output:
	// compute xprop/threshold ok
}

func ExampleNewOTelRecorder() {
	// 默认使用全局 MeterProvider；生产环境通常通过
	// WithMeterProvider 注入配置好的 SDK provider。
	rec, err := xmetrics.NewOTelRecorder(
		xmetrics.WithInstrumentationName("example"),
	)
	if err != nil {
		panic(err)
	}

	rec.Record(context.Background(), xmetrics.Event{
		Component: "xprop",
		Property:  "threshold",
		Op:        xmetrics.OpHit,
	})
	fmt.Println("recorded")
	// Output:
	// recorded
}
