package xmetrics

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func BenchmarkRecord_Nil(b *testing.B) {
	ev := Event{Component: "xprop", Property: "p", Op: OpHit}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Record(context.Background(), nil, ev)
	}
}

func BenchmarkRecord_Noop(b *testing.B) {
	ev := Event{Component: "xprop", Property: "p", Op: OpHit}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Record(context.Background(), NoopRecorder{}, ev)
	}
}

func BenchmarkOTelRecorder_Record(b *testing.B) {
	mp := sdkmetric.NewMeterProvider()
	defer func() { _ = mp.Shutdown(context.Background()) }()

	rec, err := NewOTelRecorder(WithMeterProvider(mp))
	if err != nil {
		b.Fatal(err)
	}
	ev := Event{Component: "xprop", Property: "p", Op: OpHit}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec.Record(ctx, ev)
	}
}
