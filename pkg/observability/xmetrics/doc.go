// Package xmetrics 提供属性操作的可观测性接口（metrics）。
//
// # 设计理念
//
// xmetrics 仅定义最小化接口：Recorder/Event，
// 访问器代码只依赖接口；具体实现可替换。
// 默认实现基于 OpenTelemetry metrics，兼容主流可观测栈。
//
// 属性操作是纳秒级的进程内调用，逐操作打 span 只会产生噪音，
// 因此本包只记录指标（计数器 + 计算耗时直方图），不做 tracing。
//
// # 指标
//
//   - xprops.operation.total（计数器）：属性操作总数，
//     维度 component / property / operation / status
//   - xprops.compute.duration（直方图，单位秒）：计算函数耗时，
//     仅在 operation 为 compute 时记录
//
// # 使用方式
//
// 访问器默认不记录任何指标（Recorder 为 nil 时零开销）。
// 需要观测时通过 NewOTelRecorder 创建实现并注入：
//
//	rec, err := xmetrics.NewOTelRecorder()
//	if err != nil { ... }
//	prop, err := xprop.NewCached(compute, xprop.WithRecorder(rec))
//
// # 注意事项
//
//   - Record 不会返回错误；指标后端的失败由 OTel SDK 自行处理
//   - 包级 [Record] 助手对 nil Recorder 和 nil ctx 做了兜底，
//     调用方无需防御
package xmetrics
