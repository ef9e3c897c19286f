// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xmetrics: 属性操作的观测接口与 OpenTelemetry 指标实现
//
// 设计原则：
//   - 遵循 OpenTelemetry 语义规范
//   - 访问器只依赖最小化接口，默认零开销（nil Recorder）
//   - 库内不产生日志，观测后端的失败由 SDK 自行处理
package observability
