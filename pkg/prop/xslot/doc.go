// Package xslot 提供类级属性的属主标识与缓存槽位注册表。
//
// Go 没有 Python 式的描述符协议，无法把隐藏属性挂载到类型对象上。
// xslot 采用显式注册表策略：以 reflect.Type 作为属主标识，
// 每个访问器实例持有一个从属主类型到缓存值的映射（槽位注册表）。
//
// # 核心组件
//
//   - [Of]: 从实例解析属主类型（运行时路径，对应"通过实例访问"）
//   - [For]: 从类型参数获取属主类型（编译期路径，对应"通过类型访问"）
//   - [FuncName]: 从函数符号派生诊断用名称
//   - [Store]: 非并发安全的槽位注册表
//   - [SyncStore]: 并发安全的槽位注册表，Load 无锁，写入具备 happens-before 语义
//
// # 属主标识语义
//
// 属主标识是精确的 reflect.Type：
//   - 指针类型会被解引用到元素类型，&T{} 与 T{} 解析为同一属主
//   - 嵌入（embedding）不共享槽位——外层类型是独立属主，
//     与被嵌入类型的缓存互不影响。这是本库对"继承缓存共享"问题的固定选择
//
// # 生命周期不变量
//
// 每个（访问器, 属主类型）对在任一时刻至多存在一个槽位值：
// 首次读取前缺席，首次计算后创建，失效后销毁，下次读取重建，
// 显式 Set 可直接覆盖。Delete 对缺席槽位是幂等空操作。
//
// # 注意事项
//
//   - Store 不做任何同步，仅适用于单 goroutine 场景
//   - SyncStore 零值可用，无需构造函数
//   - 注册表按属主类型无界增长；属主是进程级类型对象，
//     数量天然有界，因此不提供淘汰策略
package xslot
