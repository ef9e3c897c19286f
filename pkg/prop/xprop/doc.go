// Package xprop 提供类级计算属性：只读访问器与记忆化访问器（普通/并发安全）。
//
// 类级属性的计算函数以属主类型（reflect.Type）为入参，产出类型级的值。
// 记忆化变体在首次访问时计算并缓存，之后返回同一缓存值，直到显式失效或覆盖。
//
// # 三种访问器
//
//   - [Property]: 只读，每次访问都重新计算，不缓存
//   - [Cached]: 记忆化，非并发安全，单 goroutine 场景零锁开销
//   - [SyncCached]: 记忆化，双重检查 + 互斥锁，计算函数对每个属主至多执行一次
//
// # 访问路径
//
// Go 没有描述符协议，属性访问表达为普通方法调用：
//   - Get(owner)：通过类型本身访问，owner 通常来自 xslot.For[T]()
//   - GetFrom(instance)：通过实例访问，属主取实例的运行时类型（指针解引用）
//   - SetFrom/DeleteFrom(instance, ...)：实例作用域的写入/删除
//   - Set/Invalidate(owner, ...)：显式的、与实例无关的缓存控制，总是允许
//
// # 缓存语义
//
// 每个（访问器, 属主类型）对的状态机：
//
//	未缓存 →(读取)→ 已缓存(v) →(失效)→ 未缓存 → …
//	已缓存(v) →(Set)→ 已缓存(v')，绕过计算函数
//
// 计算函数的错误原样向调用方传播（不包装、不重试、不记录日志），
// 且槽位保持缺席，下次读取会重新尝试计算。
//
// # 并发模型
//
// SyncCached 的首次访问采用双重检查：无锁快路径先查槽位，
// 未命中则获取访问器级互斥锁并再查一次，确认缺席后才执行计算。
// 所有写操作（SetFrom/DeleteFrom/Set/Invalidate）全程持有同一把锁。
// 已缓存值的发布具备 happens-before 语义，计算 goroutine 写入后，
// 其他 goroutine 读到的是同一个值。
//
// 锁粒度是访问器实例级而非属主级：两个不同属主在同一访问器上的
// 首次访问会在一把锁上串行。这是刻意的取舍——简单优先于吞吐。
//
// # 已知限制
//
//   - Go 的互斥锁不可重入，SyncCached 的计算函数若递归读取同一访问器
//     会死锁；递归计算函数不受支持
//   - Cached 不做任何同步，并发首次访问可能多次执行计算函数，
//     需要并发保证时使用 SyncCached
//   - 覆盖或置空调用方持有的访问器变量属于语言层面的对象替换，
//     不在本包契约之内，不做防护
//
// # 诊断命名
//
// 属性名默认从计算函数的符号派生（xslot.FuncName），
// 可通过 WithName 显式指定；错误消息在名称可用时会带上它。
package xprop
