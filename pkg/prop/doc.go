// Package prop 提供类级计算属性相关的子包。
//
// 子包列表：
//   - xprop: 三种访问器——只读、记忆化、并发安全记忆化
//   - xslot: 属主标识解析与缓存槽位注册表
//
// 设计原则：
//   - 属主标识是精确的 reflect.Type，指针解引用，嵌入不共享
//   - 缓存槽位由访问器实例持有，不挂载全局状态
//   - 计算函数的错误原样传播，库内不记录日志、不重试
package prop
