package xprop

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCompute 表示构造访问器时未提供计算函数。
	// 在定义期（构造函数）返回，而非访问期。
	ErrNilCompute = errors.New("xprop: compute function is nil")

	// ErrReadOnly 表示对只读属性的写入或删除尝试。
	ErrReadOnly = errors.New("xprop: property is read-only")

	// ErrNoOwner 表示访问时既无实例也无属主类型可解析。
	ErrNoOwner = errors.New("xprop: no owner type")

	// ErrNoInstance 表示在无实例上下文时对记忆化属性执行写入或删除。
	// 调用方应改用实例作用域的 SetFrom/DeleteFrom，或显式的 Set/Invalidate API。
	ErrNoInstance = errors.New("xprop: no instance context; use SetFrom/DeleteFrom with an instance or the explicit Set/Invalidate API")
)

// named 在属性名可用时将其附加到错误消息。
func named(err error, name string) error {
	if name == "" {
		return err
	}
	return fmt.Errorf("%w (property %q)", err, name)
}
