package xslot

import (
	"reflect"
	"runtime"
	"strings"
)

// Of 解析实例的属主类型。
// 指针逐层解引用到元素类型，因此 &T{} 与 T{} 解析为同一属主。
// instance 为 nil 时返回 [ErrNoOwner]。
func Of(instance any) (reflect.Type, error) {
	if instance == nil {
		return nil, ErrNoOwner
	}
	t := reflect.TypeOf(instance)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, nil
}

// For 返回类型参数 T 的属主类型。
// 对应"通过类型本身访问"的编译期路径，无需构造实例。
func For[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// FuncName 返回函数符号名的末段，用于诊断命名。
// 例如 github.com/acme/app.computeLimit 返回 "computeLimit"，
// 方法值的 "-fm" 后缀会被剥除。
// fn 不是函数、为 nil 或符号不可用时返回空字符串。
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
