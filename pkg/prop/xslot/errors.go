package xslot

import "errors"

var (
	// ErrNoOwner 表示无法解析属主类型（实例为 nil）。
	ErrNoOwner = errors.New("xslot: no owner type")
)
