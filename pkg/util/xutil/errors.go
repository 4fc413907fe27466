package xutil

import "errors"

// ErrNotRecord 表示 IfMapAny 解析出的值既不是 map[string]any 也不是结构体。
var ErrNotRecord = errors.New("xutil: value is not a record")
