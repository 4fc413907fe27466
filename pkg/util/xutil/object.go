package xutil

import (
	"maps"

	"github.com/fatih/structs"
)

// IfMap 在 cond 为 true 时返回解析后的 map，否则返回空 map。
//
// 解析结果原样返回（同一个 map，不拷贝、不合并、不过滤键）。
// cond 为 false 时不调用延迟函数。常与 [Merge] 搭配模拟对象展开：
//
//	opts := xutil.Merge(base,
//	    xutil.IfMap(cfg.Debug, xutil.Thunk(func() map[string]any {
//	        return map[string]any{"debug": true}
//	    })))
func IfMap[M ~map[K]V, K comparable, V any](cond bool, value Item[M]) M {
	if !cond {
		return M{}
	}
	return value.Resolve()
}

// IfMapErr 是 IfMap 的可返回错误版本，fn 的错误原样返回。
// fn 为 nil 时返回 (nil, nil)，与 Thunk(nil) 一致。
func IfMapErr[M ~map[K]V, K comparable, V any](cond bool, fn func() (M, error)) (M, error) {
	if !cond {
		return M{}, nil
	}
	if fn == nil {
		return nil, nil
	}
	return fn()
}

// IfObject 是可选记录形式：cond 为 true 时返回 (解析值, true)，
// 否则返回 (零值, false) 且不调用延迟函数。
func IfObject[T any](cond bool, value Item[T]) (T, bool) {
	if !cond {
		var zero T
		return zero, false
	}
	return value.Resolve(), true
}

// IfFields 将结构体记录按字段展开为 map，得到 T 的"部分字段"视图。
//
// cond 为 false 时返回空 map。字段名与 omitempty 规则遵循 fatih/structs 的
// `structs` 标签。T 必须是结构体或指向结构体的指针，否则 panic。
func IfFields[T any](cond bool, value Item[T]) map[string]any {
	if !cond {
		return map[string]any{}
	}
	return structs.Map(value.Resolve())
}

// Merge 按顺序浅合并多个 map 到一个新 map，后者覆盖前者，nil 被跳过。
// 输入 map 不会被修改；嵌套的 map/切片值按引用共享，不做深合并。
func Merge[M ~map[K]V, K comparable, V any](parts ...M) M {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(M, n)
	for _, p := range parts {
		maps.Copy(out, p)
	}
	return out
}
