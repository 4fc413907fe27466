package xutil

// Item 表示"立即值"或"延迟求值函数"二选一的参数。
//
// 由调用方显式选择构造函数 [Value] 或 [Thunk]，不做运行时函数类型探测。
// 因此即使 T 本身是函数类型，Value(fn) 也只会被当作值返回，不会被调用。
//
// 零值 Item[T] 等价于 Value(零值 T)。
type Item[T any] struct {
	val   T
	fn    func() T
	thunk bool
}

// Value 返回持有立即值的 Item。
func Value[T any](v T) Item[T] {
	return Item[T]{val: v}
}

// Thunk 返回延迟求值的 Item，fn 仅在 Resolve 时调用。
// fn 为 nil 时 Resolve 返回 T 的零值。
func Thunk[T any](fn func() T) Item[T] {
	return Item[T]{fn: fn, thunk: true}
}

// IsThunk 报告该 Item 是否由 Thunk 构造。
func (it Item[T]) IsThunk() bool {
	return it.thunk
}

// Resolve 返回立即值，或调用延迟函数并返回其结果。
// 每次调用都会重新执行延迟函数，不缓存结果；
// 函数中的 panic 原样向上传播。
func (it Item[T]) Resolve() T {
	if !it.thunk {
		return it.val
	}
	if it.fn == nil {
		var zero T
		return zero
	}
	return it.fn()
}

// Values 将一组立即值包装为 Item 切片，便于与 IfSlice 配合使用：
//
//	xutil.IfSlice(ok, xutil.Values("b", "c")...)
func Values[T any](vs ...T) []Item[T] {
	items := make([]Item[T], len(vs))
	for i, v := range vs {
		items[i] = Value(v)
	}
	return items
}
