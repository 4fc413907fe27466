package xutil

// IfSlice 在 cond 为 true 时按顺序解析 items 并返回结果切片，否则返回空切片。
//
// cond 为 false 时不检查、不调用任何 item。结果可直接展开拼接：
//
//	args := append([]string{"run"}, xutil.IfSlice(verbose, xutil.Value("-v"))...)
//	tags := append(tags, xutil.IfSlice(user.Enabled,
//	    xutil.Thunk(func() string { return expensiveTag(user) }))...)
//
// 返回值总是非 nil，每次调用都会分配新切片。
func IfSlice[T any](cond bool, items ...Item[T]) []T {
	if !cond {
		return []T{}
	}
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Resolve()
	}
	return out
}

// IfSliceErr 是 IfSlice 的可返回错误版本。
//
// cond 为 true 时按顺序调用 fns；遇到第一个错误立即返回 (nil, err)，
// err 不做包装，后续函数不再调用。cond 为 false 时不调用任何函数。
// 与 Thunk(nil) 一致，nil 函数对应位置为 T 的零值。
func IfSliceErr[T any](cond bool, fns ...func() (T, error)) ([]T, error) {
	if !cond {
		return []T{}, nil
	}
	out := make([]T, len(fns))
	for i, fn := range fns {
		if fn == nil {
			continue
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
