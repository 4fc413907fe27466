package xutil

import (
	"reflect"

	"github.com/fatih/structs"
)

// =============================================================================
// 动态判别（兼容模式）
//
// 以下函数接收 any，通过反射判断参数是否为延迟函数：
// 非 nil、无参数、恰好一个返回值的函数会被调用，其余参数原样保留。
//
// 已知限制：值本身就是 func() X 时无法与延迟函数区分，总会被调用。
// 需要传递函数值时请使用 Item 版本（IfSlice / IfMap）并显式 Value(fn)。
//
// 带参数或返回值个数不为 1 的函数（包括无返回值的 func()）无法产出结果，
// 不视为延迟函数，按普通值原样保留，也不会被调用。
// =============================================================================

// IfSliceAny 是 IfSlice 的动态判别版本。
func IfSliceAny(cond bool, values ...any) []any {
	if !cond {
		return []any{}
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = resolveAny(v)
	}
	return out
}

// IfMapAny 是 IfMap 的动态判别版本。
//
// 解析结果的处理规则：
//   - map[string]any 及以其为底层类型的命名 map：原样返回同一个 map
//   - 其他键为字符串类型的 map（如 map[string]string）：逐项拷贝为新的 map[string]any
//   - 结构体或非 nil 结构体指针：通过 fatih/structs 展开为字段 map
//   - 其他类型（含非字符串键的 map）：返回 ErrNotRecord
//
// cond 为 false 时返回空 map，不调用延迟函数。
func IfMapAny(cond bool, value any) (map[string]any, error) {
	if !cond {
		return map[string]any{}, nil
	}
	switch v := resolveAny(value).(type) {
	case map[string]any:
		return v, nil
	case nil:
		return nil, ErrNotRecord
	default:
		if m, ok := stringKeyedMap(v); ok {
			return m, nil
		}
		if !isStruct(v) {
			return nil, ErrNotRecord
		}
		return structs.Map(v), nil
	}
}

var anyMapType = reflect.TypeOf((*map[string]any)(nil)).Elem()

// stringKeyedMap 将键为字符串类型的 map 转为 map[string]any。
// 底层类型即为 map[string]any 时直接转换，不拷贝。
func stringKeyedMap(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	if rv.Type().ConvertibleTo(anyMapType) {
		return rv.Convert(anyMapType).Interface().(map[string]any), true
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// isThunk 报告 rv 是否为可无参调用且只有一个返回值的非 nil 函数。
func isThunk(rv reflect.Value) bool {
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return false
	}
	t := rv.Type()
	return t.NumIn() == 0 && t.NumOut() == 1
}

func resolveAny(v any) any {
	rv := reflect.ValueOf(v)
	if !isThunk(rv) {
		return v
	}
	return rv.Call(nil)[0].Interface()
}

func isStruct(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}
