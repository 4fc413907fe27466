// Package xutil 提供泛型工具函数。
//
// # 功能概览
//
//   - [If]: 泛型三目运算符，编译期类型安全（立即求值）
//   - [IfFunc]: 延迟求值的三目运算符，只解析被选中的分支
//   - [IfSlice] / [IfSliceErr]: 条件构建切片，配合 append(...) 展开使用
//   - [IfMap] / [IfMapErr]: 条件构建 map 记录，配合 [Merge] 模拟对象展开
//   - [IfObject]: 可选记录形式，返回 (值, 是否存在)
//   - [IfFields]: 将结构体记录条件展开为字段 map
//   - [IfSliceAny] / [IfMapAny]: 基于反射判别延迟函数的兼容版本
//
// # 值与延迟函数
//
// 条件构建函数的参数是 [Item]，由 [Value]（立即值）或 [Thunk]（延迟函数）构造。
// 条件为 false 时不调用任何延迟函数，昂贵或不安全的计算可以放心放在 Thunk 中：
//
//	args := append(base, xutil.IfSlice(user != nil,
//	    xutil.Thunk(func() string { return user.Name }))...)
//
// # 设计决策
//
// 值与延迟函数通过显式构造函数区分，而不是在运行时判断参数是否为函数。
// 这样 T 本身为函数类型时也不会被误调用。需要运行时判别语义时使用
// IfSliceAny / IfMapAny，并注意其已知限制。
//
// 条件为 false 时返回非 nil 的空切片 / 空 map，JSON 序列化结果为 [] / {}。
//
// # 错误处理
//
// 延迟函数中的 panic 不做 recover，原样传播给调用方。
// Err 版本遇到第一个错误即返回，错误不做包装，后续函数不再调用。
//
// # 已知限制
//
//   - 不缓存延迟函数结果：每次调用都会重新执行
//   - Merge 为浅合并，嵌套值按引用共享
//   - IfFields 要求结构体类型，其他类型会 panic
//
// # 相关包
//
//   - 结构体转 map：[github.com/fatih/structs]
package xutil
