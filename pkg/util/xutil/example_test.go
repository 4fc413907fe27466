package xutil_test

import (
	"encoding/json"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/xcond/pkg/util/xutil"
)

func ExampleIf() {
	name := xutil.If(true, "Alice", "Bob")
	fmt.Println(name)

	port := xutil.If(false, 8080, 80)
	fmt.Println(port)
	// Output:
	// Alice
	// 80
}

func ExampleIfSlice() {
	items := append([]string{"a"}, xutil.IfSlice(true, xutil.Values("b", "c")...)...)
	fmt.Println(items)

	var user *struct{ Name string }
	safe := xutil.IfSlice(user != nil, xutil.Thunk(func() string { return user.Name }))
	fmt.Println(len(safe))
	// Output:
	// [a b c]
	// 0
}

func ExampleIfMap() {
	obj := xutil.Merge(
		map[string]any{"id": 1},
		xutil.IfMap(true, xutil.Value(map[string]any{"role": "admin"})),
	)
	out, _ := json.Marshal(obj)
	fmt.Println(string(out))

	empty := xutil.IfMap(false, xutil.Thunk(func() map[string]any {
		return map[string]any{"debug": true}
	}))
	out, _ = json.Marshal(empty)
	fmt.Println(string(out))
	// Output:
	// {"id":1,"role":"admin"}
	// {}
}

// 由配置中的特性开关决定是否附加调试选项。
func ExampleIfMap_featureFlag() {
	k := koanf.New(".")
	data := []byte("features:\n  debug: true\n  tracing: false\n")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		fmt.Println("load:", err)
		return
	}

	opts := xutil.Merge(
		map[string]any{"service": "api"},
		xutil.IfMap(k.Bool("features.debug"), xutil.Thunk(func() map[string]any {
			return map[string]any{"debug": true}
		})),
		xutil.IfMap(k.Bool("features.tracing"), xutil.Thunk(func() map[string]any {
			panic("tracing disabled, never evaluated")
		})),
	)
	out, _ := json.Marshal(opts)
	fmt.Println(string(out))
	// Output:
	// {"debug":true,"service":"api"}
}

func ExampleIfObject() {
	type Profile struct{ Role string }

	if p, ok := xutil.IfObject(true, xutil.Value(Profile{Role: "admin"})); ok {
		fmt.Println(p.Role)
	}
	_, ok := xutil.IfObject(false, xutil.Value(Profile{Role: "guest"}))
	fmt.Println(ok)
	// Output:
	// admin
	// false
}

func ExampleIfFields() {
	type Flags struct {
		Debug bool   `structs:"debug"`
		Trace string `structs:"trace,omitempty"`
	}

	fields := xutil.IfFields(true, xutil.Value(Flags{Debug: true}))
	out, _ := json.Marshal(fields)
	fmt.Println(string(out))
	// Output:
	// {"debug":true}
}

func ExampleIfSliceAny() {
	got := xutil.IfSliceAny(true, "b", func() string { return "x" })
	fmt.Println(got)
	// Output:
	// [b x]
}
