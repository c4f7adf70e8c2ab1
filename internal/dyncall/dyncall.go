// Package dyncall invokes arbitrary function values with a loosely typed
// argument list. It is the runtime half shared by the dynamic curry and
// partial-application engines.
package dyncall

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/curryfn/tuple"
)

// Func is a function value that accepts any number of loosely typed arguments.
type Func func(args ...any) any

var (
	ErrNotFunc = fmt.Errorf("value is not a function")
	ErrArgType = fmt.Errorf("argument type mismatch")
)

// Target is a function value together with its declared parameter list,
// captured once when the function is first wrapped.
type Target struct {
	fn       reflect.Value
	fixed    []reflect.Type
	variadic reflect.Type
	native   Func
	desc     string
}

// Of wraps fn. It never fails: a non-function value produces a Target whose
// Call panics with ErrNotFunc.
func Of(fn any) Target {
	switch f := fn.(type) {
	case Func:
		return Target{native: f, desc: "dyncall.Func"}
	case func(...any) any:
		return Target{native: f, desc: "func(...any) any"}
	}

	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return Target{desc: fmt.Sprintf("%T", fn)}
	}
	typ := v.Type()
	params := make([]reflect.Type, typ.NumIn())
	for i := range params {
		params[i] = typ.In(i)
	}
	t := Target{fn: v, fixed: params, desc: typ.String()}
	if typ.IsVariadic() {
		t.fixed, _ = tuple.Pop(params)
		t.variadic = params[len(params)-1].Elem()
	}
	return t
}

// Arity is the number of declared parameters, not counting a variadic tail.
func (t Target) Arity() int {
	return len(t.fixed)
}

// Variadic reports whether the target accepts extra trailing arguments.
func (t Target) Variadic() bool {
	return t.native != nil || t.variadic != nil
}

func (t Target) String() string {
	return t.desc
}

// Call forwards args to the target and returns its result. Missing parameters
// are filled with zero values; surplus arguments are dropped unless the target
// is variadic. A nil argument becomes the zero value of its parameter type and
// numeric arguments are converted to numeric parameter types.
//
// Zero results yield nil, one result yields that value, and several results
// yield them as a []any.
func (t Target) Call(args []any) any {
	if t.native != nil {
		return t.native(args...)
	}
	if !t.fn.IsValid() {
		panic(fmt.Errorf("%w: %s", ErrNotFunc, t.desc))
	}
	if t.variadic == nil && len(args) > len(t.fixed) {
		args = args[:len(t.fixed)]
	}

	in := make([]reflect.Value, 0, max(len(args), len(t.fixed)))
	for i, pt := range t.fixed {
		if i < len(args) {
			in = append(in, valueOf(args[i], pt, i))
		} else {
			in = append(in, reflect.Zero(pt))
		}
	}
	for i := len(t.fixed); i < len(args); i++ {
		in = append(in, valueOf(args[i], t.variadic, i))
	}
	return result(t.fn.Call(in))
}

func valueOf(arg any, pt reflect.Type, pos int) reflect.Value {
	if arg == nil {
		return reflect.Zero(pt)
	}
	v := reflect.ValueOf(arg)
	switch {
	case v.Type().AssignableTo(pt):
		return v
	case isNumeric(v.Kind()) && isNumeric(pt.Kind()) && v.Type().ConvertibleTo(pt):
		return v.Convert(pt)
	}
	panic(fmt.Errorf("%w: argument %d is %s, want %s", ErrArgType, pos, v.Type(), pt))
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func result(out []reflect.Value) any {
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	}
	res := make([]any, len(out))
	for i, v := range out {
		res[i] = v.Interface()
	}
	return res
}
