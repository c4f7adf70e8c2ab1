// Package curry converts n-ary functions into chains of calls that can be fed
// their arguments in any split.
//
// Two flavours are provided.
//
// The dynamic engine, [Curry] and [New], works on any function value. Each call
// appends its arguments to those already bound; once the running total reaches
// the declared arity, every accumulated argument is forwarded to the original
// function and its result is returned. Until then a fresh [Func] is returned.
//
//	replace := curry.Curry(strings.Replace)
//	replace("hello world", "hello").(curry.Func)("hi", -1) // "hi world"
//
// The typed families, [Curry0] through [Curry5], keep full static typing. Every
// legal first chunk of arguments is a method on the curried value, and each
// method returns the curried type of whatever remains:
//
//	c := curry.Curry3(func(a string, b int, c bool) string { ... })
//	c.Call("x", 1, true)
//	c.Take1("x").Call(1, true)
//	c.Take2("x", 1).Call(true)
//	c.Take1("x").Take1(1).Call(true)
//
// Beyond arity 5 use [CurryN] for homogeneous parameters or the dynamic engine.
//
// Arity of a variadic Go function excludes its variadic tail, so such a function
// is called as soon as its fixed parameters are supplied. Use [WithArity] to
// wait for more.
package curry
