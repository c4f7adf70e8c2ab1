package partial

// The typed binders are named Kind{k}Of{n}: k arguments bound on a function
// of n parameters. Each returns a function over exactly the positions left.

// Identity is binding zero arguments: it returns fn unchanged.
func Identity[F any](fn F) F {
	return fn
}

func Left1Of1[A, R any](fn func(A) R, a A) func() R {
	return func() R {
		return fn(a)
	}
}

func Left1Of2[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return fn(a, b)
	}
}

func Left2Of2[A, B, R any](fn func(A, B) R, a A, b B) func() R {
	return func() R {
		return fn(a, b)
	}
}

// Left1Of3 binds the first argument of a ternary function.
func Left1Of3[A, B, C, R any](fn func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return fn(a, b, c)
	}
}

func Left2Of3[A, B, C, R any](fn func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return fn(a, b, c)
	}
}

func Left3Of3[A, B, C, R any](fn func(A, B, C) R, a A, b B, c C) func() R {
	return func() R {
		return fn(a, b, c)
	}
}

func Left1Of4[A, B, C, D, R any](fn func(A, B, C, D) R, a A) func(B, C, D) R {
	return func(b B, c C, d D) R {
		return fn(a, b, c, d)
	}
}

func Left2Of4[A, B, C, D, R any](fn func(A, B, C, D) R, a A, b B) func(C, D) R {
	return func(c C, d D) R {
		return fn(a, b, c, d)
	}
}

func Left3Of4[A, B, C, D, R any](fn func(A, B, C, D) R, a A, b B, c C) func(D) R {
	return func(d D) R {
		return fn(a, b, c, d)
	}
}

func Left4Of4[A, B, C, D, R any](fn func(A, B, C, D) R, a A, b B, c C, d D) func() R {
	return func() R {
		return fn(a, b, c, d)
	}
}

func Left1Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, a A) func(B, C, D, E) R {
	return func(b B, c C, d D, e E) R {
		return fn(a, b, c, d, e)
	}
}

func Left2Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, a A, b B) func(C, D, E) R {
	return func(c C, d D, e E) R {
		return fn(a, b, c, d, e)
	}
}

func Left3Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, a A, b B, c C) func(D, E) R {
	return func(d D, e E) R {
		return fn(a, b, c, d, e)
	}
}

func Left4Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, a A, b B, c C, d D) func(E) R {
	return func(e E) R {
		return fn(a, b, c, d, e)
	}
}

func Left5Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, a A, b B, c C, d D, e E) func() R {
	return func() R {
		return fn(a, b, c, d, e)
	}
}

func Right1Of1[A, R any](fn func(A) R, a A) func() R {
	return func() R {
		return fn(a)
	}
}

func Right1Of2[A, B, R any](fn func(A, B) R, b B) func(A) R {
	return func(a A) R {
		return fn(a, b)
	}
}

func Right2Of2[A, B, R any](fn func(A, B) R, b B, a A) func() R {
	return func() R {
		return fn(a, b)
	}
}

func Right1Of3[A, B, C, R any](fn func(A, B, C) R, c C) func(A, B) R {
	return func(a A, b B) R {
		return fn(a, b, c)
	}
}

// Right2Of3 binds the last two arguments of a ternary function. They are
// passed trailing-first: Right2Of3(f, c, b)(a) calls f(a, b, c).
func Right2Of3[A, B, C, R any](fn func(A, B, C) R, c C, b B) func(A) R {
	return func(a A) R {
		return fn(a, b, c)
	}
}

func Right3Of3[A, B, C, R any](fn func(A, B, C) R, c C, b B, a A) func() R {
	return func() R {
		return fn(a, b, c)
	}
}

func Right1Of4[A, B, C, D, R any](fn func(A, B, C, D) R, d D) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return fn(a, b, c, d)
	}
}

func Right2Of4[A, B, C, D, R any](fn func(A, B, C, D) R, d D, c C) func(A, B) R {
	return func(a A, b B) R {
		return fn(a, b, c, d)
	}
}

func Right3Of4[A, B, C, D, R any](fn func(A, B, C, D) R, d D, c C, b B) func(A) R {
	return func(a A) R {
		return fn(a, b, c, d)
	}
}

func Right4Of4[A, B, C, D, R any](fn func(A, B, C, D) R, d D, c C, b B, a A) func() R {
	return func() R {
		return fn(a, b, c, d)
	}
}

func Right1Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, e E) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R {
		return fn(a, b, c, d, e)
	}
}

func Right2Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, e E, d D) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return fn(a, b, c, d, e)
	}
}

func Right3Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, e E, d D, c C) func(A, B) R {
	return func(a A, b B) R {
		return fn(a, b, c, d, e)
	}
}

func Right4Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, e E, d D, c C, b B) func(A) R {
	return func(a A) R {
		return fn(a, b, c, d, e)
	}
}

func Right5Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, e E, d D, c C, b B, a A) func() R {
	return func() R {
		return fn(a, b, c, d, e)
	}
}

func Rest1Of2[A, B, R any](fn func(A, B) R, b B) func(A) R {
	return func(a A) R {
		return fn(a, b)
	}
}

// Rest1Of3 binds the second argument of a ternary function, leaving the
// head and the tail free: Rest1Of3(f, b)(a, c) calls f(a, b, c).
func Rest1Of3[A, B, C, R any](fn func(A, B, C) R, b B) func(A, C) R {
	return func(a A, c C) R {
		return fn(a, b, c)
	}
}

func Rest2Of3[A, B, C, R any](fn func(A, B, C) R, b B, c C) func(A) R {
	return func(a A) R {
		return fn(a, b, c)
	}
}

func Rest1Of4[A, B, C, D, R any](fn func(A, B, C, D) R, b B) func(A, C, D) R {
	return func(a A, c C, d D) R {
		return fn(a, b, c, d)
	}
}

func Rest2Of4[A, B, C, D, R any](fn func(A, B, C, D) R, b B, c C) func(A, D) R {
	return func(a A, d D) R {
		return fn(a, b, c, d)
	}
}

func Rest3Of4[A, B, C, D, R any](fn func(A, B, C, D) R, b B, c C, d D) func(A) R {
	return func(a A) R {
		return fn(a, b, c, d)
	}
}

func Rest1Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, b B) func(A, C, D, E) R {
	return func(a A, c C, d D, e E) R {
		return fn(a, b, c, d, e)
	}
}

func Rest2Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, b B, c C) func(A, D, E) R {
	return func(a A, d D, e E) R {
		return fn(a, b, c, d, e)
	}
}

func Rest3Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, b B, c C, d D) func(A, E) R {
	return func(a A, e E) R {
		return fn(a, b, c, d, e)
	}
}

func Rest4Of5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, b B, c C, d D, e E) func(A) R {
	return func(a A) R {
		return fn(a, b, c, d, e)
	}
}
