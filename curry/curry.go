package curry

import (
	"github.com/google/uuid"
	"github.com/on-the-ground/curryfn/internal/dyncall"
	"github.com/on-the-ground/curryfn/shared/helper"
	"github.com/on-the-ground/curryfn/tuple"
	"go.uber.org/zap"
)

// Func is a dynamically curried function. Its result is either the wrapped
// function's result or another Func waiting for more arguments.
type Func = dyncall.Func

type config struct {
	arity  int
	logger *zap.Logger
}

// Option configures New.
type Option func(*config)

// WithArity overrides the arity read from the function's signature.
// Negative values are treated as zero.
func WithArity(n int) Option {
	return func(c *config) {
		c.arity = max(n, 0)
	}
}

// WithLogger traces every dispatch decision at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Curry returns the curried form of fn. It never fails; if fn is not a
// function the returned Func panics with dyncall.ErrNotFunc when it fires.
func Curry(fn any) Func {
	return New(fn)
}

// New is Curry with options.
func New(fn any, opts ...Option) Func {
	target := dyncall.Of(fn)
	cfg := config{
		arity:  target.Arity(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger.Core().Enabled(zap.DebugLevel) {
		logger = logger.With(
			zap.String("chain_id", uuid.NewString()),
			zap.Stringer("fn", target),
			zap.Int("arity", cfg.arity),
		)
	}
	e := &engine{target: target, arity: cfg.arity, logger: logger}
	return e.curried(nil)
}

type engine struct {
	target dyncall.Target
	arity  int
	logger *zap.Logger
}

// curried closes over bound, which is never written to after this call.
func (e *engine) curried(bound []any) Func {
	return func(args ...any) any {
		all := tuple.Concat(bound, args)
		complete := len(all) >= e.arity
		e.logger.Debug("curry dispatch",
			zap.Int("received", len(args)),
			zap.Int("accumulated", len(all)),
			zap.Bool("complete", complete),
		)
		if complete {
			return e.target.Call(all)
		}
		return e.curried(all)
	}
}

// Result converts the final value of a dynamic chain to T. It fails with
// helper.ErrStillCurried if res is still a continuation.
//
// A wrapped function whose own result is a Func cannot be told apart from an
// unfinished chain, so Result reports ErrStillCurried for it as well. Assert
// such results directly.
func Result[T any](res any) (T, error) {
	return helper.Complete[T, Func](res)
}
