package humanizer

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Runner executes a humanization request. *Pipeline satisfies it.
type Runner interface {
	Run(ctx context.Context, req Request) (Result, error)
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func(ctx context.Context, req Request) (Result, error)

// Run calls the underlying function.
func (f RunnerFunc) Run(ctx context.Context, req Request) (Result, error) {
	return f(ctx, req)
}

// Middleware wraps a Runner, returning a new Runner with added behaviour.
type Middleware func(next Runner) Runner

// Chain applies middlewares to r so that the first one is the outermost.
func Chain(r Runner, mws ...Middleware) Runner {
	for i := len(mws) - 1; i >= 0; i-- {
		r = mws[i](r)
	}
	return r
}

// --- Timeout middleware ---

// Timeout returns a Middleware that wraps the runner's context with a deadline.
// A non-positive d leaves the context untouched.
func Timeout(d time.Duration) Middleware {
	return func(next Runner) Runner {
		if d <= 0 {
			return next
		}
		return RunnerFunc(func(ctx context.Context, req Request) (Result, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()

			return next.Run(ctx, req)
		})
	}
}

// --- Recovery middleware ---

// Recovery returns a Middleware that catches panics and converts them to errors.
func Recovery() Middleware {
	return func(next Runner) Runner {
		return RunnerFunc(func(ctx context.Context, req Request) (res Result, err error) {
			defer func() {
				if r := recover(); r != nil {
					res = Result{}
					err = fmt.Errorf("humanizer panicked: %v", r)
				}
			}()

			return next.Run(ctx, req)
		})
	}
}

// --- Logger middleware ---

// Logger returns a Middleware that logs request start, duration, and error.
func Logger(log *slog.Logger, name string) Middleware {
	return func(next Runner) Runner {
		return RunnerFunc(func(ctx context.Context, req Request) (Result, error) {
			log.InfoContext(ctx, "request started", "caller", name, "level", req.Level, "tone", req.Tone)

			start := time.Now()

			res, err := next.Run(ctx, req)

			duration := time.Since(start)

			if err != nil {
				log.ErrorContext(ctx, "request finished with error",
					"caller", name,
					"duration", duration,
					"error", err,
				)
			} else {
				log.InfoContext(ctx, "request finished",
					"caller", name,
					"duration", duration,
					"confidence", res.ConfidenceScore,
					"fallback", res.UsedFallback,
				)
			}

			return res, err
		})
	}
}

// --- Guardrail middleware ---

// Guardrail returns a Middleware that validates the result. If check returns
// an error, that error is returned instead of the result.
func Guardrail(check func(Result) error) Middleware {
	return func(next Runner) Runner {
		return RunnerFunc(func(ctx context.Context, req Request) (Result, error) {
			res, err := next.Run(ctx, req)
			if err != nil {
				return res, err
			}

			if checkErr := check(res); checkErr != nil {
				return Result{}, checkErr
			}

			return res, nil
		})
	}
}

// MinConfidence returns a Guardrail check rejecting results scored below min.
func MinConfidence(min int) func(Result) error {
	return func(res Result) error {
		if res.ConfidenceScore < min {
			return fmt.Errorf("humanizer: confidence %d below required %d", res.ConfidenceScore, min)
		}
		return nil
	}
}
