package logs

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

// Span identifies one unit of work, usually one interpreted input.
type Span string

type spanKey struct{}

var SpanKey spanKey

// SpanOf returns the span carried by ctx, or "".
func SpanOf(ctx context.Context) Span {
	span, _ := ctx.Value(SpanKey).(Span)
	return span
}

// NewSpan derives a context carrying a fresh span. An empty parent means
// the span of ctx, if any.
type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator := SpanOf(ctx)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		args := make([]any, 0, 4)
		if parent != "" {
			args = append(args, "parent", parent)
		}
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}

// WrapSpan joins the span of ctx into err, so errors reported away from the
// log stream can still be matched to it.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanOf(ctx)
	if span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
