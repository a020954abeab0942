package kgp

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ToUnicodeAll converts a batch of independent texts concurrently.
// Results keep the order of the input. Items that fail to convert are
// passed through unchanged and traced; the batch as a whole only fails
// if ctx is cancelled.
func (c *Converter) ToUnicodeAll(ctx context.Context, texts []string) ([]string, error) {
	results := make([]string, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		i, text := i, text // per-iteration copies, required under go < 1.22 loop semantics
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			conv, err := c.ToUnicode(text)
			if err != nil {
				tracer().Errorf("batch item %d not converted: %v", i, err)
				results[i] = text
				return nil
			}
			results[i] = conv
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ToUnicodeAll converts a batch with the package-default converter.
func ToUnicodeAll(ctx context.Context, texts []string) ([]string, error) {
	return defconv().ToUnicodeAll(ctx, texts)
}
