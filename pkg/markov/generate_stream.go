package markov

import (
	"context"
	"fmt"
	"log/slog"
)

// GenerateStream performs one random walk and returns a read-only channel of
// token values. This allows processing the generated sequence token-by-token,
// which is useful when generating very long sequences. The channel is closed
// once the end marker is drawn, the optional length cap is hit, or the
// context is cancelled.
func (g *Graph) GenerateStream(ctx context.Context, opts ...GenerateOption) (<-chan string, error) {
	options := defaultGenerateOptions()
	for _, opt := range opts {
		opt(options)
	}

	first, err := chooseNext(g.starts, options)
	if err != nil {
		return nil, fmt.Errorf("could not choose a starting node: %w", err)
	}

	tokenChan := make(chan string)

	go func() {
		defer close(tokenChan)

		cur := first
		generatedCount := 0

		for cur != End {
			select {
			case <-ctx.Done():
				g.logger.Debug("Generation stream cancelled by context")
				return
			case tokenChan <- g.nodes[cur].value:
			}

			generatedCount++
			if options.maxLength > 0 && generatedCount >= options.maxLength {
				g.logger.Debug("Generation stream stopped by reaching max length",
					slog.Int("max_length", options.maxLength),
				)
				return
			}

			next, err := chooseNext(g.nodes[cur].edges, options)
			if err != nil {
				g.logger.Error("Dead end during streaming generation",
					slog.String("token", g.nodes[cur].value),
					slog.Any("error", err),
				)
				return
			}
			cur = next
		}
	}()

	return tokenChan, nil
}
