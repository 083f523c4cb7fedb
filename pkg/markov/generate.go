package markov

import (
	"fmt"
	"log/slog"
)

// generateOptions Is used by the generate functions to configure default options.
type generateOptions struct {
	maxLength   int
	temperature float64
	topK        int
}

// GenerateOption is a function that configures generation parameters. It's used
// as a variadic argument in Generate and GenerateStream.
type GenerateOption func(*generateOptions)

// WithMaxLength caps the number of tokens in a generated sequence. A value of
// 0 (the default) lets the walk run until the end marker is drawn, which is
// guaranteed to happen with probability 1 on a trained graph.
func WithMaxLength(n int) GenerateOption {
	return func(o *generateOptions) { o.maxLength = n }
}

// WithTemperature adjusts the randomness of successor selection.
// A value of 1.0 is standard weighted random selection.
// Values > 1.0 increase randomness (making rare transitions more likely).
// Values < 1.0 decrease randomness (making common transitions even more likely).
// A value of 0 or less results in deterministic selection (always choosing the most frequent successor).
func WithTemperature(t float64) GenerateOption {
	return func(o *generateOptions) { o.temperature = t }
}

// WithTopK restricts successor selection to the `k` most frequent successors
// at each step. A value of 0 disables Top-K sampling.
func WithTopK(k int) GenerateOption {
	return func(o *generateOptions) { o.topK = k }
}

func defaultGenerateOptions() *generateOptions {
	return &generateOptions{
		maxLength:   0,
		temperature: 1.0,
		topK:        0,
	}
}

// Generate performs one independent random walk over the graph and returns
// the visited token values in order. The walk starts from the start
// distribution and ends when the end marker is drawn (or the optional length
// cap is hit). Each call draws fresh samples; results are not repeatable.
//
// The only error condition is sampling from an empty distribution, which
// cannot happen on a graph that has ingested at least one chain.
func (g *Graph) Generate(opts ...GenerateOption) ([]string, error) {
	options := defaultGenerateOptions()
	for _, opt := range opts {
		opt(options)
	}

	cur, err := chooseNext(g.starts, options)
	if err != nil {
		return nil, fmt.Errorf("could not choose a starting node: %w", err)
	}

	var result []string
	for cur != End {
		result = append(result, g.nodes[cur].value)

		if options.maxLength > 0 && len(result) >= options.maxLength {
			g.logger.Debug("Generation stopped by reaching max length",
				slog.Int("max_length", options.maxLength),
			)
			break
		}

		next, err := chooseNext(g.nodes[cur].edges, options)
		if err != nil {
			return nil, fmt.Errorf("could not choose a successor of %q: %w", g.nodes[cur].value, err)
		}
		cur = next
	}

	return result, nil
}
