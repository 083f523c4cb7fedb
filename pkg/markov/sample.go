package markov

import (
	"errors"
	"math"
	"math/rand/v2"
	"sort"
)

// ErrEmptyDistribution is returned when a successor must be drawn from a
// distribution with no entries. By construction every trained node has at
// least one outgoing observation, so this indicates an untrained graph or a
// broken invariant rather than a recoverable condition.
var ErrEmptyDistribution = errors.New("markov: sample from empty distribution")

// candidate pairs a successor with its observation count for selection.
type candidate struct {
	id     NodeID
	weight int
}

// chooseNext draws one successor from the given distribution, weighted by
// observation count and shaped by the temperature and top-K options.
func chooseNext(dist map[NodeID]int, options *generateOptions) (NodeID, error) {
	if len(dist) == 0 {
		return End, ErrEmptyDistribution
	}

	choices := make([]candidate, 0, len(dist))
	totalWeight := 0
	for id, weight := range dist {
		choices = append(choices, candidate{id: id, weight: weight})
		totalWeight += weight
	}

	// topK filtering
	if options.topK > 0 && options.topK < len(choices) {
		sort.Slice(choices, func(i, j int) bool {
			return choices[i].weight > choices[j].weight
		})
		choices = choices[:options.topK]
		totalWeight = 0
		for _, choice := range choices {
			totalWeight += choice.weight
		}
	}

	// temperature selection
	if options.temperature <= 0 { // Deterministic
		best := choices[0]
		for _, choice := range choices[1:] {
			if choice.weight > best.weight {
				best = choice
			}
		}
		return best.id, nil
	}

	if options.temperature == 1.0 { // Standard weighted random
		randChoice := rand.IntN(totalWeight)
		for _, choice := range choices {
			randChoice -= choice.weight
			if randChoice < 0 {
				return choice.id, nil
			}
		}
		return choices[len(choices)-1].id, nil
	}

	// Temperature-based sampling
	logProbabilities := make([]float64, len(choices))
	epsilon := -1e9
	for i, choice := range choices {
		lp := math.Log(float64(choice.weight)) / options.temperature
		logProbabilities[i] = lp
		if lp > epsilon {
			epsilon = lp
		}
	}
	var totalFloatWeight float64
	weights := make([]float64, len(choices))
	for i, lp := range logProbabilities {
		w := math.Exp(lp - epsilon)
		weights[i] = w
		totalFloatWeight += w
	}
	randChoice := rand.Float64() * totalFloatWeight
	for i, choice := range choices {
		randChoice -= weights[i]
		if randChoice < 0 {
			return choice.id, nil
		}
	}
	return choices[len(choices)-1].id, nil
}
