package source

import "regexp"

// Tokenizer splits raw text into tokens using a regular expression. The
// default matches runs of non-whitespace, so a token is simply a word as
// delimited by spaces, tabs and newlines.
type Tokenizer struct {
	splitRegex *regexp.Regexp
}

// TokenizerOption Is a function that configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithSplitRegex sets the regex used to match tokens in input text.
// Default: `\S+`
func WithSplitRegex(expr string) TokenizerOption {
	return func(t *Tokenizer) {
		t.splitRegex = regexp.MustCompile(expr)
	}
}

// NewTokenizer creates a new tokenizer with default settings, which can be
// overridden by providing one or more TokenizerOption functions.
func NewTokenizer(opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{
		splitRegex: regexp.MustCompile(`\S+`),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Split returns the tokens of one logical unit of text, in order.
func (t *Tokenizer) Split(text string) []string {
	return t.splitRegex.FindAllString(text, -1)
}
