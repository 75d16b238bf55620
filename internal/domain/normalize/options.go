package normalize

import "github.com/okian/fiprank/internal/domain/tokenizer"

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithTokenizer sets the line tokenizer.
func WithTokenizer(t *tokenizer.Tokenizer) Option {
	return func(n *Normalizer) {
		if t != nil {
			n.tokenizer = t
		}
	}
}
