// Package tokenizer splits ranking lines into a name and its data tokens.
package tokenizer

// Option applies a configuration option to the Tokenizer.
type Option func(*Tokenizer)

// WithSeparatorWidth sets how many consecutive spaces end the name field.
// Non-positive widths are ignored.
func WithSeparatorWidth(width int) Option {
	return func(t *Tokenizer) {
		if width > 0 {
			t.width = width
		}
	}
}
