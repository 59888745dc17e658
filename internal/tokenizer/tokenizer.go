// Package tokenizer provides token counting for prompt file contents.
package tokenizer

import (
	"fmt"

	tiktoken "github.com/tiktoken-go/tokenizer"
)

// Counter counts semantic tokens in a string. Implementations must be
// deterministic: the same string always yields the same count.
type Counter interface {
	Count(text string) int
}

// Codec counts tokens with the cl100k_base BPE encoding.
type Codec struct {
	enc tiktoken.Codec
}

// NewCodec constructs a cl100k_base codec.
func NewCodec() (*Codec, error) {
	enc, err := tiktoken.Get(tiktoken.Cl100kBase)
	if err != nil {
		return nil, fmt.Errorf("loading cl100k_base encoding: %w", err)
	}
	return &Codec{enc: enc}, nil
}

// Count returns the number of cl100k_base tokens in text.
func (c *Codec) Count(text string) int {
	ids, _, _ := c.enc.Encode(text)
	return len(ids)
}

// Estimator approximates token counts with the ~4 characters per token rule
// of thumb. Used when the real codec is unavailable.
type Estimator struct{}

// Count returns an approximate token count for text.
func (Estimator) Count(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + 3) / 4
}

// Default returns the cl100k_base codec, falling back to the heuristic
// estimator if the codec cannot be constructed.
func Default() Counter {
	if c, err := NewCodec(); err == nil {
		return c
	}
	return Estimator{}
}
