package reqline

import (
	"fmt"

	"github.com/shapestone/shape-reqline/internal/tokenizer"
)

// Token kinds produced by Tokenize.
const (
	TokenMethod  = tokenizer.TokenMethod
	TokenText    = tokenizer.TokenText
	TokenVersion = tokenizer.TokenVersion
	TokenSP      = tokenizer.TokenSP
	TokenCRLF    = tokenizer.TokenCRLF
)

// Token is one lexical element of a request line.
type Token struct {
	Kind   string
	Value  string
	Offset int // byte offset in the input
}

// Tokenize splits input into tokens without checking the request-line grammar.
// An unknown method is reported as TokenText rather than an error, which makes
// Tokenize useful for explaining why ParseRequestLine rejected a line.
func Tokenize(input string) ([]Token, error) {
	tok := tokenizer.NewTokenizer()
	tok.Initialize(input)

	raw, eos := tok.Tokenize()
	tokens := make([]Token, 0, len(raw))
	offset := 0
	for _, t := range raw {
		v := t.ValueString()
		tokens = append(tokens, Token{Kind: t.Kind(), Value: v, Offset: offset})
		offset += len(v)
	}
	if !eos {
		return tokens, fmt.Errorf("reqline: Tokenize: no token matches at position %d", offset)
	}
	return tokens, nil
}
