package tokenizer

import (
	"unicode"

	"github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-reqline/internal/combinator"
	"github.com/shapestone/shape-reqline/internal/fastparser"
)

// NewTokenizer creates a tokenizer for a request line.
// Matchers are tried in priority order:
// 1. CRLF (line endings)
// 2. SP (space separator)
// 3. Protocol/version pair (before method, so "GET/1.1" is a version)
// 4. Method keyword
// 5. Generic text (targets and anything unrecognized)
//
// Whitespace is significant, so the default whitespace skipper is not used.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		CRLFMatcher(),
		SPMatcher(),
		VersionMatcher(),
		MethodMatcher(),
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates a request-line tokenizer over a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// CRLFMatcher matches \r\n, bare \r or bare \n.
func CRLFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}

		if r == '\r' {
			value := []rune{'\r'}
			stream.NextChar()
			r2, ok := stream.PeekChar()
			if ok && r2 == '\n' {
				stream.NextChar()
				value = append(value, '\n')
			}
			return tokenizer.NewToken(TokenCRLF, value)
		}
		if r == '\n' {
			stream.NextChar()
			return tokenizer.NewToken(TokenCRLF, []rune{'\n'})
		}
		return nil
	}
}

// SPMatcher matches a single space character.
func SPMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != ' ' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenSP, []rune{' '})
	}
}

// MethodMatcher matches a known method keyword that ends at a space, a line
// ending or the end of input. "GETS" is not a method.
func MethodMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || r < 'A' || r > 'Z' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if r, ok := stream.PeekChar(); ok && !isDelimiter(r) {
			return nil
		}
		if _, ok := fastparser.LookupMethod(string(value)); !ok {
			return nil
		}
		return tokenizer.NewToken(TokenMethod, value)
	}
}

// VersionMatcher matches a non-empty protocol name, "/" and a decimal float,
// e.g. "HTTP/1.1". The float must end cleanly: "HTTP/1.1e" is not a version.
func VersionMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		// Protocol name up to the slash
		for {
			r, ok := stream.PeekChar()
			if !ok || isDelimiter(r) {
				return nil
			}
			if r == '/' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		stream.NextChar()
		value = append(value, '/')

		var sc combinator.FloatScanner
		for {
			r, ok := stream.PeekChar()
			if !ok || r > unicode.MaxASCII || !sc.Step(byte(r)) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if sc.Accepted() == 0 || sc.Accepted() != sc.Consumed() {
			return nil
		}

		return tokenizer.NewToken(TokenVersion, value)
	}
}

// TextMatcher matches any sequence of characters until SP, a line ending or EOS.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || isDelimiter(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenText, value)
	}
}

func isDelimiter(r rune) bool {
	return r == ' ' || r == '\r' || r == '\n'
}
