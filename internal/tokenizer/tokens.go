// Package tokenizer provides request-line tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for the request line.
const (
	TokenMethod  = "Method"  // GET, POST
	TokenText    = "Text"    // request-target or any other run of non-space text
	TokenVersion = "Version" // protocol name and version: HTTP/1.1
	TokenSP      = "SP"      // single space separator
	TokenCRLF    = "CRLF"    // line ending \r\n, bare \r or bare \n
)
