package fastparser

import (
	"fmt"
	"strings"
)

// CurlLine is a request line recovered from a curl command.
type CurlLine struct {
	Line     string   // request line terminated by CRLF
	Warnings []string // flags and arguments that were skipped
}

// FromCurl builds the request line that curl would send for cmd.
// The method defaults to GET, or POST when a body flag is present. The
// target is the path of the URL. Headers and bodies are not carried over.
// An error is returned only when the command cannot be split or has no URL.
func FromCurl(cmd string) (*CurlLine, error) {
	cp := &curlParser{}
	line, err := cp.parse(cmd)
	if err != nil {
		return nil, err
	}
	return &CurlLine{Line: line, Warnings: cp.warnings}, nil
}

type curlParser struct {
	warnings []string
}

func (cp *curlParser) warn(format string, args ...interface{}) {
	cp.warnings = append(cp.warnings, fmt.Sprintf(format, args...))
}

func (cp *curlParser) parse(cmd string) (string, error) {
	cmd = strings.ReplaceAll(cmd, "\\\r\n", " ")
	cmd = strings.ReplaceAll(cmd, "\\\n", " ")

	tokens, err := shellSplit(cmd)
	if err != nil {
		return "", fmt.Errorf("malformed curl command: %w", err)
	}
	if len(tokens) > 0 && strings.EqualFold(tokens[0], "curl") {
		tokens = tokens[1:]
	}
	tokens = expandShortFlags(tokens)

	var (
		method  string
		rawURL  string
		version = "HTTP/1.1"
		hasBody bool
	)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		next := func() (string, bool) {
			if i+1 < len(tokens) {
				i++
				return tokens[i], true
			}
			return "", false
		}

		switch tok {
		case "-X", "--request":
			if v, ok := next(); ok {
				method = strings.ToUpper(v)
			}

		case "-d", "--data", "--data-raw", "--data-binary", "--data-ascii",
			"--data-urlencode", "-F", "--form":
			if _, ok := next(); ok {
				hasBody = true
			}

		case "--http2", "--http2-prior-knowledge":
			version = "HTTP/2.0"
		case "--http3":
			version = "HTTP/3.0"
		case "--http1.0":
			version = "HTTP/1.0"
		case "--http1.1":
			version = "HTTP/1.1"

		case "-v", "--verbose", "-s", "--silent", "-S", "--show-error",
			"-L", "--location", "--compressed", "-k", "--insecure",
			"-i", "--include", "-g", "--globoff", "--fail", "-f":

		case "-H", "--header", "-b", "--cookie", "-u", "--user",
			"-o", "--output", "-m", "--max-time", "--connect-timeout",
			"-A", "--user-agent", "-x", "--proxy", "-e", "--referer",
			"-w", "--write-out", "--retry", "--max-redirs":
			if v, ok := next(); ok {
				cp.warn("%s %q not carried into the request line", tok, v)
			}

		default:
			if strings.HasPrefix(tok, "-") {
				cp.warn("unknown curl flag %q, skipping", tok)
			} else if rawURL == "" {
				rawURL = tok
			} else {
				cp.warn("unexpected positional argument %q, skipping", tok)
			}
		}
	}

	if rawURL == "" {
		return "", fmt.Errorf("no URL found in curl command")
	}
	if method == "" {
		method = "GET"
		if hasBody {
			method = "POST"
		}
	}
	if _, ok := LookupMethod(method); !ok {
		cp.warn("method %q is not supported by the request-line parser", method)
	}

	return method + " " + curlTarget(rawURL) + " " + version + "\r\n", nil
}

// curlTarget returns the origin-form target of rawURL. The fragment is
// dropped and a URL without a path maps to "/".
func curlTarget(rawURL string) string {
	if i := strings.IndexByte(rawURL, '#'); i >= 0 {
		rawURL = rawURL[:i]
	}
	if i := strings.Index(rawURL, "://"); i >= 0 {
		rawURL = rawURL[i+3:]
		slash := strings.IndexAny(rawURL, "/?")
		if slash < 0 {
			return "/"
		}
		if rawURL[slash] == '?' {
			return "/" + rawURL[slash:]
		}
		return rawURL[slash:]
	}
	if !strings.HasPrefix(rawURL, "/") {
		rawURL = "/" + rawURL
	}
	return rawURL
}

// shellSplit tokenizes a shell command string respecting single and double quotes.
// It returns an error only for unclosed quotes.
func shellSplit(s string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inSingle := false
	inDouble := false
	hasContent := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inSingle:
			if c == '\'' {
				inSingle = false
			} else {
				cur.WriteByte(c)
			}
		case inDouble:
			if c == '"' {
				inDouble = false
			} else if c == '\\' && i+1 < len(s) && strings.IndexByte("\"\\$`\n", s[i+1]) >= 0 {
				cur.WriteByte(s[i+1])
				i++
			} else {
				cur.WriteByte(c)
			}
		case c == '\'':
			inSingle = true
			hasContent = true
		case c == '"':
			inDouble = true
			hasContent = true
		case c == '\\':
			if i+1 < len(s) {
				cur.WriteByte(s[i+1])
				i++
				hasContent = true
			}
		case c == ' ' || c == '\t':
			if hasContent {
				tokens = append(tokens, cur.String())
				cur.Reset()
				hasContent = false
			}
		default:
			cur.WriteByte(c)
			hasContent = true
		}
	}

	if inSingle {
		return nil, fmt.Errorf("unclosed single quote")
	}
	if inDouble {
		return nil, fmt.Errorf("unclosed double quote")
	}
	if hasContent {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}

// Short flags that take the next token as their argument.
var shortArgFlags = map[byte]bool{
	'X': true, 'H': true, 'd': true, 'F': true,
	'u': true, 'o': true, 'A': true, 'e': true,
	'm': true, 'w': true, 'x': true, 'b': true,
}

// expandShortFlags expands compound short flags (-sS becomes -s -S). A flag
// that takes an argument ends the compound and the remaining characters
// become its argument, so -XPOST becomes -X POST.
func expandShortFlags(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) <= 2 || tok[0] != '-' || tok[1] == '-' {
			out = append(out, tok)
			continue
		}
		chars := tok[1:]
		for i := 0; i < len(chars); i++ {
			out = append(out, "-"+string(chars[i]))
			if shortArgFlags[chars[i]] {
				if i+1 < len(chars) {
					out = append(out, chars[i+1:])
				}
				break
			}
		}
	}
	return out
}
