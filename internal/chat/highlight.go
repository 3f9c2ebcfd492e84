package chat

import (
	"bytes"
	"os"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
)

const chromaStyleName = "dracula"

// fence is an opening code fence line such as "```go".
type fence struct {
	marker string
	lang   string
}

func openingFence(line string) (fence, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || (trimmed[0] != '`' && trimmed[0] != '~') {
		return fence{}, false
	}
	n := len(trimmed) - len(strings.TrimLeft(trimmed, trimmed[:1]))
	if n < 3 {
		return fence{}, false
	}
	f := fence{marker: trimmed[:n]}
	if fields := strings.Fields(trimmed[n:]); len(fields) > 0 {
		f.lang = fields[0]
	}
	return f, true
}

func (f fence) closes(line string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) >= len(f.marker) && strings.Trim(trimmed, f.marker[:1]) == ""
}

// highlightCodeBlocks colours fenced code in a message body. Unclosed
// fences and NO_COLOR leave the body untouched.
func highlightCodeBlocks(body string) string {
	if body == "" || os.Getenv("NO_COLOR") != "" || !strings.Contains(body, "\n") {
		return body
	}

	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		f, ok := openingFence(lines[i])
		if !ok {
			out = append(out, lines[i])
			continue
		}
		end := -1
		for j := i + 1; j < len(lines); j++ {
			if f.closes(lines[j]) {
				end = j
				break
			}
		}
		if end == -1 {
			out = append(out, lines[i])
			continue
		}
		out = append(out, lines[i])
		if code := strings.Join(lines[i+1:end], "\n"); code != "" {
			out = append(out, highlightCode(code, f.lang))
		}
		out = append(out, lines[end])
		i = end
	}
	return strings.Join(out, "\n")
}

func highlightCode(code, lang string) string {
	lexer := lexerFor(code, lang)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	style := styles.Get(chromaStyleName)
	if style == nil {
		style = styles.Fallback
	}
	var buf bytes.Buffer
	if err := formatters.TTY256.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func lexerFor(code, lang string) chroma.Lexer {
	var lexer chroma.Lexer
	if lang = strings.ToLower(strings.TrimSpace(lang)); lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
