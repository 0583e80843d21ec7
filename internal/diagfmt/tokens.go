package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gqlfront/source"
	"gqlfront/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Keyword string      `json:"keyword,omitempty"`
	Tier    string      `json:"tier,omitempty"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
}

func tokenOutput(tok token.Token) TokenOutput {
	out := TokenOutput{
		Kind: tok.Kind.String(),
		Text: tok.Text,
		Span: tok.Span,
	}
	if tok.Kind == token.Word && tok.Kw != token.KwNone {
		out.Keyword = tok.Kw.String()
		out.Tier = tok.Tier.String()
	}
	for _, tr := range tok.Leading {
		out.Leading = append(out.Leading, tr.Kind.String())
	}
	return out
}

// FormatTokensPretty prints one token per line with its position, keyword
// tier and leading trivia.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		out := tokenOutput(tok)
		startPos, endPos := fs.Resolve(tok.Span)

		var b strings.Builder
		fmt.Fprintf(&b, "%3d: %-15s", i+1, out.Kind)
		if out.Text != "" {
			fmt.Fprintf(&b, " %q", out.Text)
		}
		if out.Keyword != "" {
			fmt.Fprintf(&b, " [%s %s]", out.Keyword, out.Tier)
		}
		fmt.Fprintf(&b, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if len(out.Leading) > 0 {
			fmt.Fprintf(&b, " (leading: %s)", strings.Join(out.Leading, ", "))
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput(tok))
		if tok.Kind == token.EOF {
			break
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
