// Package frontmatter splits, parses and writes the YAML block at the top of
// content pages.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a YAML frontmatter delimiter, had is false
// and body is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// A closing delimiter on the last line without a trailing newline.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(content, tail) {
			return content[start : len(content)-len(tail)+len(nl)], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	return content[start:end], content[start+idx+len(closeSeq):], true, nil
}

// Join reassembles a document from raw frontmatter and body using LF newlines.
func Join(frontmatter []byte, body []byte) []byte {
	out := make([]byte, 0, len(frontmatter)+len(body)+8)
	out = append(out, "---\n"...)
	out = append(out, frontmatter...)
	if len(frontmatter) > 0 && frontmatter[len(frontmatter)-1] != '\n' {
		out = append(out, '\n')
	}
	out = append(out, "---\n"...)
	out = append(out, body...)
	return out
}

// Decode unmarshals raw YAML frontmatter into v.
func Decode(frontmatter []byte, v any) error {
	if len(bytes.TrimSpace(frontmatter)) == 0 {
		return nil
	}
	return yaml.Unmarshal(frontmatter, v)
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
