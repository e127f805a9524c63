package markdown

import (
	"strings"

	"git.home.luguber.info/inful/shanksdocs/internal/callout"
	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
)

// FenceKind distinguishes code samples from callouts.
type FenceKind int

const (
	FenceCode FenceKind = iota
	FenceCallout
)

// Fence is the parsed info string of a fenced block.
//
// Code samples use `lang [filename=NAME] [linenos]`; callouts use
// `callout VARIANT [Title words]`.
type Fence struct {
	Kind        FenceKind
	Language    string
	Filename    string
	LineNumbers bool
	Variant     callout.Variant
	Title       string
}

// ParseInfo parses a fenced block info string.
func ParseInfo(info string) (Fence, error) {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return Fence{Kind: FenceCode}, nil
	}

	if fields[0] == "callout" {
		f := Fence{Kind: FenceCallout}
		if len(fields) == 1 {
			return f, nil
		}
		v, err := callout.ParseVariant(fields[1])
		if err != nil {
			return Fence{}, err
		}
		f.Variant = v
		f.Title = strings.Join(fields[2:], " ")
		return f, nil
	}

	f := Fence{Kind: FenceCode, Language: fields[0]}
	for _, attr := range fields[1:] {
		switch {
		case attr == "linenos":
			f.LineNumbers = true
		case strings.HasPrefix(attr, "filename="):
			f.Filename = strings.TrimPrefix(attr, "filename=")
		default:
			return Fence{}, ferrors.ValidationError("unknown code fence attribute").
				WithContext("attribute", attr).
				WithContext("info", info).
				Build()
		}
	}
	return f, nil
}
