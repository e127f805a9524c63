package codeblock

import "github.com/alecthomas/chroma/v2"

// CodeStyle is the rose-on-black palette used for source samples.
var CodeStyle = chroma.MustNewStyle("shanks", chroma.StyleEntries{
	chroma.Background:            "#e2e8f0 bg:#0d0608",
	chroma.LineNumbers:           "#334155",
	chroma.Keyword:               "#fb7185",
	chroma.KeywordConstant:       "#fb7185",
	chroma.NameDecorator:         "#f0abfc",
	chroma.NameBuiltin:           "#f0abfc",
	chroma.Operator:              "#94a3b8",
	chroma.Punctuation:           "#64748b",
	chroma.LiteralString:         "#34d399",
	chroma.LiteralStringInterpol: "#6ee7b7",
	chroma.LiteralNumber:         "#fbbf24",
	chroma.Comment:               "italic #475569",
	chroma.NameFunction:          "#fdba74",
	chroma.NameClass:             "#fda4af",
	chroma.NameVariable:          "#e2e8f0",
	chroma.NameConstant:          "#fbbf24",
})

// ShellStyle is the terminal palette used for shell snippets.
var ShellStyle = chroma.MustNewStyle("shanks-shell", chroma.StyleEntries{
	chroma.Background:    "#cbd5e1 bg:#0d0608",
	chroma.NameBuiltin:   "#fb7185",
	chroma.Keyword:       "#fb7185",
	chroma.LiteralString: "#34d399",
	chroma.Comment:       "italic #475569",
	chroma.Operator:      "#94a3b8",
	chroma.Punctuation:   "#64748b",
	chroma.NameVariable:  "#fdba74",
})
