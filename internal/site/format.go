package site

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter writes a Check report.
type Formatter interface {
	Format(w io.Writer, r Report) error
}

// NewFormatter returns the formatter for format ("text" or "json").
// Unknown names fall back to text.
func NewFormatter(format string) Formatter {
	if format == "json" {
		return JSONFormatter{}
	}
	return TextFormatter{}
}

// TextFormatter prints one line per issue followed by a summary.
type TextFormatter struct{}

type severityGroup struct {
	label  string
	issues []Issue
}

func (r Report) groups() []severityGroup {
	return []severityGroup{
		{"error", r.Errors},
		{"warning", r.Warnings},
		{"notice", r.Notices},
	}
}

func (TextFormatter) Format(w io.Writer, r Report) error {
	for _, g := range r.groups() {
		for _, is := range g.issues {
			line := fmt.Sprintf("%-7s %-13s %s", g.label, is.Kind, is.Route)
			if is.Target != "" {
				line += " -> " + is.Target
			}
			if is.Message != "" {
				line += ": " + is.Message
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	if len(r.Errors)+len(r.Warnings)+len(r.Notices) > 0 {
		if _, err := fmt.Fprintln(w, strings.Repeat("-", 60)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d error%s, %d warning%s, %d notice%s\n",
		len(r.Errors), pluralize(len(r.Errors)),
		len(r.Warnings), pluralize(len(r.Warnings)),
		len(r.Notices), pluralize(len(r.Notices)))
	return err
}

// JSONFormatter encodes the report as an indented JSON document.
type JSONFormatter struct{}

// JSONOutput is the document written by JSONFormatter.
type JSONOutput struct {
	OK           bool        `json:"ok"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	NoticeCount  int         `json:"notice_count"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONIssue is a single finding in JSON form.
type JSONIssue struct {
	Severity string `json:"severity"`
	Kind     string `json:"kind"`
	Route    string `json:"route"`
	Target   string `json:"target,omitempty"`
	Message  string `json:"message,omitempty"`
}

func (JSONFormatter) Format(w io.Writer, r Report) error {
	out := JSONOutput{
		OK:           r.OK(),
		ErrorCount:   len(r.Errors),
		WarningCount: len(r.Warnings),
		NoticeCount:  len(r.Notices),
		Issues:       []JSONIssue{},
	}
	for _, g := range r.groups() {
		for _, is := range g.issues {
			out.Issues = append(out.Issues, JSONIssue{
				Severity: g.label,
				Kind:     string(is.Kind),
				Route:    is.Route,
				Target:   is.Target,
				Message:  is.Message,
			})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
