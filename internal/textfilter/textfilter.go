// Package textfilter cleans subtitle text: it drops spoken filler words and
// applies user replacements. Both are regular expressions matched in
// multiline mode.
package textfilter

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultFillers are common Mandarin hesitation words.
var DefaultFillers = []string{
	"呢", "啊", "嗯", "呃", "哎", "唉", "哦",
	"那么", "一直", "就是", "所以", "然后", "什么",
	"那样的", "大概", "这样的", "可能", "这个", "那个",
	"这", "那么个", "这么个",
}

// Replacement rewrites matches of the Old pattern with New. New may refer to
// capture groups as $1.
type Replacement struct {
	Old string
	New string
}

type rule struct {
	pattern *regexp.Regexp
	repl    string
}

// Filter removes fillers, then applies replacements, in the order given.
type Filter struct {
	rules []rule
}

// New compiles fillers and replacements. Blank patterns are ignored;
// replacement patterns and values are trimmed, fillers are used verbatim.
func New(fillers []string, replacements []Replacement) (*Filter, error) {
	f := &Filter{}
	for _, word := range fillers {
		if err := f.add(word, ""); err != nil {
			return nil, fmt.Errorf("filler %q: %w", word, err)
		}
	}
	for _, r := range replacements {
		if err := f.add(strings.TrimSpace(r.Old), strings.TrimSpace(r.New)); err != nil {
			return nil, fmt.Errorf("replacement %q: %w", r.Old, err)
		}
	}
	return f, nil
}

func (f *Filter) add(pattern, repl string) error {
	if strings.TrimSpace(pattern) == "" {
		return nil
	}
	re, err := regexp.Compile("(?m)" + norm.NFC.String(pattern))
	if err != nil {
		return err
	}
	f.rules = append(f.rules, rule{pattern: re, repl: repl})
	return nil
}

// Empty reports whether the filter has no rules.
func (f *Filter) Empty() bool {
	return f == nil || len(f.rules) == 0
}

// Apply runs every rule over text. Text is NFC-normalized first so composed
// and decomposed forms match alike.
func (f *Filter) Apply(text string) string {
	if f.Empty() || text == "" {
		return text
	}
	text = norm.NFC.String(text)
	for _, r := range f.rules {
		text = r.pattern.ReplaceAllString(text, r.repl)
	}
	return text
}

// ParseReplacement splits "old=new" as given on the command line.
func ParseReplacement(spec string) (Replacement, error) {
	old, repl, ok := strings.Cut(spec, "=")
	if !ok || strings.TrimSpace(old) == "" {
		return Replacement{}, fmt.Errorf("invalid replacement %q: expected old=new", spec)
	}
	return Replacement{Old: old, New: repl}, nil
}
