package clap

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ValueParser turns one raw token into a typed value. Parsers never know which
// argument owns them; the flush driver attaches the arg id to any failure
// before surfacing it.
type ValueParser interface {
	// Parse converts raw or fails with an invalid-value error.
	Parse(raw string) (any, error)
	// TypeName names the expected shape for error messages, e.g. "an integer".
	TypeName() string
	// PossibleValues enumerates the accepted inputs, or nil when unconstrained.
	PossibleValues() []string
}

// StringParser accepts any token unchanged. It is the default parser.
type StringParser struct{}

func (StringParser) Parse(raw string) (any, error) { return raw, nil }
func (StringParser) TypeName() string              { return "a string" }
func (StringParser) PossibleValues() []string      { return nil }

// IntParser parses a signed decimal integer.
type IntParser struct{}

func (IntParser) Parse(raw string) (any, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, invalidValue(raw, "an integer")
	}
	return n, nil
}
func (IntParser) TypeName() string         { return "an integer" }
func (IntParser) PossibleValues() []string { return nil }

// FloatParser parses an IEEE-754 double.
type FloatParser struct{}

func (FloatParser) Parse(raw string) (any, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, invalidValue(raw, "a number")
	}
	return f, nil
}
func (FloatParser) TypeName() string         { return "a number" }
func (FloatParser) PossibleValues() []string { return nil }

var (
	boolTrueWords  = []string{"true", "yes", "1", "on"}
	boolFalseWords = []string{"false", "no", "0", "off"}
)

// BoolParser matches the usual truthy and falsy spellings, case-insensitively.
type BoolParser struct{}

func (BoolParser) Parse(raw string) (any, error) {
	lowered := strings.ToLower(raw)
	for _, w := range boolTrueWords {
		if lowered == w {
			return true, nil
		}
	}
	for _, w := range boolFalseWords {
		if lowered == w {
			return false, nil
		}
	}
	return nil, invalidValue(raw, "a boolean (true, yes, 1, on, false, no, 0, off)")
}
func (BoolParser) TypeName() string { return "a boolean" }
func (BoolParser) PossibleValues() []string {
	return append(append([]string{}, boolTrueWords...), boolFalseWords...)
}

// PathParser passes the token through as a path string. With MustExist it
// verifies the token names an existing filesystem entry.
type PathParser struct {
	MustExist bool
}

func (p PathParser) Parse(raw string) (any, error) {
	if p.MustExist {
		if _, err := os.Stat(raw); err != nil {
			return nil, invalidValue(raw, "an existing path")
		}
	}
	return raw, nil
}
func (p PathParser) TypeName() string {
	if p.MustExist {
		return "an existing path"
	}
	return "a path"
}
func (PathParser) PossibleValues() []string { return nil }

// EnumParser accepts only members of a fixed set, returning the canonical
// registered spelling even when matched case-insensitively.
type EnumParser struct {
	values      []string
	insensitive bool
}

// NewEnumParser builds an enum parser over the given values.
func NewEnumParser(values ...string) *EnumParser {
	if len(values) == 0 {
		panic("clap.NewEnumParser: at least one value is required")
	}
	return &EnumParser{values: append([]string{}, values...)}
}

// CaseInsensitive makes matching ignore case.
func (p *EnumParser) CaseInsensitive() *EnumParser {
	p.insensitive = true
	return p
}

func (p *EnumParser) Parse(raw string) (any, error) {
	for _, v := range p.values {
		if v == raw || (p.insensitive && strings.EqualFold(v, raw)) {
			return v, nil
		}
	}
	return nil, invalidValue(raw, "one of "+strings.Join(p.values, ", "))
}
func (p *EnumParser) TypeName() string         { return "one of " + strings.Join(p.values, ", ") }
func (p *EnumParser) PossibleValues() []string { return append([]string{}, p.values...) }

// RegexParser accepts tokens matching a fixed pattern.
type RegexParser struct {
	re *regexp.Regexp
}

// NewRegexParser compiles pattern, panicking on a malformed expression.
func NewRegexParser(pattern string) *RegexParser {
	return &RegexParser{re: regexp.MustCompile(pattern)}
}

func (p *RegexParser) Parse(raw string) (any, error) {
	if !p.re.MatchString(raw) {
		return nil, invalidValue(raw, "matching pattern "+p.re.String())
	}
	return raw, nil
}
func (p *RegexParser) TypeName() string         { return "matching pattern " + p.re.String() }
func (p *RegexParser) PossibleValues() []string { return nil }

// IntRangeParser parses a signed integer and enforces min <= n <= max.
type IntRangeParser struct {
	min, max int64
}

// NewIntRangeParser builds an integer parser bounded inclusively.
func NewIntRangeParser(min, max int64) *IntRangeParser {
	if min > max {
		panic(fmt.Sprintf("clap.NewIntRangeParser: min %d exceeds max %d", min, max))
	}
	return &IntRangeParser{min: min, max: max}
}

func (p *IntRangeParser) Parse(raw string) (any, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, invalidValue(raw, p.TypeName())
	}
	if n < p.min || n > p.max {
		return nil, invalidValue(raw, p.TypeName())
	}
	return n, nil
}
func (p *IntRangeParser) TypeName() string {
	return fmt.Sprintf("an integer between %d and %d", p.min, p.max)
}
func (*IntRangeParser) PossibleValues() []string { return nil }

var urlSchemes = map[string]bool{"http": true, "https": true, "ftp": true}

// URLParser accepts http, https, and ftp URLs of the shape scheme://host[/path].
type URLParser struct{}

func (URLParser) Parse(raw string) (any, error) {
	u, err := url.Parse(raw)
	if err != nil || !urlSchemes[u.Scheme] || u.Host == "" {
		return nil, invalidValue(raw, "a URL (http, https, or ftp)")
	}
	return raw, nil
}
func (URLParser) TypeName() string         { return "a URL" }
func (URLParser) PossibleValues() []string { return nil }

// FilePatternParser accepts doublestar glob patterns (including ** and {a,b}).
// With MustMatch the pattern has to match at least one filesystem entry.
type FilePatternParser struct {
	MustMatch bool
}

func (p FilePatternParser) Parse(raw string) (any, error) {
	if !doublestar.ValidatePattern(raw) {
		return nil, invalidValue(raw, "a glob pattern")
	}
	if p.MustMatch {
		matches, err := doublestar.Glob(os.DirFS("."), raw)
		if err != nil || len(matches) == 0 {
			return nil, invalidValue(raw, "a glob pattern matching at least one file")
		}
	}
	return raw, nil
}
func (FilePatternParser) TypeName() string         { return "a glob pattern" }
func (FilePatternParser) PossibleValues() []string { return nil }

// CustomFunc is a user validation callback. Returning false rejects the token,
// returning true accepts it unchanged, and any other value replaces it.
type CustomFunc func(raw string) any

// CustomParser delegates validation to a user callback.
type CustomParser struct {
	fn CustomFunc
}

// NewCustomParser wraps a callback as a value parser.
func NewCustomParser(fn CustomFunc) *CustomParser {
	if fn == nil {
		panic("clap.NewCustomParser: callback is required")
	}
	return &CustomParser{fn: fn}
}

func (p *CustomParser) Parse(raw string) (any, error) {
	out := p.fn(raw)
	if accepted, ok := out.(bool); ok {
		if !accepted {
			return nil, invalidValue(raw, "a valid value")
		}
		return raw, nil
	}
	return out, nil
}
func (*CustomParser) TypeName() string         { return "a valid value" }
func (*CustomParser) PossibleValues() []string { return nil }
