package debug

import (
	"regexp"
	"strings"
)

// Matcher tests whether a namespace matches one compiled filter token.
type Matcher interface {
	Matches(namespace string) bool
}

// regexMatcher anchors the whole namespace; `*` in the source token expands
// to `.*`, everything else is matched literally.
type regexMatcher struct {
	re *regexp.Regexp
}

func (m regexMatcher) Matches(namespace string) bool {
	return m.re.MatchString(namespace)
}

// rule couples a matcher with the token it was compiled from so the active
// filter can be rendered back as text.
type rule struct {
	token   string
	matcher Matcher
}

// RuleSet holds the compiled exclude and include rules currently in force.
// Excludes are evaluated before includes; within each list evaluation order
// is append order.
type RuleSet struct {
	excludes []rule
	includes []rule
}

// Compile parses a raw filter string into a RuleSet. Tokens are separated by
// runs of whitespace and/or commas; empty tokens are dropped. A leading `-`
// marks a token as an exclude rule. Compilation never fails: a token with no
// wildcard is simply an exact match.
func Compile(raw string) RuleSet {
	var rs RuleSet
	split := func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}
	for _, token := range strings.FieldsFunc(raw, split) {
		if token == "-" {
			continue
		}
		if rest, ok := strings.CutPrefix(token, "-"); ok {
			rs.excludes = append(rs.excludes, rule{token: token, matcher: compileToken(rest)})
			continue
		}
		rs.includes = append(rs.includes, rule{token: token, matcher: compileToken(token)})
	}
	return rs
}

// compileToken turns one filter token into an anchored matcher. Literal `*`
// becomes "any run of characters, including none".
func compileToken(token string) Matcher {
	parts := strings.Split(token, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexMatcher{re: regexp.MustCompile("^" + strings.Join(parts, ".*") + "$")}
}

// Enabled reports whether the namespace passes the rule set: any exclude
// match wins immediately, then any include match enables, otherwise the
// namespace is denied.
func (rs RuleSet) Enabled(namespace string) bool {
	for _, r := range rs.excludes {
		if r.matcher.Matches(namespace) {
			return false
		}
	}
	for _, r := range rs.includes {
		if r.matcher.Matches(namespace) {
			return true
		}
	}
	return false
}

// Append returns a rule set with other's rules appended after rs's own.
func (rs RuleSet) Append(other RuleSet) RuleSet {
	return RuleSet{
		excludes: append(rs.excludes[:len(rs.excludes):len(rs.excludes)], other.excludes...),
		includes: append(rs.includes[:len(rs.includes):len(rs.includes)], other.includes...),
	}
}

// Empty reports whether the rule set holds no rules at all.
func (rs RuleSet) Empty() bool {
	return len(rs.excludes) == 0 && len(rs.includes) == 0
}

// String renders the rule set back as a comma-separated filter string,
// includes first, then excludes.
func (rs RuleSet) String() string {
	tokens := make([]string, 0, len(rs.includes)+len(rs.excludes))
	for _, r := range rs.includes {
		tokens = append(tokens, r.token)
	}
	for _, r := range rs.excludes {
		tokens = append(tokens, r.token)
	}
	return strings.Join(tokens, ",")
}
