package config

import (
	"regexp"
)

// Engine setting options recognized by the KeyPattern.
const (
	OptionURL  = "url"
	OptionEcho = "echo"
)

// KeyPattern matches the named engine setting keys: '<namespace>.<name>.url' and '<namespace>.<name>.echo'.
type KeyPattern struct {
	namespace string
	re        *regexp.Regexp
}

// NewKeyPattern creates the engine key pattern for given 'namespace'.
func NewKeyPattern(namespace string) *KeyPattern {
	return &KeyPattern{
		namespace: namespace,
		re:        regexp.MustCompile(`^` + regexp.QuoteMeta(namespace) + `\.(\w+)\.(` + OptionURL + `|` + OptionEcho + `)$`),
	}
}

// Namespace gets the pattern namespace.
func (p *KeyPattern) Namespace() string {
	return p.namespace
}

// Match matches the 'key' and returns the engine name and the option - OptionURL or OptionEcho.
func (p *KeyPattern) Match(key string) (name, option string, ok bool) {
	submatches := p.re.FindStringSubmatch(key)
	if submatches == nil {
		return "", "", false
	}
	return submatches[1], submatches[2], true
}
