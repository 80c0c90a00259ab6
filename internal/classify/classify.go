package classify

import (
	"regexp"
	"strings"

	"github.com/digimosa/qrscan/internal/models"
)

// Matcher defines the interface for payload type detection strategies
type Matcher interface {
	Match(raw string) bool
	Type() models.PayloadType
}

// PrefixMatcher implements detection by literal payload prefix
type PrefixMatcher struct {
	Prefixes []string
	Label    models.PayloadType
}

func (m *PrefixMatcher) Match(raw string) bool {
	for _, p := range m.Prefixes {
		if strings.HasPrefix(raw, p) {
			return true
		}
	}
	return false
}

func (m *PrefixMatcher) Type() models.PayloadType {
	return m.Label
}

// urlPattern is a permissive URL shape: optional scheme, optional www.,
// dotted host with a 1-6 char TLD, optional path/query/fragment.
// It is a heuristic, not RFC validation: it accepts bare strings like
// "file.txt" and rejects bracketed IPv6 literals and non-ASCII hosts.
// That boundary is kept on purpose so payloads never silently change
// classification.
var urlPattern = regexp.MustCompile(`(?i)^(https?://)?(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)

// URLMatcher implements the heuristic URL detection
type URLMatcher struct{}

func (m *URLMatcher) Match(raw string) bool {
	return urlPattern.MatchString(raw)
}

func (m *URLMatcher) Type() models.PayloadType {
	return models.TypeURL
}

// matchers is evaluated in order; the first hit wins. Structured prefixes
// run before the URL heuristic so a payload like "WIFI:S:cafe.net" cannot
// be swallowed by the URL shape.
var matchers = []Matcher{
	&PrefixMatcher{Prefixes: []string{"WIFI:"}, Label: models.TypeWifi},
	&PrefixMatcher{Prefixes: []string{"BEGIN:VCARD", "MECARD:"}, Label: models.TypeContact},
	&PrefixMatcher{Prefixes: []string{"SMSTO:", "SMS:"}, Label: models.TypeSMS},
	&PrefixMatcher{Prefixes: []string{"MAILTO:", "MATMSG:"}, Label: models.TypeEmail},
	&PrefixMatcher{Prefixes: []string{"GEO:"}, Label: models.TypeGeo},
	&URLMatcher{},
}

// Classify determines the payload type for a raw scanned string.
// It is total: anything that matches no format falls through to TEXT.
func Classify(raw string) models.PayloadType {
	for _, m := range matchers {
		if m.Match(raw) {
			return m.Type()
		}
	}
	return models.TypeText
}
