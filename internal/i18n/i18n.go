// Package i18n translates footprint's terminal output. English is the source
// language; Spanish is carried in the built-in catalog. Numbers are formatted
// with the separators of the selected language.
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/footprint/internal/greenops"
)

// ErrUnsupportedLanguage is returned for a language without a catalog.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Supported lists the languages with a catalog, English first.
//
//nolint:gochecknoglobals // Fixed language list.
var Supported = []language.Tag{language.English, language.Spanish}

//nolint:gochecknoglobals // Built once from Supported.
var matcher = language.NewMatcher(Supported)

// Parse resolves a BCP 47 name such as "es" or "es-MX" to a supported
// language. An empty name means English.
func Parse(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return language.English, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, fmt.Errorf("%w: %q, use one of %s", ErrUnsupportedLanguage, name, Names())
	}
	return Supported[index], nil
}

// Names returns the supported language codes, comma separated.
func Names() string {
	names := make([]string, len(Supported))
	for i, t := range Supported {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

// Printer translates messages and formats quantities for one language.
type Printer struct {
	greenops.Formatter

	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a Printer for tag, which should come from Parse.
func NewPrinter(tag language.Tag) *Printer {
	return &Printer{
		Formatter: greenops.NewFormatter(tag),
		tag:       tag,
		p:         message.NewPrinter(tag, message.Catalog(catalogue)),
	}
}

// Tag returns the printer's language.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// T translates key and formats it with args. Keys without a translation are
// used as the format as-is.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
