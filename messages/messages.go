// Package messages holds the localized texts shown next to form fields and
// after submission.
package messages

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/cadastro"
)

// BaseLocale is the source locale; other locales fall back to it.
const BaseLocale = "pt-BR"

// Form-level message keys.
const (
	KeySubmitSuccess = "form.submit.success"
	KeySubmitFailure = "form.submit.failure"
)

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle contains the messages of every loaded locale.
type Bundle struct {
	locales map[string]map[string]string

	// supported lists BaseLocale first, then the others sorted; matcher
	// indexes into it.
	supported []string
	matcher   language.Matcher
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadEmbedded()

func mustLoadEmbedded() *Bundle {
	b, err := LoadFromFS(embeddedFS)
	if err != nil {
		panic(fmt.Sprintf("messages: load embedded catalogs: %v", err))
	}
	return b
}

// Default returns the embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from fsys.
// The locale and namespace declared in each file must match its path, and a
// key may be defined once per locale.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.add(p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := b.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	b.supported = []string{BaseLocale}
	for _, locale := range b.Locales() {
		if locale != BaseLocale {
			b.supported = append(b.supported, locale)
		}
	}
	tags := make([]language.Tag, len(b.supported))
	for i, locale := range b.supported {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags[i] = tag
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

func (b *Bundle) add(p string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if want := path.Base(path.Dir(p)); locale != want {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, want)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); namespace != want {
		return fmt.Errorf("catalog %s: namespace %q must match filename %q", p, namespace, want)
	}

	msgs, ok := b.locales[locale]
	if !ok {
		msgs = map[string]string{}
		b.locales[locale] = msgs
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, dup := msgs[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		msgs[key] = value
	}
	return nil
}

// Locales returns the loaded locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Match returns the loaded locale closest to locale, which may be any BCP 47
// tag in any case: "en-us" and "en" both match en-US. Unparseable or
// unsupported locales match BaseLocale.
func (b *Bundle) Match(locale string) string {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return BaseLocale
	}
	_, i, confidence := b.matcher.Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return b.supported[i]
}

// Message returns the text for key in the locale matching locale, falling
// back to BaseLocale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if value, ok := b.locales[b.Match(locale)][key]; ok {
		return value, true
	}
	value, ok := b.locales[BaseLocale][key]
	return value, ok
}

// Register loads every message into the x/text/message default catalog so
// Printer can render them. Keys a locale lacks are registered with their
// BaseLocale text.
func (b *Bundle) Register() error {
	for _, locale := range b.supported {
		tag := language.MustParse(locale)
		for key, base := range b.locales[BaseLocale] {
			value, ok := b.locales[locale][key]
			if !ok {
				value = base
			}
			if err := message.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
		for key, value := range b.locales[locale] {
			if _, ok := b.locales[BaseLocale][key]; ok {
				continue
			}
			if err := message.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
	}
	return nil
}

// Printer returns an x/text printer for the loaded locale matching locale.
// Call Register first; keys are passed as the format argument.
func (b *Bundle) Printer(locale string) *message.Printer {
	return message.NewPrinter(language.MustParse(b.Match(locale)))
}

// FieldKey returns the message key for a rejected field kind. The short
// form is the one shown on submit; the long form is shown on blur.
func FieldKey(kind cadastro.Field, short bool) string {
	key := "field." + string(kind) + ".invalid"
	if short {
		key += ".short"
	}
	return key
}

// Describe returns the text for one field error. Unknown kinds fall back to
// the error string.
func (b *Bundle) Describe(locale string, fe *cadastro.FieldError, short bool) string {
	if text, ok := b.Message(locale, FieldKey(fe.Kind, short)); ok {
		return text
	}
	return fe.Error()
}

// DescribeAll returns one text per field error held by err. A nil err
// yields nil; an err that carries no field errors yields its string.
func (b *Bundle) DescribeAll(locale string, err error, short bool) []string {
	if err == nil {
		return nil
	}
	var verr *cadastro.ValidationError
	if errors.As(err, &verr) {
		out := make([]string, len(verr.Fields))
		for i, fe := range verr.Fields {
			out[i] = b.Describe(locale, fe, short)
		}
		return out
	}
	var fe *cadastro.FieldError
	if errors.As(err, &fe) {
		return []string{b.Describe(locale, fe, short)}
	}
	return []string{err.Error()}
}
