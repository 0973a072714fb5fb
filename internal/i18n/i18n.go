// Package i18n loads flat key/value translation tables from yaml files and
// hands out per-request translators. One file per locale, named <code>.yaml.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Bundle struct {
	defaultLocale string
	tables        map[string]map[string]string
}

// Load reads every *.yaml file in dir as a locale table. The default locale
// must be present; it is the fallback for missing keys and unknown locales.
func Load(dir, defaultLocale string) (*Bundle, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	b := &Bundle{
		defaultLocale: defaultLocale,
		tables:        map[string]map[string]string{},
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		locale := strings.TrimSuffix(name, ".yaml")

		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", locale, err)
		}
		table := map[string]string{}
		if err := yaml.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", locale, err)
		}
		b.tables[locale] = table
	}

	if _, ok := b.tables[defaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %q not found in %s", defaultLocale, dir)
	}
	return b, nil
}

func (b *Bundle) DefaultLocale() string { return b.defaultLocale }

// Supported reports whether a locale table was loaded for code.
func (b *Bundle) Supported(code string) bool {
	_, ok := b.tables[code]
	return ok
}

// Translator returns a translator for the given locale, falling back to the
// default locale if the requested one is unknown.
func (b *Bundle) Translator(locale string) *Translator {
	if !b.Supported(locale) {
		locale = b.defaultLocale
	}
	return &Translator{bundle: b, locale: locale}
}

// Translator resolves message keys for one locale. It is carried through the
// request context instead of living in a process-wide registry.
type Translator struct {
	bundle *Bundle
	locale string
}

func (t *Translator) Locale() string { return t.locale }

// T looks up key in the translator's locale, then the default locale. An
// unknown key is returned as-is so a missing translation is visible, not fatal.
func (t *Translator) T(key string) string {
	if v, ok := t.bundle.tables[t.locale][key]; ok {
		return v
	}
	if v, ok := t.bundle.tables[t.bundle.defaultLocale][key]; ok {
		return v
	}
	return key
}
