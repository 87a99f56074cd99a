// Package i18n resolves user-facing strings against the profile-editor
// text-domain catalog.
package i18n

import (
	"embed"
	"log"
	"os"
	"strings"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"profile-editor/internal/core"
)

//go:embed active.*.toml
var localeFS embed.FS

// Catalog is a thin wrapper around go-i18n's Bundle/Localizer for a single
// text domain.
type Catalog struct {
	domain    string
	bundle    *goi18n.Bundle
	languages []string
}

// NewCatalog builds a Catalog for the given locale (e.g. "ru"). Messages are
// loaded from the embedded active.*.toml files. English source strings double
// as message keys, so an empty or unknown locale degrades to identity lookups.
func NewCatalog(locale string) *Catalog {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir(".")
	if err != nil {
		log.Printf("i18n: failed to list embedded catalogs: %v", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, entry.Name()); err != nil {
			log.Printf("i18n: failed to load %s: %v", entry.Name(), err)
		}
	}

	return &Catalog{
		domain:    core.TextDomain,
		bundle:    bundle,
		languages: []string{tag.String(), language.English.String()},
	}
}

// Domain returns the text domain the catalog serves.
func (c *Catalog) Domain() string {
	if c == nil {
		return core.TextDomain
	}
	return c.domain
}

// Translate returns the translation of key for the catalog locale, or key
// unchanged when no entry exists.
func (c *Catalog) Translate(key string) string {
	if c == nil || key == "" {
		return key
	}
	localizer := goi18n.NewLocalizer(c.bundle, c.languages...)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}

var (
	defaultMu      sync.RWMutex
	defaultCatalog = NewCatalog(DetectLocale())
)

// Init replaces the process-wide catalog, e.g. after the configured locale
// is known.
func Init(locale string) {
	catalog := NewCatalog(locale)
	defaultMu.Lock()
	defaultCatalog = catalog
	defaultMu.Unlock()
}

// Translate resolves key against the process-wide catalog.
func Translate(key string) string {
	defaultMu.RLock()
	catalog := defaultCatalog
	defaultMu.RUnlock()
	return catalog.Translate(key)
}

// DetectLocale reads the session locale from the standard environment
// variables, returning "en" when none is set.
func DetectLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" || strings.EqualFold(value, "C") || strings.EqualFold(value, "POSIX") {
			continue
		}
		if idx := strings.IndexAny(value, ".@"); idx > 0 {
			value = value[:idx]
		}
		return strings.ReplaceAll(value, "_", "-")
	}
	return "en"
}
