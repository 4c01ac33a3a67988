// Package i18n localizes the strings gxgui widgets render themselves.
//
// Catalogs are TOML files of message id = "text" pairs. English, French,
// German and Spanish are embedded; applications can add or override
// messages with AddMessageFile.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

// Message ids shipped in the embedded catalogs.
const (
	MsgNewSRAM        = "new_sram"
	MsgNewSnapshot    = "new_snapshot"
	MsgSRAM           = "sram"
	MsgSnapshot       = "snapshot"
	MsgAuto           = "auto"
	MsgOptionsTitle   = "options_title"
	MsgSavesLoadTitle = "saves_load_title"
	MsgSavesSaveTitle = "saves_save_title"
	MsgNoSaves        = "no_saves"
)

//go:embed locales/*.toml
var locales embed.FS

// Catalog is a message bundle with English as the fallback language.
type Catalog struct {
	bundle *goi18n.Bundle
}

// NewCatalog loads the embedded catalogs.
func NewCatalog() (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, f); err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", f, err)
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// AddMessageFile merges a TOML catalog. The language comes from the file
// name, as in "overrides.pt-BR.toml".
func (c *Catalog) AddMessageFile(data []byte, path string) error {
	if _, err := c.bundle.ParseMessageFileBytes(data, path); err != nil {
		return fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return nil
}

// Languages lists every language with at least one message.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Localize returns the message for id in the first matching language,
// falling back to English and finally to the id itself.
func (c *Catalog) Localize(id string, langs ...string) string {
	loc := goi18n.NewLocalizer(c.bundle, langs...)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// SaveLabels returns the save browser labels for langs.
func (c *Catalog) SaveLabels(langs ...string) gxgui.SaveLabels {
	return gxgui.SaveLabels{
		NewSRAM:     c.Localize(MsgNewSRAM, langs...),
		NewSnapshot: c.Localize(MsgNewSnapshot, langs...),
		SRAM:        c.Localize(MsgSRAM, langs...),
		Snapshot:    c.Localize(MsgSnapshot, langs...),
		Auto:        c.Localize(MsgAuto, langs...),
	}
}

// DetectLocale reads GXGUI_LOCALE, then LANG, and returns a BCP 47 tag.
// An unset or unparsable value yields English.
func DetectLocale() string {
	for _, v := range []string{os.Getenv(constants.LocaleEnvVar), os.Getenv("LANG")} {
		if v == "" {
			continue
		}
		// POSIX locales look like fr_FR.UTF-8.
		v, _, _ = strings.Cut(v, ".")
		v = strings.ReplaceAll(v, "_", "-")
		if tag, err := language.Parse(v); err == nil {
			return tag.String()
		}
	}
	return language.English.String()
}
