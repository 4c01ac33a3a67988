package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/i18n"
)

func TestSaveLabels(t *testing.T) {
	c, err := i18n.NewCatalog()
	require.NoError(t, err)

	t.Run("english matches the built in labels", func(t *testing.T) {
		assert.Equal(t, gxgui.DefaultSaveLabels, c.SaveLabels("en"))
	})

	t.Run("french", func(t *testing.T) {
		labels := c.SaveLabels("fr-FR")
		assert.Equal(t, "Nouvelle SRAM", labels.NewSRAM)
		assert.Equal(t, "Instantané", labels.Snapshot)
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		assert.Equal(t, "New Snapshot", c.SaveLabels("ja").NewSnapshot)
	})
}

func TestLocalizeUnknownID(t *testing.T) {
	c, err := i18n.NewCatalog()
	require.NoError(t, err)
	assert.Equal(t, "missing_id", c.Localize("missing_id", "en"))
}

func TestAddMessageFile(t *testing.T) {
	c, err := i18n.NewCatalog()
	require.NoError(t, err)

	require.NoError(t, c.AddMessageFile([]byte(`new_sram = "Nova SRAM"`), "extra.pt-BR.toml"))
	assert.Equal(t, "Nova SRAM", c.Localize(i18n.MsgNewSRAM, "pt-BR"))

	assert.Error(t, c.AddMessageFile([]byte(`new_sram = `), "broken.it.toml"))
}

func TestLanguages(t *testing.T) {
	c, err := i18n.NewCatalog()
	require.NoError(t, err)
	assert.Len(t, c.Languages(), 4)
}

func TestDetectLocale(t *testing.T) {
	t.Run("explicit override", func(t *testing.T) {
		t.Setenv(constants.LocaleEnvVar, "de")
		t.Setenv("LANG", "fr_FR.UTF-8")
		assert.Equal(t, "de", i18n.DetectLocale())
	})

	t.Run("posix locale", func(t *testing.T) {
		t.Setenv(constants.LocaleEnvVar, "")
		t.Setenv("LANG", "fr_FR.UTF-8")
		assert.Equal(t, "fr-FR", i18n.DetectLocale())
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(constants.LocaleEnvVar, "")
		t.Setenv("LANG", "")
		assert.Equal(t, "en", i18n.DetectLocale())
	})
}
