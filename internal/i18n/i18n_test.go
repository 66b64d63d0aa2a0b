package i18n

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledTableDefinesEveryLabel(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	for _, loc := range Locales {
		for _, key := range Keys {
			assert.NotEmpty(t, table.Label(loc, key), "locale %s key %s", loc, key)
		}
	}
	assert.Len(t, Keys, 11)
}

func TestBundledTableMatchesKnownStrings(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Login", table.Label(English, KeyLogin))
	assert.Equal(t, "Contraseña", table.Label(Spanish, KeyPassword))
	assert.Equal(t, "S'inscrire", table.Label(French, KeyRegister))
	assert.Equal(t, "भाषा", table.Label(Hindi, KeyLanguage))
}

func completeLocale(skip string) string {
	var b strings.Builder
	for _, key := range Keys {
		if string(key) == skip {
			continue
		}
		b.WriteString(string(key))
		b.WriteString(" = \"x\"\n")
	}
	return b.String()
}

func fixtureFS(overrides map[Locale]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, loc := range Locales {
		body, ok := overrides[loc]
		if !ok {
			body = completeLocale("")
		}
		fsys[string(loc)+".toml"] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestParseRejectsMissingKey(t *testing.T) {
	_, err := Parse(fixtureFS(map[Locale]string{Hindi: completeLocale("submit")}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `locale hi: missing key "submit"`)
}

func TestParseRejectsEmptyAndUnknownKeys(t *testing.T) {
	body := completeLocale("age") + "age = \"\"\nnickname = \"Nick\"\n"
	_, err := Parse(fixtureFS(map[Locale]string{French: body}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `empty value for "age"`)
	assert.Contains(t, err.Error(), `unknown key "nickname"`)
}

func TestParseRejectsMissingLocaleFile(t *testing.T) {
	fsys := fixtureFS(nil)
	delete(fsys, "es.toml")
	_, err := Parse(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locale es")
}

func TestSelectorSwitchesLabels(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)
	sel := NewSelector(table)

	assert.Equal(t, English, sel.Current())
	assert.Equal(t, "Submit", sel.T(KeySubmit))

	require.NoError(t, sel.Set(French))
	assert.Equal(t, "Soumettre", sel.T(KeySubmit))

	assert.Error(t, sel.Set(Locale("de")))
	assert.Equal(t, French, sel.Current(), "failed Set must not change the selection")
}

func TestSelectorNextWrapsWithoutSwitching(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)
	sel := NewSelector(table)

	assert.Equal(t, French, sel.Next(-1))
	assert.Equal(t, Hindi, sel.Next(1))
	assert.Equal(t, English, sel.Next(len(Locales)))
	assert.Equal(t, English, sel.Current(), "Next must not change the selection")

	require.NoError(t, sel.Set(sel.Next(-1)))
	assert.Equal(t, Spanish, sel.Next(-1))
}

func TestDisplayNameUsesNativeNames(t *testing.T) {
	assert.Equal(t, "English", DisplayName(English))
	assert.Equal(t, "Español", DisplayName(Spanish))
	assert.Equal(t, "Français", DisplayName(French))
	assert.NotEmpty(t, DisplayName(Hindi))
}
