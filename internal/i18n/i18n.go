package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale is a supported display language code.
type Locale string

const (
	English Locale = "en"
	Hindi   Locale = "hi"
	Spanish Locale = "es"
	French  Locale = "fr"
)

// DefaultLocale is selected when a session starts.
const DefaultLocale = English

// Locales lists the supported locales in selector order.
var Locales = []Locale{English, Hindi, Spanish, French}

// Key identifies one UI label.
type Key string

const (
	KeyLogin         Key = "login"
	KeyRegister      Key = "register"
	KeyResetPassword Key = "resetPassword"
	KeyChatbot       Key = "chatbot"
	KeyUsername      Key = "username"
	KeyEmail         Key = "email"
	KeyAge           Key = "age"
	KeyGender        Key = "gender"
	KeyPassword      Key = "password"
	KeySubmit        Key = "submit"
	KeyLanguage      Key = "language"
)

// Keys is the closed label key set every locale must define.
var Keys = []Key{
	KeyLogin,
	KeyRegister,
	KeyResetPassword,
	KeyChatbot,
	KeyUsername,
	KeyEmail,
	KeyAge,
	KeyGender,
	KeyPassword,
	KeySubmit,
	KeyLanguage,
}

//go:embed locales/*.toml
var bundled embed.FS

// Table holds the label strings of every supported locale.
type Table struct {
	labels map[Locale]map[Key]string
}

// Load parses the locale files compiled into the binary.
func Load() (*Table, error) {
	sub, err := fs.Sub(bundled, "locales")
	if err != nil {
		return nil, err
	}
	return Parse(sub)
}

// Parse reads <locale>.toml for every supported locale from fsys and
// validates that each defines exactly the closed key set with non-empty
// values. All problems are reported together.
func Parse(fsys fs.FS) (*Table, error) {
	table := &Table{labels: make(map[Locale]map[Key]string, len(Locales))}
	var problems []error
	for _, loc := range Locales {
		raw := map[string]string{}
		name := path.Join(".", string(loc)+".toml")
		if _, err := toml.DecodeFS(fsys, name, &raw); err != nil {
			problems = append(problems, fmt.Errorf("locale %s: %w", loc, err))
			continue
		}
		labels, err := validate(loc, raw)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		table.labels[loc] = labels
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return table, nil
}

func validate(loc Locale, raw map[string]string) (map[Key]string, error) {
	var problems []error
	labels := make(map[Key]string, len(Keys))
	known := make(map[string]bool, len(Keys))
	for _, key := range Keys {
		known[string(key)] = true
		value, ok := raw[string(key)]
		switch {
		case !ok:
			problems = append(problems, fmt.Errorf("locale %s: missing key %q", loc, key))
		case value == "":
			problems = append(problems, fmt.Errorf("locale %s: empty value for %q", loc, key))
		default:
			labels[key] = value
		}
	}
	for name := range raw {
		if !known[name] {
			problems = append(problems, fmt.Errorf("locale %s: unknown key %q", loc, name))
		}
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return labels, nil
}

// Label returns the string for key in loc. Unknown locales resolve to the
// empty string; Parse guarantees every supported locale is complete.
func (t *Table) Label(loc Locale, key Key) string {
	return t.labels[loc][key]
}

// Supported reports whether loc is one of the fixed locales.
func Supported(loc Locale) bool {
	for _, candidate := range Locales {
		if candidate == loc {
			return true
		}
	}
	return false
}

// DisplayName renders the locale in its own language, e.g. "Español".
func DisplayName(loc Locale) string {
	tag, err := language.Parse(string(loc))
	if err != nil {
		return string(loc)
	}
	name := display.Self.Name(tag)
	if name == "" {
		return string(loc)
	}
	return cases.Title(tag).String(name)
}
