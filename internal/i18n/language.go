package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage is returned for language codes other than pt and en.
var ErrUnsupportedLanguage = errors.New("i18n: unsupported language")

// Language is a supported site language.
type Language string

const (
	Portuguese Language = "pt"
	English    Language = "en"

	DefaultLanguage = Portuguese
)

// Supported lists the site languages in display order.
func Supported() []Language {
	return []Language{Portuguese, English}
}

// ParseLanguage normalises a BCP 47 tag to a supported language, so pt-BR
// becomes pt and en-US becomes en.
func ParseLanguage(raw string) (Language, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty", ErrUnsupportedLanguage)
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, raw)
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, raw)
	}
	switch Language(base.String()) {
	case Portuguese:
		return Portuguese, nil
	case English:
		return English, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, raw)
	}
}

// ParseLanguageOr returns the parsed language or fallback when raw is not supported.
func ParseLanguageOr(raw string, fallback Language) Language {
	lang, err := ParseLanguage(raw)
	if err != nil {
		return fallback
	}
	return lang
}

func (l Language) String() string {
	return string(l)
}

// Tag returns the x/text tag for l.
func (l Language) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Portuguese
}

// Alternate is the language the toggle switches to.
func (l Language) Alternate() Language {
	if l == English {
		return Portuguese
	}
	return English
}

// SwitchLabel is the short toggle label, naming the language switched to.
func (l Language) SwitchLabel() string {
	return strings.ToUpper(string(l.Alternate()))
}

// SwitchAria is the accessible label of the language toggle.
func (l Language) SwitchAria() string {
	if l == English {
		return "Mudar para Português"
	}
	return "Switch to English"
}
