package i18n

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// Bundle wraps the message bundle for the two UI languages. French is the
// bundle default; Arabic messages fall back to French when a key is missing.
type Bundle struct {
	bundle *i18n.Bundle
}

func NewBundle(localesDir string) (*Bundle, error) {
	b := i18n.NewBundle(language.French)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	if _, err := b.LoadMessageFile(path.Join(localesDir, "fr.yaml")); err != nil {
		return nil, err
	}
	if _, err := b.LoadMessageFile(path.Join(localesDir, "ar.yaml")); err != nil {
		return nil, err
	}

	return &Bundle{bundle: b}, nil
}

func (b *Bundle) NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(b.bundle, lang)
}

// T resolves a message ID for the given language, returning the ID itself
// when no translation exists so callers always get a renderable string.
func (b *Bundle) T(lang, messageID string) string {
	msg, err := b.NewLocalizer(lang).Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if msg == "" && err != nil {
		return messageID
	}
	return msg
}
