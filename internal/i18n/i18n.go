package i18n

import (
	"encoding/json"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

// localeFiles lists the message files loaded from the embedded FS
var localeFiles = []string{
	"locales/en-us.json",
	"locales/zh-cn.json",
}

// Init initializes the i18n bundle with the given locale files
func Init(localeFS fs.FS, lang string) error {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	// Load locale files - ignore errors for missing files
	for _, f := range localeFiles {
		bundle.LoadMessageFileFS(localeFS, f)
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	return nil
}

// T translates a message by its ID with optional template data and plural count
func T(messageID string, templateData map[string]interface{}, pluralCount ...int) string {
	if localizer == nil {
		return messageID
	}

	config := &i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	}
	if len(pluralCount) > 0 {
		config.PluralCount = pluralCount[0]
	}

	// A key missing from the active locale still yields the default
	// language text alongside the error
	msg, _ := localizer.Localize(config)
	if msg == "" {
		return messageID
	}
	return msg
}

// SetLocale changes the current locale
func SetLocale(lang string) {
	if bundle == nil {
		return
	}
	localizer = i18n.NewLocalizer(bundle, lang)
}
