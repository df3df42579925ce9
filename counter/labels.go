package counter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Labels are the fixed texts of the UI.
type Labels struct {
	// Started is written to the status slot by StartNewCounter.
	Started string `yaml:"started"`

	// Completed is written to the status slot by Complete.
	Completed string `yaml:"completed"`

	// ErrorFallback replaces an empty RaiseError message.
	ErrorFallback string `yaml:"error_fallback"`

	// Prompt asks the user for an error message. The controller never reads it.
	Prompt string `yaml:"prompt"`
}

var English = Labels{
	Started:       "counting started",
	Completed:     "completed",
	ErrorFallback: "error",
	Prompt:        "Enter an error message",
}

var TraditionalChinese = Labels{
	Started:       "開始計數",
	Completed:     "完成",
	ErrorFallback: "error",
	Prompt:        "請輸入錯誤訊息",
}

const DefaultLocale = "en"

var locales = map[string]Labels{
	"en":    English,
	"zh-TW": TraditionalChinese,
}

// Locales returns the names of the built-in locales, sorted.
func Locales() []string {
	return slices.Sorted(maps.Keys(locales))
}

// LabelsFor returns the built-in labels of a locale. Names are matched case-insensitively.
func LabelsFor(locale string) (Labels, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	for name, labels := range locales {
		if strings.EqualFold(name, locale) {
			return labels, nil
		}
	}

	return Labels{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLocale, locale, strings.Join(Locales(), ", "))
}

// Merge returns l with the non-empty fields of override applied on top.
func (l Labels) Merge(override Labels) Labels {
	if override.Started != "" {
		l.Started = override.Started
	}
	if override.Completed != "" {
		l.Completed = override.Completed
	}
	if override.ErrorFallback != "" {
		l.ErrorFallback = override.ErrorFallback
	}
	if override.Prompt != "" {
		l.Prompt = override.Prompt
	}

	return l
}
