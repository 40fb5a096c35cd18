package models

// Language is a user's chosen support language
type Language string

const (
	LanguageRU Language = "ru"
	LanguageEN Language = "en"
)

// Valid reports whether l is one of the supported languages
func (l Language) Valid() bool {
	return l == LanguageRU || l == LanguageEN
}

// Operator is one of the fixed human responders, bound to one language
type Operator struct {
	ID       int64
	Language Language
}
