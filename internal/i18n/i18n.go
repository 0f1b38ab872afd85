// Package i18n translates user-facing error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the built-in messages.
func NewTranslator() *Translator {
	return &Translator{messages: defaultMessages}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Supports reports whether locale has translations.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Translate returns the message for key in locale, falling back to DefaultLocale
// and then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks the first Accept-Language entry if it is supported.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// "en-US,en;q=0.9,pt;q=0.8" -> "en"
	lang := strings.TrimSpace(strings.Split(strings.Split(acceptLang, ",")[0], ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)
	if GetTranslator().Supports(lang) {
		return lang
	}
	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyNotFound:           "Not found",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyTimeout:            "Request timed out",
		ErrKeyInvalidCartState:   "Cart state is inconsistent",
		ErrKeyInvalidAction:      "Invalid cart action",
		ErrKeyInvalidCatalog:     "Invalid product catalog",
		ErrKeyCatalogUnavailable: "Product catalog could not be loaded",
		ErrKeyCatalogReadOnly:    "The product catalog is read-only",
	},
	"pt": {
		ErrKeyInvalidRequest:     "Requisição inválida",
		ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
		ErrKeyInternalError:      "Ocorreu um erro inesperado",
		ErrKeyNotFound:           "Não encontrado",
		ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
		ErrKeyTimeout:            "Tempo de requisição esgotado",
		ErrKeyInvalidCartState:   "O estado do carrinho é inconsistente",
		ErrKeyInvalidAction:      "Ação de carrinho inválida",
		ErrKeyInvalidCatalog:     "Catálogo de produtos inválido",
		ErrKeyCatalogUnavailable: "Não foi possível carregar o catálogo de produtos",
		ErrKeyCatalogReadOnly:    "O catálogo de produtos é somente leitura",
	},
	"nl": {
		ErrKeyInvalidRequest:     "Ongeldig verzoek",
		ErrKeyInvalidRequestBody: "Ongeldige verzoekinhoud",
		ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
		ErrKeyNotFound:           "Niet gevonden",
		ErrKeyRateLimitExceeded:  "Te veel verzoeken, probeer het later opnieuw",
		ErrKeyTimeout:            "Time-out van verzoek",
		ErrKeyInvalidCartState:   "Winkelwagenstatus is inconsistent",
		ErrKeyInvalidAction:      "Ongeldige winkelwagenactie",
		ErrKeyInvalidCatalog:     "Ongeldige productcatalogus",
		ErrKeyCatalogUnavailable: "Productcatalogus kon niet worden geladen",
		ErrKeyCatalogReadOnly:    "De productcatalogus is alleen-lezen",
	},
}
