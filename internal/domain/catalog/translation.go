package catalog

import (
	"strings"

	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
)

const (
	DefaultLanguage = "en"

	UntitledStore = "Untitled Store"
	NoLocation    = "No location"
	UnknownStore  = "Unknown Store"
)

var (
	ErrStoreNotFound      = httperr.New(httperr.KindNotFound, "Store not found")
	ErrNameOrLocationMiss = httperr.New(httperr.KindValidation, "Name and location are required")
)

// NormalizeLanguage lowercases the tag and falls back to the base
// language when it is empty.
func NormalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return DefaultLanguage
	}
	return language
}

// ValidateContent checks the per-language text of a store.
func ValidateContent(name, location string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(location) == "" {
		return ErrNameOrLocationMiss
	}
	return nil
}

// Resolution is the outcome of looking up a store's text for one
// language.
type Resolution struct {
	Name     string
	Location string
	Found    bool
}

func Found(name, location string) Resolution {
	return Resolution{Name: name, Location: location, Found: true}
}

// Missing is the resolution for a store without text in the language.
var Missing = Resolution{}

// DisplayName returns the name, or UnknownStore when missing.
func (r Resolution) DisplayName() string {
	if !r.Found {
		return UnknownStore
	}
	return r.Name
}

// Listing returns name and location for store listings, with the
// untitled placeholders when missing. No other language is substituted.
func (r Resolution) Listing() (string, string) {
	if !r.Found {
		return UntitledStore, NoLocation
	}
	return r.Name, r.Location
}
