// Package translate localizes the messages of seqio errors.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is used when the host reports no usable locale.
const Fallback = "en-US"

var (
	once    sync.Once
	printer *message.Printer
)

func setup() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("seqio: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	once.Do(setup)
	return printer.Sprintf(key, args...)
}

// In translates for an explicit language tag, ignoring the host locale.
func In(tag language.Tag, key message.Reference, args ...any) string {
	return message.NewPrinter(tag).Sprintf(key, args...)
}
