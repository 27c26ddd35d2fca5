package fs

import (
	"log/slog"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultCollation is the locale used for street ordering when none is
// configured. The seed data is Hungarian.
const DefaultCollation = "hu"

// newCollator builds the collator for street name ordering. An unparseable
// tag falls back to the default locale rather than failing the listing.
func newCollator(tag string, logger *slog.Logger) *collate.Collator {
	if tag == "" {
		tag = DefaultCollation
	}
	t, err := language.Parse(tag)
	if err != nil {
		logger.Warn("invalid collation tag, using default", "tag", tag, "default", DefaultCollation)
		t = language.Hungarian
	}
	return collate.New(t)
}
