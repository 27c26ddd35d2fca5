package fs

import (
	"log/slog"
	"testing"
)

func TestNewCollator(t *testing.T) {
	logger := slog.Default()

	t.Run("Hungarian Orders Accents With Base Letter", func(t *testing.T) {
		coll := newCollator("", logger)
		if coll.CompareString("Ady Endre utca", "Áfonyás utca") >= 0 {
			t.Error("Expected Ady before Áfonyás under Hungarian collation")
		}
		if coll.CompareString("Áfonyás utca", "Béke utca") >= 0 {
			t.Error("Expected Áfonyás before Béke under Hungarian collation")
		}
	})

	t.Run("Invalid Tag Falls Back", func(t *testing.T) {
		coll := newCollator("not-a-locale!", logger)
		if coll == nil {
			t.Fatal("Expected a usable collator despite the bad tag")
		}
		if coll.CompareString("a", "b") >= 0 {
			t.Error("Fallback collator should still order sensibly")
		}
	})
}
