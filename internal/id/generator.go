package id

import (
	"time"

	fid "github.com/amterp/flexid"
)

var generator *fid.Generator

func init() {
	epoch := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	config := fid.NewConfig().
		WithEpoch(epoch).
		WithTickSize(10 * time.Millisecond).
		WithNumRandomChars(4)

	generator = fid.MustNewGenerator(config)
}

// Generate returns a new unique ID for user-created directories and
// terminals. Migration never calls this: ids synthesized during migration
// are deterministic so the transform stays pure.
func Generate() string {
	return generator.MustGenerate()
}
