// Package fuzzutil carries the seed-corpus plumbing for this repository's
// native Go fuzz test. It has no production entry point into the decoder
// itself; it exists only to load fixtures from assets/ into a fuzz seed
// corpus and to report a failing seed the way the teacher's own
// connection-scoped Logger reports each unmarshal step.
package fuzzutil

import (
	"log"
	"os"
	"path/filepath"
)

// LoadSeeds reads every *.bin file under dir and returns its contents as a
// seed corpus, skipping (and logging, via logger) any file it cannot read
// rather than failing the whole load.
func LoadSeeds(dir string, logger *log.Logger) [][]byte {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Printf("fuzzutil: read seed dir %s: %v", dir, err)
		return nil
	}

	var seeds [][]byte
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".bin" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Printf("fuzzutil: read seed %s: %v", path, err)
			continue
		}
		seeds = append(seeds, data)
	}
	return seeds
}

// ReportSeedFailure logs a seed corpus entry that the decoder rejected,
// mirroring the teacher's logPrintf call at each unmarshal step but scoped
// to the one thing worth reporting here: a named fixture that no longer
// round-trips.
func ReportSeedFailure(logger *log.Logger, name string, err error) {
	logger.Printf("fuzzutil: seed %s failed to decode: %v", name, err)
}
