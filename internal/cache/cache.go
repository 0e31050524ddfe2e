// Package cache persists a grammar's augmented production list to a
// content-addressed file so the CLI can skip augmentation when a grammar file
// is unchanged; table construction still runs on a cache hit. Serialization uses github.com/dekarrin/rezi's reflection-based
// Enc/Dec, grounded on dekarrin-tunaq/server/dao/sqlite/sqlite.go's use of
// rezi for persisting structured Go values; Enc/Dec are used here rather
// than EncBinary/DecBinary since Snapshot is a plain data struct with no
// MarshalBinary/UnmarshalBinary of its own to hang those on.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/dekarrin/rezi"
	"github.com/finger-bone/mygo-parser/internal/grammar"
)

// Snapshot is the augmented production list and start symbol of a built
// parser. FIRST/FOLLOW, the item-set collection and the ACTION/GOTO tables
// are not cached: they are wholly determined by Productions and StartSymbol
// and are rebuilt from them by slr.BuildFromAugmented.
type Snapshot struct {
	Productions []grammar.Production
	StartSymbol string
}

// Key returns the content-addressed cache key for grammar source text.
func Key(grammarSrc string) string {
	sum := sha256.Sum256([]byte(grammarSrc))
	return hex.EncodeToString(sum[:])
}

// Path returns the cache file path for a key under dir.
func Path(dir, key string) string {
	return filepath.Join(dir, key+".rezi")
}

// Load reads and decodes a cached Snapshot, or returns (nil, false) if the
// cache file does not exist.
func Load(dir, key string) (*Snapshot, bool, error) {
	data, err := os.ReadFile(Path(dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var snap Snapshot
	if _, err := rezi.Dec(data, &snap); err != nil {
		return nil, false, err
	}
	return &snap, true, nil
}

// Store encodes and writes a Snapshot to the cache directory, creating it if
// necessary.
func Store(dir, key string, snap *Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := rezi.Enc(*snap)
	if err != nil {
		return err
	}
	return os.WriteFile(Path(dir, key), data, 0o644)
}
