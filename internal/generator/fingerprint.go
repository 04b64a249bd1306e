package generator

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/cuzdav/akari/internal/levelfmt"
	"github.com/cuzdav/akari/internal/model"
)

// Fingerprint returns a short hex digest of board's wall layout, used to
// detect accidental duplicate generation within a batch run. Uses the
// pack's x/crypto dependency in place of the teacher's sha256/fnv hashing
// idiom (transport/http/routes.go), since nothing here needs a
// cryptographically-specific primitive — blake2b is simply the hash the
// rest of the example pack already depends on.
func Fingerprint(board *model.BasicBoard) string {
	sum := blake2b.Sum256([]byte(levelfmt.FormatASCII(board)))
	return hex.EncodeToString(sum[:8])
}
