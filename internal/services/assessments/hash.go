package assessments

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/gowebpki/jcs"

	"trustscore/internal/domain"
)

// InputsHash fingerprints the records an assessment was computed from. The
// JSON is canonicalized (RFC 8785) before hashing so key order and number
// formatting never change the hash.
func InputsHash(in domain.Input) (string, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	canon, err := jcs.Transform(raw)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canon)
	return "sha256:" + hex.EncodeToString(sum[:]), nil
}
