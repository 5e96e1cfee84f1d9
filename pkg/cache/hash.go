package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey returns "prefix:<sha256 of the JSON array of parts>". Parts must
// be JSON-encodable; key inputs are plain strings and structs.
func hashKey(prefix string, parts ...any) string {
	sum, err := HashJSON(parts)
	if err != nil {
		panic("cache: unhashable key part: " + err.Error())
	}
	return prefix + ":" + sum
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashJSON returns the hex SHA-256 of the JSON encoding of v, streaming the
// encoding into the hash. A laid-out sheet hashes to the same value for
// the same options and seed.
func HashJSON(v any) (string, error) {
	h := sha256.New()
	if err := json.NewEncoder(h).Encode(v); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
