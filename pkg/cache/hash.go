package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// keyVersion is bumped whenever the rendered output of an unchanged
// document may differ, invalidating every earlier artifact.
const keyVersion = "v1"

// ArtifactKeyOpts are the render options that distinguish artifacts of the
// same document.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed"`
}

// ArtifactKey returns the cache key of one rendered artifact of the document
// with the given content hash.
func ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+keyVersion, docHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
