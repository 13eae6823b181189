package orchestrator

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/schema"
)

// DefaultCacheSize bounds the number of artifacts kept in memory.
const DefaultCacheSize = 128

type artifactCache struct {
	entries *lru.Cache[string, codegen.Artifact]
}

// newArtifactCache returns nil when size is not positive, disabling caching.
func newArtifactCache(size int) (*artifactCache, error) {
	if size <= 0 {
		return nil, nil
	}
	entries, err := lru.New[string, codegen.Artifact](size)
	if err != nil {
		return nil, err
	}
	return &artifactCache{entries: entries}, nil
}

func (c *artifactCache) get(key string) (codegen.Artifact, bool) {
	if c == nil || key == "" {
		return codegen.Artifact{}, false
	}
	return c.entries.Get(key)
}

func (c *artifactCache) add(key string, artifact codegen.Artifact) {
	if c == nil || key == "" {
		return
	}
	c.entries.Add(key, artifact)
}

func (c *artifactCache) len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

// cacheKey hashes the canonical JSON form of the schema and options. Equal
// inputs always generate equal artifacts, so the hash identifies the output.
func cacheKey(s schema.Schema, opts codegen.Options) string {
	payload, err := json.Marshal(struct {
		Schema  schema.Schema   `json:"schema"`
		Options codegen.Options `json:"options"`
	}{s, opts})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
