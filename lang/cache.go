package lang

import (
	"context"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"
)

// docCache stores parsed documents keyed by source hash and the options
// that affect parse semantics. Documents are immutable snapshots, so a
// cached document can be shared by every caller that supplies identical
// source.
var docCache sync.Map

// cacheKey derives the cache key for a source string under cfg.
// Hashing with xxh3 keeps lookups cheap for large documents.
func cacheKey(src string, cfg options) string {
	return strconv.FormatUint(xxh3.HashString(src), 36) +
		":" + strconv.FormatBool(cfg.comments)
}

// ParseStringCached parses src like [ParseString], returning a shared
// cached document when the identical source has been parsed before.
// Parse failures are not cached.
func ParseStringCached(
	ctx context.Context,
	src string,
	opts ...Option,
) (*Document, error) {
	key := cacheKey(src, makeOptions(opts...))

	if cached, ok := docCache.Load(key); ok {
		return cached.(*Document), nil
	}

	doc, err := ParseString(ctx, src, opts...)
	if err != nil {
		return nil, err
	}

	actual, _ := docCache.LoadOrStore(key, doc)

	return actual.(*Document), nil
}

// PurgeCache discards every cached document.
func PurgeCache() {
	docCache.Clear()
}
