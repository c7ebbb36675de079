package identity

import (
	"strconv"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PageUUID derives the record ID for a page slug.
func PageUUID(slug string) uuid.UUID {
	return UUID("go-blockdoc:page:" + strings.ToLower(strings.TrimSpace(slug)))
}

// BlockUUID derives a stable block ID for imported content, keyed by the
// owning page and the block's ordinal position in the source.
func BlockUUID(pageID uuid.UUID, ordinal int) uuid.UUID {
	return UUID("go-blockdoc:block:" + pageID.String() + ":" + strconv.Itoa(ordinal))
}

// RowUUID derives a stable table row ID within an imported block.
func RowUUID(blockID string, ordinal int) uuid.UUID {
	return UUID("go-blockdoc:row:" + strings.TrimSpace(blockID) + ":" + strconv.Itoa(ordinal))
}
