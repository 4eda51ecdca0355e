package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const namespace = "socialsync:"

// UUID derives a stable UUID from key with go-hashid, falling back to a
// SHA1 name-based UUID if hashing fails. Keys should be prefixed by entity
// type so different entities never collide.
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

// DocumentID returns the identifier for a content document of docType keyed
// by slug. Imported documents and built-in defaults share this scheme.
func DocumentID(docType, slug string) string {
	return UUID(namespace + strings.ToLower(strings.TrimSpace(docType)) + ":" + strings.ToLower(strings.TrimSpace(slug))).String()
}

// TranslationsID returns the identifier for the translations document of a language.
func TranslationsID(language string) string {
	return DocumentID("translations", language)
}
