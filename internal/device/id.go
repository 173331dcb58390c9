package device

import (
	"strings"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"
)

// NewID generates an id for a user-added device: the lowercased name with
// whitespace runs replaced by "_", followed by "_" and a time-ordered ULID
// derived from t. Ids generated later sort after earlier ones for the same name.
func NewID(name string, t time.Time) string {
	id := ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy())
	return slug(name) + "_" + strings.ToLower(id.String())
}

// slug lowercases s and collapses every whitespace run into a single underscore.
func slug(s string) string {
	var sb strings.Builder
	inSpace := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			if !inSpace {
				sb.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}
