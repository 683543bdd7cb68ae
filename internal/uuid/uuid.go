// Package uuid wraps github.com/google/uuid for gin parameter binding and
// provides content-derived identifiers.
package uuid

import (
	"strings"

	google_uuid "github.com/google/uuid"
)

// UUID binds from URI and query parameters.
type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// Namespace is the name space for all content-derived ids. Changing it
// changes every derived id and breaks idempotence for existing data.
var Namespace = google_uuid.MustParse("3f0b6c1e-8f8a-4d8e-9a55-6e2b3c1d7a90")

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam implements the uuid.Parse method
// from https://pkg.go.dev/github.com/google/uuid#Parse
// for UUID
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}

// Derive returns a name-based (SHA-1) UUID for the given parts. The same
// parts always yield the same id, which makes writes keyed by it idempotent.
func Derive(parts ...string) google_uuid.UUID {
	return google_uuid.NewSHA1(Namespace, []byte(strings.Join(parts, "|")))
}
