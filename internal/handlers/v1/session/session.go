// Package session resolves the calling user's identity from the request.
// Authentication happens upstream; the proxy forwards the verified user id in
// the X-User-ID header, and every handler scopes its work to that id.
package session

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// UserID parses the forwarded user id header. A missing, malformed, or nil id
// means the request did not come through the auth proxy and is rejected.
func UserID(header string) (uuid.UUID, error) {
	id, err := uuid.FromString(header)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "missing or invalid user identity", err)
	}
	if id == uuid.Nil {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "missing or invalid user identity", nil)
	}
	return id, nil
}
