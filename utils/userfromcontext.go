package utils

import (
	"net/http"

	"vastra/globals"
)

func GetUserIDFromRequest(r *http.Request) string {
	ctx := r.Context()
	requestingUserID, ok := ctx.Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

func IsAdminRequest(r *http.Request) bool {
	isAdmin, ok := r.Context().Value(globals.IsAdminKey).(bool)
	return ok && isAdmin
}
