package handler

import (
	"net/http"
	"strconv"

	"github.com/toayushh/CareConnect-sub001/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// actor pulls the authenticated user's ID and role from the request context.
func actor(r *http.Request) (uuid.UUID, int, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, 0, false
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, 0, false
	}
	return userID, roleID, true
}

// pathID parses the numeric {id} path variable.
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
