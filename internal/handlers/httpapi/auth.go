package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
	userRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/user"
)

// authedHandler is a handler that runs with a resolved user identity
type authedHandler func(w http.ResponseWriter, r *http.Request, user *models.User)

// requireUser resolves the caller's session token before running the
// handler. Requests without a valid session get a 401.
func (s *Server) requireUser(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := s.authenticate(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
			return
		}

		next(w, r, user)
	}
}

// authenticate resolves the bearer token or session cookie to a user
func (s *Server) authenticate(r *http.Request) (*models.User, error) {
	token := ""
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		token = strings.TrimPrefix(auth, "Bearer ")
	} else if cookie, err := r.Cookie("session"); err == nil {
		token = cookie.Value
	}

	if token == "" {
		return nil, errors.New("missing session token")
	}

	return s.users.GetUserBySession(r.Context(), &userRepo.GetUserBySessionInput{Token: token})
}
