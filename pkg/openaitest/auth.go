package openaitest

import (
	"errors"
	"net/http"
	"strings"
)

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.verifyToken(r); err != nil {
			writeError(w, http.StatusUnauthorized, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) verifyToken(r *http.Request) error {
	if s.token == "" {
		return nil
	}

	header := r.Header.Get("Authorization")

	if header == "" {
		return errors.New("missing authorization header")
	}

	if !strings.HasPrefix(header, "Bearer ") {
		return errors.New("invalid authorization header")
	}

	token := strings.TrimPrefix(header, "Bearer ")

	if token != s.token {
		return errors.New("incorrect api key provided")
	}

	return nil
}
