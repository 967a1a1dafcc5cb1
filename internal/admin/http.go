package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"Shoplinkado/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20
	tokenCookie  = "admin_token"
)

type Server struct {
	Svc *Service
	Log *zap.Logger
}

type loginReq struct {
	Password string `json:"password"`
}

type loginResp struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req loginReq
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	tok, err := s.Svc.Login(r.Context(), req.Password)
	if errors.Is(err, ErrBadPassword) {
		kit.WriteError(w, r, http.StatusUnauthorized, "incorrect password", nil)
		return
	}
	if err != nil {
		if s.Log != nil {
			s.Log.Error("login failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	kit.WriteJSON(w, http.StatusOK, loginResp{Success: true, Token: tok})
}

func (s *Server) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if _, err := s.check(r); err != nil {
		s.writeAuthError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]any{"authenticated": true})
}

func (s *Server) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.Svc.Logout(r.Context(), tokenFromRequest(r)); err != nil {
		if s.Log != nil {
			s.Log.Error("logout failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	kit.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// RequireAdmin guards mutating catalog endpoints behind a live session.
func (s *Server) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.check(r); err != nil {
			s.writeAuthError(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) check(r *http.Request) (Session, error) {
	tok := tokenFromRequest(r)
	if tok == "" {
		return Session{}, ErrNotAuthenticated
	}
	return s.Svc.Check(r.Context(), tok)
}

func (s *Server) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrSessionExpired):
		kit.WriteError(w, r, http.StatusUnauthorized, "session expired", nil)
	case errors.Is(err, ErrNotAuthenticated):
		kit.WriteError(w, r, http.StatusUnauthorized, "not authenticated", nil)
	default:
		if s.Log != nil {
			s.Log.Error("auth check failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}

// tokenFromRequest prefers the Authorization header and falls back to the
// session cookie the login handler sets for browser clients.
func tokenFromRequest(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	if c, err := r.Cookie(tokenCookie); err == nil {
		return c.Value
	}
	return ""
}
