package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sistema-nomina/nomina-backend-go/internal/handler/http/response"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/jwt"
)

// RequireAdmin requires the admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if roleFromContext(r) != jwt.RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireHR requires the hr or admin role
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := roleFromContext(r)
		if role != jwt.RoleHR && role != jwt.RoleAdmin {
			response.Forbidden(w, "HR access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func roleFromContext(r *http.Request) jwt.Role {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return ""
	}
	return jwt.Role(roleStr)
}
