package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/expert-metrics-api/pkg/apiErrors"
)

// Roles presentes no token
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// RequireRole restringe a rota aos roles informados. Com a autenticação desabilitada não há restrição.
func (a *Authorizer) RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			claims, ok := r.Context().Value(ContextKeyUser).(*Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.Role) {
				logrus.Warningf("Acesso negado para %s com role %q", claims.Subject, claims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func (a *Authorizer) AdminOnly() func(http.Handler) http.Handler {
	return a.RequireRole(RoleAdmin)
}

// AllRoles permite acesso para qualquer usuário autenticado
func (a *Authorizer) AllRoles() func(http.Handler) http.Handler {
	return a.RequireRole(RoleAdmin, RoleViewer)
}
