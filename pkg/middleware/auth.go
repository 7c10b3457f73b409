package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/expert-metrics-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// Claims é o conteúdo do token emitido pelo dashboard
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// publicPaths não exigem token
var publicPaths = map[string]struct{}{
	"/healthcheck": {},
	"/metrics":     {},
}

// Authorizer valida tokens HS256 assinados com o segredo configurado.
// Sem segredo a autenticação fica desabilitada e todas as rotas são liberadas.
type Authorizer struct {
	secret []byte
}

func NewAuthorizer(secret string) *Authorizer {
	return &Authorizer{secret: []byte(strings.TrimSpace(secret))}
}

func (a *Authorizer) Enabled() bool {
	return a != nil && len(a.secret) > 0
}

// ValidateToken verifica assinatura, algoritmo e expiração do token
func (a *Authorizer) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	return claims, nil
}

func (a *Authorizer) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, public := publicPaths[r.URL.Path]; public || !a.Enabled() || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Header Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := a.ValidateToken(tokenString)
			if err != nil {
				logrus.WithError(err).Warn("Token inválido")
				code := apiErrors.ErrInvalidToken
				if errors.Is(err, jwt.ErrTokenExpired) {
					code = apiErrors.ErrExpiredToken
				}
				apiErrors.WriteError(w, code, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
