package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// Identity is the caller extracted from verified token claims.
type Identity struct {
	MemberID  string
	CompanyID string
	IsAdmin   bool
}

// IdentityFromRequest pulls the caller's identity out of the request's
// verified claims. Only valid behind AuthRequired.
func IdentityFromRequest(r *http.Request) (Identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return Identity{}, auth.ErrInvalidToken
	}

	memberID, ok := claims["member_id"].(string)
	if !ok || memberID == "" {
		return Identity{}, auth.ErrMissingClaims
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return Identity{}, auth.ErrMissingClaims
	}
	isAdmin, _ := claims["is_admin"].(bool)

	return Identity{MemberID: memberID, CompanyID: companyID, IsAdmin: isAdmin}, nil
}
