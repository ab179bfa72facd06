package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/application/usecases/queries"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key the middleware stores the caller's
// actor context under.
const actorContextKey = "actor"

// authClaims are the JWT claims the service issues and expects back.
// UserID is the internal user id; the registered Subject carries the
// external identity the token was issued for.
type authClaims struct {
	jwt.RegisteredClaims
	UserID     string   `json:"uid"`
	Roles      []string `json:"roles"`
	EmployeeID string   `json:"employee_id,omitempty"`
}

// AuthMiddleware verifies bearer tokens and builds the actor context for
// every request. Employee callers get their office scope resolved from the
// current assignments, not from the token, so a revoked assignment takes
// effect immediately.
type AuthMiddleware struct {
	secret          []byte
	employeeOffices queries.ListEmployeeOfficesQueryHandler
}

// NewAuthMiddleware creates an authentication middleware using an HMAC secret.
func NewAuthMiddleware(secret string, employeeOffices queries.ListEmployeeOfficesQueryHandler) *AuthMiddleware {
	return &AuthMiddleware{
		secret:          []byte(secret),
		employeeOffices: employeeOffices,
	}
}

// Middleware is the echo middleware function. Requests without a valid token
// are rejected with 401.
func (m *AuthMiddleware) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return unauthorized(ctx, "Missing bearer token")
		}

		claims := &authClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return m.secret, nil
		})
		if err != nil || !parsed.Valid {
			return unauthorized(ctx, "Invalid token")
		}

		act, err := m.buildActor(ctx.Request().Context(), claims)
		if err != nil {
			return unauthorized(ctx, "Invalid token claims")
		}

		ctx.Set(actorContextKey, act)
		return next(ctx)
	}
}

// buildActor translates verified claims into the actor context the use cases
// consume.
func (m *AuthMiddleware) buildActor(ctx context.Context, claims *authClaims) (*actor.Context, error) {
	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return nil, err
	}

	roles := make([]actor.Role, 0, len(claims.Roles))
	for _, role := range claims.Roles {
		roles = append(roles, actor.Role(role))
	}

	act := &actor.Context{
		UserID: userID,
		Sub:    claims.Subject,
		Roles:  roles,
	}

	if claims.EmployeeID != "" {
		employeeID, idErr := kernel.UUIDFromString(claims.EmployeeID)
		if idErr != nil {
			return nil, idErr
		}
		act.EmployeeID = &employeeID

		if act.IsEmployee() && !act.IsAdmin() {
			query, queryErr := queries.NewListEmployeeOfficesQuery(employeeID)
			if queryErr != nil {
				return nil, queryErr
			}

			officeIDs, listErr := m.employeeOffices.Handle(ctx, query)
			if listErr != nil {
				return nil, listErr
			}
			act.AllowedOfficeIDs = officeIDs
		}
	}

	return act, nil
}

// actorFromContext retrieves the actor context stored by the middleware.
func actorFromContext(ctx echo.Context) (*actor.Context, bool) {
	act, ok := ctx.Get(actorContextKey).(*actor.Context)
	return act, ok
}
