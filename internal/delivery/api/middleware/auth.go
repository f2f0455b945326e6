package middleware

import (
	"log/slog"
	"strings"

	"hivewatch/internal/delivery/api/response"
	deliverycontext "hivewatch/internal/delivery/context"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/usecase"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// AuthMiddleware authenticates the bearer token of interactive calls.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware creates an AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.AppError(c, domainerrors.ErrMissingAuthorization)
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.AppError(c, domainerrors.ErrMissingAuthorization)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("[Auth] Token rejected", slog.Any("error", err))

			return response.AppError(c, domainerrors.ErrInvalidToken)
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			return response.AppError(c, domainerrors.ErrInvalidToken)
		}

		c.Set(actorKey, actor)

		return next(c)
	}
}

func actorFromClaims(claims *service.Claims) (usecase.Actor, error) {
	userID, err := claims.UserID()
	if err != nil {
		return usecase.Actor{}, err
	}

	actor := usecase.Actor{UserID: userID}
	companyID, ok, err := claims.CompanyID()
	if err != nil {
		return usecase.Actor{}, err
	}
	if ok {
		actor.CompanyID = &companyID
	}

	return actor, nil
}

// GetActor returns the caller stored by Authenticate.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(actorKey).(usecase.Actor)

	return actor, ok
}
