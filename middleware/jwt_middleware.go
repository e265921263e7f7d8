package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"staffhub-backend/config"
	authhandler "staffhub-backend/lib/auth"
	apimodels "staffhub-backend/models/api"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
	})
}

// RevocationCheck rejects tokens whose jti was revoked by logout. Runs
// after AuthorizationRequired has validated the signature.
func RevocationCheck() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token, ok := ctx.Locals("user").(*jwt.Token)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("missing or malformed token"))
		}
		claims := token.Claims.(jwt.MapClaims)
		jti, _ := claims["jti"].(string)
		if jti != "" && authhandler.Instance.IsTokenRevoked(ctx.Context(), jti) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("token revoked"))
		}
		return ctx.Next()
	}
}
