package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gutshub/guts-api/internal/dto"
	"github.com/rs/zerolog/log"
)

const userIDKey = "userID"

// RequireAuth validates the bearer token of the request and stores the
// authenticated user id in the Gin context. Token issuance lives with the
// identity provider; this middleware only verifies.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Msg("Rejected invalid bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid bearer token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token claims"})
			return
		}
		sub, ok := claims["sub"].(float64)
		if !ok || sub <= 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Token carries no user id"})
			return
		}

		ctx.Set(userIDKey, uint(sub))
		ctx.Next()
	}
}

// CurrentUserID returns the authenticated user id set by RequireAuth.
func CurrentUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
