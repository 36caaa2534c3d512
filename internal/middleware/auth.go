package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
)

const ContextBarberID = "barberID"

// AuthMiddleware valida o Bearer HS256; o claim sub é o id do barbeiro.
// A emissão do token fica fora deste serviço.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
		if err != nil || !token.Valid {
			abort(c, "invalid_token")
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil {
			abort(c, "invalid_token_claims")
			return
		}

		barberID, err := strconv.ParseUint(sub, 10, 64)
		if err != nil || barberID == 0 {
			abort(c, "invalid_token_payload")
			return
		}

		c.Set(ContextBarberID, uint(barberID))
		c.Next()
	}
}

func BarberID(c *gin.Context) uint {
	return c.MustGet(ContextBarberID).(uint)
}

func abort(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Invalid credentials.")
	c.Abort()
}
