package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const usernameKey = "username"

var errMissingBearer = errors.New("authorization header must be: Bearer <token>")

// AuthMiddleware requires a valid access token and stores its subject under
// the "username" key of the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			AbortWithDetail(c, http.StatusUnauthorized, err.Error())
			return
		}

		username, err := ResolveSubject(tokenString)
		if err != nil {
			AbortWithDetail(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(usernameKey, username)
		c.Next()
	}
}

func bearerToken(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errMissingBearer
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", errMissingBearer
	}
	return token, nil
}

// CurrentUsername reads the subject stored by AuthMiddleware.
func CurrentUsername(c *gin.Context) (string, bool) {
	username := c.GetString(usernameKey)
	return username, username != ""
}
