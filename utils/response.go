package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AbortWithDetail ends the request with {"detail": detail}.
func AbortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// AbortWithInternal logs err with the request logger and hides it from the caller.
func AbortWithInternal(c *gin.Context, err error, msg string) {
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg(msg)
	AbortWithDetail(c, http.StatusInternalServerError, "Internal server error")
}

// AbortWithValidation reports a request body or form that failed binding.
func AbortWithValidation(c *gin.Context, err error) {
	AbortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
}
