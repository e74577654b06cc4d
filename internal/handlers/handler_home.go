package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Greeting
// @Description Returns a plain greeting, useful as a smoke test.
// @Tags root
// @Produce plain
// @Success 200 {string} string "hola :)"
// @Router /test [get]
func getHome(c *gin.Context) {
	c.String(http.StatusOK, "hola :)")
}
