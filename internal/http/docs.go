package http

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.json
var openAPIDocument []byte

// apiDocsHandler serves the OpenAPI document.
// GET /v3/api-docs - public.
func apiDocsHandler(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", openAPIDocument)
}

// docsRedirectHandler points /docs at the OpenAPI document.
func docsRedirectHandler(c *gin.Context) {
	c.Redirect(http.StatusFound, "/v3/api-docs")
}
