// Package apidocs serves the OpenAPI document and a Swagger UI for it.
package apidocs

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const DocPath = "/openapi.yaml"

//go:embed openapi.yaml
var openapi []byte

// RegisterRoutes mounts GET /openapi.yaml and the UI under /swagger/.
func RegisterRoutes(r gin.IRoutes) {
	r.GET(DocPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", openapi)
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(DocPath)))
}
