package routes

import (
	"net/http"

	"akc_operations/pkg"

	"github.com/gin-gonic/gin"
)

// FileLocator resolves a stored document or upload id to a local path.
type FileLocator interface {
	Locate(fileID string) (string, error)
}

var errFileNotFound = pkg.NewDomainErrorSimple("NOT_FOUND", "File not found", http.StatusNotFound)

// addFileRoutes serves the documents and uploads addressed by the workspace's
// public base URL.
func addFileRoutes(r *gin.Engine, files FileLocator) {
	r.GET("/files/:file_id", func(c *gin.Context) {
		path, err := files.Locate(c.Param("file_id"))
		if err != nil {
			c.JSON(errFileNotFound.HTTPStatus, errFileNotFound.ToHTTPError())
			return
		}
		c.File(path)
	})
}
