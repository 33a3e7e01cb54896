package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TestDatabase reports backend and database reachability. All failures
// are described inside the payload, so the status is always 200.
func (h *Handler) TestDatabase(c *gin.Context) {
	report := h.diagnostics.Report(c.Request.Context())
	c.JSON(http.StatusOK, report)
}
