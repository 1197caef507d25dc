package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IndexController serves the API root: a link list of the public collections.
type IndexController struct{}

// NewIndexController creates a new IndexController.
func NewIndexController() *IndexController {
	return &IndexController{}
}

// Index lists the public collection URLs relative to the request host.
func (c *IndexController) Index(ctx *gin.Context) {
	base := "/api"
	ctx.JSON(http.StatusOK, gin.H{
		"months":     base + "/months/",
		"heroes":     base + "/heroes/",
		"mentors":    base + "/mentors/",
		"directions": base + "/directions/",
		"news":       base + "/news/",
	})
}
