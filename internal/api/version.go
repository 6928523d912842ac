package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kawertyff-source/Simungboxing-128/internal/protocol"
	"github.com/kawertyff-source/Simungboxing-128/internal/version"
)

// Version returns build and VCS metadata plus the fight protocol revision.
func Version(c *gin.Context) {
	info := version.Get()
	c.JSON(http.StatusOK, gin.H{
		"version":  info.Version,
		"commit":   info.Commit,
		"date":     info.Date,
		"dirty":    info.Dirty,
		"protocol": protocol.Version,
	})
}
