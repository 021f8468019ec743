package http

import "github.com/gin-gonic/gin"

// Register attaches the public recruit routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.submit)
	rg.GET("/options", h.options)
}

// RegisterAdmin attaches the read-only admin routes.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/applications", h.list)
	rg.GET("/applications/:email", h.getByEmail)
}
