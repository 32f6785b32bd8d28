package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateReq(c *gin.Context) (saveReq, error) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the body and takes the editing id from the URI.
func (h *handler) processUpdateReq(c *gin.Context) (saveReq, error) {
	req, err := h.processCreateReq(c)
	if err != nil {
		return req, err
	}
	req.editingID = c.Param("id")
	return req, nil
}
