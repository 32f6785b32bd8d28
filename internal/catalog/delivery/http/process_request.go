package http

import (
	"github.com/gin-gonic/gin"

	"insighthub/internal/model"
	pkgErrors "insighthub/pkg/errors"
)

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	if req.Sort == "" {
		req.sort = h.defaultSort
		return req, nil
	}
	sort, err := model.ParseSortOption(req.Sort)
	if err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	req.sort = sort
	return req, nil
}
