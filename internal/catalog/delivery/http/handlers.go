package http

import (
	"github.com/gin-gonic/gin"

	"insighthub/pkg/response"
)

// List godoc
// @Summary     List the catalog
// @Description Returns the filtered, sorted view of the catalog. The stored catalog is never modified.
// @Tags        Catalog
// @Produce     json
// @Param       search    query string false "Case-insensitive substring on category, subcategory and entry titles"
// @Param       sort      query string false "alpha-asc (default), alpha-desc or newest"
// @Param       highlight query bool   false "Include matched title segments"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/catalog [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	snap := h.uc.Snapshot(ctx)
	view := h.projector.Project(snap.Revision, snap.Catalog, req.Search, req.sort)

	response.OK(c, h.newListResp(view, snap.Revision, req))
}

// Detail godoc
// @Summary     Get entry detail
// @Description Returns one entry with its parent titles and its content rendered as HTML.
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Entry ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/entries/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	ref, err := h.uc.FindEntry(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.FindEntry: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(ref))
}
