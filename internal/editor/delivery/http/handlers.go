package http

import (
	"github.com/gin-gonic/gin"

	"insighthub/pkg/response"
)

// Create godoc
// @Summary     Create an entry
// @Description Adds an entry, creating its category and subcategory on demand, then pushes the catalog remotely.
// @Description A failed push still returns 200 with synced=false and a warning.
// @Tags        Entries
// @Accept      json
// @Produce     json
// @Param       body body saveReq true "Entry form"
// @Success     200 {object} saveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Guest mode, or missing or wrong owner token"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Security    BearerAuth
// @Router      /api/v1/entries [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Save(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Save: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSaveResp(output))
}

// Update godoc
// @Summary     Update an entry
// @Description Replaces the entry in one atomic step. Changing category or subcategory moves it.
// @Tags        Entries
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Entry ID"
// @Param       body body saveReq true "Entry form"
// @Success     200 {object} saveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Guest mode, or missing or wrong owner token"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/entries/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Save(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Save: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSaveResp(output))
}

// Delete godoc
// @Summary     Delete an entry
// @Description Removes the entry and prunes empty containers. Unknown ids succeed with removed=false.
// @Tags        Entries
// @Produce     json
// @Param       id path string true "Entry ID"
// @Success     200 {object} deleteResp
// @Failure     403 {object} response.Resp "Guest mode, or missing or wrong owner token"
// @Security    BearerAuth
// @Router      /api/v1/entries/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Delete(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDeleteResp(output))
}

// Form godoc
// @Summary     Get the edit form
// @Description Returns the prefilled form values of an entry, parents included.
// @Tags        Entries
// @Produce     json
// @Param       id path string true "Entry ID"
// @Success     200 {object} formResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     403 {object} response.Resp "Guest mode, or missing or wrong owner token"
// @Security    BearerAuth
// @Router      /api/v1/entries/{id}/form [GET]
func (h *handler) Form(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.uc.Form(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFormResp(input))
}
