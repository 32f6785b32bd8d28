package http

import (
	"github.com/gin-gonic/gin"

	"insighthub/internal/model"
	"insighthub/pkg/response"
)

// Get godoc
// @Summary     Get sync settings
// @Description Returns the remote sync target. The token is masked.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} settingsResp
// @Router      /api/v1/settings [GET]
func (h *handler) Get(c *gin.Context) {
	response.OK(c, h.newSettingsResp(h.uc.Get(c.Request.Context())))
}

// Save godoc
// @Summary     Save sync settings
// @Description Stores owner, repo, branch and token. Branch defaults to main.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body saveReq true "Sync settings"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "A token is stored and the request did not present it"
// @Security    BearerAuth
// @Router      /api/v1/settings [PUT]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	cfg, err := h.uc.Save(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Save: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSettingsResp(cfg))
}

// Clear godoc
// @Summary     Log out
// @Description Forgets the stored token. Writes are rejected afterwards.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} settingsResp
// @Failure     403 {object} response.Resp "A token is stored and the request did not present it"
// @Security    BearerAuth
// @Router      /api/v1/settings [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSettingsResp(model.SyncConfig{}))
}
