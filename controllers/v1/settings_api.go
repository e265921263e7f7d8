package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"staffhub-backend/controllers"
	audithandler "staffhub-backend/lib/audit"
	settingshandler "staffhub-backend/lib/settings"
	apimodels "staffhub-backend/models/api"
	auditapimodels "staffhub-backend/models/api/audit"
	settingsapimodels "staffhub-backend/models/api/settings"
)

type settingsApiController struct {
	controllers.BaseAPIController
}

func InitSettingsApiRouters(app *fiber.App) {
	controller := settingsApiController{}
	app.Route("settings", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Put("", controller.set)
	})
	app.Post("audit_logs/list", controller.listAuditLogs)
}

// @Summary List organization settings
// @Tags Settings
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]settingsapimodels.SettingView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings [get]
func (c *settingsApiController) list(ctx *fiber.Ctx) error {
	list, err := settingshandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list settings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Set organization setting
// @Tags Settings
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 settingsapimodels.SettingData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings [put]
func (c *settingsApiController) set(ctx *fiber.Ctx) error {
	var payload settingsapimodels.SettingData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := settingshandler.Instance.Set(payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to set setting")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List audit log records
// @Tags Settings
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 auditapimodels.AuditLogFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]auditapimodels.AuditLogView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/audit_logs/list [post]
func (c *settingsApiController) listAuditLogs(ctx *fiber.Ctx) error {
	var filter auditapimodels.AuditLogFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := audithandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list audit logs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
