package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"staffhub-backend/controllers"
	schedulehandler "staffhub-backend/lib/schedule"
	"staffhub-backend/middleware"
	apimodels "staffhub-backend/models/api"
	shiftapimodels "staffhub-backend/models/api/shift"
)

type scheduleApiController struct {
	controllers.BaseAPIController
}

func InitScheduleApiRouters(app *fiber.App) {
	controller := scheduleApiController{}
	app.Route("schedules", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
	app.Route("shift_templates", func(router fiber.Router) {
		router.Post("list", controller.listTemplates)
		router.Post("", controller.createTemplate)
		router.Put(":id", controller.updateTemplate)
		router.Delete(":id", controller.deleteTemplate)
	})
}

// @Summary Create schedule
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.ScheduleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.ScheduleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/schedules [post]
func (c *scheduleApiController) create(ctx *fiber.Ctx) error {
	var payload shiftapimodels.ScheduleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	view, err := schedulehandler.Instance.Create(actorID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create schedule")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List schedules
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]shiftapimodels.ScheduleView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/schedules/list [post]
func (c *scheduleApiController) list(ctx *fiber.Ctx) error {
	list, err := schedulehandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list schedules")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get schedule
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.ScheduleView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/schedules/{id} [get]
func (c *scheduleApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := schedulehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load schedule")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update schedule
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.ScheduleData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/schedules/{id} [put]
func (c *scheduleApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload shiftapimodels.ScheduleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = schedulehandler.Instance.Update(actorID, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update schedule")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete schedule
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/schedules/{id} [delete]
func (c *scheduleApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = schedulehandler.Instance.Delete(actorID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete schedule")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Create shift template
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.TemplateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift_templates [post]
func (c *scheduleApiController) createTemplate(ctx *fiber.Ctx) error {
	var payload shiftapimodels.TemplateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	view, err := schedulehandler.Instance.CreateTemplate(actorID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create shift template")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List shift templates
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]shiftapimodels.TemplateView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift_templates/list [post]
func (c *scheduleApiController) listTemplates(ctx *fiber.Ctx) error {
	list, err := schedulehandler.Instance.ListTemplates()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list shift templates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Update shift template
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.TemplateData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift_templates/{id} [put]
func (c *scheduleApiController) updateTemplate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload shiftapimodels.TemplateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = schedulehandler.Instance.UpdateTemplate(actorID, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update shift template")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete shift template
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift_templates/{id} [delete]
func (c *scheduleApiController) deleteTemplate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = schedulehandler.Instance.DeleteTemplate(actorID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete shift template")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
