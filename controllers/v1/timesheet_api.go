package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"staffhub-backend/controllers"
	timesheethandler "staffhub-backend/lib/timesheet"
	"staffhub-backend/middleware"
	apimodels "staffhub-backend/models/api"
	timesheetapimodels "staffhub-backend/models/api/timesheet"
)

type timesheetApiController struct {
	controllers.BaseAPIController
}

func InitTimesheetApiRouters(app *fiber.App) {
	controller := timesheetApiController{}
	app.Route("timesheets", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("generate", controller.generate)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("submit", controller.submit)
			idRoute.Put("approve", controller.approve)
			idRoute.Put("reject", controller.reject)
			idRoute.Post("export", controller.export)
		})
	})
}

// @Summary Generate timesheet for a pay period
// @Tags Timesheets
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.GenerateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.TimesheetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/generate [post]
func (c *timesheetApiController) generate(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.GenerateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)
	view, err := timesheethandler.Instance.Generate(actorID, actorRole, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to generate timesheet")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List timesheets
// @Tags Timesheets
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.TimesheetFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]timesheetapimodels.TimesheetView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/list [post]
func (c *timesheetApiController) list(ctx *fiber.Ctx) error {
	var filter timesheetapimodels.TimesheetFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)
	list, rowCount, err := timesheethandler.Instance.List(actorID, actorRole, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list timesheets")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get timesheet
// @Tags Timesheets
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.TimesheetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/{id} [get]
func (c *timesheetApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)
	view, err := timesheethandler.Instance.GetByID(actorID, actorRole, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load timesheet")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Submit timesheet for approval
// @Tags Timesheets
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/{id}/submit [put]
func (c *timesheetApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = timesheethandler.Instance.Submit(actorID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit timesheet")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Approve timesheet
// @Tags Timesheets
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/{id}/approve [put]
func (c *timesheetApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = timesheethandler.Instance.Approve(actorID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to approve timesheet")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reject timesheet
// @Tags Timesheets
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.RejectRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/{id}/reject [put]
func (c *timesheetApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timesheetapimodels.RejectRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = timesheethandler.Instance.Reject(actorID, id, payload.Reason); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reject timesheet")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Export timesheet to a file
// @Tags Timesheets
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.ExportRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.TimesheetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/{id}/export [post]
func (c *timesheetApiController) export(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timesheetapimodels.ExportRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	view, err := timesheethandler.Instance.Export(ctx.UserContext(), actorID, id, payload.Format)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export timesheet")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
