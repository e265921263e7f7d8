package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"staffhub-backend/controllers"
	availabilityhandler "staffhub-backend/lib/availability"
	shifthandler "staffhub-backend/lib/shift"
	"staffhub-backend/middleware"
	apimodels "staffhub-backend/models/api"
	shiftapimodels "staffhub-backend/models/api/shift"
)

type shiftApiController struct {
	controllers.BaseAPIController
}

func InitShiftApiRouters(app *fiber.App) {
	controller := shiftApiController{}
	app.Route("shifts", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Post("assign", controller.assign)
			idRoute.Delete("assign", controller.unassign)
			idRoute.Post("duplicate", controller.duplicate)
			idRoute.Post("attachments", controller.addAttachment)
		})
	})
	app.Route("shift_assignments", func(router fiber.Router) {
		router.Post("list", controller.listAssignments)
		router.Put(":id/confirm", controller.confirmAssignment)
	})
	app.Route("user_availability", func(router fiber.Router) {
		router.Post("list", controller.listAvailability)
		router.Post("", controller.createAvailability)
		router.Put(":id", controller.updateAvailability)
		router.Delete(":id", controller.deleteAvailability)
	})
}

// @Summary Create shift
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.ShiftData	true	"request body"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.ShiftView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts [post]
func (c *shiftApiController) create(ctx *fiber.Ctx) error {
	var payload shiftapimodels.ShiftData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	view, err := shifthandler.Instance.Create(actorID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create shift")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List shifts
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.ShiftFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]shiftapimodels.ShiftView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/list [post]
func (c *shiftApiController) list(ctx *fiber.Ctx) error {
	var filter shiftapimodels.ShiftFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)
	list, rowCount, err := shifthandler.Instance.List(actorID, actorRole, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list shifts")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get shift
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.ShiftView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/{id} [get]
func (c *shiftApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := shifthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load shift")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update shift
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.ShiftData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/{id} [put]
func (c *shiftApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload shiftapimodels.ShiftData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = shifthandler.Instance.Update(actorID, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update shift")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete shift
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/{id} [delete]
func (c *shiftApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = shifthandler.Instance.Delete(actorID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete shift")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Assign user to shift
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.AssignRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.AssignmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/{id}/assign [post]
func (c *shiftApiController) assign(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload shiftapimodels.AssignRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	view, err := shifthandler.Instance.Assign(actorID, id, payload.UserID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to assign user to shift")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Remove user from shift
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.AssignRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/{id}/assign [delete]
func (c *shiftApiController) unassign(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload shiftapimodels.AssignRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = shifthandler.Instance.Unassign(actorID, id, payload.UserID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to remove user from shift")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Duplicate shift
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.ShiftView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/{id}/duplicate [post]
func (c *shiftApiController) duplicate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	view, err := shifthandler.Instance.Duplicate(ctx.UserContext(), actorID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to duplicate shift")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Attach file to shift
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.AttachmentRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/{id}/attachments [post]
func (c *shiftApiController) addAttachment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload apimodels.AttachmentRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = shifthandler.Instance.AddAttachment(actorID, id, payload.FileID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to attach file to shift")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List shift assignments
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.AssignmentFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]shiftapimodels.AssignmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift_assignments/list [post]
func (c *shiftApiController) listAssignments(ctx *fiber.Ctx) error {
	var filter shiftapimodels.AssignmentFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)
	list, err := shifthandler.Instance.ListAssignments(actorID, actorRole, filter.ShiftID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list shift assignments")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Confirm shift assignment
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift_assignments/{id}/confirm [put]
func (c *shiftApiController) confirmAssignment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = shifthandler.Instance.ConfirmAssignment(actorID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to confirm shift assignment")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List availability slots
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.AvailabilityFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]shiftapimodels.AvailabilityView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user_availability/list [post]
func (c *shiftApiController) listAvailability(ctx *fiber.Ctx) error {
	var filter shiftapimodels.AvailabilityFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)
	userID := filter.UserID
	if userID == "" {
		userID = actorID
	}
	list, err := availabilityhandler.Instance.ListByUser(actorID, actorRole, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list availability")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create availability slot
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.AvailabilityData	true	"request body"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.AvailabilityView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user_availability [post]
func (c *shiftApiController) createAvailability(ctx *fiber.Ctx) error {
	var payload shiftapimodels.AvailabilityData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	view, err := availabilityhandler.Instance.Create(actorID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create availability slot")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update availability slot
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.AvailabilityData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user_availability/{id} [put]
func (c *shiftApiController) updateAvailability(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload shiftapimodels.AvailabilityData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = availabilityhandler.Instance.Update(actorID, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update availability slot")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete availability slot
// @Tags Scheduling
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user_availability/{id} [delete]
func (c *shiftApiController) deleteAvailability(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = availabilityhandler.Instance.Delete(actorID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete availability slot")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
