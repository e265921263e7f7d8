package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"

	"staffhub-backend/controllers"
	settingshandler "staffhub-backend/lib/settings"
	timeentryhandler "staffhub-backend/lib/timeentry"
	"staffhub-backend/middleware"
	apimodels "staffhub-backend/models/api"
	timeapimodels "staffhub-backend/models/api/timeentry"
)

type timeApiController struct {
	controllers.BaseAPIController
}

func InitTimeApiRouters(app *fiber.App) {
	controller := timeApiController{}
	app.Route("time", func(router fiber.Router) {
		router.Post("clock-in", controller.clockIn)
		router.Post("clock-out", controller.clockOut)
		router.Get("active", controller.active)
		router.Post("auto-clock-out", controller.autoClockOut)
		router.Get("kiosk-qr", controller.kioskQR)
		router.Route("entries", func(entries fiber.Router) {
			entries.Post("list", controller.list)
			entries.Route(":id", func(idRoute fiber.Router) {
				idRoute.Get("", controller.get)
				idRoute.Patch("", controller.edit)
				idRoute.Delete("", controller.delete)
				idRoute.Post("approve", controller.approve)
				idRoute.Post("reject", controller.reject)
			})
		})
	})
}

// @Summary Clock in
// @Tags Time tracking
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timeapimodels.ClockInRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=timeapimodels.TimeEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time/clock-in [post]
func (c *timeApiController) clockIn(ctx *fiber.Ctx) error {
	var payload timeapimodels.ClockInRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	view, err := timeentryhandler.Instance.ClockIn(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "clock-in failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Clock out
// @Tags Time tracking
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timeapimodels.ClockOutRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=timeapimodels.TimeEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time/clock-out [post]
func (c *timeApiController) clockOut(ctx *fiber.Ctx) error {
	var payload timeapimodels.ClockOutRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	view, err := timeentryhandler.Instance.ClockOut(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "clock-out failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Active time entry
// @Tags Time tracking
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=timeapimodels.TimeEntryView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time/active [get]
func (c *timeApiController) active(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	view, err := timeentryhandler.Instance.GetActive(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load active entry")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List time entries
// @Tags Time tracking
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timeapimodels.EntryFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]timeapimodels.TimeEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time/entries/list [post]
func (c *timeApiController) list(ctx *fiber.Ctx) error {
	var payload timeapimodels.EntryFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	list, rowCount, err := timeentryhandler.Instance.List(userID, role, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list time entries")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get time entry
// @Tags Time tracking
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=timeapimodels.TimeEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time/entries/{id} [get]
func (c *timeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	view, err := timeentryhandler.Instance.GetByID(userID, role, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load time entry")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Edit time entry
// @Tags Time tracking
// @Description Admin-level callers edit any field; staff edits of own times go through approval
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timeapimodels.EntryPatch	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=timeapimodels.TimeEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time/entries/{id} [patch]
func (c *timeApiController) edit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timeapimodels.EntryPatch
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	view, err := timeentryhandler.Instance.Edit(userID, role, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to edit time entry")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Delete time entry
// @Tags Time tracking
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time/entries/{id} [delete]
func (c *timeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err = timeentryhandler.Instance.Delete(userID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete time entry")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Approve time entry edit
// @Tags Time tracking
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time/entries/{id}/approve [post]
func (c *timeApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err = timeentryhandler.Instance.Approve(userID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to approve time entry edit")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reject time entry edit
// @Tags Time tracking
// @Description Reverts the entry times to their pre-edit snapshot
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timeapimodels.RejectRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time/entries/{id}/reject [post]
func (c *timeApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timeapimodels.RejectRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err = timeentryhandler.Instance.Reject(userID, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reject time entry edit")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Auto clock-out sweep
// @Tags Time tracking
// @Description Force-closes entries left active beyond the configured shift maximum
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=timeapimodels.AutoClockOutResponse}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time/auto-clock-out [post]
func (c *timeApiController) autoClockOut(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	result, err := timeentryhandler.Instance.AutoClockOut(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "auto-clock-out sweep failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Kiosk clock-in QR code
// @Tags Time tracking
// @Description PNG QR code pointing at the kiosk clock-in page
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {string} binary "image/png"
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time/kiosk-qr [get]
func (c *timeApiController) kioskQR(ctx *fiber.Ctx) error {
	target := fmt.Sprintf("%s/kiosk/clock-in", settingshandler.Instance.KioskBaseURL())
	png, err := qrcode.Encode(target, qrcode.Medium, 512)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "QR code rendering failed")
	}
	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Status(fiber.StatusOK).Send(png)
}
