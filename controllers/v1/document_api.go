package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"staffhub-backend/controllers"
	documenthandler "staffhub-backend/lib/document"
	"staffhub-backend/middleware"
	apimodels "staffhub-backend/models/api"
	docapimodels "staffhub-backend/models/api/document"
)

type documentApiController struct {
	controllers.BaseAPIController
}

func InitDocumentApiRouters(app *fiber.App) {
	controller := documentApiController{}
	app.Route("documents", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Post("check-expiry", controller.checkExpiry)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("submit", controller.submit)
			idRoute.Put("approve", controller.approve)
			idRoute.Put("reject", controller.reject)
		})
	})
}

// @Summary Create document
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 docapimodels.DocumentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=docapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents [post]
func (c *documentApiController) create(ctx *fiber.Ctx) error {
	var payload docapimodels.DocumentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)
	view, err := documenthandler.Instance.Create(actorID, actorRole, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List documents
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 docapimodels.DocumentFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]docapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/list [post]
func (c *documentApiController) list(ctx *fiber.Ctx) error {
	var filter docapimodels.DocumentFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)
	list, rowCount, err := documenthandler.Instance.List(actorID, actorRole, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list documents")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get document
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=docapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id} [get]
func (c *documentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)
	view, err := documenthandler.Instance.GetByID(actorID, actorRole, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update document
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 docapimodels.DocumentData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id} [put]
func (c *documentApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload docapimodels.DocumentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)
	if err = documenthandler.Instance.Update(actorID, actorRole, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete document
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id} [delete]
func (c *documentApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)
	if err = documenthandler.Instance.Delete(actorID, actorRole, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Submit document for review
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id}/submit [put]
func (c *documentApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)
	if err = documenthandler.Instance.Submit(actorID, actorRole, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Approve document
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id}/approve [put]
func (c *documentApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = documenthandler.Instance.Approve(actorID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to approve document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reject document
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 docapimodels.RejectRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id}/reject [put]
func (c *documentApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload docapimodels.RejectRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = documenthandler.Instance.Reject(actorID, id, payload.Reason); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reject document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Run document expiry sweep
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 docapimodels.CheckExpiryRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=docapimodels.CheckExpiryResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/check-expiry [post]
func (c *documentApiController) checkExpiry(ctx *fiber.Ctx) error {
	var payload docapimodels.CheckExpiryRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	result, err := documenthandler.Instance.CheckExpiry(actorID, payload.ThresholdDays)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to run document expiry sweep")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
