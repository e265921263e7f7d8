package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"staffhub-backend/controllers"
	updatehandler "staffhub-backend/lib/update"
	"staffhub-backend/middleware"
	apimodels "staffhub-backend/models/api"
	updateapimodels "staffhub-backend/models/api/update"
)

type updateApiController struct {
	controllers.BaseAPIController
}

func InitUpdateApiRouters(app *fiber.App) {
	controller := updateApiController{}
	app.Route("updates", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Post("attachments", controller.addAttachment)
			idRoute.Put("like", controller.like)
			idRoute.Put("acknowledge", controller.acknowledge)
			idRoute.Post("comments", controller.comment)
		})
	})
}

// @Summary Publish company update
// @Tags Updates
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 updateapimodels.UpdateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=updateapimodels.UpdateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/updates [post]
func (c *updateApiController) create(ctx *fiber.Ctx) error {
	var payload updateapimodels.UpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	view, err := updatehandler.Instance.Create(actorID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create update")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List company updates
// @Tags Updates
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 updateapimodels.UpdateFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]updateapimodels.UpdateView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/updates/list [post]
func (c *updateApiController) list(ctx *fiber.Ctx) error {
	var filter updateapimodels.UpdateFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	list, err := updatehandler.Instance.List(actorID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list updates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get company update
// @Tags Updates
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=updateapimodels.UpdateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/updates/{id} [get]
func (c *updateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	view, err := updatehandler.Instance.GetByID(actorID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load update")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Edit company update
// @Tags Updates
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 updateapimodels.UpdateData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/updates/{id} [put]
func (c *updateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload updateapimodels.UpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = updatehandler.Instance.Update(actorID, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update update post")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete company update
// @Tags Updates
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/updates/{id} [delete]
func (c *updateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = updatehandler.Instance.Delete(actorID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete update")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Attach file to company update
// @Tags Updates
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.AttachmentRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/updates/{id}/attachments [post]
func (c *updateApiController) addAttachment(ctx *fiber.Ctx) error {
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
	if err = updatehandler.Instance.AddAttachment(actorID, id, payload.FileID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to attach file to update")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Like or unlike company update
// @Tags Updates
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 updateapimodels.LikeRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/updates/{id}/like [put]
func (c *updateApiController) like(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload updateapimodels.LikeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if payload.Liked {
		err = updatehandler.Instance.Like(actorID, id)
	} else {
		err = updatehandler.Instance.Unlike(actorID, id)
	}
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to set like on update")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Acknowledge company update
// @Tags Updates
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/updates/{id}/acknowledge [put]
func (c *updateApiController) acknowledge(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = updatehandler.Instance.Acknowledge(actorID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to acknowledge update")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Comment on company update
// @Tags Updates
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 updateapimodels.CommentData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/updates/{id}/comments [post]
func (c *updateApiController) comment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload updateapimodels.CommentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = updatehandler.Instance.Comment(actorID, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to comment on update")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
