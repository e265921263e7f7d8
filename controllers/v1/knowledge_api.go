package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"staffhub-backend/controllers"
	knowledgehandler "staffhub-backend/lib/knowledge"
	"staffhub-backend/middleware"
	apimodels "staffhub-backend/models/api"
	knowledgeapimodels "staffhub-backend/models/api/knowledge"
)

type knowledgeApiController struct {
	controllers.BaseAPIController
}

func InitKnowledgeApiRouters(app *fiber.App) {
	controller := knowledgeApiController{}
	app.Route("knowledge", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Post("attachments", controller.addAttachment)
		})
	})
}

// @Summary Create knowledge base article
// @Tags Knowledge
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 knowledgeapimodels.ArticleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=knowledgeapimodels.ArticleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/knowledge [post]
func (c *knowledgeApiController) create(ctx *fiber.Ctx) error {
	var payload knowledgeapimodels.ArticleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	view, err := knowledgehandler.Instance.Create(actorID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create article")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List knowledge base articles
// @Tags Knowledge
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 knowledgeapimodels.ArticleFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]knowledgeapimodels.ArticleView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/knowledge/list [post]
func (c *knowledgeApiController) list(ctx *fiber.Ctx) error {
	var filter knowledgeapimodels.ArticleFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	list, err := knowledgehandler.Instance.List(actorID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list articles")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get knowledge base article
// @Tags Knowledge
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=knowledgeapimodels.ArticleView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/knowledge/{id} [get]
func (c *knowledgeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	view, err := knowledgehandler.Instance.GetByID(actorID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load article")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update knowledge base article
// @Tags Knowledge
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 knowledgeapimodels.ArticleData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/knowledge/{id} [put]
func (c *knowledgeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload knowledgeapimodels.ArticleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = knowledgehandler.Instance.Update(actorID, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update article")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete knowledge base article
// @Tags Knowledge
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/knowledge/{id} [delete]
func (c *knowledgeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	if err = knowledgehandler.Instance.Delete(actorID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete article")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Attach file to knowledge base article
// @Tags Knowledge
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.AttachmentRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/knowledge/{id}/attachments [post]
func (c *knowledgeApiController) addAttachment(ctx *fiber.Ctx) error {
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
	if err = knowledgehandler.Instance.AddAttachment(actorID, id, payload.FileID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to attach file to article")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
