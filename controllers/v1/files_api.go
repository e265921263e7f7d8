package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"staffhub-backend/controllers"
	filestorage "staffhub-backend/lib/file-storage"
	"staffhub-backend/middleware"
	apimodels "staffhub-backend/models/api"
)

type filesApiController struct {
	controllers.BaseAPIController
}

func InitFilesApiRouters(app *fiber.App) {
	controller := filesApiController{}
	app.Route("files", func(router fiber.Router) {
		router.Post("upload", controller.upload)
		router.Get(":id", controller.download)
		router.Delete(":id", controller.delete)
	})
}

type uploadResponse struct {
	FileID string `json:"file_id"`
}

// @Summary Upload file
// @Tags Files
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file 	true 	"file content"
// @Success 200 {object} apimodels.Response{data=uploadResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/upload [post]
func (c *filesApiController) upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to open uploaded file")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read uploaded file")
	}

	actorID := middleware.GetUserID(ctx)
	contentType := file.Header.Get(fiber.HeaderContentType)
	fileID, err := filestorage.Instance.Upload(ctx.UserContext(), actorID, file.Filename, contentType, fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to store uploaded file")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(uploadResponse{FileID: fileID}))
}

// @Summary Download file
// @Tags Files
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/{id} [get]
func (c *filesApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	meta, content, err := filestorage.Instance.Get(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load file")
	}
	if meta.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, meta.ContentType)
		ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+meta.FileName+`"`)
	}
	return ctx.Send(content)
}

// @Summary Delete file
// @Tags Files
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/{id} [delete]
func (c *filesApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = filestorage.Instance.Delete(ctx.UserContext(), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete file")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
