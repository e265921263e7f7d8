package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"staffhub-backend/controllers"
	authhandler "staffhub-backend/lib/auth"
	usershandler "staffhub-backend/lib/users"
	authutils "staffhub-backend/lib/utils/auth-utils"
	"staffhub-backend/middleware"
	apimodels "staffhub-backend/models/api"
	authapimodels "staffhub-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("login", controller.login)
		authed := router.Group("", middleware.AuthorizationRequired(), middleware.RevocationCheck())
		authed.Post("logout", controller.logout)
		authed.Get("me", controller.me)
	})
}

// @Summary Register an account
// @Tags Auth
// @Description The first registered account becomes the organization owner
// @Param	body body	 authapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := authhandler.Instance.Register(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "registration failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Log in
// @Tags Auth
// @Param	body body	 authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tokens, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "login failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tokens))
}

// @Summary Log out
// @Tags Auth
// @Description Revokes the presented token for its remaining lifetime
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/logout [post]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	jti, ttl := authutils.GetTokenID(ctx)
	if err := authhandler.Instance.Logout(ctx.Context(), jti, ttl); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "logout failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Current account
// @Tags Auth
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	view, err := usershandler.Instance.GetProfile(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load account")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
