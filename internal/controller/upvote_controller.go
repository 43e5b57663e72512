package controller

import (
	"noteverse-be/internal/dto"
	"noteverse-be/internal/pkg/apperr"
	"noteverse-be/internal/pkg/serverutils"
	"noteverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUpvoteController interface {
	RegisterRoutes(r fiber.Router)
	Toggle(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type upvoteController struct {
	upvoteService service.IUpvoteService
}

func NewUpvoteController(upvoteService service.IUpvoteService) IUpvoteController {
	return &upvoteController{
		upvoteService: upvoteService,
	}
}

func (c *upvoteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/upvote")
	h.Post("", serverutils.JwtMiddleware, c.Toggle)
	h.Get("/status", serverutils.OptionalJwtMiddleware, c.Status)
}

func (c *upvoteController) Toggle(ctx *fiber.Ctx) error {
	var req dto.ToggleUpvoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.NewValidation("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.upvoteService.Toggle(ctx.Context(), serverutils.CallerExternalId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success toggle upvote", res))
}

func (c *upvoteController) Status(ctx *fiber.Ctx) error {
	noteId, err := uuid.Parse(ctx.Query("noteId"))
	if err != nil {
		return apperr.NewValidation("noteId query parameter is required")
	}

	res, err := c.upvoteService.Status(ctx.Context(), serverutils.CallerExternalId(ctx), noteId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch upvote status", res))
}
