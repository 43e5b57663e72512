package controller

import (
	"noteverse-be/internal/dto"
	"noteverse-be/internal/pkg/apperr"
	"noteverse-be/internal/pkg/serverutils"
	"noteverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICommentController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type commentController struct {
	commentService service.ICommentService
}

func NewCommentController(commentService service.ICommentService) ICommentController {
	return &commentController{
		commentService: commentService,
	}
}

func (c *commentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/comments")
	h.Get("", c.List)
	h.Post("", serverutils.JwtMiddleware, c.Create)
}

func (c *commentController) List(ctx *fiber.Ctx) error {
	noteId, err := uuid.Parse(ctx.Query("noteId"))
	if err != nil {
		return apperr.NewValidation("noteId query parameter is required")
	}

	res, err := c.commentService.List(ctx.Context(), noteId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch comments", res))
}

func (c *commentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.NewValidation("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.commentService.Create(ctx.Context(), serverutils.CallerExternalId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create comment", res))
}
