package controller

import (
	"noteverse-be/internal/dto"
	"noteverse-be/internal/pkg/apperr"
	"noteverse-be/internal/pkg/serverutils"
	"noteverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBookmarkController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type bookmarkController struct {
	bookmarkService service.IBookmarkService
}

func NewBookmarkController(bookmarkService service.IBookmarkService) IBookmarkController {
	return &bookmarkController{
		bookmarkService: bookmarkService,
	}
}

func (c *bookmarkController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bookmark")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get("/status", c.Status)
	h.Post("", c.Add)
	h.Delete("", c.Remove)
}

// List returns the caller's bookmarks. With a noteId query parameter it
// answers the bookmark status of that note instead, which is how the frontend
// checks a single note.
func (c *bookmarkController) List(ctx *fiber.Ctx) error {
	if ctx.Query("noteId") != "" {
		return c.Status(ctx)
	}

	res, err := c.bookmarkService.List(ctx.Context(), serverutils.CallerExternalId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch bookmarks", res))
}

func (c *bookmarkController) Add(ctx *fiber.Ctx) error {
	var req dto.AddBookmarkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.NewValidation("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.bookmarkService.Add(ctx.Context(), serverutils.CallerExternalId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add bookmark", res))
}

func (c *bookmarkController) Remove(ctx *fiber.Ctx) error {
	var req dto.RemoveBookmarkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.NewValidation("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.bookmarkService.Remove(ctx.Context(), serverutils.CallerExternalId(ctx), req.NoteId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove bookmark", nil))
}

func (c *bookmarkController) Status(ctx *fiber.Ctx) error {
	noteId, err := uuid.Parse(ctx.Query("noteId"))
	if err != nil {
		return apperr.NewValidation("noteId query parameter is required")
	}

	res, err := c.bookmarkService.Status(ctx.Context(), serverutils.CallerExternalId(ctx), noteId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch bookmark status", res))
}
