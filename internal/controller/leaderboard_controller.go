package controller

import (
	"noteverse-be/internal/pkg/serverutils"
	"noteverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILeaderboardController interface {
	RegisterRoutes(r fiber.Router)
	Top(ctx *fiber.Ctx) error
}

type leaderboardController struct {
	leaderboardService service.ILeaderboardService
}

func NewLeaderboardController(leaderboardService service.ILeaderboardService) ILeaderboardController {
	return &leaderboardController{
		leaderboardService: leaderboardService,
	}
}

func (c *leaderboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/leaderboard", c.Top)
}

func (c *leaderboardController) Top(ctx *fiber.Ctx) error {
	res, err := c.leaderboardService.Top(ctx.Context(), ctx.Query("type"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch leaderboard", res))
}
