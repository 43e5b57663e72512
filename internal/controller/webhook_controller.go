package controller

import (
	"noteverse-be/internal/pkg/serverutils"
	"noteverse-be/internal/pkg/webhook"
	"noteverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	HandleIdentityEvent(ctx *fiber.Ctx) error
}

type webhookController struct {
	webhookService service.IWebhookService
}

func NewWebhookController(webhookService service.IWebhookService) IWebhookController {
	return &webhookController{
		webhookService: webhookService,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	// Authenticated by signature, not by session token.
	r.Post("/webhooks", c.HandleIdentityEvent)
}

func (c *webhookController) HandleIdentityEvent(ctx *fiber.Ctx) error {
	err := c.webhookService.HandleIdentityEvent(
		ctx.Context(),
		ctx.Body(),
		ctx.Get(webhook.HeaderId),
		ctx.Get(webhook.HeaderTimestamp),
		ctx.Get(webhook.HeaderSignature),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Webhook processed", nil))
}
