package handler

import (
	"os"

	"noteverse-be/internal/pkg/apperr"
	"noteverse-be/internal/pkg/logger"
	"noteverse-be/internal/pkg/serverutils"
	"noteverse-be/internal/service"
	internalWS "noteverse-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NotificationHandler exposes the persisted notification feed plus the
// websocket stream for live delivery.
type NotificationHandler struct {
	notificationService service.INotificationService
	userService         service.IUserService
	hub                 *internalWS.Hub
	logger              logger.ILogger
}

func NewNotificationHandler(
	notificationService service.INotificationService,
	userService service.IUserService,
	hub *internalWS.Hub,
	log logger.ILogger,
) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		userService:         userService,
		hub:                 hub,
		logger:              log,
	}
}

func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notif := router.Group("/notifications")
	notif.Get("/ws", h.ServeWs)
	notif.Use(serverutils.JwtMiddleware)
	notif.Get("/", h.List)
	notif.Put("/:id/read", h.MarkRead)
}

func (h *NotificationHandler) List(ctx *fiber.Ctx) error {
	res, err := h.notificationService.List(ctx.Context(), serverutils.CallerExternalId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch notifications", res))
}

func (h *NotificationHandler) MarkRead(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.NewValidation("invalid id")
	}

	if err := h.notificationService.MarkRead(ctx.Context(), serverutils.CallerExternalId(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Notification marked as read", nil))
}

// ServeWs upgrades to a websocket after authenticating the handshake.
// Browsers cannot set headers on websocket requests, so the token also rides
// a query parameter.
func (h *NotificationHandler) ServeWs(ctx *fiber.Ctx) error {
	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return apperr.NewAuth("missing token")
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return apperr.NewAuth("invalid token")
	}

	externalId, err := token.Claims.GetSubject()
	if err != nil || externalId == "" {
		return apperr.NewAuth("token missing subject")
	}

	user, err := h.userService.GetByExternalId(ctx.Context(), externalId)
	if err != nil {
		return apperr.NewAuth("unknown user")
	}
	userId := user.Id

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("NotificationHandler", "websocket session started", map[string]interface{}{"user_id": userId})
			internalWS.ServeWs(h.hub, conn, userId)
			h.logger.Info("NotificationHandler", "websocket session ended", map[string]interface{}{"user_id": userId})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
