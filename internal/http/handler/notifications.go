package handler

import (
	"fmt"
	"net/http"

	"buildunion/internal/auth"

	"github.com/labstack/echo/v4"
)

const (
	contentTypeEventStream = "text/event-stream"
	sseDataFmt             = "data: %s\n\n"
)

type NotificationHandler struct {
	subscriber NotificationSubscriber
}

func NewNotificationHandler(subscriber NotificationSubscriber) *NotificationHandler {
	return &NotificationHandler{subscriber: subscriber}
}

// StreamNotifications relays the caller's toast events over server-sent
// events until the client disconnects.
func (h *NotificationHandler) StreamNotifications(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	sub := h.subscriber.Subscribe(ctx, userID)
	defer sub.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, contentTypeEventStream)
	res.Header().Set("Cache-Control", "no-store")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(res, sseDataFmt, msg.Payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
