package listNotifications

import (
	"context"
	"log/slog"
	"net/http"

	"homeRental/internal/http-server/middleware/auth"
	"homeRental/internal/lib/api/response"
	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/models"

	"github.com/go-chi/render"
)

type NotificationsResponse struct {
	response.Response
	Notifications []models.Notification `json:"notifications"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NotificationLister
type NotificationLister interface {
	NotificationsByReceiver(ctx context.Context, receiverID string) ([]models.Notification, error)
}

func New(log *slog.Logger, notifications NotificationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.listNotifications.New"

		log := log.With(slog.String("op", op))

		actorID, ok := auth.ActorID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		list, err := notifications.NotificationsByReceiver(r.Context(), actorID)
		if err != nil {
			log.Error("failed to get notifications", slog.String("receiver_id", actorID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get notifications"))
			return
		}

		if list == nil {
			list = []models.Notification{}
		}

		render.JSON(w, r, NotificationsResponse{
			Response:      response.OK(),
			Notifications: list,
		})
	}
}
