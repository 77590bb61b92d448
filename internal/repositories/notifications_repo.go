package repositories

import (
	"context"

	"hotelops/internal/models"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, hotelID, userID uuid.UUID, limit, offset int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, hotelID, id uuid.UUID) error
}

type notificationRepo struct {
	db Database
}

func NewNotificationRepo(db Database) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (id, hotel_id, user_id, title, message, type, related_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, NOW())
	`
	_, err := r.db.Exec(ctx, query, notification.ID, notification.HotelID, notification.UserID,
		notification.Title, notification.Message, notification.Type, notification.RelatedID)
	return err
}

func (r *notificationRepo) ListByUser(ctx context.Context, hotelID, userID uuid.UUID, limit, offset int) ([]*models.Notification, error) {
	query := `
		SELECT id, hotel_id, user_id, title, message, type, related_id, is_read, created_at
		FROM notifications
		WHERE hotel_id = $1 AND user_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, hotelID, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.HotelID, &n.UserID, &n.Title, &n.Message, &n.Type,
			&n.RelatedID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepo) MarkRead(ctx context.Context, hotelID, id uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true WHERE hotel_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, hotelID, id)
	return err
}
