package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"hotelops/internal/models"
	"hotelops/internal/repositories"
)

// NotificationService delivers in-app notifications. Delivery is fire and
// forget: callers treat failures as non-fatal.
type NotificationService interface {
	Notify(ctx context.Context, hotelID, userID uuid.UUID, title, message, notificationType string, relatedID *uuid.UUID) error
	NotifyRole(ctx context.Context, hotelID uuid.UUID, role, title, message, notificationType string, relatedID *uuid.UUID) error
	ListForUser(ctx context.Context, hotelID, userID uuid.UUID, limit, offset int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, hotelID, id uuid.UUID) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, userRepo repositories.UserRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo, userRepo: userRepo}
}

func (s *notificationService) Notify(ctx context.Context, hotelID, userID uuid.UUID, title, message, notificationType string, relatedID *uuid.UUID) error {
	notification := &models.Notification{
		ID:        uuid.New(),
		HotelID:   hotelID,
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		RelatedID: relatedID,
	}
	return s.notificationRepo.Create(ctx, notification)
}

// NotifyRole fans out to every user holding the role. Individual delivery
// failures are logged and do not stop the rest of the fan-out.
func (s *notificationService) NotifyRole(ctx context.Context, hotelID uuid.UUID, role, title, message, notificationType string, relatedID *uuid.UUID) error {
	users, err := s.userRepo.ListByRole(ctx, hotelID, role)
	if err != nil {
		return err
	}
	for _, user := range users {
		if err := s.Notify(ctx, hotelID, user.ID, title, message, notificationType, relatedID); err != nil {
			log.Printf("Failed to notify user %s: %v", user.ID.String(), err)
		}
	}
	return nil
}

func (s *notificationService) ListForUser(ctx context.Context, hotelID, userID uuid.UUID, limit, offset int) ([]*models.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, hotelID, userID, limit, offset)
}

func (s *notificationService) MarkRead(ctx context.Context, hotelID, id uuid.UUID) error {
	return s.notificationRepo.MarkRead(ctx, hotelID, id)
}
