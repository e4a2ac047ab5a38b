package notifications

import (
	"context"
	"log/slog"
)

type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type Service struct {
	store       *Store
	Mailer      Mailer
	EmailFrom   string
	EmailEnable bool
}

func New(store *Store, mailer Mailer, emailFrom string, emailEnabled bool) *Service {
	return &Service{store: store, Mailer: mailer, EmailFrom: emailFrom, EmailEnable: emailEnabled}
}

// Broadcast records a notification for every active user and, when email is
// configured, mails them too. Email failures are logged, never fatal.
func (s *Service) Broadcast(ctx context.Context, ntype, title, body string) error {
	if err := s.store.CreateForAllUsers(ctx, ntype, title, body); err != nil {
		return err
	}

	if s.Mailer == nil || !s.EmailEnable {
		return nil
	}
	emails, err := s.store.UserEmails(ctx)
	if err != nil {
		slog.Warn("notification email lookup failed", "err", err)
		return nil
	}
	for _, email := range emails {
		if err := s.Mailer.Send(ctx, s.EmailFrom, email, title, body); err != nil {
			slog.Warn("notification email send failed", "to", email, "err", err)
		}
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Notification, error) {
	return s.store.ListNotifications(ctx, userID, limit, offset)
}

func (s *Service) CountUnread(ctx context.Context, userID string) (int, error) {
	return s.store.CountUnread(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID, notificationID string) error {
	return s.store.MarkRead(ctx, userID, notificationID)
}
