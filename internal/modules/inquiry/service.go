package inquiry

import (
	"context"
	"fmt"
	"html"
	"log"
	"time"

	"interiorstudio/internal/domain"
	"interiorstudio/internal/pkg/mailer"
)

type Repository interface {
	GetAll(ctx context.Context) ([]domain.Inquiry, error)
	GetByID(ctx context.Context, id int64) (*domain.Inquiry, error)
	Create(ctx context.Context, i *domain.Inquiry) error
	MarkAsRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	CountUnread(ctx context.Context) (int64, error)
}

type Service struct {
	repo Repository
	mail *mailer.Mailer
}

func NewService(repo Repository, mail *mailer.Mailer) *Service {
	return &Service{repo: repo, mail: mail}
}

// Create stores a contact-form submission. New inquiries always start unread
// regardless of what the client sent.
func (s *Service) Create(ctx context.Context, req CreateInquiryRequest) (*domain.Inquiry, error) {
	i := &domain.Inquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}

	// Notification mail is best effort. The submission already succeeded, so a
	// broken SMTP setup must not turn into a client-facing error.
	if to := s.mail.NotifyAddress(); to != "" {
		go func(inq domain.Inquiry) {
			body := fmt.Sprintf(
				"<p><b>Name:</b> %s</p><p><b>Phone:</b> %s</p><p><b>Email:</b> %s</p><p>%s</p>",
				html.EscapeString(inq.Name),
				html.EscapeString(inq.Phone),
				html.EscapeString(inq.Email),
				html.EscapeString(inq.Message),
			)
			if err := s.mail.Send(to, "New inquiry from "+inq.Name, body); err != nil {
				log.Printf("inquiry: notification mail failed: %v", err)
			}
		}(*i)
	}

	return i, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Inquiry, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Inquiry, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, ErrInquiryNotFound
	}
	return i, nil
}

func (s *Service) MarkAsRead(ctx context.Context, id int64) (*domain.Inquiry, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, ErrInquiryNotFound
	}

	if !i.IsRead {
		if err := s.repo.MarkAsRead(ctx, id); err != nil {
			return nil, err
		}
		i.IsRead = true
	}
	return i, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if i == nil {
		return ErrInquiryNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) CountUnread(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}
