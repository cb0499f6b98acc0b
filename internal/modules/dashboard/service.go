package dashboard

import "context"

type PortfolioCounter interface {
	Count(ctx context.Context) (int64, error)
}

type InquiryCounter interface {
	CountUnread(ctx context.Context) (int64, error)
}

type HeroSlideCounter interface {
	CountActive(ctx context.Context) (int64, error)
}

type CategoryCounter interface {
	Count(ctx context.Context) (int64, error)
}

type Stats struct {
	Portfolios      int64 `json:"portfolios"`
	UnreadInquiries int64 `json:"unread_inquiries"`
	ActiveSlides    int64 `json:"active_slides"`
	Categories      int64 `json:"categories"`
}

// Service aggregates counters for the admin overview page.
type Service struct {
	portfolios PortfolioCounter
	inquiries  InquiryCounter
	slides     HeroSlideCounter
	categories CategoryCounter
}

func NewService(p PortfolioCounter, i InquiryCounter, h HeroSlideCounter, c CategoryCounter) *Service {
	return &Service{portfolios: p, inquiries: i, slides: h, categories: c}
}

func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	portfolios, err := s.portfolios.Count(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := s.inquiries.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	slides, err := s.slides.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Portfolios:      portfolios,
		UnreadInquiries: unread,
		ActiveSlides:    slides,
		Categories:      categories,
	}, nil
}
