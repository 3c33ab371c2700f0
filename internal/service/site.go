package service

import (
	"context"

	"sdgportal/internal/model"
	"sdgportal/internal/repository"
)

// SiteService serves the static site content (news & events feed) and the
// last-selected navigation page preference.
type SiteService interface {
	// Events returns the news & events feed.
	Events(ctx context.Context) ([]model.Event, error)

	// ActivePage returns the last-selected navigation page, or "" when
	// none was stored.
	ActivePage(ctx context.Context) (string, error)

	// SetActivePage stores the navigation page preference.
	SetActivePage(ctx context.Context, page string) error
}

type siteService struct {
	repo repository.CollectionRepository
}

// NewSiteService constructs the site content service.
func NewSiteService(repo repository.CollectionRepository) SiteService {
	return &siteService{repo: repo}
}

// events is the curated feed the site ships with.
var events = []model.Event{
	{
		ID:          1,
		Title:       "UEP Aviation Week 2025",
		Date:        "September 20, 2025",
		Description: "A week-long celebration with exhibits, talks, and interactive aero experiences.",
		Image:       "https://source.unsplash.com/600x400/?airplane,airport",
		Category:    "Event",
	},
	{
		ID:          2,
		Title:       "Open House for Senior High & College",
		Date:        "October 5, 2025",
		Description: "Future students are welcome to tour our facilities and meet instructors.",
		Image:       "https://source.unsplash.com/600x400/?students,school",
		Category:    "Admission",
	},
	{
		ID:          3,
		Title:       "LOOK UP! Campus Tour",
		Date:        "October 15, 2025",
		Description: "Experience the Aerotropolis up close with guided tours and workshops.",
		Image:       "https://source.unsplash.com/600x400/?tour,aviation",
		Category:    "Tour",
	},
	{
		ID:          4,
		Title:       "Innovation & Research Expo",
		Date:        "November 2, 2025",
		Description: "Showcasing student-led research projects and innovations across various fields.",
		Image:       "https://source.unsplash.com/600x400/?technology,research",
		Category:    "Research",
	},
	{
		ID:          5,
		Title:       "UEP Cultural Festival",
		Date:        "November 15, 2025",
		Description: "Celebrate Pangasinan's heritage with performances, exhibits, and food fairs.",
		Image:       "https://source.unsplash.com/600x400/?festival,culture",
		Category:    "Cultural",
	},
	{
		ID:          6,
		Title:       "Alumni Homecoming 2025",
		Date:        "December 10, 2025",
		Description: "Reconnect with classmates, faculty, and celebrate UEP's legacy of excellence.",
		Image:       "https://source.unsplash.com/600x400/?alumni,celebration",
		Category:    "Alumni",
	},
}

func (s *siteService) Events(_ context.Context) ([]model.Event, error) {
	out := make([]model.Event, len(events))
	copy(out, events)
	return out, nil
}

func (s *siteService) ActivePage(ctx context.Context) (string, error) {
	return s.repo.GetPreference(ctx, repository.ActivePageKey)
}

func (s *siteService) SetActivePage(ctx context.Context, page string) error {
	return s.repo.SetPreference(ctx, repository.ActivePageKey, page)
}
