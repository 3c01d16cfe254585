package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vowplan/internal/errors"
	"vowplan/internal/model"
	"vowplan/internal/repository"
)

// DemoEmail is the account the seeder provisions for local development.
const DemoEmail = "demo@vowplan.local"

// DemoPassword is the password of the seeded demo account.
const DemoPassword = "demo-password"

// SeedService provisions a demo account with sample records.
type SeedService interface {
	SeedDemo(ctx context.Context) (user *model.User, created int, err error)
}

type seedService struct {
	authService AuthService
	userRepo    repository.UserRepository
	tasks       TaskService
	budget      BudgetService
	guests      GuestService
	timeline    TimelineService
}

// NewSeedService creates a new seed service.
func NewSeedService(
	authService AuthService,
	userRepo repository.UserRepository,
	tasks TaskService,
	budget BudgetService,
	guests GuestService,
	timeline TimelineService,
) SeedService {
	return &seedService{
		authService: authService,
		userRepo:    userRepo,
		tasks:       tasks,
		budget:      budget,
		guests:      guests,
		timeline:    timeline,
	}
}

// SeedDemo registers the demo account if absent and fills it with sample
// tasks, budget items, guests, and timeline events. Re-running against an
// existing demo account creates nothing.
func (s *seedService) SeedDemo(ctx context.Context) (*model.User, int, error) {
	existing, err := s.userRepo.FindByEmail(ctx, DemoEmail)
	if err == nil && existing != nil {
		slog.Info("demo account already seeded", "email", DemoEmail)
		return existing, 0, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, fmt.Errorf("check demo account: %w", err)
	}

	user, err := s.authService.Register(ctx, DemoEmail, DemoPassword, "Demo Couple")
	if err != nil {
		return nil, 0, fmt.Errorf("register demo account: %w", err)
	}

	created := 0
	weddingDay := time.Now().AddDate(0, 6, 0).Truncate(24 * time.Hour)

	for _, title := range []string{
		"Book florist",
		"Send save-the-dates",
		"Schedule cake tasting",
	} {
		if _, err := s.tasks.Create(ctx, user.ID, title); err != nil {
			return nil, created, fmt.Errorf("seed task: %w", err)
		}
		created++
	}

	seedAmount := func(n int64) *decimal.Decimal {
		d := decimal.NewFromInt(n)
		return &d
	}
	budgetItems := []BudgetItemInput{
		{
			Category:      "Venue",
			Description:   "Reception hall deposit",
			EstimatedCost: seedAmount(5000),
			Status:        model.BudgetStatusPartiallyPaid,
			PaidAmount:    decimal.NewFromInt(1500),
			Vendor:        model.Vendor{Name: "Lakeside Hall", Contact: "events@lakesidehall.example"},
		},
		{
			Category:      "Catering",
			Description:   "Dinner service for 80",
			EstimatedCost: seedAmount(3200),
		},
	}
	for _, input := range budgetItems {
		if _, err := s.budget.Create(ctx, user.ID, input); err != nil {
			return nil, created, fmt.Errorf("seed budget item: %w", err)
		}
		created++
	}

	guests := []GuestInput{
		{Name: "Alice Trent", Side: model.SideBride, PlusOne: true, PlusOneName: "Sam Trent"},
		{Name: "Robert Okafor", Side: model.SideGroom, RSVPStatus: model.RSVPConfirmed},
		{Name: "Mina Kovacs", Side: model.SideBride},
	}
	for _, input := range guests {
		if _, err := s.guests.Create(ctx, user.ID, input); err != nil {
			return nil, created, fmt.Errorf("seed guest: %w", err)
		}
		created++
	}

	ceremony := weddingDay.Add(14 * time.Hour)
	reception := weddingDay.Add(18 * time.Hour)
	events := []TimelineEventInput{
		{Title: "Ceremony", Date: &ceremony, Time: "14:00", Category: model.CategoryCeremony, Location: "Garden pavilion"},
		{Title: "Reception", Date: &reception, Time: "18:00", Category: model.CategoryReception, Location: "Lakeside Hall"},
	}
	for _, input := range events {
		if _, err := s.timeline.Create(ctx, user.ID, input); err != nil {
			return nil, created, fmt.Errorf("seed timeline event: %w", err)
		}
		created++
	}

	slog.Info("demo account seeded", "email", DemoEmail, "records", created)
	return user, created, nil
}
