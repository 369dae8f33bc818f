// Package devseed fills an empty development backend with demo
// accounts and events so the app is usable right after startup.
package devseed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/target/eventshell/internal/domain/auth"
	apperrors "github.com/target/eventshell/internal/errors"
	"github.com/target/eventshell/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	Users  *service.UserService
	Events *service.EventService
}

// Run executes the development seeding workflow. Existing records are
// left alone; individual failures are logged and counted rather than
// aborting the rest of the seed.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	failures := seedUsers(ctx, svcs.Users, logger)
	failures += seedEvents(ctx, svcs.Events, logger)
	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func defaultUsers() []service.CreateUserInput {
	return []service.CreateUserInput{
		{Name: "Admin", Email: "admin@example.com", Secret: "admin123", Role: auth.RoleAdmin},
		{Name: "Olivia Organizer", Email: "olivia@example.com", Secret: "organizer123", Role: auth.RoleOrganizer},
		{Name: "Gus Guest", Email: "gus@example.com", Secret: "guest123", Role: auth.RoleGuest},
	}
}

func seedUsers(ctx context.Context, svc *service.UserService, logger *slog.Logger) int {
	failures := 0
	for _, in := range defaultUsers() {
		created, err := createUser(ctx, svc, in)
		if err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create user", "email", in.Email, "error", err)
			}
			failures++
			continue
		}
		if logger != nil {
			msg := "user already exists"
			if created {
				msg = "created user"
			}
			logger.InfoContext(ctx, msg, "email", in.Email)
		}
	}
	return failures
}

func createUser(ctx context.Context, svc *service.UserService, in service.CreateUserInput) (bool, error) {
	if _, err := svc.Create(ctx, in); err != nil {
		if apperrors.IsConflict(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func defaultEvents(now time.Time) []service.EventInput {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}
	return []service.EventInput{
		{
			Title:       "Go Meetup",
			Description: "Talks on practical Go, pizza afterwards.",
			Category:    "Tech",
			Date:        day(7),
			Time:        "18:30",
			Organizer:   "Olivia Organizer",
			Capacity:    40,
		},
		{
			Title:       "Open-Air Concert",
			Description: "Live music in the park.",
			Category:    "Music",
			Date:        day(14),
			Time:        "20:00",
			Organizer:   "Olivia Organizer",
			Capacity:    200,
		},
		{
			Title:       "Morning Run",
			Description: "Easy 5k along the river, all paces welcome.",
			Category:    "Sports",
			Date:        day(3),
			Time:        "07:00",
			Organizer:   "Olivia Organizer",
			Capacity:    25,
		},
	}
}

func seedEvents(ctx context.Context, svc *service.EventService, logger *slog.Logger) int {
	existing, err := svc.ListForViewer(ctx, auth.Identity{Role: auth.RoleAdmin})
	if err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to list events", "error", err)
		}
		return 1
	}
	titles := make(map[string]bool, len(existing))
	for _, e := range existing {
		titles[e.Title] = true
	}

	failures := 0
	for _, in := range defaultEvents(time.Now()) {
		if titles[in.Title] {
			if logger != nil {
				logger.InfoContext(ctx, "event already exists", "title", in.Title)
			}
			continue
		}
		if _, err := svc.Create(ctx, in); err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create event", "title", in.Title, "error", err)
			}
			failures++
			continue
		}
		if logger != nil {
			logger.InfoContext(ctx, "created event", "title", in.Title)
		}
	}
	return failures
}
