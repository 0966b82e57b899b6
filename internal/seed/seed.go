package seed

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/internal/admins"
	"github.com/northhaul/northhaul-backend/pkg/config"
	"github.com/northhaul/northhaul-backend/pkg/db"
	"github.com/northhaul/northhaul-backend/pkg/db/models"
	"github.com/northhaul/northhaul-backend/pkg/enums"
	"github.com/northhaul/northhaul-backend/pkg/logger"
	"github.com/northhaul/northhaul-backend/pkg/security"
)

// Run makes sure the configured admin credential exists and, when fixtures
// are enabled, fills empty tables with demo content.
func Run(ctx context.Context, client *db.Client, cfg config.Config, logg *logger.Logger) error {
	if err := ensureAdmin(ctx, client, cfg, logg); err != nil {
		return err
	}
	if cfg.Seed.Fixtures {
		if err := ensureFixtures(ctx, client, logg); err != nil {
			return err
		}
	}
	return nil
}

func ensureAdmin(ctx context.Context, client *db.Client, cfg config.Config, logg *logger.Logger) error {
	if cfg.Seed.AdminUsername == "" || cfg.Seed.AdminPassword == "" {
		if logg != nil {
			logg.Warn(ctx, "seed: admin credential not configured, skipping")
		}
		return nil
	}

	repo := admins.NewRepository(client.DB())
	_, err := repo.FindByUsername(ctx, cfg.Seed.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("seed: look up admin: %w", err)
	}

	hash, err := security.HashPassword(cfg.Seed.AdminPassword, cfg.Password)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}
	if _, err := repo.Create(ctx, &models.AdminUser{
		Username:     cfg.Seed.AdminUsername,
		PasswordHash: hash,
	}); err != nil {
		return fmt.Errorf("seed: create admin: %w", err)
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "username", cfg.Seed.AdminUsername), "seed: admin credential created")
	}
	return nil
}

// ensureFixtures inserts demo rows into tables that are still empty. Existing
// data is never touched.
func ensureFixtures(ctx context.Context, client *db.Client, logg *logger.Logger) error {
	conn := client.DB().WithContext(ctx)

	var jobCount int64
	if err := conn.Model(&models.Job{}).Count(&jobCount).Error; err != nil {
		return fmt.Errorf("seed: count jobs: %w", err)
	}
	if jobCount == 0 {
		rows := fixtureJobs()
		if err := conn.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed: insert jobs: %w", err)
		}
	}

	var postCount int64
	if err := conn.Model(&models.BlogPost{}).Count(&postCount).Error; err != nil {
		return fmt.Errorf("seed: count posts: %w", err)
	}
	if postCount == 0 {
		rows := fixturePosts()
		if err := conn.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed: insert posts: %w", err)
		}
	}

	var testimonialCount int64
	if err := conn.Model(&models.Testimonial{}).Count(&testimonialCount).Error; err != nil {
		return fmt.Errorf("seed: count testimonials: %w", err)
	}
	if testimonialCount == 0 {
		rows := fixtureTestimonials()
		if err := conn.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed: insert testimonials: %w", err)
		}
	}

	var productCount int64
	if err := conn.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("seed: count products: %w", err)
	}
	if productCount == 0 {
		rows := fixtureProducts()
		if err := conn.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed: insert products: %w", err)
		}
	}

	if logg != nil {
		logg.Info(ctx, "seed: fixtures ensured")
	}
	return nil
}

func fixtureJobs() []models.Job {
	salary := "$52,000 - $61,000"
	return []models.Job{
		{
			Title:       "Long Haul Driver (AZ)",
			Description: "Cross-border runs between Ontario and the US Midwest. Home weekly.",
			Location:    "Mississauga, ON",
			Company:     "NorthHaul Logistics",
			Type:        enums.JobTypeFullTime,
			Category:    "Driving",
			Salary:      &salary,
			Featured:    true,
			Status:      enums.JobStatusApproved,
		},
		{
			Title:       "Warehouse Associate",
			Description: "Pick, pack, and stage outbound freight on the afternoon shift.",
			Location:    "Hamilton, ON",
			Company:     "NorthHaul Logistics",
			Type:        enums.JobTypePartTime,
			Category:    "Warehouse",
			Status:      enums.JobStatusApproved,
		},
		{
			Title:       "Dispatch Coordinator",
			Description: "Coordinate a regional fleet of 40 tractors and keep lanes covered.",
			Location:    "Remote",
			Company:     "Lakeside Carriers",
			Type:        enums.JobTypeRemote,
			Category:    "Dispatch",
			Status:      enums.JobStatusApproved,
		},
	}
}

func fixturePosts() []models.BlogPost {
	return []models.BlogPost{
		{
			Title:     "Five Questions to Ask Before Outsourcing Your Warehousing",
			Excerpt:   "Not every 3PL fits every shipper. Here is what to check first.",
			Content:   "Outsourced warehousing works when the provider's network matches your lanes...",
			Slug:      "five-questions-before-outsourcing-warehousing",
			Published: true,
		},
		{
			Title:     "How We Keep Cold Chain Freight Cold",
			Excerpt:   "Reefer monitoring, pre-cooling, and door discipline.",
			Content:   "Temperature excursions happen at the dock more often than on the road...",
			Slug:      "how-we-keep-cold-chain-freight-cold",
			Published: true,
		},
	}
}

func fixtureTestimonials() []models.Testimonial {
	position := "Operations Manager"
	return []models.Testimonial{
		{
			Name:     "Dana Whitfield",
			Company:  "Prairie Foods",
			Position: &position,
			Content:  "Deliveries land on schedule every week, and their team answers the phone.",
			Rating:   5,
			Featured: true,
		},
		{
			Name:    "Marco Ruiz",
			Company: "Harbour Build Supply",
			Content: "They absorbed our seasonal overflow without a single missed order.",
			Rating:  5,
		},
	}
}

func fixtureProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Pallet Wrap (80 Gauge)",
			Description: "Industrial stretch film, 1500 ft rolls, case of four.",
			Price:       "24.99",
			Category:    "Packaging",
			Stock:       200,
			Featured:    true,
			Published:   true,
		},
		{
			Name:        "Heavy Duty Dock Bumper",
			Description: "Laminated rubber bumper, 20 in, hardware included.",
			Price:       "89.50",
			Category:    "Dock Equipment",
			Stock:       40,
			Published:   true,
		},
		{
			Name:        "Load Bars (Pair)",
			Description: "Adjustable steel cargo bars, 89 to 104 in.",
			Price:       "64.00",
			Category:    "Cargo Control",
			Stock:       75,
			Published:   true,
		},
	}
}
