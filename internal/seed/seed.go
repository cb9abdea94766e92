// internal/seed/seed.go
package seed

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/richei-group/richei-backend/internal/repository"
	"github.com/richei-group/richei-backend/internal/types"
)

func SeedData(repos *repository.Repositories) {
	ctx := context.Background()

	existing, _ := repos.UserRepo.FindByEmail(ctx, "admin@richei.africa")
	if existing != nil {
		log.Println("[Seed] Data already exists, skipping...")
		return
	}

	log.Println("[Seed] 🌱 Creating initial data...")

	// ============================================
	// CREATE USERS
	// ============================================
	password, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	admin := &repository.User{
		ID:       uuid.New().String(),
		Email:    "admin@richei.africa",
		Password: string(password),
		Name:     "Richei Admin",
		Role:     types.RoleAdmin,
	}
	repos.UserRepo.Create(ctx, admin)

	investor := &repository.User{
		ID:       uuid.New().String(),
		Email:    "amaka.obi@example.com",
		Password: string(password),
		Name:     "Amaka Obi",
		Role:     types.RoleInvestor,
	}
	repos.UserRepo.Create(ctx, investor)

	log.Printf("✅ Created 2 users: Richei Admin (admin), Amaka Obi (investor)")

	// ============================================
	// SAMPLE PROJECT: a funding-stage estate in Lekki
	// ============================================
	deadline := time.Now().AddDate(0, 2, 0)
	start := time.Now().AddDate(0, 3, 0)
	end := start.AddDate(2, 0, 0)
	exit := end.AddDate(0, 6, 0)

	description := "A 40-unit residential estate in Ibeju-Lekki with serviced plots and rental units."
	summary := "Serviced residential estate on the Lekki corridor"
	city := "Ibeju-Lekki"
	state := "Lagos"
	country := "Nigeria"
	minInvestment := "50000"
	maxInvestment := "5000000"
	rate := "14.5"
	ownership := types.OwnershipProfitParticipation
	risk := "MEDIUM"

	agg := &repository.ProjectAggregate{
		Project: &repository.Project{
			Name:          "Lekki Gardens Estate Phase 2",
			Slug:          "lekki-gardens-estate-phase-2",
			Description:   &description,
			Summary:       &summary,
			Type:          types.ProjectTypeEstate,
			Status:        types.StatusFunding,
			OwnershipType: &ownership,

			City:    &city,
			State:   &state,
			Country: &country,

			Currency:      "NGN",
			TargetAmount:  "250000000",
			MinInvestment: &minInvestment,
			MaxInvestment: &maxInvestment,

			FundingDeadline:    &deadline,
			UnderfundingPolicy: types.UnderfundingExtendDeadline,
			StartDate:          &start,
			EndDate:            &end,
			ExitDate:           &exit,

			RiskLevel: &risk,
			CreatedBy: &admin.ID,
		},
		RevenueStreams: []*repository.RevenueStream{
			{Type: types.RevenueRental, ExpectedReturnRate: &rate, IsActive: true},
			{Type: types.RevenueAppreciation, IsActive: true},
		},
		ReturnStructures: []*repository.ReturnStructure{
			{Type: types.ReturnFixedPercentage, Rate: &rate, PayoutFrequency: types.PayoutYearly, IsActive: true},
		},
		Milestones: []*repository.Milestone{
			{Name: "Land acquisition", Status: types.MilestoneCompleted, SortOrder: 0},
			{Name: "Site clearing and perimeter fencing", Status: types.MilestonePending, SortOrder: 1},
			{Name: "Infrastructure and road network", Status: types.MilestonePending, SortOrder: 2},
		},
	}

	if err := repos.ProjectRepo.CreateWithChildren(ctx, agg); err != nil {
		log.Printf("[Seed] Failed to create sample project: %v", err)
		return
	}

	log.Printf("✅ Created sample project %s (%s)", agg.Project.Name, agg.Project.Slug)
	log.Println("[Seed] 🌱 Done")
}
