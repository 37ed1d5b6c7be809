package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/hamzaiqbal08/committee_fund/database"
	"github.com/hamzaiqbal08/committee_fund/models"
	"github.com/hamzaiqbal08/committee_fund/utils"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// setupTestDB swaps the package-level connection for an in-memory sqlite
// database so every test runs against a fresh, hermetic schema.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Committee{},
		&models.Membership{},
		&models.Contribution{},
		&models.Payout{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		_ = sqlDB.Close()
	})
}

func seedUser(t *testing.T, email string, organizer bool) *models.User {
	t.Helper()
	u := &models.User{
		FirstName:   "Test",
		LastName:    "User",
		Email:       email,
		Password:    "pw",
		IsOrganizer: organizer,
	}
	if err := database.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// seedCommittee starts two months in the past so three contribution months
// (including the current one) are already due.
func seedCommittee(t *testing.T, organizer *models.User, monthlyAmount float64, durationMonths int) *models.Committee {
	t.Helper()
	start := utils.MonthStart(time.Now()).AddDate(0, -2, 0)
	c := &models.Committee{
		Name:           "Office Committee",
		Description:    "monthly savings pool",
		MonthlyAmount:  monthlyAmount,
		DurationMonths: durationMonths,
		OrganizerID:    organizer.ID,
		StartDate:      start,
		Status:         models.CommitteeStatusActive,
	}
	c.ComputeEndDate()
	if err := database.DB.Create(c).Error; err != nil {
		t.Fatalf("seed committee: %v", err)
	}
	return c
}

func seedMembership(t *testing.T, committee *models.Committee, member *models.User) *models.Membership {
	t.Helper()
	m := &models.Membership{
		CommitteeID: committee.ID,
		MemberID:    member.ID,
		Status:      models.MembershipStatusActive,
	}
	if err := database.DB.Create(m).Error; err != nil {
		t.Fatalf("seed membership: %v", err)
	}
	return m
}

// seedContribution records a contribution for the committee month at the given
// offset from the start date (0 = first month).
func seedContribution(t *testing.T, committee *models.Committee, membership *models.Membership, monthOffset int, paid, verified bool) *models.Contribution {
	t.Helper()
	forMonth := utils.AddMonths(utils.MonthStart(committee.StartDate), monthOffset)
	dueDate := forMonth.AddDate(0, 0, 10)

	var paymentDate *time.Time
	if paid {
		paymentDate = &dueDate
	}

	c := &models.Contribution{
		MembershipID:        membership.ID,
		AmountPaid:          committee.MonthlyAmount,
		ForMonth:            forMonth,
		DueDate:             dueDate,
		PaymentDate:         paymentDate,
		PaymentStatus:       models.DerivePaymentStatus(paymentDate, dueDate),
		VerifiedByOrganizer: verified,
	}
	if err := database.DB.Create(c).Error; err != nil {
		t.Fatalf("seed contribution: %v", err)
	}
	return c
}

func callerFor(u *models.User) Caller {
	return Caller{ID: u.ID, IsOrganizer: u.IsOrganizer}
}
