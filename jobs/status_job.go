package jobs

import (
	"log"
	"time"

	"github.com/hamzaiqbal08/committee_fund/database"
	"github.com/hamzaiqbal08/committee_fund/models"
)

// SyncCommitteeStatuses walks committees through their lifecycle: DRAFT
// becomes ACTIVE once the start date arrives, ACTIVE becomes COMPLETED once
// the duration has elapsed. Reads apply the same transition lazily; this sweep
// keeps the stored rows honest between requests.
func SyncCommitteeStatuses() {
	log.Println("Running job: SyncCommitteeStatuses...")

	today := time.Now()

	activated := database.DB.Model(&models.Committee{}).
		Where("status = ? AND start_date <= ?", models.CommitteeStatusDraft, today).
		Update("status", models.CommitteeStatusActive)
	if activated.Error != nil {
		log.Printf("Error activating committees: %v", activated.Error)
		return
	}

	completed := database.DB.Model(&models.Committee{}).
		Where("status = ? AND end_date < ?", models.CommitteeStatusActive, today).
		Update("status", models.CommitteeStatusCompleted)
	if completed.Error != nil {
		log.Printf("Error completing committees: %v", completed.Error)
		return
	}

	if activated.RowsAffected > 0 || completed.RowsAffected > 0 {
		log.Printf("Committee status sweep: %d activated, %d completed", activated.RowsAffected, completed.RowsAffected)
	}
}
