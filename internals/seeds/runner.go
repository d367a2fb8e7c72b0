package seeds

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"progresstrack_backend/internals/features/students/model"
)

// RunAllSeeds inserts a handful of demo students and educators so the
// pipeline is exercisable on a fresh database. Idempotent: re-running
// skips rows whose human id already exists.
func RunAllSeeds(db *gorm.DB) {
	seedEducators(db)
	seedStudents(db)
}

func seedEducators(db *gorm.DB) {
	rows := []model.EducatorModel{
		{EducatorHumanID: "EDU001", EducatorName: "Asha Verma", EducatorEmail: strPtr("asha.verma@example.org")},
		{EducatorHumanID: "EDU002", EducatorName: "Ravi Iyer", EducatorEmail: strPtr("ravi.iyer@example.org")},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		log.Printf("[ERROR] seeding educators: %v", err)
		return
	}
	log.Printf("[INFO] seeded %d educators", len(rows))
}

func seedStudents(db *gorm.DB) {
	rows := []model.StudentModel{
		{StudentHumanID: "STU2024001", StudentName: "Aarav Shah", StudentGuardianName: strPtr("Meera Shah"), StudentProgram: strPtr("Early Intervention")},
		{StudentHumanID: "STU2024002", StudentName: "Diya Patel", StudentGuardianName: strPtr("Nikhil Patel"), StudentProgram: strPtr("Skill Development")},
		{StudentHumanID: "STU2024003", StudentName: "Kabir Rao", StudentProgram: strPtr("Skill Development")},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		log.Printf("[ERROR] seeding students: %v", err)
		return
	}
	log.Printf("[INFO] seeded %d students", len(rows))
}

func strPtr(s string) *string { return &s }
