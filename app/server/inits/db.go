package inits

import (
	"fmt"

	"kidney-care-ai/app/server/models"

	"github.com/alexedwards/argon2id"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string) (db *gorm.DB, err error) {
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{TranslateError: true}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err = initData(db); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.DetectionResult{},
		&models.Inquiry{},
		&models.GeneralInfo{},
		&models.Recommendation{},
	)
}

func initData(db *gorm.DB) (err error) {
	var counter int64

	// first-run admin account
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter == 0 {
		var password string
		if password, err = argon2id.CreateHash("KidneyCare@Admin1", argon2id.DefaultParams); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		if err = db.Create(&models.User{
			Username: "admin",
			Email:    "admin@kidneycare.local",
			Role:     models.RoleAdmin,
			Password: password,
		}).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	// standard KDIGO stage bands so /calculate-egfr works out of the box
	if err = db.Model(&models.Recommendation{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get recommendation count: %w", err)
	} else if counter == 0 {
		if err = db.Create([]*models.Recommendation{
			{
				Stage:           "Stage 1 (Normal kidney function)",
				EGFRRangeLow:    90,
				EGFRRangeHigh:   200,
				LifestyleAdvice: "Maintain regular exercise and a healthy weight. Avoid smoking.",
				FoodAdvice:      "Balanced diet with moderate salt. Stay well hydrated.",
				MedicalAdvice:   "Annual check-up including blood pressure and urine albumin.",
			},
			{
				Stage:           "Stage 2 (Mildly reduced function)",
				EGFRRangeLow:    60,
				EGFRRangeHigh:   89,
				LifestyleAdvice: "Keep blood pressure under control. Limit alcohol.",
				FoodAdvice:      "Reduce sodium intake. Prefer fresh food over processed.",
				MedicalAdvice:   "Monitor kidney function every 6-12 months.",
			},
			{
				Stage:           "Stage 3a (Mild to moderate reduction)",
				EGFRRangeLow:    45,
				EGFRRangeHigh:   59,
				LifestyleAdvice: "Moderate exercise as tolerated. Review all medication with a doctor.",
				FoodAdvice:      "Moderate protein intake. Limit sodium and phosphorus.",
				MedicalAdvice:   "Nephrology referral advised. Monitor every 3-6 months.",
			},
			{
				Stage:           "Stage 3b (Moderate to severe reduction)",
				EGFRRangeLow:    30,
				EGFRRangeHigh:   44,
				LifestyleAdvice: "Avoid NSAIDs and nephrotoxic substances.",
				FoodAdvice:      "Dietitian-guided protein and potassium restriction.",
				MedicalAdvice:   "Regular nephrology care. Screen for anemia and bone disease.",
			},
			{
				Stage:           "Stage 4 (Severely reduced function)",
				EGFRRangeLow:    15,
				EGFRRangeHigh:   29,
				LifestyleAdvice: "Conserve energy, plan rest. Vaccinations up to date.",
				FoodAdvice:      "Strict renal diet under dietitian supervision.",
				MedicalAdvice:   "Prepare for renal replacement therapy options.",
			},
			{
				Stage:           "Stage 5 (Kidney failure)",
				EGFRRangeLow:    0,
				EGFRRangeHigh:   14,
				LifestyleAdvice: "Follow the dialysis or transplant care plan closely.",
				FoodAdvice:      "Fluid and electrolyte restriction as prescribed.",
				MedicalAdvice:   "Dialysis or transplantation; urgent nephrology management.",
			},
		}).Error; err != nil {
			return fmt.Errorf("failed to create initial recommendations: %w", err)
		}
	}

	return nil
}
