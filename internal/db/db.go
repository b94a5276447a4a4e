package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.User{},
		&models.Service{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.UserAppointment{},
		&models.BarberAppointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// A constraint de exclusão é a garantia final contra double-booking;
	// sem ela o guard de reserva fica só com a checagem em aplicação.
	// Boot sem a constraint é boot quebrado.
	if err := db.Exec(createBtreeGistSQL).Error; err != nil {
		log.Fatalf("failed to create btree_gist extension: %v", err)
	}
	if err := db.Exec(noOverlapConstraintSQL).Error; err != nil {
		log.Fatalf("failed to create no-overlap constraint: %v", err)
	}

	return db
}

const createBtreeGistSQL = `CREATE EXTENSION IF NOT EXISTS btree_gist`

// Nenhum par de agendamentos PENDING/CONFIRMED do mesmo barbeiro pode
// ter [start_at, end_at) sobrepostos. As colunas são timestamptz
// (mapeamento do driver para time.Time), logo o range é tstzrange.
// Fecha a corrida check-then-act no nível do banco; a aplicação traduz
// a violação (23P01) em slot_no_longer_available.
const noOverlapConstraintSQL = `
    DO $$
    BEGIN
        IF NOT EXISTS (
            SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
        ) THEN
            ALTER TABLE appointments
            ADD CONSTRAINT appointments_no_overlap
            EXCLUDE USING gist (
                barber_id WITH =,
                tstzrange(start_at, end_at) WITH &&
            )
            WHERE (status IN ('PENDING', 'CONFIRMED'));
        END IF;
    END $$;
`
