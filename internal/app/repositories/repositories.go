package repositories

import (
	"github.com/arsenal-school/crm-backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	BranchRepository       *BranchRepository
	ChildRepository        *ChildRepository
	TrainingRepository     *TrainingRepository
	DisciplineRepository   *DisciplineRepository
	ProgressRepository     *ProgressRepository
	SubscriptionRepository *SubscriptionRepository
	AttendanceRepository   *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	pool := database.Pool
	return &Repositories{
		UserRepository:         NewUserRepository(database),
		TokenRepository:        NewTokenRepository(pool),
		BranchRepository:       NewBranchRepository(pool),
		ChildRepository:        NewChildRepository(database),
		TrainingRepository:     NewTrainingRepository(pool),
		DisciplineRepository:   NewDisciplineRepository(pool),
		ProgressRepository:     NewProgressRepository(pool),
		SubscriptionRepository: NewSubscriptionRepository(pool),
		AttendanceRepository:   NewAttendanceRepository(database),
	}
}
