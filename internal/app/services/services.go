package services

import (
	"github.com/arsenal-school/crm-backend/internal/app/repositories"
	"github.com/arsenal-school/crm-backend/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	UserService         *UserService
	BranchService       *BranchService
	ChildService        *ChildService
	TrainingService     *TrainingService
	DisciplineService   *DisciplineService
	ProgressService     *ProgressService
	SubscriptionService *SubscriptionService
	AttendanceService   *AttendanceService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		UserService:         NewUserService(repos.UserRepository),
		BranchService:       NewBranchService(repos.BranchRepository),
		ChildService:        NewChildService(repos.ChildRepository),
		TrainingService:     NewTrainingService(repos.TrainingRepository, repos.ChildRepository),
		DisciplineService:   NewDisciplineService(repos.DisciplineRepository),
		ProgressService:     NewProgressService(repos.ProgressRepository),
		SubscriptionService: NewSubscriptionService(repos.SubscriptionRepository, repos.ChildRepository),
		AttendanceService:   NewAttendanceService(repos.AttendanceRepository, repos.TrainingRepository, repos.ChildRepository),
	}
}
