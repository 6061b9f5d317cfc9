package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	FacultyRepository    *FacultyRepository
	FeedbackRepository   *FeedbackRepository
	MetricRepository     *MetricRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		FacultyRepository:    NewFacultyRepository(db),
		FeedbackRepository:   NewFeedbackRepository(db),
		MetricRepository:     NewMetricRepository(db),
	}
}
