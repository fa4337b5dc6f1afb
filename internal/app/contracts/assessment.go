package contracts

import (
	"context"

	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/dto/requests"
)

type AssessmentUsecase interface {
	CreateAssessment(ctx context.Context, request *requests.CreateAssessment) (*models.AssessmentRecord, error)
	FindAssessments(ctx context.Context, filter *requests.AssessmentFilter) ([]models.AssessmentRecord, error)
	FindAssessmentByID(ctx context.Context, recordID string) (*models.AssessmentRecord, error)
	DeleteAssessmentByID(ctx context.Context, recordID string) error
	MigrateLocalToRemote(ctx context.Context) (migrated int, err error)
}

// AssessmentRepository is the record store. Two implementations exist: the
// device-local store and the remote tenant-scoped store; the usecase treats
// them interchangeably.
type AssessmentRepository interface {
	Insert(ctx context.Context, record *models.AssessmentRecord) error
	FindAll(ctx context.Context) ([]models.AssessmentRecord, error)
	FindByID(ctx context.Context, recordID string) (*models.AssessmentRecord, error)
	DeleteByID(ctx context.Context, recordID string) error
	ReplaceAll(ctx context.Context, records []models.AssessmentRecord) error
	BulkInsert(ctx context.Context, records []models.AssessmentRecord) error
}
