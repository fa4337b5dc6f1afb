package assessments

import (
	"context"
	"sort"

	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/constvars"
	"kemandirian-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// AssessmentRedisRepository is the device-local store: the whole collection
// lives under one key as a JSON array, the shape the offline intake app
// keeps on-device. Reads and writes go through read-modify-write on that
// single key; last write wins.
type AssessmentRedisRepository struct {
	RedisRepository contracts.RedisRepository
}

func NewAssessmentRedisRepository(redisRepository contracts.RedisRepository) contracts.AssessmentRepository {
	return &AssessmentRedisRepository{
		RedisRepository: redisRepository,
	}
}

func (repo *AssessmentRedisRepository) readAll(ctx context.Context) ([]models.AssessmentRecord, error) {
	data, err := repo.RedisRepository.Get(ctx, constvars.RedisKeyLocalAssessments)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return []models.AssessmentRecord{}, nil
	}

	var records []models.AssessmentRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return records, nil
}

func (repo *AssessmentRedisRepository) writeAll(ctx context.Context, records []models.AssessmentRecord) error {
	return repo.RedisRepository.Set(ctx, constvars.RedisKeyLocalAssessments, records, 0)
}

func (repo *AssessmentRedisRepository) Insert(ctx context.Context, record *models.AssessmentRecord) error {
	records, err := repo.readAll(ctx)
	if err != nil {
		return err
	}
	records = append(records, *record)
	return repo.writeAll(ctx, records)
}

func (repo *AssessmentRedisRepository) FindAll(ctx context.Context) ([]models.AssessmentRecord, error) {
	records, err := repo.readAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return records, nil
}

func (repo *AssessmentRedisRepository) FindByID(ctx context.Context, recordID string) (*models.AssessmentRecord, error) {
	records, err := repo.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for idx := range records {
		if records[idx].ID == recordID {
			return &records[idx], nil
		}
	}
	return nil, nil
}

func (repo *AssessmentRedisRepository) DeleteByID(ctx context.Context, recordID string) error {
	records, err := repo.readAll(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, record := range records {
		if record.ID == recordID {
			found = true
			continue
		}
		kept = append(kept, record)
	}
	if !found {
		return exceptions.ErrAssessmentNotFound(recordID)
	}
	return repo.writeAll(ctx, kept)
}

func (repo *AssessmentRedisRepository) ReplaceAll(ctx context.Context, records []models.AssessmentRecord) error {
	return repo.writeAll(ctx, records)
}

func (repo *AssessmentRedisRepository) BulkInsert(ctx context.Context, newRecords []models.AssessmentRecord) error {
	if len(newRecords) == 0 {
		return nil
	}
	records, err := repo.readAll(ctx)
	if err != nil {
		return err
	}
	records = append(records, newRecords...)
	return repo.writeAll(ctx, records)
}
