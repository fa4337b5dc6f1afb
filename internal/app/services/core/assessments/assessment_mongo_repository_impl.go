package assessments

import (
	"context"

	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/constvars"
	"kemandirian-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssessmentMongoRepository is the remote shared store. Every document is
// tagged with the deployment's tenant id at write time and every query is
// scoped to it.
type AssessmentMongoRepository struct {
	Collection *mongo.Collection
	TenantID   string
}

func NewAssessmentMongoRepository(db *mongo.Client, dbName, tenantID string) contracts.AssessmentRepository {
	return &AssessmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAssessments),
		TenantID:   tenantID,
	}
}

func (repo *AssessmentMongoRepository) Insert(ctx context.Context, record *models.AssessmentRecord) error {
	record.TenantID = repo.TenantID
	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *AssessmentMongoRepository) FindAll(ctx context.Context) ([]models.AssessmentRecord, error) {
	filter := bson.M{"tenantId": repo.TenantID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	records := []models.AssessmentRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}

func (repo *AssessmentMongoRepository) FindByID(ctx context.Context, recordID string) (*models.AssessmentRecord, error) {
	var record models.AssessmentRecord
	filter := bson.M{"_id": recordID, "tenantId": repo.TenantID}
	err := repo.Collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (repo *AssessmentMongoRepository) DeleteByID(ctx context.Context, recordID string) error {
	filter := bson.M{"_id": recordID, "tenantId": repo.TenantID}
	result, err := repo.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrAssessmentNotFound(recordID)
	}
	return nil
}

func (repo *AssessmentMongoRepository) ReplaceAll(ctx context.Context, records []models.AssessmentRecord) error {
	_, err := repo.Collection.DeleteMany(ctx, bson.M{"tenantId": repo.TenantID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return repo.BulkInsert(ctx, records)
}

func (repo *AssessmentMongoRepository) BulkInsert(ctx context.Context, records []models.AssessmentRecord) error {
	if len(records) == 0 {
		return nil
	}
	documents := make([]interface{}, 0, len(records))
	for idx := range records {
		records[idx].TenantID = repo.TenantID
		documents = append(documents, records[idx])
	}
	_, err := repo.Collection.InsertMany(ctx, documents)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
