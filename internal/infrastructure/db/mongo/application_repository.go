package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
)

const collectionApplications = "applications"

// ApplicationRepository implements ports.ApplicationRepository using MongoDB.
type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications)}
}

type applicationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	JobID       string             `bson:"job_id"`
	ApplicantID string             `bson:"applicant_id"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// Create inserts a new application. The compound unique index on
// (job_id, applicant_id) makes double-applying a store conflict, closing
// the race the service's pre-check cannot.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := applicationDoc{
		ID:          primitive.NewObjectID(),
		JobID:       app.JobID,
		ApplicantID: app.ApplicantID,
		Status:      string(app.Status),
		CreatedAt:   app.CreatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.DuplicateConflict("You have already applied for this job.")
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := doc.toDomain()
	return &created, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	return r.findOne(ctx, bson.M{"job_id": jobID, "applicant_id": applicantID})
}

func (r *ApplicationRepository) findOne(ctx context.Context, filter bson.M) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc applicationDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find application: %w", err)
	}

	app := doc.toDomain()
	return &app, nil
}

func (r *ApplicationRepository) FindByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	return r.findMany(ctx, bson.M{"applicant_id": applicantID})
}

func (r *ApplicationRepository) FindByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	return r.findMany(ctx, bson.M{"job_id": jobID})
}

func (r *ApplicationRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []applicationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}

	apps := make([]domain.Application, 0, len(docs))
	for _, doc := range docs {
		apps = append(apps, doc.toDomain())
	}
	return apps, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid application id %q", id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": string(status)}}
	if _, err := r.col.UpdateByID(ctx, oid, update); err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

// EnsureIndexes creates the one-application-per-job-per-seeker constraint
// and the listing indexes.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "applicant_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "applicant_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (d applicationDoc) toDomain() domain.Application {
	return domain.Application{
		ID:          d.ID.Hex(),
		JobID:       d.JobID,
		ApplicantID: d.ApplicantID,
		Status:      domain.ApplicationStatus(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}
