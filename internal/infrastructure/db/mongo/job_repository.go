package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
)

const collectionJobs = "jobs"

// JobRepository implements ports.JobRepository using MongoDB.
type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

type jobDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	Requirements    []string           `bson:"requirements,omitempty"`
	Salary          float64            `bson:"salary"`
	Location        string             `bson:"location"`
	JobType         string             `bson:"job_type"`
	ExperienceLevel string             `bson:"experience_level"`
	Position        int                `bson:"position"`
	CompanyID       string             `bson:"company_id"`
	CreatedBy       string             `bson:"created_by"`
	ApplicationIDs  []string           `bson:"application_ids,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toJobDoc(job)
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := doc.toDomain()
	return &created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	job := doc.toDomain()
	return &job, nil
}

// Search matches keyword against title and description, case-insensitively.
// An empty keyword returns every posting, newest first.
func (r *JobRepository) Search(ctx context.Context, keyword string) ([]domain.Job, error) {
	filter := bson.M{}
	if keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}}
	}
	return r.findMany(ctx, filter)
}

func (r *JobRepository) FindByCreator(ctx context.Context, userID string) ([]domain.Job, error) {
	return r.findMany(ctx, bson.M{"created_by": userID})
}

func (r *JobRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []jobDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}

	jobs := make([]domain.Job, 0, len(docs))
	for _, doc := range docs {
		jobs = append(jobs, doc.toDomain())
	}
	return jobs, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

func (r *JobRepository) AttachApplication(ctx context.Context, jobID, applicationID string) error {
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return fmt.Errorf("invalid job id %q", jobID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"application_ids": applicationID}}
	if _, err := r.col.UpdateByID(ctx, oid, update); err != nil {
		return fmt.Errorf("attach application: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes search and ownership listings rely on.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func toJobDoc(j *domain.Job) jobDoc {
	return jobDoc{
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Salary:          j.Salary,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		Position:        j.Position,
		CompanyID:       j.CompanyID,
		CreatedBy:       j.CreatedBy,
		ApplicationIDs:  j.ApplicationIDs,
		CreatedAt:       j.CreatedAt,
	}
}

func (d jobDoc) toDomain() domain.Job {
	return domain.Job{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Description:     d.Description,
		Requirements:    d.Requirements,
		Salary:          d.Salary,
		Location:        d.Location,
		JobType:         d.JobType,
		ExperienceLevel: d.ExperienceLevel,
		Position:        d.Position,
		CompanyID:       d.CompanyID,
		CreatedBy:       d.CreatedBy,
		ApplicationIDs:  d.ApplicationIDs,
		CreatedAt:       d.CreatedAt,
	}
}
