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

const collectionCompanies = "companies"

// CompanyRepository implements ports.CompanyRepository using MongoDB.
type CompanyRepository struct {
	col *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{col: db.Collection(collectionCompanies)}
}

type companyDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Website     string             `bson:"website,omitempty"`
	Location    string             `bson:"location,omitempty"`
	Logo        string             `bson:"logo,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// Create inserts a new company. The unique name index turns racing
// registrations of the same name into a domain conflict.
func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toCompanyDoc(company)
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.DuplicateConflict("Company with this name already exists.")
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}

	created := doc.toDomain()
	return &created, nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CompanyRepository) FindByName(ctx context.Context, name string) (*domain.Company, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *CompanyRepository) findOne(ctx context.Context, filter bson.M) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc companyDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find company: %w", err)
	}

	company := doc.toDomain()
	return &company, nil
}

func (r *CompanyRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find companies: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []companyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}

	companies := make([]domain.Company, 0, len(docs))
	for _, doc := range docs {
		companies = append(companies, doc.toDomain())
	}
	return companies, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	oid, err := primitive.ObjectIDFromHex(company.ID)
	if err != nil {
		return fmt.Errorf("invalid company id %q", company.ID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        company.Name,
		"description": company.Description,
		"website":     company.Website,
		"location":    company.Location,
		"logo":        company.Logo,
	}}

	if _, err := r.col.UpdateByID(ctx, oid, update); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.DuplicateConflict("Company with this name already exists.")
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique name index and the owner listing index.
func (r *CompanyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func toCompanyDoc(c *domain.Company) companyDoc {
	return companyDoc{
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Location:    c.Location,
		Logo:        c.Logo,
		OwnerID:     c.OwnerID,
		CreatedAt:   c.CreatedAt,
	}
}

func (d companyDoc) toDomain() domain.Company {
	return domain.Company{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Website:     d.Website,
		Location:    d.Location,
		Logo:        d.Logo,
		OwnerID:     d.OwnerID,
		CreatedAt:   d.CreatedAt,
	}
}
