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

const collectionUsers = "users"

// UserRepository implements ports.UserRepository using MongoDB.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Fullname     string             `bson:"fullname"`
	Email        string             `bson:"email"`
	PhoneNumber  string             `bson:"phone_number"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	Profile      profileDoc         `bson:"profile"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

type profileDoc struct {
	Bio                string   `bson:"bio,omitempty"`
	Skills             []string `bson:"skills,omitempty"`
	Resume             string   `bson:"resume,omitempty"`
	ResumeOriginalName string   `bson:"resume_original_name,omitempty"`
	ProfilePhoto       string   `bson:"profile_photo,omitempty"`
	CompanyID          string   `bson:"company_id,omitempty"`
}

// Create inserts a new account. A duplicate-key error on the unique email
// index becomes a domain conflict: two racing registrations resolve here,
// not in the service's pre-check.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toUserDoc(user)
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.DuplicateConflict("User already exists with this email.")
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := doc.toDomain()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user := doc.toDomain()
	return &user, nil
}

// Update replaces the mutable fields of an account. Changing the email can
// still trip the unique index, surfaced as the same conflict as Create.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return fmt.Errorf("invalid user id %q", user.ID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"fullname":     user.Fullname,
		"email":        user.Email,
		"phone_number": user.PhoneNumber,
		"profile":      toProfileDoc(user.Profile),
		"updated_at":   user.UpdatedAt,
	}}

	if _, err := r.col.UpdateByID(ctx, oid, update); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.DuplicateConflict("User already exists with this email.")
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique email index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		Fullname:     u.Fullname,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Profile:      toProfileDoc(u.Profile),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toProfileDoc(p domain.Profile) profileDoc {
	return profileDoc{
		Bio:                p.Bio,
		Skills:             p.Skills,
		Resume:             p.Resume,
		ResumeOriginalName: p.ResumeOriginalName,
		ProfilePhoto:       p.ProfilePhoto,
		CompanyID:          p.CompanyID,
	}
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:           d.ID.Hex(),
		Fullname:     d.Fullname,
		Email:        d.Email,
		PhoneNumber:  d.PhoneNumber,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		Profile: domain.Profile{
			Bio:                d.Profile.Bio,
			Skills:             d.Profile.Skills,
			Resume:             d.Profile.Resume,
			ResumeOriginalName: d.Profile.ResumeOriginalName,
			ProfilePhoto:       d.Profile.ProfilePhoto,
			CompanyID:          d.Profile.CompanyID,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
