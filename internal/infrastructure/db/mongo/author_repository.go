package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkpress/content-api/internal/core/domain"
)

const authorsCollection = "authors"

type AuthorRepository struct {
	coll *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) *AuthorRepository {
	return &AuthorRepository{coll: db.Collection(authorsCollection)}
}

type authorDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Bio       string             `bson:"bio"`
	Birthdate time.Time          `bson:"birthdate"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
	DeletedAt *time.Time         `bson:"deleted_at,omitempty"`
}

func (d *authorDoc) toDomain() *domain.Author {
	return &domain.Author{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Bio:       d.Bio,
		Birthdate: d.Birthdate,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		DeletedAt: d.DeletedAt,
	}
}

func (r *AuthorRepository) Create(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := authorDoc{
		Name:      author.Name,
		Bio:       author.Bio,
		Birthdate: author.Birthdate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert author: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *AuthorRepository) FindByID(ctx context.Context, id string) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAuthorNotFound
	}

	var doc authorDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid, "deleted_at": nil}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}
	return doc.toDomain(), nil
}

// Update overwrites the mutable fields of an active author row.
func (r *AuthorRepository) Update(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(author.ID)
	if err != nil {
		return nil, domain.ErrAuthorNotFound
	}

	now := time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "deleted_at": nil},
		bson.M{"$set": bson.M{
			"name":       author.Name,
			"bio":        author.Bio,
			"birthdate":  author.Birthdate,
			"updated_at": now,
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("update author: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAuthorNotFound
	}

	author.UpdatedAt = now
	return author, nil
}

// SoftDelete stamps deleted_at on an active row. The row stays in the
// collection but vanishes from all default reads.
func (r *AuthorRepository) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAuthorNotFound
	}

	now := time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": now, "updated_at": now}},
	)
	if err != nil {
		return fmt.Errorf("soft-delete author: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAuthorNotFound
	}
	return nil
}

func (r *AuthorRepository) List(ctx context.Context) ([]domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"deleted_at": nil})
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer cursor.Close(ctx)

	authors := []domain.Author{}
	for cursor.Next(ctx) {
		var doc authorDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode author: %w", err)
		}
		authors = append(authors, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}
