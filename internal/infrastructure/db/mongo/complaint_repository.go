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

	"github.com/complaintdesk/portal/internal/core/domain"
)

const complaintsCollection = "complaints"

type ComplaintRepository struct {
	coll *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{coll: db.Collection(complaintsCollection)}
}

type complaintDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Contact     string             `bson:"contact"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (r *ComplaintRepository) Create(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := complaintDoc{
		Name:        complaint.Name,
		Email:       complaint.Email,
		Contact:     complaint.Contact,
		Description: complaint.Description,
		CreatedAt:   complaint.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert complaint: %w", err)
	}

	created := *complaint
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc complaintDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}
	return &domain.Complaint{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Email:       doc.Email,
		Contact:     doc.Contact,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt.UTC(),
	}, nil
}

func (r *ComplaintRepository) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	defer cur.Close(ctx)

	var complaints []domain.Complaint
	for cur.Next(ctx) {
		var doc complaintDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode complaint: %w", err)
		}
		complaints = append(complaints, domain.Complaint{
			ID:          doc.ID.Hex(),
			Name:        doc.Name,
			Email:       doc.Email,
			Contact:     doc.Contact,
			Description: doc.Description,
			CreatedAt:   doc.CreatedAt.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return complaints, nil
}
