package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/complaintdesk/portal/internal/core/domain"
)

const assignmentsCollection = "complaint_mappings"

type AssignmentRepository struct {
	coll *mongo.Collection
}

func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{coll: db.Collection(assignmentsCollection)}
}

type assignmentDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ComplaintID  string             `bson:"complaint_id"`
	EngineerName string             `bson:"engineer_name"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (r *AssignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := assignmentDoc{
		ComplaintID:  assignment.ComplaintID,
		EngineerName: assignment.EngineerName,
		CreatedAt:    assignment.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert assignment: %w", err)
	}

	created := *assignment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AssignmentRepository) ListByComplaint(ctx context.Context, complaintID string) ([]domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"complaint_id": complaintID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer cur.Close(ctx)

	var assignments []domain.Assignment
	for cur.Next(ctx) {
		var doc assignmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode assignment: %w", err)
		}
		assignments = append(assignments, domain.Assignment{
			ID:           doc.ID.Hex(),
			ComplaintID:  doc.ComplaintID,
			EngineerName: doc.EngineerName,
			CreatedAt:    doc.CreatedAt.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

// EnsureIndexes creates the lookup index on complaint_id. The index is not
// unique: multiple assignments per complaint are allowed.
func (r *AssignmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "complaint_id", Value: 1}},
	})
	return err
}
