package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jtng3/taskade/internal/domain"
)

// TaskListRepository implements domain.TaskListRepository using MongoDB.
// Member identifiers are stored in their hex string form, matching how the
// domain layer compares them.
type TaskListRepository struct {
	col *mongo.Collection
}

type taskListDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	CreatedAt string             `bson:"createdAt"`
	UserIDs   []string           `bson:"userIds"`
}

func (d *taskListDoc) toDomain() *domain.TaskList {
	return &domain.TaskList{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		CreatedAt: d.CreatedAt,
		UserIDs:   d.UserIDs,
	}
}

func (r *TaskListRepository) Create(ctx context.Context, list *domain.TaskList) error {
	doc := taskListDoc{
		Title:     list.Title,
		CreatedAt: list.CreatedAt,
		UserIDs:   list.UserIDs,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert task list: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	list.ID = oid.Hex()
	return nil
}

func (r *TaskListRepository) GetByID(ctx context.Context, id string) (*domain.TaskList, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc taskListDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query task list by id: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TaskListRepository) ListByMember(ctx context.Context, userID string) ([]domain.TaskList, error) {
	cursor, err := r.col.Find(ctx, bson.M{"userIds": userID})
	if err != nil {
		return nil, fmt.Errorf("query task lists by member: %w", err)
	}

	var docs []taskListDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode task lists: %w", err)
	}

	lists := make([]domain.TaskList, 0, len(docs))
	for i := range docs {
		lists = append(lists, *docs[i].toDomain())
	}
	return lists, nil
}

func (r *TaskListRepository) UpdateTitle(ctx context.Context, id, title string) (*domain.TaskList, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{"title": title}})
}

func (r *TaskListRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete task list: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *TaskListRepository) AppendMember(ctx context.Context, id, userID string) (*domain.TaskList, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$push": bson.M{"userIds": userID}})
}

func (r *TaskListRepository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*domain.TaskList, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc taskListDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update task list: %w", err)
	}
	return doc.toDomain(), nil
}
