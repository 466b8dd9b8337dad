package reports

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	errs "github.com/elyebdri/maurifind/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("reports")

	// Create indexes
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "locationName", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

// Create inserts the report with a fresh creation timestamp and fills in the
// assigned id.
func (r *Repository) Create(ctx context.Context, report *Report) error {
	report.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return err
	}

	report.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns one page of reports ordered by creation time descending,
// plus the total match count. Equality criteria run in the store; a search
// term forces the matching set into memory first, since the store offers no
// substring search over title and description.
func (r *Repository) List(ctx context.Context, filter Filter, limit, offset int) ([]Report, int64, error) {
	query := filter.Query()

	if filter.Search == "" {
		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetSkip(int64(offset)).
			SetLimit(int64(limit))

		cursor, err := r.collection.Find(ctx, query, opts)
		if err != nil {
			return nil, 0, err
		}
		defer cursor.Close(ctx)

		var reports []Report
		if err := cursor.All(ctx, &reports); err != nil {
			return nil, 0, err
		}
		if reports == nil {
			reports = []Report{}
		}

		total, err := r.collection.CountDocuments(ctx, query)
		if err != nil {
			return nil, 0, err
		}

		return reports, total, nil
	}

	all, err := r.findAll(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	matched := (Filter{Search: filter.Search}).Apply(all)
	total := int64(len(matched))

	if offset >= len(matched) {
		return []Report{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// GetByID returns (nil, nil) when no report exists under the id. Ids are
// opaque strings; anything that is not a stored id is simply not found.
func (r *Repository) GetByID(ctx context.Context, id string) (*Report, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var report Report
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &report, nil
}

// Update applies a moderation edit. The id and creation timestamp are never
// part of the update document.
func (r *Repository) Update(ctx context.Context, id string, update bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	delete(update, "_id")
	delete(update, "createdAt")

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a report (moderation only; no user-facing flow deletes).
func (r *Repository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Subscribe emits the full createdAt-descending collection snapshot once
// immediately and again after every collection change, until ctx is done.
// The change stream and the channel are released when ctx ends; consumers
// must not hold the channel past their own lifetime.
func (r *Repository) Subscribe(ctx context.Context) (<-chan []Report, error) {
	stream, err := r.collection.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, err
	}

	ch := make(chan []Report, 1)

	go func() {
		defer close(ch)
		defer stream.Close(context.Background())

		send := func() bool {
			snapshot, err := r.findAll(ctx, bson.M{})
			if err != nil {
				log.WithError(err).Warn("reports feed: snapshot query failed")
				return true
			}
			select {
			case ch <- snapshot:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !send() {
			return
		}
		for stream.Next(ctx) {
			if !send() {
				return
			}
		}
	}()

	return ch, nil
}

func (r *Repository) findAll(ctx context.Context, query bson.M) ([]Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []Report{}
	}
	return reports, nil
}
