package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmcdole/cinefind/internal/domain"
)

const mongoCollection = "search_counts"

type searchCountDoc struct {
	ID         string `bson:"_id"`
	SearchTerm string `bson:"searchTerm"`
	Count      int64  `bson:"count"`
	MovieID    int64  `bson:"movieId"`
	Title      string `bson:"title"`
	PosterURL  string `bson:"posterUrl"`
	UpdatedAt  int64  `bson:"updatedAt"`
}

// MongoStore implements domain.PopularityStore on a MongoDB collection
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	now        func() time.Time
}

// NewMongoStore connects to uri, verifies the connection and ensures the
// unique searchTerm index exists.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	s := NewMongoStoreFromClient(client, dbName)
	_, err = s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "searchTerm", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo index: %w", err)
	}
	return s, nil
}

// NewMongoStoreFromClient wraps an existing client
func NewMongoStoreFromClient(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{
		client:     client,
		collection: client.Database(dbName).Collection(mongoCollection),
		now:        time.Now,
	}
}

// incrementUpdate builds the upsert that bumps count and fills the
// descriptive fields only when the document is created.
func incrementUpdate(doc domain.SearchDocument, id string, now time.Time) bson.M {
	return bson.M{
		"$inc": bson.M{"count": int64(1)},
		"$set": bson.M{"updatedAt": now.Unix()},
		"$setOnInsert": bson.M{
			"_id":       id,
			"movieId":   doc.MovieID,
			"title":     doc.Title,
			"posterUrl": doc.PosterURL,
		},
	}
}

func (s *MongoStore) Increment(ctx context.Context, doc domain.SearchDocument) (domain.SearchDocument, error) {
	if doc.SearchTerm == "" {
		return domain.SearchDocument{}, ErrEmptyTerm
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out searchCountDoc
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"searchTerm": doc.SearchTerm},
		incrementUpdate(doc, uuid.NewString(), s.now()),
		opts,
	).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.SearchDocument{}, domain.ErrNotFound
		}
		return domain.SearchDocument{}, err
	}
	return countDocToDomain(out), nil
}

func (s *MongoStore) Top(ctx context.Context, n int) ([]domain.SearchDocument, error) {
	if n <= 0 {
		return []domain.SearchDocument{}, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "count", Value: -1}, {Key: "searchTerm", Value: 1}}).
		SetLimit(int64(n))

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []searchCountDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.SearchDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, countDocToDomain(d))
	}
	return out, nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func countDocToDomain(d searchCountDoc) domain.SearchDocument {
	return domain.SearchDocument{
		ID:         d.ID,
		SearchTerm: d.SearchTerm,
		Count:      d.Count,
		MovieID:    d.MovieID,
		Title:      d.Title,
		PosterURL:  d.PosterURL,
		UpdatedAt:  time.Unix(d.UpdatedAt, 0).UTC(),
	}
}
