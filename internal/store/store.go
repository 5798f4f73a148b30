package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	KindSieve  = "sieve"
	KindTwoSum = "two_sum"

	maxRecent = 100
)

// Run is one recorded computation. Sieve runs fill N, Count, Last;
// two-sum runs fill Nums, Target, Method, Found, I and J.
type Run struct {
	Kind      string    `bson:"kind" json:"kind"`
	N         int       `bson:"n,omitempty" json:"n,omitempty"`
	Count     int       `bson:"count,omitempty" json:"count,omitempty"`
	Last      int       `bson:"last,omitempty" json:"last,omitempty"`
	ElapsedMS int64     `bson:"elapsed_ms" json:"elapsed_ms"`
	Nums      []int     `bson:"nums,omitempty" json:"nums,omitempty"`
	Target    int       `bson:"target,omitempty" json:"target,omitempty"`
	Method    string    `bson:"method,omitempty" json:"method,omitempty"`
	Found     bool      `bson:"found,omitempty" json:"found,omitempty"`
	I         int       `bson:"i,omitempty" json:"i"`
	J         int       `bson:"j,omitempty" json:"j"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Recorder persists runs and lists the most recent ones.
type Recorder interface {
	Record(ctx context.Context, run Run) error
	Recent(ctx context.Context, limit int) ([]Run, error)
	Ping(ctx context.Context) error
}

type MongoRunStore struct {
	coll *mongo.Collection
}

// NewMongoRunStore sets up the runs collection and its created_at index.
func NewMongoRunStore(ctx context.Context, client *mongo.Client, dbName string) (*MongoRunStore, error) {
	coll := client.Database(dbName).Collection("runs")
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	return &MongoRunStore{coll: coll}, nil
}

func (s *MongoRunStore) Record(ctx context.Context, run Run) error {
	if run.Kind == "" {
		return errors.New("missing run kind")
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	_, err := s.coll.InsertOne(ctx, run)
	return err
}

// Recent returns up to limit runs, newest first. limit is clamped to [1, 100].
func (s *MongoRunStore) Recent(ctx context.Context, limit int) ([]Run, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(ClampLimit(limit)))
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	out := make([]Run, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoRunStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}

// ClampLimit bounds a requested page size to [1, 100].
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxRecent {
		return maxRecent
	}
	return limit
}
