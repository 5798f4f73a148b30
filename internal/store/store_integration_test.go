package store

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func connectTestMongo(t *testing.T) (*mongo.Client, func()) {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("skipping: cannot connect to mongo: %v", err)
	}
	if err := cli.Ping(ctx, nil); err != nil {
		_ = cli.Disconnect(context.Background())
		t.Skipf("skipping: mongo ping failed: %v", err)
	}
	cleanup := func() { _ = cli.Disconnect(context.Background()) }
	return cli, cleanup
}

func TestMongoRunStore_RecordAndRecent(t *testing.T) {
	cli, done := connectTestMongo(t)
	defer done()
	ctx := context.Background()
	s, err := NewMongoRunStore(ctx, cli, "primesum_test")
	if err != nil { t.Fatalf("new store: %v", err) }
	_ = s.coll.Drop(ctx)
	s, err = NewMongoRunStore(ctx, cli, "primesum_test")
	if err != nil { t.Fatalf("recreate store: %v", err) }

	base := time.Now().UTC().Truncate(time.Millisecond)
	if err := s.Record(ctx, Run{Kind: KindSieve, N: 10, Count: 4, Last: 7, CreatedAt: base}); err != nil { t.Fatalf("record sieve: %v", err) }
	if err := s.Record(ctx, Run{Kind: KindTwoSum, Nums: []int{3, 57}, Target: 60, Method: "brute", Found: true, I: 0, J: 1, CreatedAt: base.Add(time.Second)}); err != nil { t.Fatalf("record two-sum: %v", err) }

	runs, err := s.Recent(ctx, 10)
	if err != nil { t.Fatalf("recent: %v", err) }
	if len(runs) != 2 { t.Fatalf("len=%d", len(runs)) }
	if runs[0].Kind != KindTwoSum || runs[1].Kind != KindSieve { t.Fatalf("order: %s,%s", runs[0].Kind, runs[1].Kind) }
	if runs[1].Last != 7 || runs[1].Count != 4 { t.Fatalf("sieve run=%+v", runs[1]) }

	one, err := s.Recent(ctx, 0)
	if err != nil || len(one) != 1 { t.Fatalf("clamped recent len=%d err=%v", len(one), err) }
	if err := s.Ping(ctx); err != nil { t.Fatalf("ping: %v", err) }
}

func TestMongoRunStore_RejectsMissingKind(t *testing.T) {
	cli, done := connectTestMongo(t)
	defer done()
	s, err := NewMongoRunStore(context.Background(), cli, "primesum_test")
	if err != nil { t.Fatalf("new store: %v", err) }
	if err := s.Record(context.Background(), Run{}); err == nil { t.Fatalf("expected error") }
}
