package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	perrors "github.com/matzehuels/plansmith/pkg/errors"
)

const backendMongo = "mongo"

// Mongo defaults.
const (
	DefaultMongoDatabase = "plansmith"
	MongoCollection      = "plans"

	mongoConnectTimeout = 5 * time.Second
)

// MongoStore stores plans as documents in a MongoDB collection. Each
// document carries the summary fields next to the embedded plan so List
// can skip the geometry.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	now    func() time.Time
}

type mongoRecord struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Rooms     int       `bson:"rooms"`
	Area      float64   `bson:"area"`
	CreatedAt time.Time `bson:"createdAt"`
	Plan      plan.Plan `bson:"plan,omitempty"`
}

// NewMongoStore connects to uri and uses the plans collection of database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if err := perrors.ValidateURL(uri, "mongodb", "mongodb+srv"); err != nil {
		return nil, err
	}
	if database == "" {
		database = DefaultMongoDatabase
	}

	opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(mongoConnectTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, storageErr(err, "connect to mongo")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, storageErr(err, "ping mongo")
	}

	coll := client.Database(database).Collection(MongoCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, storageErr(err, "create index")
	}
	return &MongoStore{client: client, coll: coll, now: time.Now}, nil
}

// Save upserts p by id. createdAt is only written on insert.
func (s *MongoStore) Save(ctx context.Context, p *plan.Plan) (err error) {
	defer func(start time.Time) { observe(ctx, backendMongo, "save", start, err) }(time.Now())
	if err := checkPlan(p); err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"name":  p.Name,
			"rooms": len(p.Rooms),
			"area":  p.TotalArea(),
			"plan":  p,
		},
		"$setOnInsert": bson.M{"createdAt": s.now().UTC()},
	}
	_, err = s.coll.UpdateOne(ctx, bson.M{"_id": p.ID}, update, options.Update().SetUpsert(true))
	return storageErr(err, "save plan")
}

// Get loads the plan with the given id.
func (s *MongoStore) Get(ctx context.Context, id string) (p *plan.Plan, err error) {
	defer func(start time.Time) { observe(ctx, backendMongo, "get", start, err) }(time.Now())

	var rec mongoRecord
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound(id)
		}
		return nil, storageErr(err, "load plan")
	}
	return &rec.Plan, nil
}

// List returns every summary, newest first.
func (s *MongoStore) List(ctx context.Context) (out []Summary, err error) {
	defer func(start time.Time) { observe(ctx, backendMongo, "list", start, err) }(time.Now())

	opts := options.Find().
		SetProjection(bson.M{"plan": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storageErr(err, "list plans")
	}

	var recs []mongoRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, storageErr(err, "list plans")
	}
	out = make([]Summary, len(recs))
	for i, r := range recs {
		out[i] = Summary{ID: r.ID, Name: r.Name, Rooms: r.Rooms, Area: r.Area, CreatedAt: r.CreatedAt}
	}
	return out, nil
}

// Delete removes the plan with the given id.
func (s *MongoStore) Delete(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { observe(ctx, backendMongo, "delete", start, err) }(time.Now())

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storageErr(err, "delete plan")
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
