package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/lemonbridge/pkg/billing"
)

const eventsCollection = "webhook_events"

// MongoEventArchive implements billing.EventArchive, keeping raw webhook
// deliveries in a capped-growth audit collection.
type MongoEventArchive struct {
	collection *mongo.Collection
}

// NewMongoEventArchive creates a webhook event archive in the given database.
func NewMongoEventArchive(db *mongo.Database) *MongoEventArchive {
	if db == nil {
		panic("storage: mongo database is required")
	}
	return &MongoEventArchive{collection: db.Collection(eventsCollection)}
}

type eventDocument struct {
	EventName  string    `bson:"event_name"`
	UserID     string    `bson:"user_id,omitempty"`
	TestMode   bool      `bson:"test_mode"`
	ReceivedAt time.Time `bson:"received_at"`
	Payload    string    `bson:"payload"`
}

func (a *MongoEventArchive) Archive(ctx context.Context, event billing.Event) error {
	_, err := a.collection.InsertOne(ctx, eventDocument{
		EventName:  event.EventName,
		UserID:     event.UserID,
		TestMode:   event.TestMode,
		ReceivedAt: event.ReceivedAt,
		Payload:    string(event.Payload),
	})
	return err
}
