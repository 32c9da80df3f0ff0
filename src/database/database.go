package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo is the single store handle. Constructed once at startup and injected
// into every service; there are no package-level collections.
type Mongo struct {
	client *mongo.Client

	Employees   *mongo.Collection
	Jobs        *mongo.Collection
	Contracts   *mongo.Collection
	Payslips    *mongo.Collection
	Attendance  *mongo.Collection
	Checkpoints *mongo.Collection
	Patrols     *mongo.Collection
	Defects     *mongo.Collection
	Users       *mongo.Collection
}

// ConnectMongoDB connects, pings and binds the collections.
func ConnectMongoDB(uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	log.Println("✅ MongoDB connected successfully")

	db := client.Database(dbName)
	m := &Mongo{
		client:      client,
		Employees:   db.Collection("employees"),
		Jobs:        db.Collection("jobs"),
		Contracts:   db.Collection("contracts"),
		Payslips:    db.Collection("payslips"),
		Attendance:  db.Collection("attendance_sessions"),
		Checkpoints: db.Collection("checkpoints"),
		Patrols:     db.Collection("patrol_checkins"),
		Defects:     db.Collection("defects"),
		Users:       db.Collection("users"),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// ensureIndexes creates the indexes the services rely on. The partial unique
// index on attendance closes the clock-in race: two concurrent clock-ins for
// the same employee cannot both insert an open session.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := m.Attendance.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "employeeId", Value: 1}},
		Options: options.Index().
			SetName("one_open_session_per_employee").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"open": true}),
	})
	if err != nil {
		return err
	}

	_, err = m.Attendance.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName("sessions_by_employee_date"),
	})
	if err != nil {
		return err
	}

	_, err = m.Patrols.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "checkpointId", Value: 1}, {Key: "checkedAt", Value: -1}},
		Options: options.Index().SetName("checkins_by_checkpoint_time"),
	})
	if err != nil {
		return err
	}

	_, err = m.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("users_email_unique").SetUnique(true),
	})
	return err
}

// Disconnect closes the client. Called on shutdown.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
