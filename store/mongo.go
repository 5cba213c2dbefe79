package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"guitar_square_backend/models"
)

const (
	categoriesColl = "categories"
	usersColl      = "users"
	productsColl   = "products"
	bookingsColl   = "bookings"
	paymentsColl   = "payments"
	reportsColl    = "reports"
	feedbacksColl  = "feedbacks"
)

// Mongo implements Store over a shared, long-lived client. The client is
// opened once at startup and closed on shutdown via Disconnect.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Categories(ctx context.Context) ([]models.Category, error) {
	cursor, err := m.db.Collection(categoriesColl).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (m *Mongo) CategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := m.db.Collection(categoriesColl).FindOne(ctx, bson.M{"categoryName": name}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (m *Mongo) InsertCategory(ctx context.Context, category *models.Category) error {
	_, err := m.db.Collection(categoriesColl).InsertOne(ctx, category)
	return err
}

func (m *Mongo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := m.db.Collection(usersColl).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Mongo) InsertUser(ctx context.Context, user *models.User) (string, error) {
	return m.insertOne(ctx, usersColl, user)
}

func (m *Mongo) VerifyUser(ctx context.Context, email string) (int64, error) {
	res, err := m.db.Collection(usersColl).UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"isVerified": true}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (m *Mongo) SoftDeleteUser(ctx context.Context, email string) (int64, error) {
	var removed int64
	err := m.withTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := m.db.Collection(usersColl).UpdateOne(sc,
			bson.M{"email": email},
			bson.M{"$set": bson.M{"isDeleted": true}}); err != nil {
			return err
		}
		res, err := m.db.Collection(productsColl).DeleteMany(sc, bson.M{"sellerEmail": email})
		if err != nil {
			return err
		}
		removed = res.DeletedCount
		return nil
	})
	return removed, err
}

func (m *Mongo) UsersByRole(ctx context.Context, role string) ([]models.User, error) {
	cursor, err := m.db.Collection(usersColl).Find(ctx, bson.M{"role": role, "isDeleted": false})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *Mongo) ProductsBySeller(ctx context.Context, email string) ([]models.Product, error) {
	return m.findProducts(ctx, bson.M{"sellerEmail": email})
}

func (m *Mongo) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return m.findProducts(ctx, bson.M{"categoryId": categoryID, "isSold": false})
}

func (m *Mongo) AdvertisedProducts(ctx context.Context) ([]models.Product, error) {
	return m.findProducts(ctx, bson.M{"isAdvertised": true, "isSold": false})
}

func (m *Mongo) findProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := m.db.Collection(productsColl).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (m *Mongo) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var product models.Product
	err = m.db.Collection(productsColl).FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (m *Mongo) InsertProduct(ctx context.Context, product *models.Product) (string, error) {
	return m.insertOne(ctx, productsColl, product)
}

func (m *Mongo) DeleteProduct(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := m.db.Collection(productsColl).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *Mongo) SetAdvertised(ctx context.Context, id string, advertised bool) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := m.db.Collection(productsColl).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"isAdvertised": advertised}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (m *Mongo) BookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	cursor, err := m.db.Collection(bookingsColl).Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (m *Mongo) BookingExists(ctx context.Context, email, productID string) (bool, error) {
	count, err := m.db.Collection(bookingsColl).CountDocuments(ctx,
		bson.M{"email": email, "productId": productID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *Mongo) InsertBooking(ctx context.Context, booking *models.Booking) (string, error) {
	return m.insertOne(ctx, bookingsColl, booking)
}

func (m *Mongo) RecordPayment(ctx context.Context, payment *models.Payment) (string, error) {
	oid, err := parseID(payment.ProductID)
	if err != nil {
		return "", err
	}
	var insertedID string
	err = m.withTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := m.db.Collection(paymentsColl).InsertOne(sc, payment)
		if err != nil {
			return err
		}
		if iid, ok := res.InsertedID.(primitive.ObjectID); ok {
			insertedID = iid.Hex()
		}
		_, err = m.db.Collection(productsColl).UpdateOne(sc,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"isSold": true}})
		return err
	})
	return insertedID, err
}

func (m *Mongo) InsertReport(ctx context.Context, report *models.Report) (string, error) {
	return m.insertOne(ctx, reportsColl, report)
}

func (m *Mongo) Reports(ctx context.Context) ([]models.Report, error) {
	cursor, err := m.db.Collection(reportsColl).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (m *Mongo) DeleteReportCascade(ctx context.Context, id string) (int64, int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, 0, err
	}

	var report models.Report
	err = m.db.Collection(reportsColl).FindOne(ctx, bson.M{"_id": oid}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, 0, ErrNotFound
	}
	if err != nil {
		return 0, 0, err
	}

	productOID, err := parseID(report.ProductID)
	if err != nil {
		return 0, 0, err
	}

	var productsRemoved, reportsRemoved int64
	err = m.withTransaction(ctx, func(sc mongo.SessionContext) error {
		pres, err := m.db.Collection(productsColl).DeleteOne(sc, bson.M{"_id": productOID})
		if err != nil {
			return err
		}
		productsRemoved = pres.DeletedCount
		rres, err := m.db.Collection(reportsColl).DeleteMany(sc, bson.M{"productId": report.ProductID})
		if err != nil {
			return err
		}
		reportsRemoved = rres.DeletedCount
		return nil
	})
	return productsRemoved, reportsRemoved, err
}

func (m *Mongo) InsertFeedback(ctx context.Context, feedback *models.Feedback) (string, error) {
	return m.insertOne(ctx, feedbacksColl, feedback)
}

func (m *Mongo) insertOne(ctx context.Context, coll string, doc interface{}) (string, error) {
	res, err := m.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

func (m *Mongo) withTransaction(ctx context.Context, fn func(mongo.SessionContext) error) error {
	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
