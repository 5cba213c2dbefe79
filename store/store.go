package store

import (
	"context"
	"errors"

	"guitar_square_backend/models"
)

var (
	// ErrNotFound is returned when a filter matches no document.
	ErrNotFound = errors.New("store: not found")
	// ErrInvalidID is returned when an id path parameter is not a valid
	// document id.
	ErrInvalidID = errors.New("store: invalid id")
)

// Store is the persistence surface consumed by the handlers. The production
// implementation is Mongo; tests substitute an in-memory one.
type Store interface {
	Categories(ctx context.Context) ([]models.Category, error)
	CategoryByName(ctx context.Context, name string) (*models.Category, error)
	InsertCategory(ctx context.Context, category *models.Category) error

	UserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) (string, error)
	VerifyUser(ctx context.Context, email string) (int64, error)
	// SoftDeleteUser marks the user deleted and hard-deletes every product
	// they listed as seller, atomically. Returns the product count removed.
	SoftDeleteUser(ctx context.Context, email string) (int64, error)
	UsersByRole(ctx context.Context, role string) ([]models.User, error)

	ProductsBySeller(ctx context.Context, email string) ([]models.Product, error)
	ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	AdvertisedProducts(ctx context.Context) ([]models.Product, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	InsertProduct(ctx context.Context, product *models.Product) (string, error)
	DeleteProduct(ctx context.Context, id string) (int64, error)
	SetAdvertised(ctx context.Context, id string, advertised bool) (int64, error)

	BookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	BookingExists(ctx context.Context, email, productID string) (bool, error)
	InsertBooking(ctx context.Context, booking *models.Booking) (string, error)

	// RecordPayment inserts the payment and flips the referenced product's
	// isSold flag, atomically.
	RecordPayment(ctx context.Context, payment *models.Payment) (string, error)

	InsertReport(ctx context.Context, report *models.Report) (string, error)
	Reports(ctx context.Context) ([]models.Report, error)
	// DeleteReportCascade removes the report's product and every report
	// referencing that product, atomically. Returns (products, reports)
	// removed.
	DeleteReportCascade(ctx context.Context, id string) (int64, int64, error)

	InsertFeedback(ctx context.Context, feedback *models.Feedback) (string, error)
}
