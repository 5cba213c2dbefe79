package handlers_test

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"guitar_square_backend/models"
	"guitar_square_backend/store"
)

// memStore is an in-memory store.Store used by the handler tests.
type memStore struct {
	mu         sync.Mutex
	categories []models.Category
	users      map[string]*models.User
	products   map[string]*models.Product
	bookings   []models.Booking
	payments   []models.Payment
	reports    map[string]*models.Report
	feedbacks  []models.Feedback
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]*models.User{},
		products: map[string]*models.Product{},
		reports:  map[string]*models.Report{},
	}
}

func parseHex(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return store.ErrInvalidID
	}
	return nil
}

func (m *memStore) Categories(ctx context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Category{}, m.categories...), nil
}

func (m *memStore) CategoryByName(ctx context.Context, name string) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.categories {
		if m.categories[i].Name == name {
			category := m.categories[i]
			return &category, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) InsertCategory(ctx context.Context, category *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	category.ID = primitive.NewObjectID()
	m.categories = append(m.categories, *category)
	return nil
}

func (m *memStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *memStore) InsertUser(ctx context.Context, user *models.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = primitive.NewObjectID()
	m.users[user.Email] = user
	return user.ID.Hex(), nil
}

func (m *memStore) VerifyUser(ctx context.Context, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[email]
	if !ok {
		return 0, nil
	}
	user.IsVerified = true
	return 1, nil
}

func (m *memStore) SoftDeleteUser(ctx context.Context, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[email]; ok {
		user.IsDeleted = true
	}
	var removed int64
	for id, product := range m.products {
		if product.SellerEmail == email {
			delete(m.products, id)
			removed++
		}
	}
	return removed, nil
}

func (m *memStore) UsersByRole(ctx context.Context, role string) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := []models.User{}
	for _, user := range m.users {
		if user.Role == role && !user.IsDeleted {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (m *memStore) ProductsBySeller(ctx context.Context, email string) ([]models.Product, error) {
	return m.filterProducts(func(p *models.Product) bool {
		return p.SellerEmail == email
	}), nil
}

func (m *memStore) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return m.filterProducts(func(p *models.Product) bool {
		return p.CategoryID == categoryID && !p.IsSold
	}), nil
}

func (m *memStore) AdvertisedProducts(ctx context.Context) ([]models.Product, error) {
	return m.filterProducts(func(p *models.Product) bool {
		return p.IsAdvertised && !p.IsSold
	}), nil
}

func (m *memStore) filterProducts(match func(*models.Product) bool) []models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	products := []models.Product{}
	for _, product := range m.products {
		if match(product) {
			products = append(products, *product)
		}
	}
	return products
}

func (m *memStore) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	if err := parseHex(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	product, ok := m.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (m *memStore) InsertProduct(ctx context.Context, product *models.Product) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	product.ID = primitive.NewObjectID()
	m.products[product.ID.Hex()] = product
	return product.ID.Hex(), nil
}

func (m *memStore) DeleteProduct(ctx context.Context, id string) (int64, error) {
	if err := parseHex(id); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return 0, nil
	}
	delete(m.products, id)
	return 1, nil
}

func (m *memStore) SetAdvertised(ctx context.Context, id string, advertised bool) (int64, error) {
	if err := parseHex(id); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	product, ok := m.products[id]
	if !ok {
		return 0, nil
	}
	product.IsAdvertised = advertised
	return 1, nil
}

func (m *memStore) BookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bookings := []models.Booking{}
	for _, booking := range m.bookings {
		if booking.Email == email {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (m *memStore) BookingExists(ctx context.Context, email, productID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, booking := range m.bookings {
		if booking.Email == email && booking.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) InsertBooking(ctx context.Context, booking *models.Booking) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking.ID = primitive.NewObjectID()
	m.bookings = append(m.bookings, *booking)
	return booking.ID.Hex(), nil
}

func (m *memStore) RecordPayment(ctx context.Context, payment *models.Payment) (string, error) {
	if err := parseHex(payment.ProductID); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	payment.ID = primitive.NewObjectID()
	m.payments = append(m.payments, *payment)
	if product, ok := m.products[payment.ProductID]; ok {
		product.IsSold = true
	}
	return payment.ID.Hex(), nil
}

func (m *memStore) InsertReport(ctx context.Context, report *models.Report) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	report.ID = primitive.NewObjectID()
	m.reports[report.ID.Hex()] = report
	return report.ID.Hex(), nil
}

func (m *memStore) Reports(ctx context.Context) ([]models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	reports := []models.Report{}
	for _, report := range m.reports {
		reports = append(reports, *report)
	}
	return reports, nil
}

func (m *memStore) DeleteReportCascade(ctx context.Context, id string) (int64, int64, error) {
	if err := parseHex(id); err != nil {
		return 0, 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	report, ok := m.reports[id]
	if !ok {
		return 0, 0, store.ErrNotFound
	}
	var productsRemoved int64
	if _, ok := m.products[report.ProductID]; ok {
		delete(m.products, report.ProductID)
		productsRemoved = 1
	}
	var reportsRemoved int64
	for rid, other := range m.reports {
		if other.ProductID == report.ProductID {
			delete(m.reports, rid)
			reportsRemoved++
		}
	}
	return productsRemoved, reportsRemoved, nil
}

func (m *memStore) InsertFeedback(ctx context.Context, feedback *models.Feedback) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	feedback.ID = primitive.NewObjectID()
	m.feedbacks = append(m.feedbacks, *feedback)
	return feedback.ID.Hex(), nil
}

var _ store.Store = (*memStore)(nil)
