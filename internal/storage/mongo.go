package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"wealthwatch/internal/config"
	"wealthwatch/internal/models"
	"wealthwatch/internal/types"
)

const (
	usersCollection    = "users"
	expensesCollection = "expenses"
	budgetsCollection  = "budgets"
)

// MongoStorage persists each entity as an independent document, addressed by
// the opaque application identifier stored in the "id" field rather than the
// store's native _id. Connect must complete before any operation; operations
// on an unconnected store fail immediately instead of hanging.
type MongoStorage struct {
	cfg    *config.StorageConfig
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStorage creates an unconnected MongoDB-backed store.
func NewMongoStorage(cfg *config.StorageConfig) *MongoStorage {
	return &MongoStorage{cfg: cfg}
}

// Connect establishes the client, verifies the deployment is reachable, and
// ensures the unique index on users.email. Registration uniqueness is backed
// by this index, not only by the caller's check-then-create sequence.
func (s *MongoStorage) Connect(ctx context.Context) error {
	client, err := mongo.Connect(options.Client().
		ApplyURI(s.cfg.MongoURI).
		SetConnectTimeout(s.cfg.ConnectTimeout))
	if err != nil {
		return fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(s.cfg.MongoDatabase)

	_, err = db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to ensure email index: %w", err)
	}

	s.client = client
	s.db = db
	slog.Info("connected to mongodb", "database", s.cfg.MongoDatabase)
	return nil
}

// Disconnect closes the client.
func (s *MongoStorage) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	return err
}

// Ping verifies the store is connected and reachable.
func (s *MongoStorage) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrNotConnected
	}
	return s.client.Ping(ctx, nil)
}

func (s *MongoStorage) collection(name string) (*mongo.Collection, error) {
	if s.db == nil {
		return nil, ErrNotConnected
	}
	return s.db.Collection(name), nil
}

// GetUser returns the user with the given id.
func (s *MongoStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"id": id})
}

// GetUserByEmail returns the user with the given email.
func (s *MongoStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

func (s *MongoStorage) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	coll, err := s.collection(usersCollection)
	if err != nil {
		return nil, err
	}

	var doc userDoc
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return doc.toUser(), nil
}

// CreateUser assigns a fresh id and creation timestamp and inserts the user.
func (s *MongoStorage) CreateUser(ctx context.Context, user *models.User) error {
	coll, err := s.collection(usersCollection)
	if err != nil {
		return err
	}

	user.ID = bson.NewObjectID().Hex()
	user.CreatedAt = time.Now().UTC()

	_, err = coll.InsertOne(ctx, bson.M{
		"id":        user.ID,
		"email":     user.Email,
		"password":  user.Password,
		"name":      user.Name,
		"createdAt": user.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetExpenses returns the user's expenses sorted by date descending.
func (s *MongoStorage) GetExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	coll, err := s.collection(expensesCollection)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find expenses: %w", err)
	}

	var docs []expenseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode expenses: %w", err)
	}

	expenses := make([]models.Expense, 0, len(docs))
	for _, doc := range docs {
		expenses = append(expenses, *doc.toExpense())
	}
	return expenses, nil
}

// GetExpense returns the expense only when it exists and is owned by userID.
func (s *MongoStorage) GetExpense(ctx context.Context, id, userID string) (*models.Expense, error) {
	coll, err := s.collection(expensesCollection)
	if err != nil {
		return nil, err
	}

	var doc expenseDoc
	if err := coll.FindOne(ctx, bson.M{"id": id, "userId": userID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return doc.toExpense(), nil
}

// CreateExpense assigns a fresh id and creation timestamp and inserts the expense.
func (s *MongoStorage) CreateExpense(ctx context.Context, expense *models.Expense) error {
	coll, err := s.collection(expensesCollection)
	if err != nil {
		return err
	}

	expense.ID = bson.NewObjectID().Hex()
	expense.CreatedAt = time.Now().UTC()

	doc := bson.M{
		"id":        expense.ID,
		"userId":    expense.UserID,
		"title":     expense.Title,
		"amount":    expense.Amount.String(),
		"category":  expense.Category,
		"date":      expense.Date,
		"createdAt": expense.CreatedAt,
	}
	if expense.Description != "" {
		doc["description"] = expense.Description
	}
	if len(expense.Tags) > 0 {
		doc["tags"] = expense.Tags
	}

	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// UpdateExpense merges the non-nil update fields onto the owned document.
func (s *MongoStorage) UpdateExpense(ctx context.Context, id, userID string, update models.ExpenseUpdate) (*models.Expense, error) {
	coll, err := s.collection(expensesCollection)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Amount != nil {
		set["amount"] = update.Amount.String()
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}

	if len(set) == 0 {
		return s.GetExpense(ctx, id, userID)
	}

	var doc expenseDoc
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"id": id, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return doc.toExpense(), nil
}

// DeleteExpense removes the owned document, reporting whether anything was removed.
func (s *MongoStorage) DeleteExpense(ctx context.Context, id, userID string) (bool, error) {
	coll, err := s.collection(expensesCollection)
	if err != nil {
		return false, err
	}

	result, err := coll.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}
	return result.DeletedCount == 1, nil
}

// GetBudgets returns the user's budgets sorted by month descending.
func (s *MongoStorage) GetBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	coll, err := s.collection(budgetsCollection)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "month", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find budgets: %w", err)
	}

	var docs []budgetDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode budgets: %w", err)
	}

	budgets := make([]models.Budget, 0, len(docs))
	for _, doc := range docs {
		budgets = append(budgets, *doc.toBudget())
	}
	return budgets, nil
}

// GetBudget returns the budget only when it exists and is owned by userID.
func (s *MongoStorage) GetBudget(ctx context.Context, id, userID string) (*models.Budget, error) {
	coll, err := s.collection(budgetsCollection)
	if err != nil {
		return nil, err
	}

	var doc budgetDoc
	if err := coll.FindOne(ctx, bson.M{"id": id, "userId": userID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	return doc.toBudget(), nil
}

// CreateBudget assigns a fresh id and creation timestamp and inserts the budget.
func (s *MongoStorage) CreateBudget(ctx context.Context, budget *models.Budget) error {
	coll, err := s.collection(budgetsCollection)
	if err != nil {
		return err
	}

	budget.ID = bson.NewObjectID().Hex()
	budget.CreatedAt = time.Now().UTC()

	_, err = coll.InsertOne(ctx, bson.M{
		"id":        budget.ID,
		"userId":    budget.UserID,
		"category":  budget.Category,
		"amount":    budget.Amount.String(),
		"month":     budget.Month.Time(),
		"createdAt": budget.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert budget: %w", err)
	}
	return nil
}

// UpdateBudget merges the non-nil update fields onto the owned document.
func (s *MongoStorage) UpdateBudget(ctx context.Context, id, userID string, update models.BudgetUpdate) (*models.Budget, error) {
	coll, err := s.collection(budgetsCollection)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Amount != nil {
		set["amount"] = update.Amount.String()
	}
	if update.Month != nil {
		set["month"] = update.Month.Time()
	}

	if len(set) == 0 {
		return s.GetBudget(ctx, id, userID)
	}

	var doc budgetDoc
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"id": id, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return doc.toBudget(), nil
}

// DeleteBudget removes the owned document, reporting whether anything was removed.
func (s *MongoStorage) DeleteBudget(ctx context.Context, id, userID string) (bool, error) {
	coll, err := s.collection(budgetsCollection)
	if err != nil {
		return false, err
	}

	result, err := coll.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return false, fmt.Errorf("failed to delete budget: %w", err)
	}
	return result.DeletedCount == 1, nil
}

// Document shapes. Date and amount fields are decoded as any because
// documents written by earlier clients may hold native BSON datetimes or
// serialized strings for dates, and floats for amounts; normalizeTime and
// normalizeAmount fold the variants into one representation on read. New
// writes store amounts as canonical decimal strings so money never takes a
// float round-trip.

type userDoc struct {
	ID        string `bson:"id"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Name      string `bson:"name"`
	CreatedAt any    `bson:"createdAt"`
}

func (d *userDoc) toUser() *models.User {
	return &models.User{
		ID:        d.ID,
		Email:     d.Email,
		Password:  d.Password,
		Name:      d.Name,
		CreatedAt: normalizeTime(d.CreatedAt),
	}
}

type expenseDoc struct {
	ID          string   `bson:"id"`
	UserID      string   `bson:"userId"`
	Title       string   `bson:"title"`
	Amount      any      `bson:"amount"`
	Category    string   `bson:"category"`
	Description string   `bson:"description,omitempty"`
	Tags        []string `bson:"tags,omitempty"`
	Date        any      `bson:"date"`
	CreatedAt   any      `bson:"createdAt"`
}

func (d *expenseDoc) toExpense() *models.Expense {
	return &models.Expense{
		ID:          d.ID,
		UserID:      d.UserID,
		Title:       d.Title,
		Amount:      normalizeAmount(d.Amount),
		Category:    d.Category,
		Description: d.Description,
		Tags:        d.Tags,
		Date:        normalizeTime(d.Date),
		CreatedAt:   normalizeTime(d.CreatedAt),
	}
}

type budgetDoc struct {
	ID        string `bson:"id"`
	UserID    string `bson:"userId"`
	Category  string `bson:"category"`
	Amount    any    `bson:"amount"`
	Month     any    `bson:"month"`
	CreatedAt any    `bson:"createdAt"`
}

func (d *budgetDoc) toBudget() *models.Budget {
	return &models.Budget{
		ID:        d.ID,
		UserID:    d.UserID,
		Category:  d.Category,
		Amount:    normalizeAmount(d.Amount),
		Month:     types.MonthOf(normalizeTime(d.Month)),
		CreatedAt: normalizeTime(d.CreatedAt),
	}
}

// normalizeAmount folds the representations an amount field can arrive in
// into an exact decimal. Strings are the canonical form; floats and integers
// cover documents written by earlier clients. Unknown representations
// normalize to zero.
func normalizeAmount(v any) decimal.Decimal {
	switch a := v.(type) {
	case string:
		if d, err := decimal.NewFromString(a); err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(a)
	case int32:
		return decimal.NewFromInt(int64(a))
	case int64:
		return decimal.NewFromInt(a)
	}
	return decimal.Zero
}

// normalizeTime folds the representations a date field can arrive in into a
// single time.Time. Unknown representations normalize to the zero time.
func normalizeTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case bson.DateTime:
		return t.Time().UTC()
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse("2006-01-02", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
