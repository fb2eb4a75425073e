package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/localcrm/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Date parses a YYYY-MM-DD literal for DATE columns and fails the test on a
// malformed value.
func Date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t.Fatalf("testhelper: Date %q: %v", s, err)
	}
	return &d
}

// SeedUser creates a user with a throwaway bcrypt-shaped password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinv",
		Name:         "Test User " + suffix,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		user.Email, user.PasswordHash, user.Name,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}
	return user
}

// SeedAccount creates an account with the given name and no optional fields.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, name string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO accounts (name) VALUES ($1) RETURNING id`, name,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert: %v", err)
	}
	return id
}

// SeedContact creates a contact under accountID.
func SeedContact(t *testing.T, pool *pgxpool.Pool, accountID int64, firstName, lastName string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO contacts (account_id, first_name, last_name) VALUES ($1, $2, $3) RETURNING id`,
		accountID, firstName, lastName,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedContact insert: %v", err)
	}
	return id
}

// SeedStage creates a stage with the default won/lost flags.
func SeedStage(t *testing.T, pool *pgxpool.Pool, name string, orderIndex int) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO stages (name, order_index) VALUES ($1, $2) RETURNING id`,
		name, orderIndex,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedStage insert: %v", err)
	}
	return id
}

// DealSeed describes a deal row for SeedDeal. Currency defaults to the
// column default when empty.
type DealSeed struct {
	AccountID        int64
	PrimaryContactID *int64
	Title            string
	Amount           float64
	Currency         string
	StageID          int64
	OwnerUserID      int64
	CloseDate        *time.Time
}

// SeedDeal inserts d and returns its id.
func SeedDeal(t *testing.T, pool *pgxpool.Pool, d DealSeed) int64 {
	t.Helper()

	currency := d.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO deals (account_id, primary_contact_id, title, amount, currency, stage_id, owner_user_id, close_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		d.AccountID, d.PrimaryContactID, d.Title, d.Amount, currency, d.StageID, d.OwnerUserID, d.CloseDate,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedDeal insert: %v", err)
	}
	return id
}

// SeedActivity creates an open activity on dealID.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, dealID, userID int64, subject string, due *time.Time) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO activities (deal_id, type, subject, due_date, assigned_user_id)
		 VALUES ($1, 'call', $2, $3, $4) RETURNING id`,
		dealID, subject, due, userID,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity insert: %v", err)
	}
	return id
}

// SeedNote creates a note on dealID.
func SeedNote(t *testing.T, pool *pgxpool.Pool, dealID, authorID int64, body string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO notes (deal_id, author_user_id, body) VALUES ($1, $2, $3) RETURNING id`,
		dealID, authorID, body,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert: %v", err)
	}
	return id
}

// Pipeline is a minimal connected row set: one user, account, contact and
// stage. Most repository tests start from it.
type Pipeline struct {
	User      domain.User
	AccountID int64
	ContactID int64
	StageID   int64
}

// SeedPipeline creates a Pipeline.
func SeedPipeline(t *testing.T, pool *pgxpool.Pool) Pipeline {
	t.Helper()

	user := SeedUser(t, pool)
	accountID := SeedAccount(t, pool, "Account "+uniqueSuffix())
	return Pipeline{
		User:      user,
		AccountID: accountID,
		ContactID: SeedContact(t, pool, accountID, "Pat", "Contact"),
		StageID:   SeedStage(t, pool, "Lead", 1),
	}
}
