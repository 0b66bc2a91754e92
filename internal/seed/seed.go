package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type userSeed struct {
	Email    string
	Name     string
	Password string
}

// DemoUsers are the accounts created for manual testing.
var DemoUsers = []userSeed{
	{Email: "demo@example.com", Name: "Demo Buyer", Password: "Demo1234"},
}

// Apply inserts demo accounts. It is idempotent via ON CONFLICT and resets
// the demo password on every run.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, u := range DemoUsers {
		if err := upsertUser(ctx, pool, u); err != nil {
			return fmt.Errorf("upsert user %s: %w", u.Email, err)
		}
	}
	return nil
}

func upsertUser(ctx context.Context, pool *pgxpool.Pool, u userSeed) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (email, name, password_hash)
VALUES (lower($1), $2, $3)
ON CONFLICT ((lower(email))) DO UPDATE
SET name = EXCLUDED.name,
    password_hash = EXCLUDED.password_hash
`
	_, err = pool.Exec(ctx, q, u.Email, u.Name, string(hash))
	return err
}
