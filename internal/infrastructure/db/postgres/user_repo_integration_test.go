//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"io"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/nexthire/auth-service/internal/domain"
)

func setupTestDatabase(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if _, err := testcontainers.NewDockerClientWithOpts(ctx); err != nil {
		t.Skipf("Skipping integration test because Docker is unavailable: %v", err)
	}

	ctr, err := tcpostgres.Run(ctx, "postgres:17",
		tcpostgres.WithDatabase("nexthire"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := ctr.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, EnsureSchema(ctx, db))
	// idempotent
	require.NoError(t, EnsureSchema(ctx, db))
	return db
}

func TestUserRepo_Integration_CreateLookupDuplicate(t *testing.T) {
	db := setupTestDatabase(t)
	repo := NewUserRepo(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	u, err := repo.Create(ctx, domain.User{
		ID: "11111111-1111-1111-1111-111111111111", Name: "Ann", Email: "Ann@X.com",
		PasswordHash: "h", Role: "job-seeker", CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", u.Email)

	got, err := repo.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)

	_, err = repo.Create(ctx, domain.User{
		ID: "22222222-2222-2222-2222-222222222222", Name: "Ann 2", Email: "ann@x.com",
		PasswordHash: "h", Role: "recruiter", CreatedAt: now, UpdatedAt: now,
	})
	assert.True(t, domain.Is(err, domain.CodeDuplicateEmail), "got %v", err)
}

func TestUserRepo_Integration_ConcurrentRegisterRace(t *testing.T) {
	db := setupTestDatabase(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Create(ctx, domain.User{
				ID: "race-" + string(rune('a'+i)), Name: "R", Email: "race@x.com",
				PasswordHash: "h", Role: "recruiter", CreatedAt: time.Now(), UpdatedAt: time.Now(),
			})
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestSeedUsers_Integration_RestartSafe(t *testing.T) {
	db := setupTestDatabase(t)
	repo := NewUserRepo(db)
	hasher := hashStub{}

	first := SeedUsers(context.Background(), repo, hasher, DevSeeds, zerolog.New(io.Discard))
	second := SeedUsers(context.Background(), repo, hasher, DevSeeds, zerolog.New(io.Discard))

	assert.Equal(t, len(DevSeeds), first)
	assert.Equal(t, 0, second)
}

type hashStub struct{}

func (hashStub) Hash(pw string) (string, error) { return "h:" + pw, nil }
