package postgres

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nexthire/auth-service/internal/domain"
)

type fakeSeederHasher struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (h *fakeSeederHasher) Hash(pw string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	if h.err != nil {
		return "", h.err
	}
	return "HASH(" + pw + ")", nil
}

type fakeSeederRepo struct {
	mu      sync.Mutex
	created []domain.User
	errOnce error
	errCnt  int
}

func (r *fakeSeederRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.errOnce != nil && r.errCnt == 0 {
		r.errCnt++
		return domain.User{}, r.errOnce
	}
	r.created = append(r.created, u)
	return u, nil
}

var quiet = zerolog.New(io.Discard)

func TestSeedUsers_CreatesOnePerRole(t *testing.T) {
	t.Parallel()

	repo := &fakeSeederRepo{}
	hasher := &fakeSeederHasher{}

	n := SeedUsers(context.Background(), repo, hasher, DevSeeds, quiet)

	if n != len(DevSeeds) || len(repo.created) != len(DevSeeds) {
		t.Fatalf("expected %d users created, got %d (%d)", len(DevSeeds), n, len(repo.created))
	}

	roles := map[string]bool{}
	for _, u := range repo.created {
		if u.ID == "" || u.Email == "" || u.Name == "" {
			t.Fatalf("incomplete seed user: %+v", u)
		}
		if u.PasswordHash == "" || u.CreatedAt.IsZero() {
			t.Fatalf("expected hash and timestamps: %+v", u)
		}
		roles[u.Role] = true
	}
	for _, r := range domain.Roles() {
		if !roles[string(r)] {
			t.Fatalf("expected a seed for role %s", r)
		}
	}
}

func TestSeedUsers_IgnoresDuplicates(t *testing.T) {
	t.Parallel()

	repo := &fakeSeederRepo{errOnce: domain.ErrEmailAlreadyExists()}
	hasher := &fakeSeederHasher{}

	n := SeedUsers(context.Background(), repo, hasher, DevSeeds, quiet)
	if n != len(DevSeeds)-1 {
		t.Fatalf("expected %d created after one duplicate, got %d", len(DevSeeds)-1, n)
	}
}

func TestSeedUsers_HashFail_SkipsThatUser(t *testing.T) {
	t.Parallel()

	repo := &fakeSeederRepo{}
	hasher := &fakeSeederHasher{err: errors.New("hash fail")}

	if n := SeedUsers(context.Background(), repo, hasher, DevSeeds, quiet); n != 0 {
		t.Fatalf("expected 0 created when hash always fails, got %d", n)
	}
	if hasher.calls != len(DevSeeds) {
		t.Fatalf("expected hasher called per seed, got %d", hasher.calls)
	}
}
