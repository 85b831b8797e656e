package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nexthire/auth-service/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	byID    map[string]domain.User
	byEmail map[string]domain.User

	// injected errors (if set, method returns error)
	getByIDErr    error
	getByEmailErr error
	createErr     error

	createCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]domain.User{},
		byEmail: map[string]domain.User{},
	}
}

func (f *fakeUserRepo) put(u domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByIDErr != nil {
		return domain.User{}, f.getByIDErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls++
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return u, nil
}

// fakeHasher: hash(pw) = "hash:"+pw
type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error

	compareCalls int
}

func (h *fakeHasher) Hash(pw string) (string, error) {
	if h.hashFn != nil {
		return h.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (h *fakeHasher) Compare(hash, pw string) error {
	h.compareCalls++
	if h.compareFn != nil {
		return h.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

// fakeSigner encodes claims as "tok|uid|email|role|jti|exp".
type fakeSigner struct {
	mu   sync.Mutex
	seq  int
	now  func() time.Time
	sign func() error
}

func (s *fakeSigner) SignSessionToken(userID, email, role string, ttl time.Duration) (string, error) {
	if s.sign != nil {
		if err := s.sign(); err != nil {
			return "", err
		}
	}
	s.mu.Lock()
	s.seq++
	jti := fmt.Sprintf("jti-%d", s.seq)
	s.mu.Unlock()

	exp := s.clock().Add(ttl).Unix()
	return strings.Join([]string{"tok", userID, email, role, jti, strconv.FormatInt(exp, 10)}, "|"), nil
}

func (s *fakeSigner) VerifySessionToken(token string) (TokenClaims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 6 || parts[0] != "tok" {
		return TokenClaims{}, domain.ErrTokenInvalid()
	}
	exp, err := strconv.ParseInt(parts[5], 10, 64)
	if err != nil {
		return TokenClaims{}, domain.ErrTokenInvalid()
	}
	expAt := time.Unix(exp, 0)
	if !s.clock().Before(expAt) {
		return TokenClaims{}, domain.ErrTokenExpired()
	}
	return TokenClaims{UserID: parts[1], Email: parts[2], Role: parts[3], TokenID: parts[4], ExpiresAt: expAt}, nil
}

func (s *fakeSigner) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

type fakeRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	err     error
}

func newFakeRevocations() *fakeRevocations {
	return &fakeRevocations{revoked: map[string]time.Time{}}
}

func (r *fakeRevocations) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.revoked[tokenID] = until
	return nil
}

func (r *fakeRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.revoked[tokenID]
	return ok, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []UserRegisteredEvent
	err    error
}

func (p *fakePublisher) PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evt)
	return nil
}

type auditEntry struct {
	action string
	fields map[string]string
}

type testDeps struct {
	users   *fakeUserRepo
	hasher  *fakeHasher
	signer  *fakeSigner
	revoked *fakeRevocations
	pub     *fakePublisher

	mu     sync.Mutex
	audits []auditEntry
}

func (d *testDeps) actions() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.audits))
	for _, a := range d.audits {
		out = append(out, a.action)
	}
	return out
}

func newSvcForTest(t *testing.T) (*Service, *testDeps) {
	t.Helper()

	d := &testDeps{
		users:   newFakeUserRepo(),
		hasher:  &fakeHasher{},
		signer:  &fakeSigner{},
		revoked: newFakeRevocations(),
		pub:     &fakePublisher{},
	}
	svc := NewService(d.users, d.hasher, d.signer, d.revoked, d.pub, Config{})
	svc.WithAudit(func(ctx context.Context, action string, fields map[string]string) {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.audits = append(d.audits, auditEntry{action: action, fields: fields})
	})
	return svc, d
}

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error code %q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected error code %q, got %v", code, err)
	}
}
