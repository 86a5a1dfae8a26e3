package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/slimkhemiri/slim-cli/internal/ports"
	"go.uber.org/zap"
)

// SessionDeps are the collaborators of a SessionService. Storage and the
// entitlement source are required; a nil provider makes its login method
// fail with ErrServiceUnavailable.
type SessionDeps struct {
	Storage     ports.SessionStorage
	Password    ports.PasswordAuthenticator
	Registrar   ports.Registrar
	OAuth       ports.TokenAuthenticator
	Phone       ports.PhoneVerifier
	Entitlement ports.EntitlementSource
	Clock       ports.Clock
	Logger      *zap.Logger

	// DemoMode lets Signup fabricate a local identity when the backend is
	// unreachable.
	DemoMode bool
}

type subscriber struct {
	id int
	fn func(domain.Snapshot)
}

// SessionService owns the current identity. It is the only writer of the
// session storage. Mutations are serialised by an in-flight slot: a second
// mutation while one runs fails with ErrOperationInProgress.
type SessionService struct {
	deps  SessionDeps
	log   *zap.Logger
	newID func() string

	mu            sync.Mutex
	identity      *domain.Identity
	loading       bool
	busy          bool
	restored      bool
	closed        bool
	pending       *domain.PendingVerification
	phoneVerified bool
	subscribers   []subscriber
	nextSubID     int
}

func NewSessionService(deps SessionDeps) *SessionService {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &SessionService{
		deps:    deps,
		log:     deps.Logger.Named("session"),
		newID:   uuid.NewString,
		loading: true,
	}
}

func (s *SessionService) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *SessionService) snapshotLocked() domain.Snapshot {
	snap := domain.Snapshot{IsLoading: s.loading}
	if s.identity != nil {
		identity := *s.identity
		snap.Identity = &identity
	}

	return snap
}

// Subscribe registers fn to run after every state change. The returned func
// removes it.
func (s *SessionService) Subscribe(fn func(domain.Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Close drops all subscribers; later mutations fail with ErrSessionClosed.
func (s *SessionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.subscribers = nil
	s.pending = nil
}

func (s *SessionService) acquire() (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.ErrSessionClosed
	}
	if s.busy {
		return nil, domain.ErrOperationInProgress
	}
	s.busy = true

	return func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}, nil
}

// publish snapshots the state and runs subscribers outside the lock.
func (s *SessionService) publish() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
}

func (s *SessionService) setIdentity(identity *domain.Identity) {
	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()

	s.publish()
}

// settle replaces the identity after an explicit login or logout. The
// session no longer needs restoring, so loading ends and Restore becomes a
// no-op.
func (s *SessionService) settle(identity *domain.Identity) {
	s.mu.Lock()
	s.identity = identity
	s.loading = false
	s.restored = true
	s.mu.Unlock()

	s.publish()
}

func (s *SessionService) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()

	s.publish()
}

func (s *SessionService) current() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// Restore loads the persisted identity and refreshes its entitlement. The
// session reports loading from construction until Restore, a login or a
// logout settles it. It runs once; later calls return immediately.
// Unreadable storage leaves the session anonymous.
func (s *SessionService) Restore(ctx context.Context) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	s.mu.Lock()
	if s.restored {
		s.mu.Unlock()
		return nil
	}
	s.restored = true
	s.mu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	identity, found, err := s.deps.Storage.Load(ctx)
	if err != nil {
		s.log.Warn("ignoring unreadable session", zap.Error(err))
		return nil
	}
	if !found {
		s.log.Debug("no stored session")
		return nil
	}

	s.setIdentity(&identity)
	s.log.Debug("session restored", zap.String("user_id", string(identity.ID)))

	s.refreshEntitlement(ctx, identity)
	return nil
}

func (s *SessionService) LoginWithPassword(ctx context.Context, identifier, secret string) (domain.Identity, error) {
	release, err := s.acquire()
	if err != nil {
		return domain.Identity{}, err
	}
	defer release()

	if s.deps.Password == nil {
		return domain.Identity{}, domain.ErrServiceUnavailable
	}

	identity, err := s.deps.Password.Authenticate(ctx, identifier, secret)
	if err != nil {
		s.log.Info("password login failed", zap.Error(err))
		return domain.Identity{}, err
	}

	return s.establish(ctx, identity, "password")
}

func (s *SessionService) Signup(ctx context.Context, req domain.SignupRequest) (domain.Identity, error) {
	release, err := s.acquire()
	if err != nil {
		return domain.Identity{}, err
	}
	defer release()

	if err := domain.ValidateSignup(req); err != nil {
		return domain.Identity{}, err
	}

	var identity domain.Identity
	if s.deps.Registrar == nil {
		err = domain.ErrServiceUnavailable
	} else {
		identity, err = s.deps.Registrar.Register(ctx, req)
	}
	if err != nil {
		if !s.deps.DemoMode || !errors.Is(err, domain.ErrServiceUnavailable) {
			return domain.Identity{}, err
		}
		s.log.Warn("signup backend unavailable, creating local account", zap.Error(err))
		identity = s.localIdentity(req)
	}

	return s.establish(ctx, identity, "signup")
}

func (s *SessionService) localIdentity(req domain.SignupRequest) domain.Identity {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	return domain.Identity{
		ID:    domain.IdentityID("user_" + s.newID()),
		Email: email,
		Name:  name,
	}
}

func (s *SessionService) LoginWithOAuthToken(ctx context.Context, token string) (domain.Identity, error) {
	release, err := s.acquire()
	if err != nil {
		return domain.Identity{}, err
	}
	defer release()

	if s.deps.OAuth == nil {
		return domain.Identity{}, domain.ErrServiceUnavailable
	}

	identity, err := s.deps.OAuth.AuthenticateToken(ctx, token)
	if err != nil {
		s.log.Info("google login failed", zap.Error(err))
		return domain.Identity{}, err
	}

	return s.establish(ctx, identity, "google")
}

// StartPhoneLogin sends a code to phoneNumber (international form) and
// records the pending verification. A new call replaces any earlier one.
func (s *SessionService) StartPhoneLogin(ctx context.Context, phoneNumber, challengeToken string) (domain.PendingVerification, error) {
	release, err := s.acquire()
	if err != nil {
		return domain.PendingVerification{}, err
	}
	defer release()

	if s.deps.Phone == nil {
		return domain.PendingVerification{}, domain.ErrPhoneNotConfigured
	}

	normalized, err := domain.NormalizePhoneNumber("", phoneNumber)
	if err != nil {
		return domain.PendingVerification{}, err
	}

	handle, err := s.deps.Phone.SendCode(ctx, normalized, challengeToken)
	if err != nil {
		return domain.PendingVerification{}, err
	}

	pending := domain.PendingVerification{
		Handle:      handle,
		PhoneNumber: normalized,
		IssuedAt:    s.deps.Clock.Now(),
	}

	s.mu.Lock()
	s.pending = &pending
	s.phoneVerified = false
	s.mu.Unlock()

	s.log.Debug("verification code sent", zap.String("phone", normalized))
	return pending, nil
}

// ConfirmPhoneLogin checks code against the pending verification. A rejected
// code keeps it for another attempt; success or a service failure drops it.
func (s *SessionService) ConfirmPhoneLogin(ctx context.Context, code string) (domain.Identity, error) {
	release, err := s.acquire()
	if err != nil {
		return domain.Identity{}, err
	}
	defer release()

	s.mu.Lock()
	pending := s.pending
	s.mu.Unlock()
	if pending == nil {
		return domain.Identity{}, domain.ErrNoPendingVerification
	}

	if err := domain.ValidateVerificationCode(code); err != nil {
		return domain.Identity{}, err
	}

	identity, err := s.deps.Phone.VerifyCode(ctx, pending.Handle, strings.TrimSpace(code))
	if err != nil {
		if !keepsPending(err) {
			s.clearPending()
		}
		return domain.Identity{}, err
	}

	s.clearPending()
	if identity.Phone == "" {
		identity.Phone = pending.PhoneNumber
	}

	established, err := s.establish(ctx, identity, "phone")
	if err != nil {
		return domain.Identity{}, err
	}

	s.mu.Lock()
	s.phoneVerified = true
	s.mu.Unlock()

	return established, nil
}

func keepsPending(err error) bool {
	return errors.Is(err, domain.ErrInvalidCode) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// CancelPhoneLogin discards the pending verification so another number can
// be used.
func (s *SessionService) CancelPhoneLogin() {
	s.clearPending()
}

func (s *SessionService) clearPending() {
	s.mu.Lock()
	s.pending = nil
	s.phoneVerified = false
	s.mu.Unlock()
}

func (s *SessionService) PendingVerification() (domain.PendingVerification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return domain.PendingVerification{}, false
	}
	return *s.pending, true
}

func (s *SessionService) PhoneState() domain.PhoneState {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.pending != nil:
		return domain.PhoneStateCodeSent
	case s.phoneVerified:
		return domain.PhoneStateVerified
	default:
		return domain.PhoneStateIdle
	}
}

// Logout clears the identity and the stored record. Storage failures are
// logged; the in-memory session is anonymous either way.
func (s *SessionService) Logout(ctx context.Context) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	s.mu.Lock()
	s.pending = nil
	s.phoneVerified = false
	s.mu.Unlock()

	if err := s.deps.Storage.Clear(ctx); err != nil {
		s.log.Error("clear stored session", zap.Error(err))
	}

	s.settle(nil)
	return nil
}

// RefreshEntitlement re-reads the subscription status. Failures leave the
// identity unchanged and are only logged.
func (s *SessionService) RefreshEntitlement(ctx context.Context) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	identity := s.current()
	if identity == nil {
		return nil
	}

	s.refreshEntitlement(ctx, *identity)
	return nil
}

func (s *SessionService) refreshEntitlement(ctx context.Context, identity domain.Identity) {
	if s.deps.Entitlement == nil {
		return
	}

	entitlement, err := s.deps.Entitlement.Entitlement(ctx, identity.ID)
	if err != nil {
		s.log.Warn("entitlement refresh failed", zap.String("user_id", string(identity.ID)), zap.Error(err))
		return
	}

	merged := identity.MergeEntitlement(entitlement)
	if merged == identity {
		return
	}

	if err := s.deps.Storage.Save(ctx, merged); err != nil {
		s.log.Warn("persist refreshed entitlement", zap.Error(err))
	}
	s.setIdentity(&merged)
}

func (s *SessionService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Identity, error) {
	release, err := s.acquire()
	if err != nil {
		return domain.Identity{}, err
	}
	defer release()

	identity := s.current()
	if identity == nil {
		return domain.Identity{}, domain.ErrNotAuthenticated
	}

	updated, err := identity.ApplyProfile(update)
	if err != nil {
		return domain.Identity{}, err
	}

	return s.establish(ctx, updated, "profile")
}

// establish persists identity and then publishes it. A failed write leaves
// the session as it was.
func (s *SessionService) establish(ctx context.Context, identity domain.Identity, source string) (domain.Identity, error) {
	if err := identity.Validate(); err != nil {
		return domain.Identity{}, fmt.Errorf("%s: %w", source, err)
	}

	if err := s.deps.Storage.Save(ctx, identity); err != nil {
		return domain.Identity{}, fmt.Errorf("save session: %w", err)
	}

	s.settle(&identity)
	s.log.Info("session established", zap.String("source", source), zap.String("user_id", string(identity.ID)))

	return identity, nil
}
