package service_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"catalog/internal/auth"
	"catalog/internal/service"
	"catalog/internal/worker"
	mockstorage "catalog/pkg/storage/mock"

	"go.uber.org/mock/gomock"

	"catalog/pkg/domain"
	"catalog/pkg/password"
	"catalog/pkg/serrors"
	"catalog/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthKeys(t *testing.T) (*auth.Signer, *auth.Verifier) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicDER,
	})

	signer, err := auth.NewSigner(string(privatePEM))
	require.NoError(t, err)
	verifier, err := auth.NewVerifier(string(publicPEM))
	require.NoError(t, err)

	return signer, verifier
}

type userServiceFixture struct {
	ctrl     *gomock.Controller
	storage  *mockstorage.MockStorage
	signer   *auth.Signer
	verifier *auth.Verifier
	users    service.Users
}

func newUserService(t *testing.T) userServiceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	signer, verifier := testAuthKeys(t)
	svc := service.NewUsers(st, password.Bcrypt{Cost: bcrypt.MinCost}, signer, verifier, time.Hour)

	return userServiceFixture{ctrl: ctrl, storage: st, signer: signer, verifier: verifier, users: svc}
}

// expectWithTx wires Storage.WithTx to run the callback against a fresh
// AllStorage mock.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestUsers_Register(t *testing.T) {
	fx := newUserService(t)

	var storedHash string
	var storedArgs worker.VerificationMailArgs

	expectWithTx(t, fx.ctrl, fx.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user domain.User, passwordHash string) error {
				storedHash = passwordHash
				require.False(t, user.EmailVerified())

				return nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				storedArgs = args.(worker.VerificationMailArgs)

				return true, nil
			},
		)
	})

	user, err := fx.users.Register(context.Background(), service.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email().String())
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("s3cret")))
	require.Equal(t, user.ID().String(), storedArgs.UserID)
	require.Equal(t, "alice@example.com", storedArgs.Email)
}

func TestUsers_Register_EmptyPassword(t *testing.T) {
	fx := newUserService(t)

	_, err := fx.users.Register(context.Background(), service.RegisterInput{
		Name:  "alice",
		Email: "alice@example.com",
	})
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestUsers_Register_BadEmail(t *testing.T) {
	fx := newUserService(t)

	_, err := fx.users.Register(context.Background(), service.RegisterInput{
		Name:     "alice",
		Email:    "not-an-email",
		Password: "s3cret",
	})
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestUsers_Login(t *testing.T) {
	fx := newUserService(t)

	name, err := domain.NewUsername("alice")
	require.NoError(t, err)
	email, err := domain.NewEmail("alice@example.com")
	require.NoError(t, err)
	user := domain.NewUser(name, email)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	fx.storage.EXPECT().PasswordByEmail(gomock.Any(), email).Return(string(hash), nil)
	fx.storage.EXPECT().UserByEmail(gomock.Any(), email).Return(user, nil)

	var stored domain.Session
	fx.storage.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, session domain.Session) error {
			stored = session

			return nil
		},
	)

	result, err := fx.users.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, user.ID(), result.Session.UserID)
	require.Equal(t, stored.ID, result.Session.ID)

	id, err := fx.verifier.SessionID(result.Token)
	require.NoError(t, err)
	require.Equal(t, stored.ID, id)
}

func TestUsers_Login_WrongPassword(t *testing.T) {
	fx := newUserService(t)

	email, err := domain.NewEmail("alice@example.com")
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	fx.storage.EXPECT().PasswordByEmail(gomock.Any(), email).Return(string(hash), nil)

	_, err = fx.users.Login(context.Background(), "alice@example.com", "wrong")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestUsers_Login_UnknownEmail(t *testing.T) {
	fx := newUserService(t)

	email, err := domain.NewEmail("ghost@example.com")
	require.NoError(t, err)

	fx.storage.EXPECT().PasswordByEmail(gomock.Any(), email).Return(
		"", serrors.KindOnly(serrors.ErrNotFound),
	)

	_, err = fx.users.Login(context.Background(), "ghost@example.com", "s3cret")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.NotErrorIs(t, err, serrors.ErrNotFound, "login must not leak the difference")
}

func TestUsers_UserBySession_Expired(t *testing.T) {
	fx := newUserService(t)

	session := domain.NewSession(domain.NewUserID(), -time.Minute)
	_, err := fx.users.UserBySession(context.Background(), session)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestUsers_UserBySession(t *testing.T) {
	fx := newUserService(t)

	name, err := domain.NewUsername("alice")
	require.NoError(t, err)
	email, err := domain.NewEmail("alice@example.com")
	require.NoError(t, err)
	user := domain.NewUser(name, email)

	session := domain.NewSession(user.ID(), time.Hour)
	fx.storage.EXPECT().UserByID(gomock.Any(), user.ID()).Return(user, nil)

	got, err := fx.users.UserBySession(context.Background(), session)
	require.NoError(t, err)
	require.Equal(t, user.ID(), got.ID())
}

func TestUsers_VerifyEmail(t *testing.T) {
	fx := newUserService(t)

	userID := domain.NewUserID()
	token, err := fx.signer.SignVerification(userID, time.Hour)
	require.NoError(t, err)

	fx.storage.EXPECT().SetEmailVerified(gomock.Any(), userID).Return(nil)

	require.NoError(t, fx.users.VerifyEmail(context.Background(), token))
}

func TestUsers_VerifyEmail_ForeignToken(t *testing.T) {
	fx := newUserService(t)

	foreignSigner, _ := testAuthKeys(t)
	token, err := foreignSigner.SignVerification(domain.NewUserID(), time.Hour)
	require.NoError(t, err)

	err = fx.users.VerifyEmail(context.Background(), token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestUsers_Logout(t *testing.T) {
	fx := newUserService(t)

	id := domain.NewSessionID()
	fx.storage.EXPECT().DeleteSession(gomock.Any(), id).Return(nil)

	require.NoError(t, fx.users.Logout(context.Background(), id))
}

func TestUsers_Refresh(t *testing.T) {
	fx := newUserService(t)

	name, err := domain.NewUsername("alice")
	require.NoError(t, err)
	email, err := domain.NewEmail("alice@example.com")
	require.NoError(t, err)
	user := domain.NewUser(name, email)

	session := domain.NewSession(user.ID(), time.Minute)

	var extendedTo time.Time
	fx.storage.EXPECT().RefreshSession(gomock.Any(), session.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.SessionID, expiresAt time.Time) error {
			extendedTo = expiresAt

			return nil
		},
	)
	fx.storage.EXPECT().UserByID(gomock.Any(), user.ID()).Return(user, nil)

	result, err := fx.users.Refresh(context.Background(), session)
	require.NoError(t, err)
	require.Equal(t, session.ID, result.Session.ID)
	require.True(t, extendedTo.After(session.ExpiresAt), "refresh must extend the expiry")

	id, err := fx.verifier.SessionID(result.Token)
	require.NoError(t, err)
	require.Equal(t, session.ID, id)
}

func TestUsers_Refresh_Expired(t *testing.T) {
	fx := newUserService(t)

	session := domain.NewSession(domain.NewUserID(), -time.Minute)
	_, err := fx.users.Refresh(context.Background(), session)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}
