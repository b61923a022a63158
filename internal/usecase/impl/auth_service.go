// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"campus/config"
	deliverycontext "campus/internal/delivery/context"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"
	"campus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerScheme = "Bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	lecturerRepo repository.LecturerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	minPassword  int
	maxPassword  int
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	LecturerRepo repository.LecturerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	minPassword, maxPassword := 1, 72
	if params.Config != nil && params.Config.PasswordPolicy != nil {
		minPassword = params.Config.PasswordPolicy.MinLength
		maxPassword = params.Config.PasswordPolicy.MaxLength
	}

	return &authService{
		lecturerRepo: params.LecturerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		minPassword:  minPassword,
		maxPassword:  maxPassword,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a lecturer account. The email uniqueness check is left to the
// store's unique index so that concurrent registrations cannot both succeed.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterLecturerInput) (*entity.LecturerView, error) {
	email := normalizeEmail(input.Email)
	if err := srv.checkPasswordPolicy(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	lecturer := &entity.Lecturer{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    srv.now(),
	}
	if err := srv.lecturerRepo.Create(ctx, lecturer); err != nil {
		if errors.Is(err, domainerrors.ErrEmailInUse) {
			srv.log(ctx).Info("Registration rejected, email in use", slog.String("email", email))
		}

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Lecturer registered", slog.String("lecturerID", lecturer.ID.String()))

	return lecturer.View(), nil
}

// Login verifies the credentials and issues a token. An unknown email still pays for
// one bcrypt comparison so that it is indistinguishable from a wrong password.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	lecturer, err := srv.lecturerRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrLecturerNotFound) {
		srv.hasher.CheckDecoy(input.Password)
		srv.log(ctx).Info("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find lecturer")
	}

	if !srv.hasher.Check(input.Password, lecturer.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	// Token timestamps carry whole seconds; issuing at a whole second keeps
	// ExpiresAt equal to the exp claim.
	now := srv.now().Truncate(time.Second)
	token, err := srv.tokenService.Issue(lecturer.ID, now)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Lecturer logged in", slog.String("lecturerID", lecturer.ID.String()))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: now.Add(srv.tokenService.TTL()),
		Lecturer:  lecturer.View(),
	}, nil
}

// VerifyRequest authenticates an Authorization header and loads the lecturer it names.
func (srv *authService) VerifyRequest(ctx context.Context, authHeader string) (*entity.LecturerView, error) {
	token, ok := parseBearer(authHeader)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	lecturerID, err := srv.tokenService.Verify(token, srv.now())
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	lecturer, err := srv.lecturerRepo.FindByID(ctx, lecturerID)
	if errors.Is(err, repository.ErrLecturerNotFound) {
		return nil, domainerrors.ErrLecturerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find lecturer")
	}

	return lecturer.View(), nil
}

// checkPasswordPolicy bounds the length in characters from below and in bytes from
// above, since bcrypt only reads the first 72 bytes.
func (srv *authService) checkPasswordPolicy(password string) error {
	length := utf8.RuneCountInString(password)
	if length < srv.minPassword || len(password) > srv.maxPassword {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be %d to %d characters long", srv.minPassword, srv.maxPassword))
	}

	return nil
}

// parseBearer extracts the token from "Bearer <token>". The scheme is matched
// case-insensitively and exactly one token must follow a single space.
func parseBearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	if token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", false
	}

	return token, true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
