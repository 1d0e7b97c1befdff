package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"communityhub/internal/adapters/sanitize"
	"communityhub/internal/domain"
)

const welcomeEmailTimeout = 10 * time.Second

type authService struct {
	store     domain.Store
	hasher    domain.PasswordHasher
	email     domain.EmailService
	recorder  domain.ActivityRecorder
	logger    *slog.Logger
	dummyHash string
}

// NewAuthService creates an AuthService. email may be nil to skip welcome emails.
func NewAuthService(
	store domain.Store,
	hasher domain.PasswordHasher,
	email domain.EmailService,
	recorder domain.ActivityRecorder,
	logger *slog.Logger,
) domain.AuthService {
	if recorder == nil {
		recorder = domain.NopActivityRecorder{}
	}
	// Login against unknown usernames verifies this hash so response time does not reveal
	// whether the account exists.
	dummy, err := hasher.Hash("communityhub-dummy-password")
	if err != nil {
		logger.Warn("failed to derive dummy password hash", "err", err)
	}
	return &authService{
		store:     store,
		hasher:    hasher,
		email:     email,
		recorder:  recorder,
		logger:    logger,
		dummyHash: dummy,
	}
}

func (s *authService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	username := sanitize.Text(in.Username)
	name := sanitize.Text(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" || in.Password == "" || name == "" || email == "" {
		return nil, fmt.Errorf("%w: username, password, name and email are required", domain.ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.NewUser(username, hash, name, email, in.IsOrganizer)
	user.Bio = sanitize.HTML(in.Bio)
	if interests := sanitize.TextSlice(in.Interests); interests != nil {
		user.Interests = interests
	}

	var org *domain.Organization
	if in.IsOrganizer {
		if in.Organization == nil || sanitize.Text(in.Organization.Name) == "" {
			return nil, fmt.Errorf("%w: organization name is required for organizers", domain.ErrInvalidInput)
		}
		org = domain.NewOrganization(0, sanitizeOrganizationInput(*in.Organization))
		err = s.store.Users().CreateOrganizer(ctx, user, org)
	} else {
		err = s.store.Users().Create(ctx, user)
	}
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.recorder.UserRegistered(user.IsOrganizer)
	s.sendWelcome(ctx, user, org)
	return user, nil
}

// sendWelcome is best-effort: failures are logged and never fail the registration.
func (s *authService) sendWelcome(ctx context.Context, user *domain.User, org *domain.Organization) {
	if s.email == nil {
		return
	}
	data := &domain.WelcomeMessageEmailData{
		Email:       user.Email,
		Name:        user.Name,
		Username:    user.Username,
		IsOrganizer: user.IsOrganizer,
	}
	if org != nil {
		data.OrganizationName = org.Name
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), welcomeEmailTimeout)
	defer cancel()
	if err := s.email.SendWelcomeMessage(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "welcome email failed", "user_id", user.ID, "err", err)
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.store.Users().GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func sanitizeOrganizationInput(in domain.OrganizationInput) domain.OrganizationInput {
	return domain.OrganizationInput{
		Name:        sanitize.Text(in.Name),
		Description: sanitize.HTML(in.Description),
		Website:     sanitize.Text(in.Website),
		Email:       strings.TrimSpace(in.Email),
		Categories:  domain.NewCategories(sanitize.TextSlice(in.Categories)...),
	}
}
