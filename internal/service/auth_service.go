package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/database"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
	"github.com/docstream/docstream-api/pkg/validation"
)

const (
	msgLoginSuccessful    = "Login successful"
	msgLogoutSuccessful   = "Logout successful"
	msgStaffRegistered    = "Staff registered successfully"
	msgEmailExists        = "Email already exists"
	msgStaffIDExists      = "Staff ID already exists"
	msgTokenInvalid       = "Token is invalid or expired"
	msgTokenBlacklisted   = "Token is blacklisted"
	msgTokenNotOwned      = "Token does not belong to the current user"
	msgRefreshInvalid     = "refresh token is invalid or expired"
	dummyPasswordMaterial = "docstream-timing-equaliser"
)

type authUserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByStaffRef(ctx context.Context, staffRef string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	CreateWithStaff(ctx context.Context, staff *models.Staff, user *models.User) error
	UpdateLastLogin(ctx context.Context, id string, ts time.Time) error
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken, raw string) error
	FindRefreshToken(ctx context.Context, raw string) (*models.RefreshToken, error)
	FindRefreshTokenByID(ctx context.Context, id string) (*models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id string, revokedAt time.Time) (bool, error)
	ListActiveSessionIDs(ctx context.Context, userID string) ([]string, error)
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

type authStaffRepository interface {
	FindByID(ctx context.Context, id string) (*models.Staff, error)
	FindByLogin(ctx context.Context, staffID, department, email string) (*models.Staff, error)
	ExistsByStaffID(ctx context.Context, staffID, excludeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
}

// SessionRevoker is a fast lookaside for revoked session ids.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	Issuer             string
	BcryptCost         int
	MinPasswordLength  int
}

// AuthService provides authentication use cases.
type AuthService struct {
	users       authUserRepository
	staff       authStaffRepository
	revocations SessionRevoker
	validator   *validator.Validate
	logger      *zap.Logger
	config      AuthConfig
	now         func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService constructs an AuthService instance. revocations may be nil, in which case session
// state is read from the database on every check.
func NewAuthService(users authUserRepository, staff authStaffRepository, revocations SessionRevoker, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validation.New()
	}
	if config.BcryptCost < bcrypt.MinCost || config.BcryptCost > bcrypt.MaxCost {
		config.BcryptCost = bcrypt.DefaultCost
	}
	if config.MinPasswordLength <= 0 {
		config.MinPasswordLength = 6
	}
	return &AuthService{
		users:       users,
		staff:       staff,
		revocations: revocations,
		validator:   validate,
		logger:      logger,
		config:      config,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Login authenticates a staff member by staff id, department, email and password.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid login payload")
	}

	staff, err := s.staff.FindByLogin(ctx, strings.TrimSpace(req.StaffID), strings.TrimSpace(req.Department), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.burnPasswordCheck(req.Password)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch staff")
	}

	user, err := s.users.FindByStaffRef(ctx, staff.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNoAccount
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}
	if !staff.IsActive() {
		return nil, appErrors.ErrStaffInactive
	}
	if !user.IsActive {
		return nil, appErrors.ErrAccountDisabled
	}

	tokens, session, err := s.issueSession(ctx, user, req.IP, req.UserAgent)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, s.now()); err != nil {
		s.logger.Warn("failed to update last login", zap.String("user_id", user.ID), zap.Error(err))
	}
	s.audit(ctx, user.ID, models.AuditActionLogin, session.ID, map[string]string{"status": "success"}, req.IP, req.UserAgent)

	return &models.LoginResponse{
		Message: msgLoginSuccessful,
		Tokens:  *tokens,
		User:    user.Profile(staff),
	}, nil
}

// Refresh rotates a refresh token: the presented session is revoked and a new pair is issued.
func (s *AuthService) Refresh(ctx context.Context, req models.RefreshTokenRequest) (*models.RefreshTokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid refresh payload")
	}

	stored, err := s.users.FindRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, msgRefreshInvalid)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch refresh token")
	}
	if stored.Revoked || stored.Expired(s.now()) {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, msgRefreshInvalid)
	}

	user, err := s.users.FindByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, msgRefreshInvalid)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	if !user.IsActive {
		return nil, appErrors.ErrAccountDisabled
	}
	if staff, err := s.linkedStaff(ctx, user); err != nil {
		return nil, err
	} else if staff != nil && !staff.IsActive() {
		return nil, appErrors.ErrStaffInactive
	}

	revoked, err := s.users.RevokeRefreshToken(ctx, stored.ID, s.now())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to revoke refresh token")
	}
	if !revoked {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, msgRefreshInvalid)
	}
	s.blacklist(ctx, stored.ID)

	tokens, session, err := s.issueSession(ctx, user, req.IP, req.UserAgent)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, user.ID, models.AuditActionRefresh, session.ID, map[string]string{"rotated_from": stored.ID}, req.IP, req.UserAgent)

	return &models.RefreshTokenResponse{Tokens: *tokens}, nil
}

// Logout revokes the presented refresh token. A request without a token is a no-op.
func (s *AuthService) Logout(ctx context.Context, claims *models.JWTClaims, req models.LogoutRequest) (*models.MessageResponse, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	done := &models.MessageResponse{Message: msgLogoutSuccessful}
	if strings.TrimSpace(req.RefreshToken) == "" {
		return done, nil
	}

	stored, err := s.users.FindRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidToken, msgTokenInvalid)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load refresh token")
	}
	switch {
	case stored.UserID != claims.UserID:
		return nil, appErrors.Clone(appErrors.ErrInvalidToken, msgTokenNotOwned)
	case stored.Revoked:
		return nil, appErrors.Clone(appErrors.ErrInvalidToken, msgTokenBlacklisted)
	case stored.Expired(s.now()):
		return nil, appErrors.Clone(appErrors.ErrInvalidToken, msgTokenInvalid)
	}

	revoked, err := s.users.RevokeRefreshToken(ctx, stored.ID, s.now())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to revoke refresh token")
	}
	if !revoked {
		return nil, appErrors.Clone(appErrors.ErrInvalidToken, msgTokenBlacklisted)
	}
	s.blacklist(ctx, stored.ID)
	s.audit(ctx, claims.UserID, models.AuditActionLogout, stored.ID, map[string]string{"status": "logout"}, req.IP, req.UserAgent)

	return done, nil
}

// EndStaffSessions blacklists every unrevoked session of the account linked to staffRef. It runs before
// a staff row is deleted, since the cascade removes the refresh tokens the database fallback would find.
func (s *AuthService) EndStaffSessions(ctx context.Context, staffRef string) error {
	if s.revocations == nil {
		return nil
	}
	user, err := s.users.FindByStaffRef(ctx, staffRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("load account for staff %s: %w", staffRef, err)
	}
	sessions, err := s.users.ListActiveSessionIDs(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, id := range sessions {
		if err := s.revocations.Revoke(ctx, id, s.config.AccessTokenExpiry); err != nil {
			return fmt.Errorf("revoke session %s: %w", id, err)
		}
	}
	return nil
}

// Register creates a staff member and its login account atomically.
func (s *AuthService) Register(ctx context.Context, actor *models.JWTClaims, req models.RegisterRequest) (*models.RegisterResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Department = strings.TrimSpace(req.Department)
	req.Role = strings.TrimSpace(req.Role)
	req.Email = strings.TrimSpace(req.Email)
	req.StaffID = strings.TrimSpace(req.StaffID)

	if err := s.validateWithPassword(req, req.Password, "invalid registration payload"); err != nil {
		return nil, err
	}

	var conflicts []appErrors.FieldError
	emailTaken, err := s.staff.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email")
	}
	if !emailTaken {
		if emailTaken, err = s.users.ExistsByEmail(ctx, req.Email); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email")
		}
	}
	if emailTaken {
		conflicts = append(conflicts, appErrors.FieldError{Field: "email", Message: msgEmailExists})
	}
	staffIDTaken, err := s.staff.ExistsByStaffID(ctx, req.StaffID, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check staff id")
	}
	if staffIDTaken {
		conflicts = append(conflicts, appErrors.FieldError{Field: "staff_id", Message: msgStaffIDExists})
	}
	if len(conflicts) > 0 {
		return nil, appErrors.WithDetails(appErrors.Clone(appErrors.ErrConflict, "staff already registered"), conflicts...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	staff := &models.Staff{
		StaffID:    req.StaffID,
		Name:       req.Name,
		Department: req.Department,
		Role:       req.Role,
		Email:      req.Email,
		Status:     models.StaffStatusActive,
	}
	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.users.CreateWithStaff(ctx, staff, user); err != nil {
		if constraint, ok := database.UniqueViolation(err); ok {
			return nil, conflictForConstraint(constraint)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register staff")
	}

	actorID := ""
	if actor != nil {
		actorID = actor.UserID
	}
	s.audit(ctx, actorID, models.AuditActionRegister, user.ID, map[string]string{"staff_id": staff.StaffID, "email": staff.Email}, req.IP, req.UserAgent)

	return &models.RegisterResponse{Message: msgStaffRegistered, User: user.Profile(staff)}, nil
}

// Profile returns the merged account and staff projection of the caller.
func (s *AuthService) Profile(ctx context.Context, claims *models.JWTClaims) (*models.Profile, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "account no longer exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	staff, err := s.linkedStaff(ctx, user)
	if err != nil {
		return nil, err
	}
	profile := user.Profile(staff)
	return &profile, nil
}

// CreateSuperuser provisions an administrative account that has no staff profile.
func (s *AuthService) CreateSuperuser(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	input := struct {
		Email string `json:"email" validate:"required,email,max=255"`
	}{Email: email}
	if err := s.validateWithPassword(input, password, "invalid superuser payload"); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email")
	}
	if exists {
		return nil, appErrors.WithDetails(appErrors.Clone(appErrors.ErrConflict, "account already exists"), appErrors.FieldError{Field: "email", Message: msgEmailExists})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
		IsStaff:      true,
		IsAdmin:      true,
		IsSuperuser:  true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if constraint, ok := database.UniqueViolation(err); ok {
			return nil, conflictForConstraint(constraint)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create superuser")
	}
	return user, nil
}

// ValidateToken parses an access token and rejects it when its session has been revoked.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*models.JWTClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.AccessTokenSecret), nil
	}, opts...)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid || claims.UserID == "" || claims.SessionID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	revoked, err := s.sessionRevoked(ctx, claims.SessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify session")
	}
	if revoked {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session has been revoked")
	}
	return claims, nil
}

func (s *AuthService) sessionRevoked(ctx context.Context, sessionID string) (bool, error) {
	if s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(ctx, sessionID)
		if err == nil {
			return revoked, nil
		}
		s.logger.Warn("session blacklist unavailable, falling back to database", zap.Error(err))
	}

	session, err := s.users.FindRefreshTokenByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return true, nil
		}
		return false, err
	}
	return session.Revoked, nil
}

func (s *AuthService) issueSession(ctx context.Context, user *models.User, ip, userAgent string) (*models.TokenPair, *models.RefreshToken, error) {
	raw, err := generateRefreshTokenString()
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create refresh token")
	}

	now := s.now()
	session := &models.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.config.RefreshTokenExpiry),
		CreatedAt: now,
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.users.CreateRefreshToken(ctx, session, raw); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist refresh token")
	}

	access, err := s.generateAccessToken(user, session.ID)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}
	return &models.TokenPair{Access: access, Refresh: raw}, session, nil
}

func (s *AuthService) generateAccessToken(user *models.User, sessionID string) (string, error) {
	issuedAt := s.now()
	claims := &models.JWTClaims{
		UserID:    user.ID,
		Email:     user.Email,
		IsAdmin:   user.CanAdminister(),
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.config.Issuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}
	if user.StaffRef != nil {
		claims.StaffRef = *user.StaffRef
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.AccessTokenSecret))
}

func (s *AuthService) linkedStaff(ctx context.Context, user *models.User) (*models.Staff, error) {
	if user.StaffRef == nil {
		return nil, nil
	}
	staff, err := s.staff.FindByID(ctx, *user.StaffRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load staff")
	}
	return staff, nil
}

// validateWithPassword runs struct validation and the password length rule, reporting every failure.
func (s *AuthService) validateWithPassword(input interface{}, password, message string) error {
	var details []appErrors.FieldError
	if err := s.validator.Struct(input); err != nil {
		verr := appErrors.Validation(err, message)
		if len(verr.Details) == 0 {
			return verr
		}
		details = verr.Details
	}
	switch {
	case password == "":
		if !hasField(details, "password") {
			details = append(details, appErrors.FieldError{Field: "password", Message: "This field is required."})
		}
	case utf8.RuneCountInString(password) < s.config.MinPasswordLength:
		details = append(details, appErrors.FieldError{
			Field:   "password",
			Message: fmt.Sprintf("Ensure this field has at least %d characters.", s.config.MinPasswordLength),
		})
	}
	if len(details) > 0 {
		return appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, message), details...)
	}
	return nil
}

// burnPasswordCheck spends one bcrypt comparison so unknown staff and wrong passwords cost the same.
func (s *AuthService) burnPasswordCheck(password string) {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(dummyPasswordMaterial), s.config.BcryptCost)
		if err != nil {
			s.logger.Warn("failed to prepare timing hash", zap.Error(err))
			return
		}
		s.dummyHash = hash
	})
	if s.dummyHash != nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
	}
}

func (s *AuthService) blacklist(ctx context.Context, sessionID string) {
	if s.revocations == nil {
		return
	}
	if err := s.revocations.Revoke(ctx, sessionID, s.config.AccessTokenExpiry); err != nil {
		s.logger.Warn("failed to blacklist session", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func (s *AuthService) audit(ctx context.Context, userID, action, resourceID string, values map[string]string, ip, userAgent string) {
	entry := &models.AuditLog{
		Action:    action,
		Resource:  "auth",
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if userID != "" {
		entry.UserID = &userID
	}
	if resourceID != "" {
		entry.ResourceID = &resourceID
	}
	if len(values) > 0 {
		if payload, err := json.Marshal(values); err == nil {
			entry.NewValues = payload
		}
	}
	if err := s.users.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Warn("failed to record audit log", zap.String("action", action), zap.Error(err))
	}
}

func conflictForConstraint(constraint string) *appErrors.Error {
	base := appErrors.Clone(appErrors.ErrConflict, "staff already registered")
	switch constraint {
	case "staff_staff_id_key":
		return appErrors.WithDetails(base, appErrors.FieldError{Field: "staff_id", Message: msgStaffIDExists})
	case "staff_email_key", "users_email_key":
		return appErrors.WithDetails(base, appErrors.FieldError{Field: "email", Message: msgEmailExists})
	default:
		return base
	}
}

func hasField(details []appErrors.FieldError, field string) bool {
	for _, d := range details {
		if d.Field == field {
			return true
		}
	}
	return false
}

func generateRefreshTokenString() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
