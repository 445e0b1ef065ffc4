package repository

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/database"
)

const userColumns = "id, email, password_hash, staff_ref, is_active, is_staff, is_admin, is_superuser, last_login, created_at, updated_at"

const refreshTokenColumns = "id, user_id, token_hash, expires_at, created_at, revoked, revoked_at, ip_address, user_agent"

// UserRepository provides database access for login accounts, sessions and the audit trail.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// HashToken returns the stored form of a refresh token.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, "id", id)
}

// FindByEmail returns a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "email", email)
}

// FindByStaffRef returns the user linked to a staff row.
func (r *UserRepository) FindByStaffRef(ctx context.Context, staffRef string) (*models.User, error) {
	return r.findOne(ctx, "staff_ref", staffRef)
}

func (r *UserRepository) findOne(ctx context.Context, column, value string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s = $1 LIMIT 1", userColumns, column)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find user by %s: %w", column, err)
	}
	return &user, nil
}

// ExistsByEmail reports whether any account uses email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email); err != nil {
		return false, fmt.Errorf("check user email: %w", err)
	}
	return exists, nil
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return insertUser(ctx, r.db, user)
}

// CreateWithStaff inserts a staff row and its linked user in one transaction.
func (r *UserRepository) CreateWithStaff(ctx context.Context, staff *models.Staff, user *models.User) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := insertStaff(ctx, tx, staff); err != nil {
			return err
		}
		user.StaffRef = &staff.ID
		return insertUser(ctx, tx, user)
	})
}

func insertUser(ctx context.Context, db sqlx.ExtContext, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	const query = `INSERT INTO users (id, email, password_hash, staff_ref, is_active, is_staff, is_admin, is_superuser, created_at, updated_at) VALUES (:id, :email, :password_hash, :staff_ref, :is_active, :is_staff, :is_admin, :is_superuser, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, db, query, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// UpdateLastLogin updates the last_login timestamp for a user.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	const query = `UPDATE users SET last_login = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, ts, ts); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// CreateRefreshToken persists a session, storing only the hash of raw.
func (r *UserRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken, raw string) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}
	token.TokenHash = HashToken(raw)

	const query = `INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at, revoked, revoked_at, ip_address, user_agent) VALUES (:id, :user_id, :token_hash, :expires_at, :created_at, :revoked, :revoked_at, :ip_address, :user_agent)`
	if _, err := r.db.NamedExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("create refresh token: %w", err)
	}
	return nil
}

// FindRefreshToken looks a session up by its raw token value.
func (r *UserRepository) FindRefreshToken(ctx context.Context, raw string) (*models.RefreshToken, error) {
	query := fmt.Sprintf("SELECT %s FROM refresh_tokens WHERE token_hash = $1 LIMIT 1", refreshTokenColumns)
	var rt models.RefreshToken
	if err := r.db.GetContext(ctx, &rt, query, HashToken(raw)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	return &rt, nil
}

// FindRefreshTokenByID looks a session up by id.
func (r *UserRepository) FindRefreshTokenByID(ctx context.Context, id string) (*models.RefreshToken, error) {
	query := fmt.Sprintf("SELECT %s FROM refresh_tokens WHERE id = $1 LIMIT 1", refreshTokenColumns)
	var rt models.RefreshToken
	if err := r.db.GetContext(ctx, &rt, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find refresh token by id: %w", err)
	}
	return &rt, nil
}

// RevokeRefreshToken marks a session as revoked. It reports false when the session was already revoked.
func (r *UserRepository) RevokeRefreshToken(ctx context.Context, id string, revokedAt time.Time) (bool, error) {
	const query = `UPDATE refresh_tokens SET revoked = TRUE, revoked_at = $2 WHERE id = $1 AND revoked = FALSE`
	res, err := r.db.ExecContext(ctx, query, id, revokedAt)
	if err != nil {
		return false, fmt.Errorf("revoke refresh token: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("revoke refresh token: %w", err)
	}
	return n > 0, nil
}

// ListActiveSessionIDs returns the ids of a user's unrevoked refresh tokens.
func (r *UserRepository) ListActiveSessionIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, `SELECT id FROM refresh_tokens WHERE user_id = $1 AND revoked = FALSE`, userID); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return ids, nil
}

// CreateAuditLog stores an audit log entry.
func (r *UserRepository) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO audit_logs (id, user_id, action, resource, resource_id, new_values, ip_address, user_agent, created_at) VALUES (:id, :user_id, :action, :resource, :resource_id, :new_values, :ip_address, :user_agent, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}
