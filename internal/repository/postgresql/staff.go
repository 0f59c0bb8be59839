package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/staff"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

// GetActive implements staff.StaffRepository.
func (r *staffRepository) GetActive(ctx context.Context, username string, role staff.Role) (staff.StaffUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT username, full_name, role, position, password_hash, is_active
		FROM staff_users
		WHERE username = $1 AND role = $2 AND is_active = TRUE
	`

	var user staff.StaffUser
	err := q.QueryRow(ctx, query, username, role).Scan(
		&user.Username, &user.FullName, &user.Role, &user.Position,
		&user.PasswordHash, &user.IsActive,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffUser{}, staff.ErrStaffNotFound
		}
		return staff.StaffUser{}, fmt.Errorf("failed to get staff user: %w", err)
	}

	return user, nil
}

// Create implements staff.StaffRepository.
func (r *staffRepository) Create(ctx context.Context, user staff.StaffUser) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff_users (username, full_name, role, position, password_hash, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query,
		user.Username, user.FullName, user.Role, user.Position,
		user.PasswordHash, user.IsActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return staff.ErrUsernameExists
		}
		return fmt.Errorf("failed to create staff user: %w", err)
	}

	return nil
}

// Update implements staff.StaffRepository. An empty PasswordHash keeps the
// stored hash.
func (r *staffRepository) Update(ctx context.Context, user staff.StaffUser) error {
	q := GetQuerier(ctx, r.db)

	var commandTag pgconn.CommandTag
	var err error
	if user.PasswordHash != "" {
		commandTag, err = q.Exec(ctx, `
			UPDATE staff_users
			SET full_name = $1, role = $2, position = $3, password_hash = $4, is_active = $5
			WHERE username = $6
		`, user.FullName, user.Role, user.Position, user.PasswordHash, user.IsActive, user.Username)
	} else {
		commandTag, err = q.Exec(ctx, `
			UPDATE staff_users
			SET full_name = $1, role = $2, position = $3, is_active = $4
			WHERE username = $5
		`, user.FullName, user.Role, user.Position, user.IsActive, user.Username)
	}
	if err != nil {
		return fmt.Errorf("failed to update staff user: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// ListActiveStaff implements staff.StaffRepository.
func (r *staffRepository) ListActiveStaff(ctx context.Context) ([]staff.StaffUser, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT username, full_name, role, position, password_hash, is_active
		FROM staff_users
		WHERE is_active = TRUE AND role = $1
		ORDER BY full_name
	`, staff.RoleStaff)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff users: %w", err)
	}
	defer rows.Close()

	var users []staff.StaffUser
	for rows.Next() {
		var user staff.StaffUser
		err := rows.Scan(
			&user.Username, &user.FullName, &user.Role, &user.Position,
			&user.PasswordHash, &user.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// Deactivate implements staff.StaffRepository.
func (r *staffRepository) Deactivate(ctx context.Context, username string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE staff_users SET is_active = FALSE WHERE username = $1`,
		username,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate staff user: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}
