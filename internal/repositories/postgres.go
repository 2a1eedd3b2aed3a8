package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/myung2-love/Miniter/internal/db"
	"github.com/myung2-love/Miniter/internal/models"
)

// PostgresUserRepository provides PostgreSQL-backed persistence for users.
type PostgresUserRepository struct {
	pool db.Pool
}

// NewPostgresUserRepository constructs a user repository backed by PostgreSQL.
func NewPostgresUserRepository(pool db.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create persists a new user record and returns its generated identifier.
func (r *PostgresUserRepository) Create(ctx context.Context, user models.User) (int64, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, `
        INSERT INTO users (name, email, profile, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, user.Name, user.Email, user.Profile, user.Password, user.CreatedAt)

	var id int64
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrConflict
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

// FindByEmail fetches a user by their email address.
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, `
        SELECT id, name, email, profile, password_hash, created_at
        FROM users
        WHERE email = $1
    `, email)

	var user models.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Profile, &user.Password, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("select user by email: %w", err)
	}

	return user, nil
}

// FindByID fetches a user by their identifier.
func (r *PostgresUserRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, `
        SELECT id, name, email, profile, password_hash, created_at
        FROM users
        WHERE id = $1
    `, id)

	var user models.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Profile, &user.Password, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("select user by id: %w", err)
	}

	return user, nil
}

// Delete removes a user record. Tweets and follow edges cascade at the
// schema level.
func (r *PostgresUserRepository) Delete(ctx context.Context, id int64) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, `
        DELETE FROM users
        WHERE id = $1
    `, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// PostgresTweetRepository provides PostgreSQL-backed persistence for tweets.
type PostgresTweetRepository struct {
	pool db.Pool
}

// NewPostgresTweetRepository constructs a tweet repository backed by PostgreSQL.
func NewPostgresTweetRepository(pool db.Pool) *PostgresTweetRepository {
	return &PostgresTweetRepository{pool: pool}
}

// Create persists a new tweet and returns its generated identifier.
func (r *PostgresTweetRepository) Create(ctx context.Context, tweet models.Tweet) (int64, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, `
        INSERT INTO tweets (user_id, body, created_at)
        VALUES ($1, $2, $3)
        RETURNING id
    `, tweet.UserID, tweet.Body, tweet.CreatedAt)

	var id int64
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("insert tweet: %w", err)
	}

	return id, nil
}

// ListTimeline returns the tweets visible to the user, newest first: their
// own plus those authored by anyone on their outgoing follow edges.
func (r *PostgresTweetRepository) ListTimeline(ctx context.Context, userID int64) ([]models.TimelineEntry, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
        SELECT t.user_id, t.body
        FROM tweets t
        WHERE t.user_id = $1
           OR t.user_id IN (
                SELECT f.followed_id
                FROM follows f
                WHERE f.follower_id = $1
           )
        ORDER BY t.created_at DESC, t.id DESC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("query timeline: %w", err)
	}
	defer rows.Close()

	var entries []models.TimelineEntry
	for rows.Next() {
		var entry models.TimelineEntry
		if err := rows.Scan(&entry.UserID, &entry.Body); err != nil {
			return nil, fmt.Errorf("scan timeline entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timeline: %w", err)
	}

	return entries, nil
}

// PostgresFollowRepository provides PostgreSQL-backed persistence for follow edges.
type PostgresFollowRepository struct {
	pool db.Pool
}

// NewPostgresFollowRepository constructs a follow repository backed by PostgreSQL.
func NewPostgresFollowRepository(pool db.Pool) *PostgresFollowRepository {
	return &PostgresFollowRepository{pool: pool}
}

// Create inserts a follow edge. The composite primary key makes repeated
// follows of the same pair a no-op rather than duplicate rows.
func (r *PostgresFollowRepository) Create(ctx context.Context, follow models.Follow) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `
        INSERT INTO follows (follower_id, followed_id, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (follower_id, followed_id) DO NOTHING
    `, follow.FollowerID, follow.FollowedID, follow.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrNotFound
		}
		return fmt.Errorf("insert follow edge: %w", err)
	}

	return nil
}

// Delete removes a follow edge. Deleting an absent edge is not an error.
func (r *PostgresFollowRepository) Delete(ctx context.Context, followerID, followedID int64) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `
        DELETE FROM follows
        WHERE follower_id = $1 AND followed_id = $2
    `, followerID, followedID)
	if err != nil {
		return fmt.Errorf("delete follow edge: %w", err)
	}

	return nil
}

var _ UserRepository = (*PostgresUserRepository)(nil)
var _ TweetRepository = (*PostgresTweetRepository)(nil)
var _ FollowRepository = (*PostgresFollowRepository)(nil)
