package sqldb

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/license-management-toolkit/keyserve/internal/entity"
	"github.com/license-management-toolkit/keyserve/pkg/db"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

// SessionRepo manages live session rows. A session is active while its row
// exists; closing it (explicitly or by sweep) deletes the row.
type SessionRepo struct {
	*db.SQL
	log logger.Interface
}

// NewSessionRepo -.
func NewSessionRepo(database *db.SQL, log logger.Interface) *SessionRepo {
	return &SessionRepo{database, log}
}

// Touch advances last_keep_alive. Returns false when the session id is
// unknown or already closed.
func (r *SessionRepo) Touch(ctx context.Context, id string, at time.Time) (bool, error) {
	query, args, err := r.Builder.
		Update("sessions").
		Set("last_keep_alive", at.Unix()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.Pool.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// Delete closes a session unconditionally. Returns false when the id is
// unknown or already closed.
func (r *SessionRepo) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := r.Builder.
		Delete("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.Pool.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// ListLapsed returns sessions whose last keep-alive is strictly before the
// cutoff, oldest first.
func (r *SessionRepo) ListLapsed(ctx context.Context, cutoff time.Time) ([]entity.Session, error) {
	query, args, err := r.Builder.
		Select("id", "installation_id", "created_at", "last_keep_alive").
		From("sessions").
		Where(squirrel.Lt{"last_keep_alive": cutoff.Unix()}).
		OrderBy("last_keep_alive ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []entity.Session

	for rows.Next() {
		var (
			s                      entity.Session
			created, lastKeepAlive int64
		)

		if err := rows.Scan(&s.ID, &s.InstallationID, &created, &lastKeepAlive); err != nil {
			return nil, err
		}

		s.CreatedAt = time.Unix(created, 0).UTC()
		s.LastKeepAlive = time.Unix(lastKeepAlive, 0).UTC()
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// DeleteIfUntouched closes a session only if its keep-alive timestamp still
// matches the one observed by the caller. A keep-alive that lands in between
// changes the timestamp and wins the race.
func (r *SessionRepo) DeleteIfUntouched(ctx context.Context, id string, lastKeepAlive time.Time) (bool, error) {
	query, args, err := r.Builder.
		Delete("sessions").
		Where(squirrel.Eq{"id": id, "last_keep_alive": lastKeepAlive.Unix()}).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.Pool.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
