package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/gremahtech/agri-auth/models"
)

// psql is the statement builder configured for PostgreSQL ($1, $2, ...)
// placeholders. All user queries are built through it.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column list of the "users" table, in the
// order every scan in this package expects.
var userColumns = []string{"user_id", "username", "email", "password_hash", "role", "created_at"}

// buildInsertUserQuery builds the INSERT for a new account. The RETURNING
// clause hands back the server-assigned user_id and created_at so that the
// caller receives the canonical database representation.
func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("username", "email", "password_hash", "role").
		Values(user.Username, user.Email, user.PasswordHash, user.Role).
		Suffix("RETURNING user_id, username, email, password_hash, role, created_at").
		ToSql()
}

// buildSelectUserByUsernameQuery builds the lookup of a single account by
// its username.
func buildSelectUserByUsernameQuery(username string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// buildSelectUserByEmailQuery builds the lookup of a single account by its
// email address.
func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// buildSelectAllUsersQuery builds the administrative enumeration of all
// accounts, ordered by identifier for stable listing.
func buildSelectAllUsersQuery() (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("user_id").
		ToSql()
}

// buildDeleteUserByIDQuery builds the deletion of a single account by its
// identifier.
func buildDeleteUserByIDQuery(userID int64) (string, []any, error) {
	return psql.Delete(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
