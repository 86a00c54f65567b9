package store

import (
	"github.com/Masterminds/squirrel"
)

// User queries are static and kept as prepared constants.
const (
	createUser = `INSERT INTO users (email, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, name, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, name, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	listUsers = `SELECT user_id, email, password_hash, name, created_at, updated_at
    FROM users
    ORDER BY user_id;`
)

// Post queries are built with squirrel: the post listings share one SELECT
// shape that differs only in its WHERE clause, and the publish transition
// needs a dynamic SET list.
//
// The Dollar placeholder format is understood by both backends: SQLite
// accepts $N parameters natively.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var postColumns = []string{"post_id", "description", "published", "author_id", "created_at", "updated_at"}

func buildCreatePost(description string, authorID int64) (string, []any, error) {
	return psql.Insert("posts").
		Columns("description", "author_id").
		Values(description, authorID).
		Suffix("RETURNING post_id, description, published, author_id, created_at, updated_at").
		ToSql()
}

func buildFindPostByID(postID int64) (string, []any, error) {
	return psql.Select(postColumns...).
		From("posts").
		Where(squirrel.Eq{"post_id": postID}).
		ToSql()
}

func buildUpdatePostPublished(postID int64, published bool) (string, []any, error) {
	return psql.Update("posts").
		Set("published", published).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"post_id": postID}).
		Suffix("RETURNING post_id, description, published, author_id, created_at, updated_at").
		ToSql()
}

func buildListPublished() (string, []any, error) {
	return psql.Select(postColumns...).
		From("posts").
		Where(squirrel.Eq{"published": true}).
		OrderBy("created_at DESC, post_id DESC").
		ToSql()
}

func buildListByAuthor(authorID int64) (string, []any, error) {
	return psql.Select(postColumns...).
		From("posts").
		Where(squirrel.Eq{"author_id": authorID}).
		OrderBy("created_at DESC, post_id DESC").
		ToSql()
}
