package repository

import (
	"context"
	"database/sql"
	"errors"
	"estate/infras/otel"
	"estate/infras/postgres"
	"estate/shared/constant"
	"estate/shared/dto"
	"estate/shared/logger"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

var errRequiredFilter = errors.New("required filter")

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Repository is a table gateway for T. Columns are taken from T's db tags, including
// those of embedded structs such as model.Metadata. A missing row is returned as the
// zero T, never as an error.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	Columns       []string
}

func NewRepository[T any](entity, table, primaryColumn string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            db,
		otel:          otl,
		table:         table,
		entity:        entity,
		primaryColumn: primaryColumn,
		Columns:       dbColumns(reflect.TypeOf(zero)),
	}
}

// WhereClause renders filter as " WHERE (...)" with its named arguments. An empty filter
// renders nothing and a non-nil empty argument map.
func WhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if args == nil {
		args = map[string]any{}
	}

	if where == "" {
		return "", args
	}

	return " WHERE " + where, args
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, "Insert", model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, "InsertTx", model)
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	where, args := WhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	var exist bool

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s%s)", repo.table, where)
	err := repo.get(ctx, repo.db.Read, "Exist", query, args, &exist)

	return exist, err
}

// Get reads one row. columns restricts the projection; empty selects every column.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	var model T

	where, args := WhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s", repo.selectList(columns), repo.table, where)
	err := repo.get(ctx, repo.db.Read, "Get", query, args, &model)

	return model, err
}

// GetForUpdateTx reads one row and locks it until sqltx ends.
func (repo *Repository[T]) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (T, error) {
	var model T

	where, args := WhereClause(filter)
	if where == "" {
		return model, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s FOR UPDATE OF %s", repo.selectList(nil), repo.table, where, repo.table)
	err := repo.get(ctx, sqltx, "GetForUpdateTx", query, args, &model)

	return model, err
}

// GetAll reads every matching row. SortBy is interpolated and must come from a
// whitelist (see dto.QueryParams.Sanitize).
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := WhereClause(filter)

	var query strings.Builder

	fmt.Fprintf(&query, "SELECT %s FROM %s%s", repo.selectList(columns), repo.table, where)

	if params.SortBy != "" && params.SortDir != "" {
		fmt.Fprintf(&query, " ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		query.WriteString(" LIMIT :limit")

		if params.Page > 0 {
			args["offset"] = params.Offset()
			query.WriteString(" OFFSET :offset")
		}
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query.String())

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query.String())
	if err != nil {
		return nil, repo.fail(scope, "GetAll", err)
	}
	defer stmt.Close()

	var models []T
	if err := stmt.SelectContext(ctx, &models, args); err != nil {
		return nil, repo.fail(scope, "GetAll", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	where, args := WhereClause(filter)

	var count int

	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s%s", repo.table, repo.primaryColumn, repo.table, where)
	err := repo.get(ctx, repo.db.Read, "Count", query, args, &count)

	return count, err
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, fields map[string]any, filter dto.FilterGroup) error {
	where, args := WhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(fields))
	for col := range fields {
		assignments = append(assignments, col+" = :"+col)
	}

	slices.Sort(assignments)
	maps.Copy(args, fields)

	query := fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), where)

	return repo.exec(ctx, sqltx, "UpdateTx", query, args)
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) error {
	where, args := WhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	return repo.exec(ctx, sqltx, "DeleteTx", fmt.Sprintf("DELETE FROM %s%s", repo.table, where), args)
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, op string, model T) error {
	placeholders := make([]string, len(repo.Columns))
	for i, col := range repo.Columns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.Columns, ", "), strings.Join(placeholders, ", "))

	return repo.exec(ctx, exec, op, query, model)
}

func (repo *Repository[T]) get(ctx context.Context, src preparer, op, query string, args map[string]any, dest any) error {
	ctx, scope := repo.scope(ctx, op)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := src.PrepareNamedContext(ctx, query)
	if err != nil {
		return repo.fail(scope, op, err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, dest, args)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return repo.fail(scope, op, err)
	}

	return nil
}

func (repo *Repository[T]) exec(ctx context.Context, exec execer, op, query string, arg any) error {
	ctx, scope := repo.scope(ctx, op)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, arg); err != nil {
		return repo.fail(scope, op, err)
	}

	return nil
}

func (repo *Repository[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+repo.entity+"."+op)
}

func (repo *Repository[T]) fail(scope otel.Scope, op string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("%s %s: %w", repo.entity, op, err)
}

func (repo *Repository[T]) selectList(only []string) string {
	cols := make([]string, 0, len(repo.Columns))

	for _, col := range repo.Columns {
		if len(only) > 0 && !slices.Contains(only, col) {
			continue
		}

		cols = append(cols, repo.table+"."+col)
	}

	return strings.Join(cols, ", ")
}

func dbColumns(t reflect.Type) []string {
	var cols []string

	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			cols = append(cols, dbColumns(field.Type)...)

			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		if name == "" || name == "-" {
			continue
		}

		cols = append(cols, name)
	}

	return cols
}
