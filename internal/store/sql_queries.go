// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	localStorageTable = "local_storage"

	columnKey       = "key_name"
	columnValue     = "value"
	columnUpdatedAt = "updated_at"
)

// sqlite uses "?" placeholders
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildGetValueQuery builds the SELECT of a single stored value.
func buildGetValueQuery(key string) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select(columnValue).
		From(localStorageTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSetValueQuery builds an upsert that replaces the value of key.
func buildSetValueQuery(key, value string) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Insert(localStorageTable).
		Columns(columnKey, columnValue, columnUpdatedAt).
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(" + columnKey + ") DO UPDATE SET " +
			columnValue + " = excluded." + columnValue + ", " +
			columnUpdatedAt + " = excluded." + columnUpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildRemoveValueQuery builds the DELETE of key.
func buildRemoveValueQuery(key string) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Delete(localStorageTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
