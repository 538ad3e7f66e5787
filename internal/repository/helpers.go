package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/arise/hunter/api/internal/database"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// recordIDString converts a SurrealDB record id (string, RecordID, or raw
// map) to its "table:id" string form.
func recordIDString(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
	case map[string]interface{}:
		tb, _ := v["tb"].(string)
		idPart, _ := v["id"].(string)
		if tb != "" && idPart != "" {
			return tb + ":" + idPart
		}
	}
	return fmt.Sprintf("%v", id)
}

// normalizeRow rewrites driver-specific value types (record ids, custom
// datetimes) into plain strings so the row can round-trip through
// encoding/json into a model struct.
func normalizeRow(row map[string]interface{}) {
	for key, value := range row {
		switch v := value.(type) {
		case models.RecordID, *models.RecordID:
			row[key] = recordIDString(v)
		case models.CustomDateTime:
			row[key] = v.Time.UTC().Format(time.RFC3339Nano)
		case *models.CustomDateTime:
			if v != nil {
				row[key] = v.Time.UTC().Format(time.RFC3339Nano)
			}
		case map[string]interface{}:
			if key == "id" {
				row[key] = recordIDString(v)
			} else {
				normalizeRow(v)
			}
		case []interface{}:
			for _, item := range v {
				if m, ok := item.(map[string]interface{}); ok {
					normalizeRow(m)
				}
			}
		}
	}
}

// decodeRecord parses one SurrealDB record into v via a JSON round trip.
func decodeRecord(result interface{}, v interface{}) error {
	if result == nil {
		return database.ErrNotFound
	}

	// Unwrap the {status, result} statement wrapper and array containers
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return database.ErrNotFound
		}
		result = arr[0]
	}

	row, ok := result.(map[string]interface{})
	if !ok {
		return errors.New("unexpected result format")
	}

	normalizeRow(row)

	data, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// recordRows flattens a multi-record query result into its row maps.
func recordRows(results []interface{}) []map[string]interface{} {
	var rows []map[string]interface{}
	for _, r := range results {
		entry := r
		if resp, ok := r.(map[string]interface{}); ok {
			if status, ok := resp["status"].(string); ok && status == "OK" {
				entry = resp["result"]
			}
		}
		switch v := entry.(type) {
		case []interface{}:
			for _, item := range v {
				if row, ok := item.(map[string]interface{}); ok {
					rows = append(rows, row)
				}
			}
		case map[string]interface{}:
			rows = append(rows, v)
		}
	}
	return rows
}

// decodeRows parses every record row into a freshly allocated T.
func decodeRows[T any](results []interface{}) ([]*T, error) {
	rows := recordRows(results)
	out := make([]*T, 0, len(rows))
	for _, row := range rows {
		normalizeRow(row)
		data, err := json.Marshal(row)
		if err != nil {
			return nil, err
		}
		item := new(T)
		if err := json.Unmarshal(data, item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// nilIfEmpty converts an empty string to nil so optional fields store as
// NONE.
func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// surrealTime formats a time for a <datetime> cast in a query.
func surrealTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
