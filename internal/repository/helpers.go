package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/owlpost/lumos/internal/database"
)

// extractRecordID extracts a record id from the shapes SurrealDB hands back.
func extractRecordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil {
			return recordID.String()
		}
	}

	return ""
}

// parseTime parses time from the formats SurrealDB returns.
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// getString pulls a string field from a decoded record, tolerating absence.
func getString(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

// getInt64 pulls an integer field, tolerating the numeric types CBOR
// decoding produces.
func getInt64(data map[string]interface{}, key string) int64 {
	switch n := data[key].(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

// recordData unwraps a QueryOne result into the raw record map.
func recordData(result interface{}) (map[string]interface{}, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return data, nil
}

// recordList unwraps a Query response into the individual record maps.
func recordList(results []interface{}) []map[string]interface{} {
	var records []map[string]interface{}
	for _, res := range results {
		// Unwrap the per-statement {status, result} envelope.
		if resp, ok := res.(map[string]interface{}); ok {
			if inner, ok := resp["result"].([]interface{}); ok {
				for _, item := range inner {
					if record, ok := item.(map[string]interface{}); ok {
						records = append(records, record)
					}
				}
				continue
			}
		}
		if record, ok := res.(map[string]interface{}); ok {
			records = append(records, record)
		}
	}
	return records
}
