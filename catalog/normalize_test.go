package catalog

import (
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	return c
}

func TestNormalizeJSON(t *testing.T) {
	c := loadTestCatalog(t)
	fields := map[string]string{
		"gender": "gender",
		"status": "status",
		"place":  "rank",
	}

	tests := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{
			name:  "char field",
			input: `{"gender": "non_binary", "user": "alice"}`,
			expected: map[string]any{
				"gender": "N",
				"user":   "alice",
			},
		},
		{
			name:  "byte field becomes a number",
			input: `{"status": "Inactive"}`,
			expected: map[string]any{
				"status": float64(1), // JSON unmarshals numbers as float64
			},
		},
		{
			name:  "multiple fields",
			input: `{"gender": "FEMALE", "status": "active", "place": "second"}`,
			expected: map[string]any{
				"gender": "F",
				"status": float64(0),
				"place":  "1",
			},
		},
		{
			name:  "unknown member passes through",
			input: `{"gender": "other", "status": "active"}`,
			expected: map[string]any{
				"gender": "other",
				"status": float64(0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.NormalizeJSON(tt.input, fields)

			var resultData map[string]any
			require.NoError(t, json.Unmarshal([]byte(result), &resultData))
			assert.Equal(t, tt.expected, resultData)
		})
	}
}

func TestNormalizeJSON_PreservesUntouchedValues(t *testing.T) {
	c := loadTestCatalog(t)
	fields := map[string]string{"gender": "gender"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "large integer keeps its digits",
			input: `{"id": 9007199254740993, "gender": "male"}`,
			want:  `{"gender":"M","id":9007199254740993}`,
		},
		{
			name:  "decimal and exponent keep their form",
			input: `{"gender": "female", "ratio": 0.10, "big": 1e400}`,
			want:  `{"big":1e400,"gender":"F","ratio":0.10}`,
		},
		{
			name:  "html characters are not escaped",
			input: `{"gender": "male", "note": "a<b && c>d"}`,
			want:  `{"gender":"M","note":"a<b && c>d"}`,
		},
		{
			name:  "nested values pass through",
			input: `{"gender": "non_binary", "meta": {"n": 12345678901234567890, "tags": ["<x>"]}}`,
			want:  `{"gender":"N","meta":{"n":12345678901234567890,"tags":["<x>"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.NormalizeJSON(tt.input, fields))
		})
	}
}

func TestNormalizeJSON_PassThrough(t *testing.T) {
	c := loadTestCatalog(t)
	fields := map[string]string{"status": "status", "gender": "missing"}

	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid json", input: `{"status": "active"`},
		{name: "trailing data", input: `{"status": "active"} {"status": "inactive"}`},
		{name: "array document", input: `["active"]`},
		{name: "null document", input: `null`},
		{name: "number value", input: `{"status": 1}`},
		{name: "boolean value", input: `{"status": true}`},
		{name: "null value", input: `{"status": null}`},
		{name: "array value", input: `{"status": ["active"]}`},
		{name: "unmapped value", input: `{"status": "deleted"}`},
		{name: "unknown enumeration", input: `{"gender": "male"}`},
		{name: "unbound field", input: `{"other": "active"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.input, c.NormalizeJSON(tt.input, fields))
		})
	}

	assert.Equal(t, `{"status": "active"}`, c.NormalizeJSON(`{"status": "active"}`, nil))
}

func TestNormalizeJSON_Concurrent(t *testing.T) {
	c := loadTestCatalog(t)
	fields := map[string]string{"gender": "gender"}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.Equal(t, `{"gender":"M"}`, c.NormalizeJSON(`{"gender": "male"}`, fields))
			}
		}()
	}
	wg.Wait()
}
