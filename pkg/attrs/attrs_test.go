package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractString(t *testing.T) {
	pairs := []any{"request_id", "req-123", "status", 401, "section", "alerts"}

	assert.Equal(t, "req-123", ExtractString(pairs, "request_id"))
	assert.Equal(t, "alerts", ExtractString(pairs, "section"))
	assert.Equal(t, "", ExtractString(pairs, "status"), "non-string values yield empty")
	assert.Equal(t, "", ExtractString(pairs, "missing"))
	assert.Equal(t, "", ExtractString([]any{"dangling"}, "dangling"), "key without a value yields empty")
	assert.Equal(t, "", ExtractString(nil, "request_id"))
}
