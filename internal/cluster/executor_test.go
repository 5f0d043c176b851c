package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"零值取默认值", 0, 0, 1, 10},
		{"负值取默认值", -3, -1, 1, 10},
		{"正常值保持不变", 2, 50, 2, 50},
		{"超限被截断", 1, 10000, 1, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := normalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestBuildSearchFilter(t *testing.T) {
	t.Run("数字匹配数值字段", func(t *testing.T) {
		filter := buildSearchFilter("age", "42")
		assert.Equal(t, 42.0, filter["age"])

		filter = buildSearchFilter("price", "19.99")
		assert.Equal(t, 19.99, filter["price"])
	})

	t.Run("布尔字符串匹配布尔字段", func(t *testing.T) {
		assert.Equal(t, true, buildSearchFilter("active", "true")["active"])
		assert.Equal(t, false, buildSearchFilter("active", "false")["active"])
	})

	t.Run("其余值做不区分大小写的子串匹配", func(t *testing.T) {
		filter := buildSearchFilter("name", "Alice")
		re, ok := filter["name"].(primitive.Regex)
		assert.True(t, ok)
		assert.Equal(t, "Alice", re.Pattern)
		assert.Equal(t, "i", re.Options)
	})

	t.Run("正则元字符被转义", func(t *testing.T) {
		filter := buildSearchFilter("email", "a.b+c@example.com")
		re := filter["email"].(primitive.Regex)
		assert.Equal(t, `a\.b\+c@example\.com`, re.Pattern)
	})
}

func TestFormatInsertedID(t *testing.T) {
	assert.Equal(t, `"custom-id"`, formatInsertedID("custom-id"))
	assert.Equal(t, "123", formatInsertedID(123))
}
