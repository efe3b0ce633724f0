package shared_test

import (
	"testing"

	"staysync/shared"
	"staysync/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(5, 0))
	assert.Equal(t, 3, shared.CalculateTotalPage(21, 10))
	assert.Equal(t, 2, shared.CalculateTotalPage(20, 10))
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("b-1", "id", "bookings")
	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "b-1"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "mapping:room:channex:r-1", shared.BuildCacheKey("mapping:room", "channex", "r-1"))
	assert.Equal(t, "booking:lock", shared.BuildCacheKey("booking:lock"))
}

func TestBuildCacheKeyWithQuery_Stable(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByField("status", "confirmed", "bookings")

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	other := shared.BuildCacheKeyWithQuery("booking:gets", params, shared.FilterByField("status", "pending", "bookings"))

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}
