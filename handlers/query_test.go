package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanum-games/chardb-backend/config"
	"github.com/arcanum-games/chardb-backend/repository"
)

func testCharacterResource() *CharacterHandler {
	cfg := config.Config{ListPageSize: 10, ListPageSizeMax: 100}
	return NewCharacterHandler(&repository.CharacterRepository{}, cfg)
}

func TestBuildListOptionsDefaults(t *testing.T) {
	rs := testCharacterResource()

	opts, verr := rs.buildListOptions(url.Values{})
	require.Nil(t, verr)
	assert.Equal(t, "name", opts.SortBy)
	assert.Equal(t, "asc", opts.SortOrder)
	assert.Equal(t, 10, opts.Amount)
	assert.Equal(t, 1, opts.Page)
	assert.Empty(t, opts.Filters)
}

func TestBuildListOptionsSortOrderLiteralDescOnly(t *testing.T) {
	rs := testCharacterResource()

	opts, verr := rs.buildListOptions(url.Values{"sortOrder": {"desc"}})
	require.Nil(t, verr)
	assert.Equal(t, "desc", opts.SortOrder)

	// anything that is not literally "desc" sorts ascending
	opts, verr = rs.buildListOptions(url.Values{"sortOrder": {"DESC"}})
	require.Nil(t, verr)
	assert.Equal(t, "asc", opts.SortOrder)
}

func TestBuildListOptionsAmountAndPage(t *testing.T) {
	rs := testCharacterResource()

	opts, verr := rs.buildListOptions(url.Values{"amount": {"25"}, "page": {"3"}})
	require.Nil(t, verr)
	assert.Equal(t, 25, opts.Amount)
	assert.Equal(t, 3, opts.Page)

	// the page size is capped, not rejected
	opts, verr = rs.buildListOptions(url.Values{"amount": {"5000"}})
	require.Nil(t, verr)
	assert.Equal(t, 100, opts.Amount)

	_, verr = rs.buildListOptions(url.Values{"amount": {"ten"}})
	require.NotNil(t, verr)
	assert.Equal(t, `"amount" must be a positive number`, verr.Msg)

	_, verr = rs.buildListOptions(url.Values{"page": {"0"}})
	require.NotNil(t, verr)
	assert.Equal(t, `"page" must be a positive number`, verr.Msg)
}

func TestBuildListOptionsFiltersOnlyPresentParams(t *testing.T) {
	rs := testCharacterResource()

	opts, verr := rs.buildListOptions(url.Values{"affinity": {"Shadow"}, "page": {"1"}})
	require.Nil(t, verr)
	require.Len(t, opts.Filters, 1)
	assert.Equal(t, "Shadow", opts.Filters["affinity"])
}

func TestBuildListOptionsInvalidSortField(t *testing.T) {
	rs := testCharacterResource()

	_, verr := rs.buildListOptions(url.Values{"sortBy": {"hp"}})
	require.NotNil(t, verr)
	assert.Equal(t, "Invalid sortBy. Allowed values are id, name, affinity", verr.Msg)
}
