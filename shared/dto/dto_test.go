package dto_test

import (
	"net/http"
	"net/url"
	"stayadmin/shared/constant"
	"stayadmin/shared/dto"
	"stayadmin/shared/failure"
	"stayadmin/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "check_in",
				"sort_dir": "asc",
				"search":   "  BK-001 ",
				"status":   "confirmed",
			},
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "check_in",
				SortDir: "ASC",
				Search:  "BK-001",
				Status:  "confirmed",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:        "with default request disabled and no parameters",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "with invalid page and limit",
			queryParams:    map[string]string{"page": "invalid", "limit": "-10"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:        "with limit above maximum",
			queryParams: map[string]string{"limit": "5000"},
			expected:    dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:        "with unknown sort direction",
			queryParams: map[string]string{"sort_dir": "sideways"},
			expected:    dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/v1/bookings")
			assert.NoError(t, err)

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			assert.NoError(t, err)

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *queryParams)
		})
	}
}

func TestQueryParams_ValidateSort(t *testing.T) {
	allowed := []string{"created_at", "check_in", "room_type_name"}

	for _, field := range append(allowed, "") {
		q := dto.QueryParams{SortBy: field}
		assert.NoError(t, q.ValidateSort(allowed...), field)
	}

	q := dto.QueryParams{SortBy: "guest_email; DROP TABLE bookings"}
	err := q.ValidateSort(allowed...)
	assert.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindValidation))
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, (&dto.QueryParams{Page: 0, Limit: 10}).Offset())
	assert.Equal(t, 0, (&dto.QueryParams{Page: 1, Limit: 10}).Offset())
	assert.Equal(t, 20, (&dto.QueryParams{Page: 3, Limit: 10}).Offset())
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		clause   string
		expected map[string]any
	}{
		{
			name:     "eq with table",
			filter:   dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq, Table: "bookings"},
			clause:   "bookings.status = :status",
			expected: map[string]any{"status": "confirmed"},
		},
		{
			name:     "like uses arg name",
			filter:   dto.Filter{ArgName: "search_name", Field: "guest_name", Value: "ann", Operator: dto.FilterOperatorLike},
			clause:   `LOWER(guest_name) LIKE LOWER(:search_name) ESCAPE '\' `,
			expected: map[string]any{"search_name": "%ann%"},
		},
		{
			name:     "like matches wildcards literally",
			filter:   dto.Filter{ArgName: "search_reference", Field: "reference", Value: `50%_off\`, Operator: dto.FilterOperatorLike},
			clause:   `LOWER(reference) LIKE LOWER(:search_reference) ESCAPE '\' `,
			expected: map[string]any{"search_reference": `%50\%\_off\\%`},
		},
		{
			name:     "in expands slices",
			filter:   dto.Filter{Field: "status", Value: []string{"confirmed", "completed"}, Operator: dto.FilterOperatorIn},
			clause:   "status IN (:status_0, :status_1) ",
			expected: map[string]any{"status_0": "confirmed", "status_1": "completed"},
		},
		{
			name:     "is null",
			filter:   dto.Filter{Field: "cancelled_at", Operator: dto.FilterIsNull},
			clause:   "cancelled_at IS NULL",
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()
			assert.Equal(t, tt.clause, clause)
			assert.Equal(t, tt.expected, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{ArgName: "q_ref", Field: "booking_reference", Value: "bk", Operator: dto.FilterOperatorLike},
			dto.Filter{ArgName: "q_email", Field: "guest_email", Value: "bk", Operator: dto.FilterOperatorLike},
		},
	}

	clause, args := group.GetWhereClause()
	assert.Equal(t, `(LOWER(booking_reference) LIKE LOWER(:q_ref) ESCAPE '\'  OR LOWER(guest_email) LIKE LOWER(:q_email) ESCAPE '\' )`, clause)
	assert.Len(t, args, 2)

	empty := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}
	clause, _ = empty.GetWhereClause()
	assert.Empty(t, clause)
}
