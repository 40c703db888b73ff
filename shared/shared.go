package shared

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"stayadmin/shared/cache"
	"stayadmin/shared/constant"
	"stayadmin/shared/dto"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/blake2b"
)

const cacheKeySeparator = ":"

// CalculateTotalPage returns ceil(total / limit), never less than one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins prefix and parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from the query parameters and filters.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	payload, err := json.Marshal(struct {
		Params dto.QueryParams `json:"p"`
		Filter dto.FilterGroup `json:"f"`
	}{params, filter})
	if err != nil {
		payload = fmt.Appendf(nil, "%+v|%+v", params, filter)
	}

	sum := blake2b.Sum256(payload)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:16]))
}

// InvalidateCaches drops every key under prefix. Failures are logged, cache is best effort.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	pattern := prefix + cacheKeySeparator + constant.Asterix

	if err := redisCache.Clear(ctx, pattern); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to invalidate caches")
	}
}
