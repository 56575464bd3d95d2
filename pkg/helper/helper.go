package helper

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/savioruz/kickmatch/pkg/constant"
)

// GenerateUniqueKey generates a unique key based on the provided map
func GenerateUniqueKey(args map[string]string) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s;", k, args[k])
	}

	return b.String()
}

// BuildCacheKey builds a cache key based on the provided key and optional postfix
func BuildCacheKey(key string, postfix ...string) string {
	if len(postfix) > 0 && postfix[0] != "" {
		return fmt.Sprintf("%s:cache:%s:%s", constant.CacheParentKey, key, postfix[0])
	}

	return fmt.Sprintf("%s:cache:%s", constant.CacheParentKey, key)
}

func DefaultPagination(page, limit int) (resultPage, resultLimit int) {
	resultPage = page
	if resultPage <= 0 {
		resultPage = constant.PaginationDefaultPage
	}

	resultLimit = limit
	if resultLimit <= 0 {
		resultLimit = constant.PaginationDefaultLimit
	}

	return resultPage, resultLimit
}

// IsValidImageType checks if the content type is a valid image type
func IsValidImageType(contentType string) bool {
	switch contentType {
	case constant.ContentTypeJPEG, constant.ContentTypeJPG, constant.ContentTypePNG, constant.ContentTypeWEBP:
		return true
	default:
		return false
	}
}

var (
	// AppTimezone holds the application's timezone
	AppTimezone *time.Location
)

// InitTimezone initializes the application timezone, falling back to UTC
func InitTimezone(timezone string) {
	if timezone == "" {
		AppTimezone = time.UTC

		return
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		AppTimezone = time.UTC

		return
	}

	AppTimezone = loc
}

// Location returns the application timezone, UTC when unset.
func Location() *time.Location {
	if AppTimezone == nil {
		return time.UTC
	}

	return AppTimezone
}

// ToAppTimezone converts a time to the application's timezone
func ToAppTimezone(t time.Time) time.Time {
	return t.In(Location())
}
