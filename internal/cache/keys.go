package cache

import "strconv"

// Cache key shapes. A collection key covers the full entity listing; an
// entity key covers a single row snapshot.
const (
	UsersAllKey    = "users:all"
	ProductsAllKey = "products:all"

	userKeyPrefix    = "user:"
	productKeyPrefix = "product:"
)

// UserKey returns the cache key for a single user snapshot.
func UserKey(id int64) string {
	return userKeyPrefix + strconv.FormatInt(id, 10)
}

// ProductKey returns the cache key for a single product snapshot.
func ProductKey(id int64) string {
	return productKeyPrefix + strconv.FormatInt(id, 10)
}
