package constants

// Cache key layout. All storefront keys share one prefix so an operator can
// flush them without touching rate-limit state.
const (
	CacheKeyPrefix = "eticket:cache:"

	CacheKeyEventList   = CacheKeyPrefix + "events:list:"   // + query hash
	CacheKeyEventDetail = CacheKeyPrefix + "events:detail:" // + event id
	CacheKeyNewsList    = CacheKeyPrefix + "news:list"
)
