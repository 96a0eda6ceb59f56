package consts

const (
	TokenBlacklistKey = "auth:blacklist:"
	TrendingKey       = "movie:trending"
	TrendingLock      = "lock:movie:trending"
)

// Redis Pub/Sub 频道
const (
	ReviewChannel = "ws:reviews"
)
