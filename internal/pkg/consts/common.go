package consts

const (
	MimePrefixImage = "image"
)

const (
	DefaultProfileImage = "default_avatar.png"
)

// Context 中的用户身份 Key
const (
	UserIDKey   = "user_id"
	UserNameKey = "user_name"
	TokenKey    = "token"
)

// 评价变更动作，同时作为 WebSocket 事件名
const (
	ReviewActionCreate = "create_review"
	ReviewActionUpdate = "update_review"
	ReviewActionDelete = "delete_review"
	ReviewActionList   = "get_reviews"
	WsEventError       = "error"
)

// 点赞方向
const (
	DirectionInc  = "inc"
	DirectionDecr = "decr"
)

// 热门榜单计算方式
const (
	TrendingStrategyInProcess = "inprocess"
	TrendingStrategyPipeline  = "pipeline"
)

const (
	DefaultTrendingWindowDays = 14
	DefaultTrendingLimit      = 12
	TopRatedLimit             = 12
	DefaultThreadMaxRetries   = 3
)
