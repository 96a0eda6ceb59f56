package service

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid          = errors.New("参数错误")
	ErrUserNotFound          = errors.New("用户不存在")
	ErrUserExist             = errors.New("邮箱已注册")
	ErrUserSuspended         = errors.New("用户已被封禁")
	ErrUserInactive          = errors.New("用户未激活")
	ErrPasswordIncorrect     = errors.New("密码错误")
	ErrTokenInvalid          = errors.New("Token 无效或已过期")
	ErrMovieNotFound         = errors.New("电影不存在")
	ErrMovieGenreNotFound    = errors.New("没有找到该类型的电影")
	ErrMovieExist            = errors.New("电影已存在")
	ErrCommentThreadNotFound = errors.New("评论区不存在")
	ErrCommentNotFound       = errors.New("评论不存在")
	ErrReviewThreadNotFound  = errors.New("评价区不存在")
	ErrReviewNotFound        = errors.New("评价不存在")
	ErrLinkNotFound          = errors.New("下载链接不存在")
	ErrRateDirection         = errors.New("评分方向只能是 inc 或 decr")
	ErrConcurrentUpdate      = errors.New("数据已被他人修改，请重试")
	ErrFileNotSupported      = errors.New("不支持的文件类型")
	ErrStorageDisabled       = errors.New("对象存储未启用")
	UnauthorizedError        = errors.New("权限不足")
	UnExpectedError          = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:          BadRequest,
	ErrUserNotFound:          NotFound,
	ErrUserExist:             BadRequest,
	ErrUserSuspended:         Forbidden,
	ErrUserInactive:          Forbidden,
	ErrPasswordIncorrect:     Unauthorized,
	ErrTokenInvalid:          Unauthorized,
	ErrMovieNotFound:         NotFound,
	ErrMovieGenreNotFound:    NotFound,
	ErrMovieExist:            Conflict,
	ErrCommentThreadNotFound: NotFound,
	ErrCommentNotFound:       NotFound,
	ErrReviewThreadNotFound:  NotFound,
	ErrReviewNotFound:        NotFound,
	ErrLinkNotFound:          NotFound,
	ErrRateDirection:         BadRequest,
	ErrConcurrentUpdate:      Conflict,
	ErrFileNotSupported:      BadRequest,
	ErrStorageDisabled:       BadRequest,
	UnauthorizedError:        Unauthorized,
	UnExpectedError:          InternalServerError,
}

// StatusOf 返回错误对应的业务码，未登记的错误视为 500
func StatusOf(err error) (int, bool) {
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return InternalServerError, false
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
