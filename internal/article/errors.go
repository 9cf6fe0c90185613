package article

import "errors"

// 业务哨兵错误，handler 负责映射到响应码
// 其余错误一律视为存储层故障（StorageError）
var (
	// ErrArticleNotFound 文章不存在
	ErrArticleNotFound = errors.New("文章不存在")
	// ErrTitleExists 标题已被占用（创建冲突）
	ErrTitleExists = errors.New("标题已存在")
	// ErrInvalidTitle 标题清洗后为空
	ErrInvalidTitle = errors.New("无效的标题")
	// ErrHistoryNotFound 历史版本不存在，或其所属文章已被删除
	ErrHistoryNotFound = errors.New("历史版本不存在")
)
