package logic

import "errors"

// 业务层哨兵错误，handler据此映射HTTP状态码
var (
	ErrNotFound = errors.New("记录不存在")
)
