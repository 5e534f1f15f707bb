package services

import "fmt"

// ValidationError 请求数据无效, 事务开始前拒绝
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError 引用的记录不存在
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// PersistenceError 事务失败, 已完全回滚
type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
