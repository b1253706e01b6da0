package model

import "errors"

// 错误分类。具体错误用 %w 包装这些哨兵值，调用方用 errors.Is 判断
var (
	// ErrAuth 签名错误或缺失、chat id 不是操作员
	ErrAuth = errors.New("auth error")
	// ErrValidation JSON格式错误、非数字输入、非法动作或价格
	ErrValidation = errors.New("validation error")
	// ErrDownstream 券商或通知渠道调用失败/超时
	ErrDownstream = errors.New("downstream error")
)
