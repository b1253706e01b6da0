package ecode

// 业务错误码，0表示成功
const (
	Success        = 0
	Unknown        = 10000
	ValidateErr    = 10001
	RequireAuthErr = 10002
	ForbiddenErr   = 10003
	NotFoundErr    = 10004
	DownstreamErr  = 10005
	TooManyReqErr  = 10006
)

var messages = map[int]string{
	Success:        "ok",
	Unknown:        "unknown error",
	ValidateErr:    "invalid request",
	RequireAuthErr: "authentication required",
	ForbiddenErr:   "forbidden",
	NotFoundErr:    "not found",
	DownstreamErr:  "downstream error",
	TooManyReqErr:  "too many requests",
}

func Text(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[Unknown]
}
