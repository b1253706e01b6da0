package errors

import (
	stderrors "errors"
	"fmt"

	"signalrelay/pkg/errors/ecode"
)

// withCode 携带业务错误码的错误，message 返回给客户端，cause 只写日志
type withCode struct {
	code    int
	message string
	cause   error
}

func (w *withCode) Error() string {
	if w.cause != nil {
		return fmt.Sprintf("%s: %v", w.message, w.cause)
	}
	return w.message
}

func (w *withCode) Unwrap() error { return w.cause }

func (w *withCode) Code() int { return w.code }

func WithCode(code int, message string) error {
	return &withCode{code: code, message: message}
}

func WithCodef(code int, format string, args ...any) error {
	return &withCode{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap err 为nil时返回nil
func Wrap(err error, code int, message string) error {
	if err == nil {
		return nil
	}
	return &withCode{code: code, message: message, cause: err}
}

func Wrapf(err error, code int, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &withCode{code: code, message: fmt.Sprintf(format, args...), cause: err}
}

// DecodeErr 解析出错误码和提示信息，nil 表示成功
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, ecode.Text(ecode.Success)
	}
	var wc *withCode
	if stderrors.As(err, &wc) {
		return wc.code, wc.message
	}
	return ecode.Unknown, err.Error()
}

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }
