package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
)

var (
	once  sync.Once
	trans ut.Translator
)

// LazyInitGinValidator 替换gin默认validator的字段名与错误提示，只初始化一次
func LazyInitGinValidator(language string) {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// 错误信息中使用json字段名
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		enT, zhT := en.New(), zh.New()
		uni := ut.New(enT, enT, zhT)
		t, _ := uni.GetTranslator(language)
		var err error
		switch t.Locale() {
		case "zh":
			err = zhTranslations.RegisterDefaultTranslations(v, t)
		default:
			err = enTranslations.RegisterDefaultTranslations(v, t)
		}
		if err == nil {
			trans = t
		}
	})
}

// Translate 把校验错误翻译成可读文本，非校验错误原样返回
func Translate(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || trans == nil {
		return err.Error()
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Translate(trans))
	}
	return strings.Join(msgs, "; ")
}
