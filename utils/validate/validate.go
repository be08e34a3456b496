package validate

import (
	"errors"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type Validate struct {
	validate *validator.Validate
	trans    ut.Translator
}

// InitValidates 初始化相关可用数据
func (v *Validate) InitValidates(localTrans locales.Translator, local string) {
	uni := ut.New(localTrans, localTrans)
	v.trans, _ = uni.GetTranslator(local)

	v.validate = validator.New()

	err := en_translations.RegisterDefaultTranslations(v.validate, v.trans)
	if err != nil {
		panic(err)
	}
}

// HandleError 处理错误
// r 为验证的赋值模型
// m 为自定义错误消息
func (v *Validate) HandleError(r interface{}, m map[string]string) error {
	err := v.validate.Struct(r)
	if err != nil {
		errs := err.(validator.ValidationErrors)
		for _, e := range errs {
			if msg, ok := m[e.Field()+"."+e.Tag()]; ok {
				return errors.New(msg)
			}
			return errors.New(e.Translate(v.trans))
		}
	}

	return nil
}

// New 执行验证
// r 为验证的赋值模型
// m 为自定义错误消息
func New(r interface{}, m map[string]string) error {
	v := Validate{}
	v.InitValidates(en.New(), "en")
	return v.HandleError(r, m)
}
