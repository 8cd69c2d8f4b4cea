package service

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("Mật khẩu phải có ít nhất 6 ký tự")
	ErrPasswordMismatch   = errors.New("Mật khẩu xác nhận không khớp")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

// ValidationError agrupa los errores de formulario por campo (nombre JSON).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func fieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// messages[campo][tag]; "" es el mensaje por defecto de cualquier tag del campo.
var messages = map[string]map[string]string{
	"name": {
		"required": "Tên sản phẩm là bắt buộc",
		"max":      "Tên sản phẩm quá dài",
	},
	"sku":             {"": "SKU quá dài"},
	"category":        {"": "Danh mục là bắt buộc"},
	"price":           {"required": "Giá là bắt buộc", "": "Giá phải lớn hơn 0"},
	"cost_price":      {"": "Giá vốn phải lớn hơn 0"},
	"stock_quantity":  {"": "Số lượng phải là số nguyên dương"},
	"min_stock_level": {"": "Mức tồn kho tối thiểu phải là số nguyên dương"},
	"email":           {"": "Email không hợp lệ"},
	"password":        {"": "Mật khẩu là bắt buộc"},
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = messageFor(fe.Field(), fe.Tag())
	}
	return out
}

func messageFor(field, tag string) string {
	if m, ok := messages[field]; ok {
		if msg, ok := m[tag]; ok {
			return msg
		}
		if msg, ok := m[""]; ok {
			return msg
		}
	}
	return "invalid value (" + tag + ")"
}
