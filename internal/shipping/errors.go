package shipping

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError はバリデーションエラー1件のJSON構造。
type FieldError struct {
	// Loc はエラーの発生位置。JSONのフィールド名、またはボディ全体を表す "body"。
	Loc []string `json:"loc"`
	// Msg は利用者向けのメッセージ。
	Msg string `json:"msg"`
	// Type はエラーの種類（バリデーションタグ名など）。
	Type string `json:"type"`
}

// ErrorResponse はバリデーションエラー時のJSONレスポンス構造。
type ErrorResponse struct {
	Error []FieldError `json:"error"`
}

var registerTagNameOnce sync.Once

// registerJSONFieldNames はバリデーションエラーのフィールド名に
// Goのフィールド名ではなくJSONのキー名を使うよう設定する。
func registerJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// toFieldErrors はリクエストのバインドで発生したエラーをフィールドエラーに変換する。
func toFieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{
				Loc:  []string{fe.Field()},
				Msg:  validationMessage(fe),
				Type: fe.Tag(),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []FieldError{{
			Loc:  []string{typeErr.Field},
			Msg:  fmt.Sprintf("%s型の値が必要です", typeErr.Type.Kind()),
			Type: "type_error",
		}}
	}

	return []FieldError{{
		Loc:  []string{"body"},
		Msg:  "JSONの形式が不正です",
		Type: "json_invalid",
	}}
}

// validationMessage はバリデーションタグに応じたメッセージを返す。
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "必須項目です"
	case "min":
		return fmt.Sprintf("%s文字以上で入力してください", fe.Param())
	case "max":
		return fmt.Sprintf("%s文字以下で入力してください", fe.Param())
	default:
		return "値が不正です"
	}
}
