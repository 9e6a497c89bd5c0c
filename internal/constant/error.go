package constant

import (
	"errors"
	"net/http"
)

// 自定义错误
var (
	// 通用错误
	ErrInternalError    = errors.New("内部错误")
	ErrInvalidParams    = errors.New("参数错误")
	ErrUnauthorized     = errors.New("未授权")
	ErrRecordNotFound   = errors.New("记录不存在")
	ErrSerializeError   = errors.New("序列化错误")
	ErrDeserializeError = errors.New("反序列化错误")
	ErrCacheError       = errors.New("缓存错误")

	// 转换相关错误
	ErrTextEmpty     = errors.New("文本不能为空")
	ErrMarkdownEmpty = errors.New("markdown不能为空")
	ErrAPIKeyMissing = errors.New("API密钥未配置，请在设置中填写或配置llm.api_key")
	ErrConvertFailed = errors.New("文本转换失败")

	// 幻灯片相关错误
	ErrMetadataMissing = errors.New("缺少幻灯片元数据")
	ErrTitleEmpty      = errors.New("标题不能为空")
	ErrThemeNotFound   = errors.New("主题不存在")

	// 存储相关错误
	ErrSlideNotFound        = errors.New("幻灯片不存在")
	ErrStorageNotConfigured = errors.New("存储服务未配置")
	ErrStorageError         = errors.New("存储服务错误")
)

// 获取错误对应的HTTP状态码
func GetErrorCode(err error) int {
	switch err {
	// 通用错误
	case ErrInternalError:
		return http.StatusInternalServerError
	case ErrInvalidParams:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrRecordNotFound:
		return http.StatusNotFound
	case ErrSerializeError, ErrDeserializeError, ErrCacheError:
		return http.StatusInternalServerError

	// 转换相关错误
	case ErrTextEmpty, ErrMarkdownEmpty:
		return http.StatusBadRequest
	case ErrAPIKeyMissing:
		return http.StatusUnauthorized
	case ErrConvertFailed:
		return http.StatusInternalServerError

	// 幻灯片相关错误
	case ErrMetadataMissing, ErrTitleEmpty, ErrThemeNotFound:
		return http.StatusBadRequest

	// 存储相关错误
	case ErrSlideNotFound:
		return http.StatusNotFound
	case ErrStorageNotConfigured, ErrStorageError:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}
