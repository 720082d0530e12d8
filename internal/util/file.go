package util

import (
	"fmt"
	"net/http"
	"strings"
)

// ValidateTextContent 按前 512 字节嗅探 MIME 类型，目录文件只接受文本
func ValidateTextContent(data []byte) (string, error) {
	mimeType := http.DetectContentType(data)
	if !IsText(mimeType) {
		return mimeType, fmt.Errorf("unsupported content type %s", mimeType)
	}
	return mimeType, nil
}

// IsText 检测是否为文本
func IsText(mimeType string) bool {
	return strings.HasPrefix(mimeType, "text/") || strings.HasPrefix(mimeType, ContentTypeJSON)
}
