package handlers

import (
	"errors"
	"net/http"

	"recipe-scaler/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BindJSON 解析請求體；失敗時已寫入錯誤響應並返回 false
func BindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			RespondError(c, common.ErrPayloadTooLarge)
			return false
		}
		RespondError(c, common.NewValidationError("invalid request body: "+err.Error()))
		return false
	}
	return true
}

// RespondError 將錯誤轉為統一的 JSON 錯誤響應
func RespondError(c *gin.Context, err error) {
	status, resp := common.ToErrorResponse(err)
	if status >= http.StatusInternalServerError {
		common.LogError("Request failed",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", requestid.Get(c)),
		)
		// 伺服器錯誤不回傳內部細節
		resp.Details = ""
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resp)
}
