package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"internship-web/backend/internal/model"
	"internship-web/backend/pkg/response"
)

var registerOnce sync.Once

// RegisterValidators 向 gin 的校验器注册业务枚举标签
// 必须在处理任何请求前调用（router.Setup 会调用）
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
			return model.ValidRole(fl.Field().String())
		})
		_ = v.RegisterValidation("application_status", func(fl validator.FieldLevel) bool {
			return model.ApplicationStatus(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("report_status", func(fl validator.FieldLevel) bool {
			return model.ReportStatus(fl.Field().String()).Valid()
		})
	})
}

// bindFailed 把绑定/校验错误写为 400；状态枚举不合法时使用独立错误码
func bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "Request body too large")
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "application_status", "report_status":
				response.BadRequest(c, response.CodeInvalidStatus, "Invalid status")
				return
			}
		}
	}
	response.BadRequest(c, response.CodeBadParams, "Invalid request body")
}
