package interaction

import (
	"inkwell/global"
	"inkwell/middleware"
	"inkwell/models/res"
	"inkwell/service/interaction_ser"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Interaction struct{}

type InteractionStatusRequest struct {
	ID string `uri:"id" validate:"required"`
}

// InteractionStatus 读取交互状态，匿名用户只拿到计数
func (i *Interaction) InteractionStatus(c *gin.Context) {
	var req InteractionStatusRequest
	err := c.ShouldBindUri(&req)
	if err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err = utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	status, err := interaction_ser.Default().Status(c.Request.Context(), middleware.GetUserID(c), req.ID)
	if err != nil {
		global.Log.Error("interaction_ser.Status() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "读取交互状态失败")
		return
	}

	res.Success(c, status)
}
