package article

import (
	"strconv"

	"inkwell/global"
	"inkwell/models"
	"inkwell/models/ctypes"
	"inkwell/models/res"
	"inkwell/service/redis_ser"
	"inkwell/service/search_ser"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Article struct{}

type ArticleCreateRequest struct {
	Title    string   `json:"title" validate:"required,min=1,max=100"`
	Abstract string   `json:"abstract" validate:"max=256"`
	Content  string   `json:"content" validate:"required,min=1,max=100000"`
	CoverURL string   `json:"cover_url" validate:"max=256"`
	Tags     []string `json:"tags" validate:"max=10,dive,min=1,max=20"`
	Publish  bool     `json:"publish"`
}

func (a *Article) ArticleCreate(c *gin.Context) {
	var req ArticleCreateRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err = utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)
	userID := claims.UserID

	// markdown过一遍净化，去掉脚本标签
	content, err := utils.SanitizeMarkdown(req.Content)
	if err != nil {
		global.Log.Error("utils.SanitizeMarkdown() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "内容处理失败")
		return
	}

	abstract := req.Abstract
	if abstract == "" {
		abstract = models.TruncateRunes(utils.PlainText(content), 120)
	}

	id, err := utils.GenerateID()
	if err != nil {
		global.Log.Error("utils.GenerateID() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "生成ID失败")
		return
	}

	article := models.ArticleModel{
		ID:       strconv.FormatInt(id, 10),
		Title:    req.Title,
		Abstract: abstract,
		Content:  content,
		CoverURL: req.CoverURL,
		Tags:     req.Tags,
		Status:   ctypes.ArticleDraft,
		UserID:   userID,
	}
	if req.Publish {
		now := ctypes.Now()
		article.Status = ctypes.ArticlePublished
		article.PublishedAt = &now
	}

	if err := global.DB.Create(&article).Error; err != nil {
		global.Log.Error("global.DB.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "创建文章失败")
		return
	}

	// 布隆过滤器和搜索索引都是尽力而为
	if err := redis_ser.AddToBloomFilter(article.ID); err != nil {
		global.Log.Warn("redis_ser.AddToBloomFilter() failed", zap.String("error", err.Error()))
	}
	if article.IsPublished() {
		syncToSearch(c, &article)
	}

	global.Log.Info("创建文章成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, gin.H{"id": article.ID})
}

// syncToSearch 把文章同步进搜索索引，失败只记日志
func syncToSearch(c *gin.Context, article *models.ArticleModel) {
	if global.Es == nil {
		return
	}
	if article.User.ID == 0 {
		if err := global.DB.Take(&article.User, article.UserID).Error; err != nil {
			global.Log.Warn("加载文章作者失败", zap.String("error", err.Error()))
		}
	}
	err := search_ser.NewService().Upsert(c.Request.Context(), models.EsArticleFromModel(article))
	if err != nil {
		global.Log.Warn("同步搜索索引失败",
			zap.String("article_id", article.ID),
			zap.String("error", err.Error()),
		)
	}
}
