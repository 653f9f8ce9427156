package models

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"inkwell/global"

	"github.com/importcjj/sensitive"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CommentModel 评论模型
type CommentModel struct {
	MODEL           `json:","`
	SubComments     []*CommentModel `json:"sub_comments" gorm:"foreignKey:ParentCommentID;constraint:OnDelete:CASCADE"`
	ParentCommentID *uint           `json:"parent_comment_id" gorm:"index:idx_parent_article"`
	Content         string          `json:"content"`                                    // 评论内容
	DiggCount       uint            `json:"digg_count"`                                 // 点赞数
	CommentCount    uint            `json:"comment_count"`                              // 子评论数
	ArticleID       string          `json:"article_id" gorm:"size:32;index:idx_parent_article"` // 关联的文章ID
	UserID          uint            `json:"user_id"`                                    // 评论用户ID
	User            UserModel       `json:"user" gorm:"foreignKey:UserID"`              // 关联的用户信息
}

// TableName 指定表名
func (CommentModel) TableName() string {
	return "comments"
}

var (
	ErrEmptyComment          = errors.New("评论内容不能为空")
	ErrCommentTooLong        = errors.New("评论内容不能超过1000字")
	ErrParentCommentNotExist = errors.New("父评论不存在")
	ErrNotCommentOwner       = errors.New("只能删除自己的评论")
)

var (
	sensitiveFilter *sensitive.Filter
	sensitiveOnce   sync.Once
)

// loadSensitiveWords 从词库文件加载Base64编码的敏感词
// 文件缺失只降级为HTML清理，不阻塞服务
func loadSensitiveWords() {
	filePath := "sensitive_words.txt"
	if global.Config != nil && global.Config.Site.SensitiveWordsFile != "" {
		filePath = global.Config.Site.SensitiveWordsFile
	}

	file, err := os.Open(filePath)
	if err != nil {
		if global.Log != nil {
			global.Log.Warn("敏感词文件不可用，仅做HTML清理", zap.String("path", filePath))
		}
		return
	}
	defer file.Close()

	filter := sensitive.New()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		decodedBytes, err := base64.StdEncoding.DecodeString(line)
		if err != nil {
			if global.Log != nil {
				global.Log.Warn("敏感词Base64解码失败，跳过该行", zap.String("line", line))
			}
			continue
		}

		word := strings.TrimSpace(string(decodedBytes))
		if word == "" {
			continue
		}
		filter.AddWord(word)
	}

	if err := scanner.Err(); err != nil {
		if global.Log != nil {
			global.Log.Error("读取敏感词文件出错", zap.String("error", err.Error()))
		}
		return
	}

	sensitiveFilter = filter
}

// FilterCommentContent 清理HTML并替换敏感词
func FilterCommentContent(content string) string {
	sensitiveOnce.Do(loadSensitiveWords)

	content = bluemonday.UGCPolicy().Sanitize(content)
	if sensitiveFilter != nil {
		content = sensitiveFilter.Replace(content, '*')
	}
	return content
}

// commentValidate 验证评论内容
func commentValidate(comment *CommentModel) error {
	content := strings.TrimSpace(comment.Content)
	if content == "" {
		return ErrEmptyComment
	}
	if len(content) > 1000 {
		return ErrCommentTooLong
	}
	return nil
}

// GetArticleCommentsWithTree 获取文章评论树
func GetArticleCommentsWithTree(articleID string) ([]*CommentModel, error) {
	var allComments []*CommentModel
	if err := global.DB.Model(&CommentModel{}).
		Where("article_id = ?", articleID).
		Preload("User").
		Order("created_at DESC").
		Find(&allComments).Error; err != nil {
		return nil, fmt.Errorf("获取评论失败: %w", err)
	}

	return buildCommentTree(allComments), nil
}

// buildCommentTree 将评论列表构建成树形结构
func buildCommentTree(allComments []*CommentModel) []*CommentModel {
	commentMap := make(map[uint]*CommentModel)
	var rootComments []*CommentModel

	for _, comment := range allComments {
		commentMap[comment.ID] = comment
	}

	for _, comment := range allComments {
		if comment.ParentCommentID == nil {
			rootComments = append(rootComments, comment)
		} else {
			if parent, exists := commentMap[*comment.ParentCommentID]; exists {
				parent.SubComments = append(parent.SubComments, comment)
			}
		}
	}

	return rootComments
}

// parentCommentExist 检查父评论是否存在
func parentCommentExist(tx *gorm.DB, parentID uint) error {
	var exists bool
	err := tx.Model(&CommentModel{}).
		Select("1").
		Where("id = ?", parentID).
		First(&exists).Error
	if err != nil {
		return ErrParentCommentNotExist
	}
	return nil
}

// CommentCreate 创建评论，同步维护父评论与文章的评论计数
func CommentCreate(comment *CommentModel) error {
	if err := commentValidate(comment); err != nil {
		return err
	}
	comment.Content = FilterCommentContent(comment.Content)

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if comment.ParentCommentID != nil {
			if err := parentCommentExist(tx, *comment.ParentCommentID); err != nil {
				return err
			}
		}

		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("创建评论失败: %w", err)
		}

		if comment.ParentCommentID != nil {
			if err := tx.Model(&CommentModel{}).
				Where("id = ?", *comment.ParentCommentID).
				UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).
				Error; err != nil {
				return err
			}
		}

		return tx.Model(&ArticleModel{}).
			Where("id = ?", comment.ArticleID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).
			Error
	})
}

// CommentDelete 删除评论，只有作者本人可以删除，连带删除子评论
func CommentDelete(commentID uint, userID uint) error {
	var comment CommentModel
	if err := global.DB.First(&comment, commentID).Error; err != nil {
		return err
	}

	if comment.UserID != userID {
		return ErrNotCommentOwner
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		var subCount int64
		if err := tx.Model(&CommentModel{}).
			Where("parent_comment_id = ?", commentID).
			Count(&subCount).Error; err != nil {
			return err
		}

		if err := tx.
			Where("id = ? OR parent_comment_id = ?", commentID, commentID).
			Delete(&CommentModel{}).Error; err != nil {
			return err
		}

		if comment.ParentCommentID != nil {
			if err := tx.Model(&CommentModel{}).
				Where("id = ?", *comment.ParentCommentID).
				UpdateColumn("comment_count", gorm.Expr("comment_count - ?", 1)).
				Error; err != nil {
				return err
			}
		}

		return tx.Model(&ArticleModel{}).
			Where("id = ?", comment.ArticleID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - ?", subCount+1)).
			Error
	})
}
