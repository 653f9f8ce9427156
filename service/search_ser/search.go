package search_ser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"inkwell/global"
	"inkwell/models"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	batchSize = 1000
	timeout   = time.Second * 5
)

// ErrEsDisabled ES未接入时所有搜索操作直接失败
var ErrEsDisabled = errors.New("搜索服务未启用")

// SearchParams 搜索参数
type SearchParams struct {
	models.PageInfo
	Tags      []string `json:"tags" form:"tags"`
	SortField string   `json:"sort_field" form:"sort_field"`
	SortOrder string   `json:"sort_order" form:"sort_order"`
}

// SearchResults 搜索结果
type SearchResults struct {
	Articles []models.EsArticle
	Total    int64
}

// Service 基于ES的文章搜索服务
type Service struct {
	index   string
	timeout time.Duration
}

// NewService 创建搜索服务实例
func NewService() *Service {
	return &Service{
		index:   models.ArticleIndex,
		timeout: timeout,
	}
}

// IndexCreate 重建索引，已存在时先删除
func (s *Service) IndexCreate(ctx context.Context) error {
	if global.Es == nil {
		return ErrEsDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	exist, err := s.IndexExist(ctx)
	if err != nil {
		return fmt.Errorf("检查索引是否存在失败: %w", err)
	}
	if exist {
		if err := s.IndexDelete(ctx); err != nil {
			return fmt.Errorf("删除已存在的索引失败: %w", err)
		}
	}

	_, err = global.Es.Indices.Create(s.index).
		Mappings(&types.TypeMapping{
			Properties: models.EsArticleMapping(),
		}).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("创建索引失败: %w", err)
	}
	global.Log.Info("创建索引成功", zap.String("index", s.index))
	return nil
}

// IndexExist 检查索引是否存在
func (s *Service) IndexExist(ctx context.Context) (bool, error) {
	if global.Es == nil {
		return false, ErrEsDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := global.Es.Indices.Exists(s.index).Do(ctx)
	if err != nil {
		return false, fmt.Errorf("检查索引是否存在失败: %w", err)
	}
	return resp, nil
}

// IndexDelete 删除索引
func (s *Service) IndexDelete(ctx context.Context) error {
	if global.Es == nil {
		return ErrEsDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := global.Es.Indices.Delete(s.index).Do(ctx)
	if err != nil {
		return fmt.Errorf("删除索引失败: %w", err)
	}
	return nil
}

// Upsert 写入或覆盖一篇文章的搜索文档
func (s *Service) Upsert(ctx context.Context, doc *models.EsArticle) error {
	if global.Es == nil {
		return ErrEsDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := global.Es.Index(s.index).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("写入搜索文档失败: %w", err)
	}
	return nil
}

// Get 取一篇文章的搜索文档
func (s *Service) Get(ctx context.Context, id string) (*models.EsArticle, error) {
	if global.Es == nil {
		return nil, ErrEsDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := global.Es.Get(s.index, id).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取搜索文档失败: %w", err)
	}

	var doc models.EsArticle
	if err := json.Unmarshal(resp.Source_, &doc); err != nil {
		return nil, fmt.Errorf("解析搜索文档失败: %w", err)
	}
	return &doc, nil
}

// Delete 批量删除搜索文档
func (s *Service) Delete(ctx context.Context, ids []string) error {
	if global.Es == nil {
		return ErrEsDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < len(ids); i += batchSize {
		end := i + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[i:end]

		bulkRequest := global.Es.Bulk().Index(s.index)
		for _, id := range batch {
			id := id
			bulkRequest.DeleteOp(types.DeleteOperation{Id_: &id})
		}

		g.Go(func() error {
			resp, err := bulkRequest.Refresh(refresh.True).Do(ctx)
			if err != nil {
				return fmt.Errorf("批量删除搜索文档失败: %w", err)
			}
			if resp.Errors {
				return fmt.Errorf("批量删除搜索文档时发生错误")
			}
			return nil
		})
	}
	return g.Wait()
}

// Search 多字段搜索，标题权重最高，其次摘要
func (s *Service) Search(ctx context.Context, params SearchParams) (*SearchResults, error) {
	if global.Es == nil {
		return nil, ErrEsDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	boolQuery := types.NewBoolQuery()

	if params.Key != "" {
		multiMatchQuery := types.NewMultiMatchQuery()
		multiMatchQuery.Query = params.Key
		multiMatchQuery.Fields = []string{
			"title^3",
			"abstract^2",
			"content",
			"tags^1.5",
		}
		boolQuery.Must = append(boolQuery.Must, types.Query{MultiMatch: multiMatchQuery})
	}

	for _, tag := range params.Tags {
		boolQuery.Filter = append(boolQuery.Filter, types.Query{
			Term: map[string]types.TermQuery{
				"tags": {Value: tag},
			},
		})
	}

	page := params.Page
	if page <= 0 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	from := (page - 1) * pageSize

	sortField := params.SortField
	if sortField == "" {
		sortField = "published_at"
	}
	sortOrder := params.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}

	resp, err := global.Es.Search().
		Index(s.index).
		Query(&types.Query{Bool: boolQuery}).
		Sort(types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				sortField: {Order: &sortorder.SortOrder{Name: sortOrder}},
			},
		}).
		From(from).
		Size(pageSize).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("搜索文章失败: %w", err)
	}

	articles := make([]models.EsArticle, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var doc models.EsArticle
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			global.Log.Error("解析搜索文档失败",
				zap.String("error", err.Error()),
				zap.String("document_id", *hit.Id_),
			)
			continue
		}
		articles = append(articles, doc)
	}

	return &SearchResults{
		Articles: articles,
		Total:    resp.Hits.Total.Value,
	}, nil
}
