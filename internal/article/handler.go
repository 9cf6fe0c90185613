package article

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"shchuropedia/wiki-service/config"
	"shchuropedia/wiki-service/internal/backup"
	"shchuropedia/wiki-service/internal/dto"
	"shchuropedia/wiki-service/internal/middleware"
	"shchuropedia/wiki-service/internal/render"
	"shchuropedia/wiki-service/pkg/database"
	"shchuropedia/wiki-service/pkg/response"
)

type ArticleHandler struct {
	articleService *ArticleService
	dailyPicker    *DailyPicker
	renderer       render.Renderer
}

// NewArticleHandler 初始化handler（内部会自动初始化所有依赖）
func NewArticleHandler(db *gorm.DB, redis *database.RedisClient, backupNotifier backup.Notifier) *ArticleHandler {
	articleRepo := NewArticleRepository(db)
	historyRepo := NewHistoryRepository(db)

	service := NewArticleService(db, articleRepo, historyRepo, backupNotifier, ServiceOptions{
		CountViews: config.Conf.Wiki.CountViews,
	})

	return &ArticleHandler{
		articleService: service,
		dailyPicker:    NewDailyPicker(articleRepo, redis),
		renderer:       render.NewGoldmarkRenderer(),
	}
}

// errorResponse 哨兵错误到业务码的统一映射
// 其余错误按存储层故障处理
func errorResponse(c *gin.Context, err error) {
	var code response.ResponseCode
	switch {
	case errors.Is(err, ErrArticleNotFound), errors.Is(err, ErrHistoryNotFound):
		code = response.NotFound
	case errors.Is(err, ErrTitleExists):
		code = response.Conflict
	case errors.Is(err, ErrInvalidTitle):
		code = response.InvalidParameter
	default:
		code = response.StorageError
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(code),
		response.WithErrorMessage(err.Error()),
		response.WithError(err),
	))
}

// CreateArticle 创建文章
// @Summary 创建文章（标题清洗后全局唯一，自动写入首条历史基线）
// @Tags Article
// @Accept json
// @Produce json
// @Param request body dto.CreateArticleRequest true "创建文章请求"
// @Success 200 {object} response.Response{data=dto.ArticleResponse}
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	art, err := h.articleService.Create(req.Title, req.Content, middleware.CurrentAuthorID(c))
	if err != nil {
		errorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.NewArticleResponse(art))
}

// GetArticle 获取文章详情
// @Summary 按标题获取文章（Markdown原文）
// @Tags Article
// @Produce json
// @Param title path string true "文章标题"
// @Success 200 {object} response.Response{data=dto.ArticleResponse}
// @Router /articles/{title} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	art, err := h.articleService.Get(c.Param("title"))
	if err != nil {
		errorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.NewArticleResponse(art))
}

// GetArticleHTML 获取渲染后的文章
// @Summary 按标题获取文章（渲染为HTML，渲染结果不落库）
// @Tags Article
// @Produce json
// @Param title path string true "文章标题"
// @Success 200 {object} response.Response{data=dto.ArticleHTMLResponse}
// @Router /articles/{title}/html [get]
func (h *ArticleHandler) GetArticleHTML(c *gin.Context) {
	art, err := h.articleService.Get(c.Param("title"))
	if err != nil {
		errorResponse(c, err)
		return
	}

	html, err := h.renderer.Render(art.Content)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("渲染失败"),
		))
		return
	}

	dto.SuccessResponse(c, dto.ArticleHTMLResponse{
		Title:     art.Title,
		HTML:      html,
		UpdatedAt: art.UpdatedAt.Format(time.RFC3339),
	})
}

// UpdateArticle 更新文章内容
// @Summary 更新文章（旧内容先归档进历史，再覆盖）
// @Tags Article
// @Accept json
// @Produce json
// @Param title path string true "文章标题"
// @Param request body dto.UpdateArticleRequest true "更新请求"
// @Success 200 {object} response.Response{data=dto.ArticleResponse}
// @Router /articles/{title} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	art, err := h.articleService.Update(c.Param("title"), req.Content, middleware.CurrentAuthorID(c))
	if err != nil {
		errorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.NewArticleResponse(art))
}

// DeleteArticle 删除文章
// @Summary 删除文章及其全部历史（仅管理员，不可逆）
// @Tags Article
// @Produce json
// @Param title path string true "文章标题"
// @Success 200 {object} response.Response
// @Router /articles/{title} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if !middleware.IsAdmin(c) {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("需要管理员权限"),
		))
		return
	}

	if err := h.articleService.Delete(c.Param("title")); err != nil {
		errorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, nil)
}

// ListArticles 文章列表
// @Summary 全部文章摘要，按最后修改时间倒序
// @Tags Article
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.ArticleSummaryResponse}
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.articleService.List()
	if err != nil {
		errorResponse(c, err)
		return
	}

	summaries := make([]dto.ArticleSummaryResponse, 0, len(articles))
	for i := range articles {
		summaries = append(summaries, dto.NewArticleSummaryResponse(&articles[i]))
	}
	dto.SuccessResponse(c, summaries)
}

// SearchArticles 搜索文章
// @Summary 标题或内容的子串搜索（大小写不敏感），空查询返回空集
// @Tags Article
// @Produce json
// @Param q query string false "搜索关键词"
// @Success 200 {object} response.Response{data=[]dto.ArticleResponse}
// @Router /articles/search [get]
func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	articles, err := h.articleService.Search(c.Query("q"))
	if err != nil {
		errorResponse(c, err)
		return
	}

	results := make([]dto.ArticleResponse, 0, len(articles))
	for i := range articles {
		results = append(results, dto.NewArticleResponse(&articles[i]))
	}
	dto.SuccessResponse(c, results)
}

// DailyArticle 今日文章
// @Summary 今日随机推荐（按日历日期缓存）
// @Tags Article
// @Produce json
// @Success 200 {object} response.Response{data=dto.ArticleResponse}
// @Router /articles/daily [get]
func (h *ArticleHandler) DailyArticle(c *gin.Context) {
	art, err := h.dailyPicker.Today(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.NewArticleResponse(art))
}

// GetHistory 文章历史
// @Summary 某篇文章的全部历史快照，最新的在前
// @Tags History
// @Produce json
// @Param title path string true "文章标题"
// @Success 200 {object} response.Response{data=dto.HistoryListResponse}
// @Router /articles/{title}/history [get]
func (h *ArticleHandler) GetHistory(c *gin.Context) {
	art, entries, err := h.articleService.GetHistory(c.Param("title"))
	if err != nil {
		errorResponse(c, err)
		return
	}

	resp := dto.HistoryListResponse{
		Title:   art.Title,
		Entries: make([]dto.HistoryEntryResponse, 0, len(entries)),
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, dto.NewHistoryEntryResponse(&entries[i]))
	}
	dto.SuccessResponse(c, resp)
}

// RestoreVersion 恢复历史版本
// @Summary 把历史快照恢复为当前内容（本身作为一次新编辑记录）
// @Tags History
// @Produce json
// @Param id path int true "历史快照ID"
// @Success 200 {object} response.Response{data=dto.ArticleResponse}
// @Router /history/{id}/restore [post]
func (h *ArticleHandler) RestoreVersion(c *gin.Context) {
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的历史版本ID"),
		))
		return
	}

	art, err := h.articleService.Restore(uint(entryID), middleware.CurrentAuthorID(c))
	if err != nil {
		errorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.NewArticleResponse(art))
}

// GetHistoryDiff 历史快照与当前内容的差异
// @Summary 对比某条快照与文章当前内容
// @Tags History
// @Produce json
// @Param id path int true "历史快照ID"
// @Success 200 {object} response.Response{data=[]article.DiffSegment}
// @Router /history/{id}/diff [get]
func (h *ArticleHandler) GetHistoryDiff(c *gin.Context) {
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的历史版本ID"),
		))
		return
	}

	segments, err := h.articleService.DiffAgainstCurrent(uint(entryID))
	if err != nil {
		errorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, segments)
}
