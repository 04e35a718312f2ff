package controller

import (
	"ai_eng_tam_backend/internal/service"
	"ai_eng_tam_backend/internal/util"
	"ai_eng_tam_backend/pkg/logger"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminController struct {
	AdminService     *service.AdminService
	AnalyticsService *service.AnalyticsService
	ExportService    *service.ExportService
}

func NewAdminController(adminService *service.AdminService, analyticsService *service.AnalyticsService, exportService *service.ExportService) *AdminController {
	return &AdminController{
		AdminService:     adminService,
		AnalyticsService: analyticsService,
		ExportService:    exportService,
	}
}

// AdminLoginRequest swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 管理端登录
// @Description 校验管理口令，配置了 JWT 密钥时同时下发 token
// @Tags 管理
// @Accept json
// @Produce json
// @Param body body AdminLoginRequest true "口令"
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response "口令错误"
// @Failure 503 {object} util.Response "凭证未配置"
// @Router /api/admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AdminService.Configured(); err != nil {
		var cfgErr *util.ConfigurationError
		if errors.As(err, &cfgErr) {
			util.ErrorWithData(ctx, http.StatusServiceUnavailable, cfgErr.Message, cfgErr.Diagnostics)
			return
		}
		util.Error(ctx, http.StatusServiceUnavailable, err.Error())
		return
	}

	if !c.AdminService.VerifyPassword(req.Password) {
		util.Unauthorized(ctx)
		return
	}

	token, expiresAt, err := c.AdminService.IssueToken()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	data := gin.H{"authenticated": true}
	if token != "" {
		data["token"] = token
		data["expires_at"] = expiresAt.Format(time.RFC3339)
	}
	util.Success(ctx, data)
}

// Summary godoc
// @Summary 仪表盘总览
// @Description 各组人数、单题描述统计与分布、跨组构念对比（含热力色）、各构念方差分析
// @Tags 管理
// @Produce json
// @Param group query string false "按群体过滤单题统计" Enums(faculty, student, practitioner)
// @Success 200 {object} util.Response{data=service.DashboardSummary}
// @Failure 401 {object} util.Response
// @Security AdminPassword
// @Router /api/admin/summary [get]
func (c *AdminController) Summary(ctx *gin.Context) {
	summary, err := c.AnalyticsService.Summary(ctx.Query("group"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// Data godoc
// @Summary 原始数据
// @Tags 管理
// @Produce json
// @Param group query string false "按群体过滤" Enums(faculty, student, practitioner)
// @Success 200 {object} util.Response{data=service.RawData}
// @Failure 401 {object} util.Response
// @Security AdminPassword
// @Router /api/admin/data [get]
func (c *AdminController) Data(ctx *gin.Context) {
	data, err := c.AnalyticsService.Raw(ctx.Query("group"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, data)
}

// Anova godoc
// @Summary 各构念跨组方差分析
// @Tags 管理
// @Produce json
// @Success 200 {object} util.Response{data=[]service.ConstructAnova}
// @Failure 401 {object} util.Response
// @Security AdminPassword
// @Router /api/admin/anova [get]
func (c *AdminController) Anova(ctx *gin.Context) {
	results, err := c.AnalyticsService.Anova()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// ExportLong godoc
// @Summary 导出长表 CSV
// @Description 每行一条量表作答
// @Tags 管理
// @Produce text/csv
// @Success 200 {string} string "CSV 内容"
// @Failure 401 {object} util.Response
// @Security AdminPassword
// @Router /api/admin/export/long.csv [get]
func (c *AdminController) ExportLong(ctx *gin.Context) {
	data, err := c.ExportService.LongCSV()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	serveCSV(ctx, "survey_long.csv", data)
}

// ExportWide godoc
// @Summary 导出宽表 CSV
// @Description 每行一位受访者，列为数据中出现过的题目编码
// @Tags 管理
// @Produce text/csv
// @Success 200 {string} string "CSV 内容"
// @Failure 401 {object} util.Response
// @Security AdminPassword
// @Router /api/admin/export/wide.csv [get]
func (c *AdminController) ExportWide(ctx *gin.Context) {
	data, err := c.ExportService.WideCSV()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	serveCSV(ctx, "survey_wide.csv", data)
}

func serveCSV(ctx *gin.Context, filename string, data []byte) {
	// 导出原始数据留审计日志
	if claims := util.GetAdminFromContext(ctx); claims != nil {
		logger.Log.Info("admin export",
			zap.String("file", filename),
			zap.String("role", claims.Role),
			zap.String("client_ip", ctx.ClientIP()))
	}
	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
