package controller

import (
	"ai_eng_tam_backend/internal/service"
	"ai_eng_tam_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	SurveyService *service.SurveyService
}

func NewSurveyController(surveyService *service.SurveyService) *SurveyController {
	return &SurveyController{SurveyService: surveyService}
}

// StartSessionRequest defines model for opening a survey session
// swagger:model StartSessionRequest
type StartSessionRequest struct {
	StakeholderType string `json:"stakeholder_type" binding:"required"`
	AccessCode      string `json:"access_code" binding:"required"`
	DeviceID        string `json:"device_id"`
}

// LikertAnswerRequest swagger:model LikertAnswerRequest
type LikertAnswerRequest struct {
	ItemCode string `json:"item_code" binding:"required"`
	Value    int    `json:"value" binding:"required"`
}

// CategoryAnswerRequest swagger:model CategoryAnswerRequest
type CategoryAnswerRequest struct {
	Category  string   `json:"category" binding:"required"`
	Uses      *bool    `json:"uses" binding:"required"`
	Tools     []string `json:"tools"`
	OtherTool string   `json:"other_tool"`
}

// DemographicsRequest swagger:model DemographicsRequest
type DemographicsRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

// surveyError maps domain errors onto the response envelope.
func surveyError(ctx *gin.Context, err error) {
	var vErr *util.ValidationError
	var stateErr *util.InvalidStateError
	var persistErr *util.PersistenceError
	switch {
	case errors.As(err, &vErr):
		util.ErrorWithData(ctx, http.StatusUnprocessableEntity, "section incomplete", gin.H{
			"section": vErr.Section,
			"missing": vErr.Missing,
		})
	case errors.As(err, &stateErr):
		util.Error(ctx, http.StatusConflict, stateErr.Error())
	case errors.As(err, &persistErr):
		// 会话仍然保留，客户端可以原样重试
		util.Error(ctx, http.StatusServiceUnavailable, "submission failed, please retry")
	case errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrInvalidAccessCode):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, util.ErrUnknownStakeholder),
		errors.Is(err, util.ErrUnknownItemCode),
		errors.Is(err, util.ErrUnknownCategory),
		errors.Is(err, util.ErrValueOutOfRange),
		errors.Is(err, util.ErrUnknownDemographField):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// Definition godoc
// @Summary 获取问卷定义
// @Description 返回指定群体的完整问卷结构（量表节、工具使用节、人口学字段）
// @Tags 问卷
// @Produce json
// @Param group path string true "群体" Enums(faculty, student, practitioner)
// @Success 200 {object} util.Response{data=service.Definition}
// @Failure 400 {object} util.Response "未知群体"
// @Router /api/survey/{group}/definition [get]
func (c *SurveyController) Definition(ctx *gin.Context) {
	def, err := c.SurveyService.Definition(ctx.Param("group"))
	if err != nil {
		surveyError(ctx, err)
		return
	}
	util.Success(ctx, def)
}

// StartSession godoc
// @Summary 开始答题会话
// @Description 校验访问码并创建会话；device_id 可选，用于重复提交提示
// @Tags 问卷
// @Accept json
// @Produce json
// @Param body body StartSessionRequest true "会话参数"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "未知群体"
// @Failure 401 {object} util.Response "访问码错误"
// @Router /api/survey/sessions [post]
func (c *SurveyController) StartSession(ctx *gin.Context) {
	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sessionID, alreadySubmitted, err := c.SurveyService.StartSession(ctx.Request.Context(), req.StakeholderType, req.AccessCode, req.DeviceID)
	if err != nil {
		surveyError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"session_id":        sessionID,
		"already_submitted": alreadySubmitted,
	})
}

// State godoc
// @Summary 查询会话进度
// @Tags 问卷
// @Produce json
// @Param id path string true "会话 ID"
// @Success 200 {object} util.Response{data=service.SessionState}
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/survey/sessions/{id} [get]
func (c *SurveyController) State(ctx *gin.Context) {
	state, err := c.SurveyService.State(ctx.Param("id"))
	if err != nil {
		surveyError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// RecordLikert godoc
// @Summary 记录量表题答案
// @Description 覆盖式写入，取值 1-7
// @Tags 问卷
// @Accept json
// @Produce json
// @Param id path string true "会话 ID"
// @Param body body LikertAnswerRequest true "答案"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "题目编码或取值非法"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/survey/sessions/{id}/likert [post]
func (c *SurveyController) RecordLikert(ctx *gin.Context) {
	var req LikertAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.SurveyService.RecordLikert(ctx.Param("id"), req.ItemCode, req.Value); err != nil {
		surveyError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// RecordCategory godoc
// @Summary 记录工具使用题答案
// @Description uses=false 时忽略提交的工具列表
// @Tags 问卷
// @Accept json
// @Produce json
// @Param id path string true "会话 ID"
// @Param body body CategoryAnswerRequest true "答案"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "类别非法"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/survey/sessions/{id}/category [post]
func (c *SurveyController) RecordCategory(ctx *gin.Context) {
	var req CategoryAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.SurveyService.RecordCategory(ctx.Param("id"), req.Category, *req.Uses, req.Tools, req.OtherTool); err != nil {
		surveyError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// RecordDemographics godoc
// @Summary 记录人口学信息
// @Description 空值清除已填答案；字段校验延迟到最终提交
// @Tags 问卷
// @Accept json
// @Produce json
// @Param id path string true "会话 ID"
// @Param body body DemographicsRequest true "字段 id 到值的映射"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "字段非法"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/survey/sessions/{id}/demographics [post]
func (c *SurveyController) RecordDemographics(ctx *gin.Context) {
	var req DemographicsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.SurveyService.RecordDemographics(ctx.Param("id"), req.Values); err != nil {
		surveyError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Advance godoc
// @Summary 进入下一步
// @Description 当前节未答完整时返回 422 并列出缺失项，会话状态不变
// @Tags 问卷
// @Produce json
// @Param id path string true "会话 ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 422 {object} util.Response "当前节未完成"
// @Router /api/survey/sessions/{id}/advance [post]
func (c *SurveyController) Advance(ctx *gin.Context) {
	step, err := c.SurveyService.Advance(ctx.Param("id"))
	if err != nil {
		surveyError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"step": step})
}

// Retreat godoc
// @Summary 返回上一步
// @Description 已填答案全部保留
// @Tags 问卷
// @Produce json
// @Param id path string true "会话 ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/survey/sessions/{id}/retreat [post]
func (c *SurveyController) Retreat(ctx *gin.Context) {
	step, err := c.SurveyService.Retreat(ctx.Param("id"))
	if err != nil {
		surveyError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"step": step})
}

// Submit godoc
// @Summary 提交问卷
// @Description 只允许在最后一步提交；持久化失败时会话保留，可重试
// @Tags 问卷
// @Produce json
// @Param id path string true "会话 ID"
// @Success 201 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 409 {object} util.Response "未到最后一步"
// @Failure 503 {object} util.Response "持久化失败"
// @Router /api/survey/sessions/{id}/submit [post]
func (c *SurveyController) Submit(ctx *gin.Context) {
	respondentID, err := c.SurveyService.Submit(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		surveyError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"respondent_id": respondentID})
}

// Submitted godoc
// @Summary 查询设备是否已提交
// @Description 仅作提示，不阻止再次提交
// @Tags 问卷
// @Produce json
// @Param device_id query string true "设备标识"
// @Param group query string true "群体"
// @Success 200 {object} util.Response{data=object}
// @Router /api/survey/submitted [get]
func (c *SurveyController) Submitted(ctx *gin.Context) {
	submitted, err := c.SurveyService.HasSubmitted(ctx.Request.Context(), ctx.Query("device_id"), ctx.Query("group"))
	if err != nil {
		surveyError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"submitted": submitted})
}
