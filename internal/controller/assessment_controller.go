package controller

import (
	"career_match_backend/internal/matching"
	"career_match_backend/internal/service"
	"career_match_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.MatchingService
}

func NewAssessmentController(svc *service.MatchingService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary 计算人格画像
// @Description 32 道李克特量表题 -> Big Five / RIASEC / 工作价值观 / 学习风格
// @Tags 人格测评
// @Accept json
// @Produce json
// @Param body body service.ProfileRequest true "答题数据"
// @Success 200 {object} util.Response{data=matching.Profile}
// @Failure 400 {object} util.Response
// @Router /api/assessment/profile [post]
func (c *AssessmentController) ScoreProfile(ctx *gin.Context) {
	var req service.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.Service.ScoreProfile(ctx.Request.Context(), req.Answers, req.Preferences)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary 画像转特质标签
// @Tags 人格测评
// @Accept json
// @Produce json
// @Param body body matching.Profile true "人格画像"
// @Success 200 {object} util.Response
// @Router /api/assessment/trait-flags [post]
func (c *AssessmentController) TraitFlags(ctx *gin.Context) {
	var profile matching.Profile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, c.Service.TraitFlags(profile))
}

// @Summary 提交测评
// @Description 计算画像、匹配职业并保存本次提交
// @Tags 人格测评
// @Accept json
// @Produce json
// @Param body body service.SubmitQuizRequest true "答题与技能"
// @Success 201 {object} util.Response{data=service.QuizResult}
// @Failure 400 {object} util.Response
// @Router /api/assessment/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	var req service.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.SubmitQuiz(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// @Summary 获取提交记录
// @Tags 人格测评
// @Produce json
// @Param id path string true "提交ID"
// @Success 200 {object} util.Response{data=model.QuizSubmission}
// @Failure 404 {object} util.Response
// @Router /api/assessment/submissions/{id} [get]
func (c *AssessmentController) GetSubmission(ctx *gin.Context) {
	sub, err := c.Service.GetSubmission(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sub)
}

// @Summary 按用户列出提交记录
// @Tags 人格测评
// @Produce json
// @Param userRef query string true "用户标识"
// @Param limit query int false "返回数量" default(20)
// @Success 200 {object} util.Response{data=util.ListResponse}
// @Router /api/assessment/submissions [get]
func (c *AssessmentController) ListSubmissions(ctx *gin.Context) {
	userRef := ctx.Query("userRef")
	if userRef == "" {
		util.BadRequest(ctx, "userRef is required")
		return
	}
	limit := util.DefaultSubmissionLimit
	if s := ctx.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			util.BadRequest(ctx, "invalid limit")
			return
		}
		limit = n
	}

	subs, err := c.Service.ListSubmissions(ctx.Request.Context(), userRef, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.ListResponse{List: subs, Total: len(subs)})
}
