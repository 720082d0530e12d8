package controller

import (
	"career_match_backend/internal/service"
	"career_match_backend/internal/util"
	"math"

	"github.com/gin-gonic/gin"
)

type MatchingController struct {
	Service *service.MatchingService
}

func NewMatchingController(svc *service.MatchingService) *MatchingController {
	return &MatchingController{Service: svc}
}

// @Summary 计算技能匹配度
// @Tags 职业匹配
// @Accept json
// @Produce json
// @Param body body service.SkillFitRequest true "要求与自评技能"
// @Success 200 {object} util.Response{data=service.SkillFitResponse}
// @Failure 400 {object} util.Response
// @Router /api/skills/fit [post]
func (c *MatchingController) SkillFit(ctx *gin.Context) {
	var req service.SkillFitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fit, err := c.Service.SkillFit(req.RequiredSkills, req.Skills)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, service.SkillFitResponse{
		SkillFit: fit,
		Percent:  int(math.Round(fit * 100)),
	})
}

// @Summary 统一角色匹配
// @Description 对目录中所有角色打分并按加权分降序返回
// @Tags 职业匹配
// @Accept json
// @Produce json
// @Param body body service.MatchRequest true "技能、答题或画像"
// @Success 200 {object} util.Response{data=util.ListResponse}
// @Failure 400 {object} util.Response
// @Router /api/match/roles [post]
func (c *MatchingController) MatchRoles(ctx *gin.Context) {
	req, ok := bindMatchRequest(ctx)
	if !ok {
		return
	}

	matches, err := c.Service.MatchRoles(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.ListResponse{List: matches, Total: len(matches)})
}

// @Summary 职业路径匹配（旧版）
// @Description 按等级路径给出当前角色与下一步角色
// @Tags 职业匹配
// @Accept json
// @Produce json
// @Param body body service.MatchRequest true "技能、答题或画像"
// @Success 200 {object} util.Response{data=util.ListResponse}
// @Failure 400 {object} util.Response
// @Router /api/match/paths [post]
func (c *MatchingController) MatchPaths(ctx *gin.Context) {
	req, ok := bindMatchRequest(ctx)
	if !ok {
		return
	}

	matches, err := c.Service.MatchPaths(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.ListResponse{List: matches, Total: len(matches)})
}

// bindMatchRequest 至少勾选一项技能，这条校验只在接口层做
func bindMatchRequest(ctx *gin.Context) (service.MatchRequest, bool) {
	var req service.MatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return req, false
	}
	if req.Skills.SelectedCount() == 0 {
		respondError(ctx, util.ErrNoSkillsSelected)
		return req, false
	}
	return req, true
}
