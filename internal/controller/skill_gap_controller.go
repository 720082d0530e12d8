package controller

import (
	"career_match_backend/internal/service"
	"career_match_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SkillGapController struct {
	Service *service.MatchingService
}

func NewSkillGapController(svc *service.MatchingService) *SkillGapController {
	return &SkillGapController{Service: svc}
}

// @Summary 多角色技能差距
// @Tags 技能差距
// @Accept json
// @Produce json
// @Param body body service.GapRequest true "自评技能与角色列表"
// @Success 200 {object} util.Response{data=util.ListResponse}
// @Router /api/skills/gaps [post]
func (c *SkillGapController) AnalyzeGaps(ctx *gin.Context) {
	var req service.GapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reports, err := c.Service.AnalyzeGaps(ctx.Request.Context(), req.RoleSlugs, req.Skills)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.ListResponse{List: reports, Total: len(reports)})
}

// @Summary 单个角色技能差距
// @Tags 技能差距
// @Accept json
// @Produce json
// @Param slug path string true "角色 slug"
// @Param body body service.SkillsRequest true "自评技能"
// @Success 200 {object} util.Response{data=matching.SkillGapReport}
// @Failure 404 {object} util.Response
// @Router /api/skills/gaps/{slug} [post]
func (c *SkillGapController) AnalyzeGap(ctx *gin.Context) {
	var req service.SkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	report, err := c.Service.AnalyzeGap(ctx.Request.Context(), ctx.Param("slug"), req.Skills)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// @Summary 技能学习路线图
// @Tags 技能差距
// @Accept json
// @Produce json
// @Param slug path string true "角色 slug"
// @Param body body service.SkillsRequest true "自评技能"
// @Success 200 {object} util.Response{data=service.RoadmapResult}
// @Failure 404 {object} util.Response
// @Router /api/skills/roadmap/{slug} [post]
func (c *SkillGapController) Roadmap(ctx *gin.Context) {
	var req service.SkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Roadmap(ctx.Request.Context(), ctx.Param("slug"), req.Skills)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
