package controller

import (
	"career_match_backend/internal/service"
	"career_match_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CareerController struct {
	Service *service.CatalogService
}

func NewCareerController(svc *service.CatalogService) *CareerController {
	return &CareerController{Service: svc}
}

// @Summary 职业角色列表
// @Tags 职业目录
// @Produce json
// @Success 200 {object} util.Response{data=util.ListResponse}
// @Router /api/careers/roles [get]
func (c *CareerController) ListRoles(ctx *gin.Context) {
	roles, err := c.Service.ListRoles(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.ListResponse{List: roles, Total: len(roles)})
}

// @Summary 职业角色详情
// @Tags 职业目录
// @Produce json
// @Param slug path string true "角色 slug"
// @Success 200 {object} util.Response{data=matching.CareerRole}
// @Failure 404 {object} util.Response
// @Router /api/careers/roles/{slug} [get]
func (c *CareerController) GetRole(ctx *gin.Context) {
	role, err := c.Service.GetRole(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, role)
}

// @Summary 职业路径列表
// @Tags 职业目录
// @Produce json
// @Success 200 {object} util.Response{data=util.ListResponse}
// @Router /api/careers/paths [get]
func (c *CareerController) ListPaths(ctx *gin.Context) {
	paths, err := c.Service.ListPaths(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.ListResponse{List: paths, Total: len(paths)})
}

// @Summary 职业路径详情
// @Tags 职业目录
// @Produce json
// @Param slug path string true "路径 slug"
// @Success 200 {object} util.Response{data=matching.CareerPath}
// @Failure 404 {object} util.Response
// @Router /api/careers/paths/{slug} [get]
func (c *CareerController) GetPath(ctx *gin.Context) {
	path, err := c.Service.GetPath(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, path)
}
