package controller

import (
	"career_match_backend/internal/matching"
	"career_match_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// respondError 把业务错误映射为统一响应
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCareerRoleNotFound),
		errors.Is(err, util.ErrCareerPathNotFound),
		errors.Is(err, util.ErrSubmissionNotFound),
		errors.Is(err, util.ErrEmptyCatalog):
		util.NotFoundMessage(ctx, err.Error())
	case errors.Is(err, matching.ErrIncompleteAnswers),
		errors.Is(err, util.ErrInvalidSkillLevel),
		errors.Is(err, util.ErrNoSkillsSelected),
		errors.Is(err, util.ErrCatalogInvalid),
		errors.Is(err, util.ErrStorageKeyInvalid):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
