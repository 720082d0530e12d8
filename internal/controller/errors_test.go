package controller

import (
	"career_match_backend/internal/matching"
	"career_match_backend/internal/util"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"role not found", util.ErrCareerRoleNotFound, http.StatusNotFound},
		{"path not found", util.ErrCareerPathNotFound, http.StatusNotFound},
		{"submission not found", util.ErrSubmissionNotFound, http.StatusNotFound},
		{"empty catalog", util.ErrEmptyCatalog, http.StatusNotFound},
		{"incomplete answers", fmt.Errorf("%w: missing questions [3]", matching.ErrIncompleteAnswers), http.StatusBadRequest},
		{"invalid level", util.ErrInvalidSkillLevel, http.StatusBadRequest},
		{"no skills", util.ErrNoSkillsSelected, http.StatusBadRequest},
		{"bad catalog", fmt.Errorf("%w: roles.0.slug", util.ErrCatalogInvalid), http.StatusBadRequest},
		{"bad key", util.ErrStorageKeyInvalid, http.StatusBadRequest},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(ctx, tt.err)

			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "connection reset")
			} else {
				assert.Contains(t, w.Body.String(), tt.err.Error())
			}
		})
	}
}
