package service

import (
	"career_match_backend/internal/matching"
	"career_match_backend/internal/model"
	"career_match_backend/internal/repository"
	"career_match_backend/internal/util"
	"career_match_backend/pkg/logger"
	"career_match_backend/pkg/monitoring"
	"career_match_backend/pkg/tracing"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MatchRequest 角色/路径匹配的请求体。Profile 非空时跳过答题计分。
type MatchRequest struct {
	Skills      matching.SkillMap    `json:"skills" binding:"required"`
	Answers     matching.Answers     `json:"answers"`
	Profile     *matching.Profile    `json:"profile"`
	Preferences matching.Preferences `json:"preferences"`
	RoleSlugs   []string             `json:"roleSlugs"`
	Limit       int                  `json:"limit" binding:"omitempty,min=1"`
}

type SubmitQuizRequest struct {
	UserRef     string               `json:"userRef" binding:"max=100"`
	Answers     matching.Answers     `json:"answers"`
	Preferences matching.Preferences `json:"preferences"`
	Skills      matching.SkillMap    `json:"skills"`
	Limit       int                  `json:"limit" binding:"omitempty,min=1"`
}

type QuizResult struct {
	SubmissionID string               `json:"submissionId"`
	Profile      matching.Profile     `json:"profile"`
	TraitFlags   map[string]bool      `json:"traitFlags"`
	Matches      []matching.RoleMatch `json:"matches"`
}

type RoadmapResult struct {
	Report matching.SkillGapReport `json:"report"`
	Phases []matching.Phase        `json:"phases"`
}

// MatchingService 匹配引擎的宿主：加载目录、缓存画像、持久化答题记录
type MatchingService struct {
	RoleRepo       *repository.CareerRoleRepository
	PathRepo       *repository.CareerPathRepository
	AssessmentRepo *repository.AssessmentRepository
	Cache          *repository.ProfileCache

	mu     sync.RWMutex
	cfg    matching.Config
	scorer *matching.Scorer
}

func NewMatchingService(
	roleRepo *repository.CareerRoleRepository,
	pathRepo *repository.CareerPathRepository,
	assessmentRepo *repository.AssessmentRepository,
	cache *repository.ProfileCache,
	cfg matching.Config,
) *MatchingService {
	return &MatchingService{
		RoleRepo:       roleRepo,
		PathRepo:       pathRepo,
		AssessmentRepo: assessmentRepo,
		Cache:          cache,
		cfg:            cfg,
		scorer:         matching.NewScorer(cfg),
	}
}

func (s *MatchingService) Config() matching.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *MatchingService) current() (matching.Config, *matching.Scorer) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.scorer
}

// UpdateConfig 热更新匹配参数，已缓存的画像随之失效
func (s *MatchingService) UpdateConfig(ctx context.Context, cfg matching.Config) error {
	if err := cfg.Validate(); err != nil {
		monitoring.ConfigReloads.WithLabelValues("invalid").Inc()
		return err
	}

	s.mu.Lock()
	old := s.cfg
	s.cfg = cfg
	s.scorer = matching.NewScorer(cfg)
	s.mu.Unlock()

	if err := s.Cache.Flush(ctx); err != nil {
		logger.Log.Warn("清空画像缓存失败", zap.Error(err))
	}
	monitoring.ConfigReloads.WithLabelValues("ok").Inc()
	logger.Log.Info("匹配参数已更新",
		zap.Float64("skills_weight", cfg.Weights.Skills),
		zap.Float64("personality_weight", cfg.Weights.Personality),
		zap.Float64("gap_delta", cfg.GapDelta),
		zap.String("policy", string(cfg.MissingAnswers)),
		zap.String("previous_policy", string(old.MissingAnswers)))
	return nil
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span, time.Time) {
	ctx, span := tracing.Tracer.Start(ctx, "MatchingService."+name)
	return ctx, span, time.Now()
}

func endSpan(span trace.Span, operation string, start time.Time, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
	monitoring.ObserveOperation(operation, start, err)
}

func profileCacheKey(answers matching.Answers, prefs matching.Preferences, policy matching.MissingAnswerPolicy) (string, error) {
	b, err := json.Marshal(struct {
		Answers matching.Answers     `json:"a"`
		Prefs   matching.Preferences `json:"p"`
		Policy  string               `json:"m"`
	}{answers, prefs, string(policy)})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// ScoreProfile 计算人格画像；没有任何作答时返回中性画像
func (s *MatchingService) ScoreProfile(ctx context.Context, answers matching.Answers, prefs matching.Preferences) (profile matching.Profile, err error) {
	ctx, span, start := startSpan(ctx, "ScoreProfile")
	defer func() { endSpan(span, "score_profile", start, err) }()

	if len(answers) == 0 {
		span.SetAttributes(attribute.Bool("profile.neutral", true))
		return matching.NeutralProfile().WithPreferences(prefs), nil
	}

	cfg, _ := s.current()
	key, err := profileCacheKey(answers, prefs, cfg.MissingAnswers)
	if err != nil {
		return matching.Profile{}, err
	}

	if cached, cacheErr := s.Cache.Get(ctx, key); cacheErr != nil {
		logger.Log.Warn("读取画像缓存失败", zap.Error(cacheErr))
	} else if cached != nil {
		monitoring.ProfileCacheResults.WithLabelValues("hit").Inc()
		return *cached, nil
	}
	if s.Cache.Enabled() {
		monitoring.ProfileCacheResults.WithLabelValues("miss").Inc()
	}

	profile, err = matching.ScorePersonality(answers, prefs, cfg)
	if err != nil {
		return matching.Profile{}, err
	}
	if err := s.Cache.Set(ctx, key, profile); err != nil {
		logger.Log.Warn("写入画像缓存失败", zap.Error(err))
	}
	return profile, nil
}

func (s *MatchingService) TraitFlags(profile matching.Profile) map[string]bool {
	return matching.MapProfileToTraitFlags(profile)
}

// SkillFit 要求等级必须为正数，否则结果无意义
func (s *MatchingService) SkillFit(required map[string]int, skills matching.SkillMap) (float64, error) {
	for name, lvl := range required {
		if lvl <= 0 {
			return 0, fmt.Errorf("%w: %s=%d", util.ErrInvalidSkillLevel, name, lvl)
		}
	}
	fit := matching.ComputeSkillFit(required, skills)
	if math.IsNaN(fit) || math.IsInf(fit, 0) {
		return 0, util.ErrInvalidSkillLevel
	}
	return fit, nil
}

func (s *MatchingService) resolveUser(ctx context.Context, req MatchRequest) (matching.UserData, error) {
	var profile matching.Profile
	if req.Profile != nil {
		profile = *req.Profile
	} else {
		p, err := s.ScoreProfile(ctx, req.Answers, req.Preferences)
		if err != nil {
			return matching.UserData{}, err
		}
		profile = p
	}
	return matching.NormalizeUser(req.Skills, profile, req.Preferences), nil
}

func (s *MatchingService) loadRoles(slugs []string) ([]matching.CareerRole, error) {
	var (
		rows []model.CareerRole
		err  error
	)
	if len(slugs) > 0 {
		rows, err = s.RoleRepo.FindBySlugs(slugs)
	} else {
		rows, err = s.RoleRepo.List()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, util.ErrEmptyCatalog
	}
	return toMatchingRoles(rows)
}

func countFallbacks(scores []matching.RoleScore) {
	for _, sc := range scores {
		if sc.Fallback {
			monitoring.FallbackScores.Inc()
		}
	}
}

// MatchRoles 对目录中的角色统一打分排序
func (s *MatchingService) MatchRoles(ctx context.Context, req MatchRequest) (matches []matching.RoleMatch, err error) {
	ctx, span, start := startSpan(ctx, "MatchRoles")
	defer func() { endSpan(span, "match_roles", start, err) }()

	roles, err := s.loadRoles(req.RoleSlugs)
	if err != nil {
		return nil, err
	}
	user, err := s.resolveUser(ctx, req)
	if err != nil {
		return nil, err
	}

	_, scorer := s.current()
	matches = matching.MatchCareerRoles(roles, user, scorer)

	scores := make([]matching.RoleScore, len(matches))
	for i, m := range matches {
		scores[i] = m.RoleScore
	}
	countFallbacks(scores)
	span.SetAttributes(attribute.Int("match.roles", len(matches)))

	if req.Limit > 0 && req.Limit < len(matches) {
		matches = matches[:req.Limit]
	}
	return matches, nil
}

// MatchPaths 旧版分级路径匹配
func (s *MatchingService) MatchPaths(ctx context.Context, req MatchRequest) (matches []matching.PathMatch, err error) {
	ctx, span, start := startSpan(ctx, "MatchPaths")
	defer func() { endSpan(span, "match_paths", start, err) }()

	rows, err := s.PathRepo.List()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, util.ErrEmptyCatalog
	}
	paths, err := toMatchingPaths(rows)
	if err != nil {
		return nil, err
	}
	user, err := s.resolveUser(ctx, req)
	if err != nil {
		return nil, err
	}

	_, scorer := s.current()
	matches = matching.MatchCareers(paths, user, scorer)
	for _, m := range matches {
		scores := make([]matching.RoleScore, len(m.Roles))
		for i, r := range m.Roles {
			scores[i] = r.RoleScore
		}
		countFallbacks(scores)
	}
	span.SetAttributes(attribute.Int("match.paths", len(matches)))

	if req.Limit > 0 && req.Limit < len(matches) {
		matches = matches[:req.Limit]
	}
	return matches, nil
}

// SubmitQuiz 计分、匹配并保存一次答题记录
func (s *MatchingService) SubmitQuiz(ctx context.Context, req SubmitQuizRequest) (result *QuizResult, err error) {
	ctx, span, start := startSpan(ctx, "SubmitQuiz")
	defer func() { endSpan(span, "submit_quiz", start, err) }()

	profile, err := s.ScoreProfile(ctx, req.Answers, req.Preferences)
	if err != nil {
		return nil, err
	}

	matches, err := s.MatchRoles(ctx, MatchRequest{
		Skills:      req.Skills,
		Profile:     &profile,
		Preferences: req.Preferences,
		Limit:       req.Limit,
	})
	if err != nil && !errors.Is(err, util.ErrEmptyCatalog) {
		return nil, err
	}

	cfg, _ := s.current()
	sub, err := model.NewQuizSubmission(req.UserRef, req.Answers, req.Preferences, profile, cfg.MissingAnswers)
	if err != nil {
		return nil, err
	}
	sub.MatchCount = len(matches)
	if len(matches) > 0 {
		sub.TopRoleSlug = matches[0].Role.Slug
		sub.TopScore = matches[0].WeightedScore
	}
	if err := s.AssessmentRepo.CreateSubmission(sub); err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}

	logger.Log.Info("答题已提交",
		zap.String("submission_id", sub.ID),
		zap.String("user_ref", req.UserRef),
		zap.String("top_role", sub.TopRoleSlug),
		zap.Int("top_score", sub.TopScore))

	if matches == nil {
		matches = []matching.RoleMatch{}
	}
	return &QuizResult{
		SubmissionID: sub.ID,
		Profile:      profile,
		TraitFlags:   matching.MapProfileToTraitFlags(profile),
		Matches:      matches,
	}, nil
}

func (s *MatchingService) GetSubmission(ctx context.Context, id string) (*model.QuizSubmission, error) {
	sub, err := s.AssessmentRepo.FindSubmissionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *MatchingService) ListSubmissions(ctx context.Context, userRef string, limit int) ([]model.QuizSubmission, error) {
	if limit <= 0 {
		limit = util.DefaultSubmissionLimit
	}
	if limit > util.MaxSubmissionLimit {
		limit = util.MaxSubmissionLimit
	}
	return s.AssessmentRepo.ListSubmissionsByUser(userRef, limit)
}

func (s *MatchingService) findRole(slug string) (matching.CareerRole, error) {
	row, err := s.RoleRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return matching.CareerRole{}, util.ErrCareerRoleNotFound
		}
		return matching.CareerRole{}, err
	}
	return row.ToMatching()
}

func (s *MatchingService) AnalyzeGap(ctx context.Context, slug string, skills matching.SkillMap) (report matching.SkillGapReport, err error) {
	_, span, start := startSpan(ctx, "AnalyzeGap")
	defer func() { endSpan(span, "analyze_gap", start, err) }()

	role, err := s.findRole(slug)
	if err != nil {
		return matching.SkillGapReport{}, err
	}
	return matching.AnalyzeSkillGaps(role, skills), nil
}

// AnalyzeGaps slugs 为空时分析全部角色
func (s *MatchingService) AnalyzeGaps(ctx context.Context, slugs []string, skills matching.SkillMap) (reports []matching.SkillGapReport, err error) {
	_, span, start := startSpan(ctx, "AnalyzeGaps")
	defer func() { endSpan(span, "analyze_gaps", start, err) }()

	roles, err := s.loadRoles(slugs)
	if err != nil {
		return nil, err
	}
	return matching.AnalyzeMultipleCareerGaps(roles, skills), nil
}

func (s *MatchingService) Roadmap(ctx context.Context, slug string, skills matching.SkillMap) (result *RoadmapResult, err error) {
	_, span, start := startSpan(ctx, "Roadmap")
	defer func() { endSpan(span, "roadmap", start, err) }()

	role, err := s.findRole(slug)
	if err != nil {
		return nil, err
	}
	report := matching.AnalyzeSkillGaps(role, skills)
	phases := matching.GenerateSkillRoadmap(report)
	if phases == nil {
		phases = []matching.Phase{}
	}
	return &RoadmapResult{Report: report, Phases: phases}, nil
}
