package service

import (
	"bytes"
	"career_match_backend/internal/matching"
	"career_match_backend/internal/model"
	"career_match_backend/internal/repository"
	"career_match_backend/internal/util"
	"career_match_backend/pkg/logger"
	"career_match_backend/pkg/monitoring"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed schema/catalog.schema.json
var catalogSchema []byte

// CatalogPath 目录文件中的职业路径，比引擎结构多一个描述字段
type CatalogPath struct {
	matching.CareerPath
	Description string `json:"description,omitempty"`
}

// Catalog 职业目录文件的结构
type Catalog struct {
	Version int                   `json:"version,omitempty"`
	Roles   []matching.CareerRole `json:"roles"`
	Paths   []CatalogPath         `json:"paths"`
}

type ImportResult struct {
	Roles int `json:"roles"`
	Paths int `json:"paths"`
}

type CatalogService struct {
	DB        *gorm.DB
	RoleRepo  *repository.CareerRoleRepository
	PathRepo  *repository.CareerPathRepository
	Storage   *StorageService
	ExportKey string

	schema *gojsonschema.Schema
}

func NewCatalogService(db *gorm.DB, roleRepo *repository.CareerRoleRepository, pathRepo *repository.CareerPathRepository, storage *StorageService, exportKey string) *CatalogService {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(catalogSchema))
	if err != nil {
		// 内嵌 schema 编译失败属于构建错误
		panic(fmt.Sprintf("compile catalog schema: %v", err))
	}
	return &CatalogService{
		DB:        db,
		RoleRepo:  roleRepo,
		PathRepo:  pathRepo,
		Storage:   storage,
		ExportKey: exportKey,
		schema:    schema,
	}
}

// Parse 解析并校验 YAML/JSON 目录文件，不落库
func (s *CatalogService) Parse(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if _, err := util.ValidateTextContent(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrCatalogInvalid, err)
	}

	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrCatalogInvalid, err)
	}
	doc = normalizeYAML(doc)
	if doc == nil {
		return nil, fmt.Errorf("%w: document is empty", util.ErrCatalogInvalid)
	}

	result, err := s.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrCatalogInvalid, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %s", util.ErrCatalogInvalid, strings.Join(errs, "; "))
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var catalog Catalog
	if err := json.Unmarshal(b, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrCatalogInvalid, err)
	}
	if err := checkDuplicateSlugs(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// checkDuplicateSlugs 同时拒绝角色内重复的技能名
func checkDuplicateSlugs(c *Catalog) error {
	seen := make(map[string]bool, len(c.Roles))
	for _, r := range c.Roles {
		if seen[r.Slug] {
			return fmt.Errorf("%w: duplicate role slug %q", util.ErrCatalogInvalid, r.Slug)
		}
		seen[r.Slug] = true

		skills := make(map[string]bool, len(r.RequiredSkills))
		for _, s := range r.RequiredSkills {
			key := matching.NormalizeSkillKey(s.SkillName)
			if skills[key] {
				return fmt.Errorf("%w: role %q lists skill %q twice", util.ErrCatalogInvalid, r.Slug, s.SkillName)
			}
			skills[key] = true
		}
	}
	seen = make(map[string]bool, len(c.Paths))
	for _, p := range c.Paths {
		if seen[p.Slug] {
			return fmt.Errorf("%w: duplicate path slug %q", util.ErrCatalogInvalid, p.Slug)
		}
		seen[p.Slug] = true
	}
	return nil
}

// normalizeYAML 把 yaml 的 map[interface{}]interface{} 转成 JSON 可编码的结构
func normalizeYAML(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return m
	case []interface{}:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}

// Import 校验通过后在一个事务内写入角色和路径
func (s *CatalogService) Import(ctx context.Context, r io.Reader, source string) (*ImportResult, error) {
	catalog, err := s.Parse(r)
	if err != nil {
		monitoring.CatalogImports.WithLabelValues(source, "invalid").Inc()
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roleRepo := repository.NewCareerRoleRepository(tx)
		pathRepo := repository.NewCareerPathRepository(tx)

		for _, role := range catalog.Roles {
			m, err := model.NewCareerRole(role)
			if err != nil {
				return fmt.Errorf("encode role %s: %w", role.Slug, err)
			}
			if err := roleRepo.Upsert(m); err != nil {
				return fmt.Errorf("save role %s: %w", role.Slug, err)
			}
		}
		for _, p := range catalog.Paths {
			m, err := model.NewCareerPath(p.CareerPath, p.Description)
			if err != nil {
				return fmt.Errorf("encode path %s: %w", p.Slug, err)
			}
			if err := pathRepo.ReplaceBySlug(m); err != nil {
				return fmt.Errorf("save path %s: %w", p.Slug, err)
			}
		}
		return nil
	})
	if err != nil {
		monitoring.CatalogImports.WithLabelValues(source, "error").Inc()
		return nil, err
	}

	monitoring.CatalogImports.WithLabelValues(source, "ok").Inc()
	logger.Log.Info("职业目录导入完成",
		zap.String("source", source),
		zap.Int("roles", len(catalog.Roles)),
		zap.Int("paths", len(catalog.Paths)))
	return &ImportResult{Roles: len(catalog.Roles), Paths: len(catalog.Paths)}, nil
}

// ImportFromStorage 从对象存储读取目录文件并导入
func (s *CatalogService) ImportFromStorage(ctx context.Context, key string) (*ImportResult, error) {
	rc, err := s.Storage.Open(ctx, key)
	if err != nil {
		monitoring.CatalogImports.WithLabelValues("storage", "error").Inc()
		return nil, fmt.Errorf("open catalog %s: %w", key, err)
	}
	defer rc.Close()
	return s.Import(ctx, rc, "storage")
}

// Export 把当前目录写回存储，返回访问地址
func (s *CatalogService) Export(ctx context.Context, key string) (string, error) {
	if key == "" {
		key = s.ExportKey
	}
	catalog := Catalog{Version: 1}

	roles, err := s.ListRoles(ctx)
	if err != nil {
		return "", err
	}
	for i := range roles {
		if roles[i].RequiredSkills == nil {
			roles[i].RequiredSkills = []matching.RequiredSkill{}
		}
	}
	catalog.Roles = roles

	paths, err := s.PathRepo.List()
	if err != nil {
		return "", err
	}
	for i := range paths {
		p, err := paths[i].ToMatching()
		if err != nil {
			return "", err
		}
		for j := range p.Roles {
			if p.Roles[j].RequiredSkills == nil {
				p.Roles[j].RequiredSkills = map[string]int{}
			}
		}
		catalog.Paths = append(catalog.Paths, CatalogPath{CareerPath: p, Description: paths[i].Description})
	}

	// 先过一遍 JSON，保证导出的字段名与导入一致
	b, err := json.Marshal(catalog)
	if err != nil {
		return "", err
	}
	var doc interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return "", err
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}

	url, err := s.Storage.Upload(ctx, key, bytes.NewReader(out), int64(len(out)), util.ContentTypeYAML)
	if err != nil {
		return "", err
	}
	logger.Log.Info("职业目录已导出", zap.String("key", key), zap.Int("bytes", len(out)))
	return url, nil
}

func (s *CatalogService) ListRoles(ctx context.Context) ([]matching.CareerRole, error) {
	rows, err := s.RoleRepo.List()
	if err != nil {
		return nil, err
	}
	return toMatchingRoles(rows)
}

func (s *CatalogService) GetRole(ctx context.Context, slug string) (*matching.CareerRole, error) {
	row, err := s.RoleRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCareerRoleNotFound
		}
		return nil, err
	}
	role, err := row.ToMatching()
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *CatalogService) ListPaths(ctx context.Context) ([]matching.CareerPath, error) {
	rows, err := s.PathRepo.List()
	if err != nil {
		return nil, err
	}
	return toMatchingPaths(rows)
}

func (s *CatalogService) GetPath(ctx context.Context, slug string) (*matching.CareerPath, error) {
	row, err := s.PathRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCareerPathNotFound
		}
		return nil, err
	}
	p, err := row.ToMatching()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func toMatchingRoles(rows []model.CareerRole) ([]matching.CareerRole, error) {
	roles := make([]matching.CareerRole, 0, len(rows))
	for i := range rows {
		r, err := rows[i].ToMatching()
		if err != nil {
			return nil, fmt.Errorf("role %s: %w", rows[i].Slug, err)
		}
		roles = append(roles, r)
	}
	return roles, nil
}

func toMatchingPaths(rows []model.CareerPath) ([]matching.CareerPath, error) {
	paths := make([]matching.CareerPath, 0, len(rows))
	for i := range rows {
		p, err := rows[i].ToMatching()
		if err != nil {
			return nil, fmt.Errorf("path %s: %w", rows[i].Slug, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// seedTimeout 启动时导入目录的超时
const seedTimeout = 30 * time.Second

// SeedFromStorage 启动时导入；目录文件不存在时只记录告警
func (s *CatalogService) SeedFromStorage(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	res, err := s.ImportFromStorage(ctx, key)
	if err != nil {
		logger.Log.Warn("启动时导入职业目录失败", zap.String("key", key), zap.Error(err))
		return
	}
	logger.Log.Info("启动时导入职业目录", zap.Int("roles", res.Roles), zap.Int("paths", res.Paths))
}
