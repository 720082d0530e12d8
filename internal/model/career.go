package model

import (
	"career_match_backend/internal/matching"
	"encoding/json"

	"gorm.io/datatypes"
)

// PersonalityColumns 角色与路径角色共用的人格期望列（JSON 列）
type PersonalityColumns struct {
	DesiredRIASEC     datatypes.JSON `json:"desiredRIASEC" swaggertype:"object"`
	DesiredBigFive    datatypes.JSON `json:"desiredBigFive" swaggertype:"object"`
	WorkValues        datatypes.JSON `json:"workValues" swaggertype:"array,string"`
	PersonalityTraits datatypes.JSON `json:"personalityTraits" swaggertype:"array,string"`
	LearningStyles    datatypes.JSON `json:"learningStyles" swaggertype:"array,string"`
}

type personalityFields struct {
	riasec  map[string]float64
	bigFive map[string]matching.TraitTarget
	values  []string
	traits  []string
	styles  []string
}

func (p PersonalityColumns) decode() (personalityFields, error) {
	var f personalityFields
	if err := fromJSON("desired_riasec", p.DesiredRIASEC, &f.riasec); err != nil {
		return f, err
	}
	if err := fromJSON("desired_big_five", p.DesiredBigFive, &f.bigFive); err != nil {
		return f, err
	}
	if err := fromJSON("work_values", p.WorkValues, &f.values); err != nil {
		return f, err
	}
	if err := fromJSON("personality_traits", p.PersonalityTraits, &f.traits); err != nil {
		return f, err
	}
	if err := fromJSON("learning_styles", p.LearningStyles, &f.styles); err != nil {
		return f, err
	}
	return f, nil
}

func encodePersonality(f personalityFields) (PersonalityColumns, error) {
	var (
		p   PersonalityColumns
		err error
	)
	if p.DesiredRIASEC, err = toJSON(f.riasec); err != nil {
		return p, err
	}
	if p.DesiredBigFive, err = toJSON(f.bigFive); err != nil {
		return p, err
	}
	if p.WorkValues, err = toJSON(f.values); err != nil {
		return p, err
	}
	if p.PersonalityTraits, err = toJSON(f.traits); err != nil {
		return p, err
	}
	if p.LearningStyles, err = toJSON(f.styles); err != nil {
		return p, err
	}
	return p, nil
}

// swagger:model CareerRole
type CareerRole struct {
	UUIDBase
	Slug           string         `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Name           string         `gorm:"size:200;not null" json:"name"`
	Description    string         `gorm:"type:text" json:"description"`
	Level          string         `gorm:"size:20;default:'entry'" json:"level"` // entry, mid, advanced
	RequiredSkills datatypes.JSON `json:"requiredSkills" swaggertype:"array,object"`
	PersonalityColumns
	AverageSalary   float64        `json:"averageSalary"`
	JobGrowth       string         `gorm:"size:100" json:"jobGrowth"`
	Roadmap         datatypes.JSON `json:"roadmap" swaggertype:"object"`
	DetailedRoadmap datatypes.JSON `json:"detailedRoadmap" swaggertype:"object"`
}

func (CareerRole) TableName() string {
	return "career_roles"
}

func NewCareerRole(r matching.CareerRole) (*CareerRole, error) {
	cols, err := encodePersonality(personalityFields{
		riasec:  r.DesiredRIASEC,
		bigFive: r.DesiredBigFive,
		values:  r.WorkValues,
		traits:  r.PersonalityTraits,
		styles:  r.LearningStyles,
	})
	if err != nil {
		return nil, err
	}
	skills, err := toJSON(r.RequiredSkills)
	if err != nil {
		return nil, err
	}

	m := &CareerRole{
		Slug:               r.Slug,
		Name:               r.Name,
		Description:        r.Description,
		Level:              r.Level.String(),
		RequiredSkills:     skills,
		PersonalityColumns: cols,
		AverageSalary:      r.AverageSalary,
		JobGrowth:          r.JobGrowth,
		Roadmap:            rawOrNil(r.Roadmap),
		DetailedRoadmap:    rawOrNil(r.DetailedRoadmap),
	}
	return m, nil
}

// ToMatching 转换为匹配引擎的只读角色描述
func (m *CareerRole) ToMatching() (matching.CareerRole, error) {
	f, err := m.decode()
	if err != nil {
		return matching.CareerRole{}, err
	}
	var skills []matching.RequiredSkill
	if err := fromJSON("required_skills", m.RequiredSkills, &skills); err != nil {
		return matching.CareerRole{}, err
	}

	return matching.CareerRole{
		ID:                m.ID,
		Name:              m.Name,
		Slug:              m.Slug,
		Description:       m.Description,
		Level:             matching.ParseLevel(m.Level),
		RequiredSkills:    skills,
		DesiredRIASEC:     f.riasec,
		DesiredBigFive:    f.bigFive,
		WorkValues:        f.values,
		PersonalityTraits: f.traits,
		LearningStyles:    f.styles,
		AverageSalary:     m.AverageSalary,
		JobGrowth:         m.JobGrowth,
		Roadmap:           json.RawMessage(m.Roadmap),
		DetailedRoadmap:   json.RawMessage(m.DetailedRoadmap),
	}, nil
}

// swagger:model CareerPath
type CareerPath struct {
	UUIDBase
	Slug        string     `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Name        string     `gorm:"size:200;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Roles       []PathRole `gorm:"foreignKey:PathID" json:"roles"`
}

func (CareerPath) TableName() string {
	return "career_paths"
}

// swagger:model PathRole
type PathRole struct {
	UUIDBase
	PathID         string         `gorm:"type:varchar(36);index;not null" json:"pathId"`
	Name           string         `gorm:"size:200;not null" json:"name"`
	Level          string         `gorm:"size:20;default:'entry'" json:"level"`
	Order          int            `gorm:"column:sort_order" json:"order"`
	RequiredSkills datatypes.JSON `json:"requiredSkills" swaggertype:"object"`
	PersonalityColumns
}

func (PathRole) TableName() string {
	return "career_path_roles"
}

func NewCareerPath(p matching.CareerPath, description string) (*CareerPath, error) {
	m := &CareerPath{Slug: p.Slug, Name: p.Name, Description: description}
	for i, r := range p.Roles {
		cols, err := encodePersonality(personalityFields{
			riasec:  r.DesiredRIASEC,
			bigFive: r.DesiredBigFive,
			values:  r.WorkValues,
			traits:  r.PersonalityTraits,
			styles:  r.LearningStyles,
		})
		if err != nil {
			return nil, err
		}
		skills, err := toJSON(r.RequiredSkills)
		if err != nil {
			return nil, err
		}
		m.Roles = append(m.Roles, PathRole{
			Name:               r.Name,
			Level:              r.Level.String(),
			Order:              i,
			RequiredSkills:     skills,
			PersonalityColumns: cols,
		})
	}
	return m, nil
}

func (m *CareerPath) ToMatching() (matching.CareerPath, error) {
	out := matching.CareerPath{ID: m.ID, Name: m.Name, Slug: m.Slug}
	for _, r := range m.Roles {
		f, err := r.decode()
		if err != nil {
			return matching.CareerPath{}, err
		}
		var skills map[string]int
		if err := fromJSON("required_skills", r.RequiredSkills, &skills); err != nil {
			return matching.CareerPath{}, err
		}
		out.Roles = append(out.Roles, matching.PathRole{
			ID:                r.ID,
			Name:              r.Name,
			Level:             matching.ParseLevel(r.Level),
			RequiredSkills:    skills,
			DesiredRIASEC:     f.riasec,
			DesiredBigFive:    f.bigFive,
			WorkValues:        f.values,
			PersonalityTraits: f.traits,
			LearningStyles:    f.styles,
		})
	}
	return out, nil
}

func rawOrNil(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}
