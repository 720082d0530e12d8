package model

import (
	"career_match_backend/internal/matching"

	"gorm.io/datatypes"
)

// swagger:model QuizSubmission
type QuizSubmission struct {
	UUIDBase
	UserRef     string         `gorm:"size:100;index" json:"userRef"`
	Answers     datatypes.JSON `json:"answers" swaggertype:"object"`
	Preferences datatypes.JSON `json:"preferences" swaggertype:"object"`
	Profile     datatypes.JSON `json:"profile" swaggertype:"object"`
	Policy      string         `gorm:"size:30" json:"policy"`
	TopRoleSlug string         `gorm:"size:120" json:"topRoleSlug"`
	TopScore    int            `json:"topScore"`
	MatchCount  int            `json:"matchCount"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}

func NewQuizSubmission(userRef string, answers matching.Answers, prefs matching.Preferences, profile matching.Profile, policy matching.MissingAnswerPolicy) (*QuizSubmission, error) {
	a, err := toJSON(answers)
	if err != nil {
		return nil, err
	}
	p, err := toJSON(prefs)
	if err != nil {
		return nil, err
	}
	pr, err := toJSON(profile)
	if err != nil {
		return nil, err
	}
	return &QuizSubmission{
		UserRef:     userRef,
		Answers:     a,
		Preferences: p,
		Profile:     pr,
		Policy:      string(policy),
	}, nil
}

// DecodeProfile 还原提交时计算出的画像
func (s *QuizSubmission) DecodeProfile() (matching.Profile, error) {
	var p matching.Profile
	err := fromJSON("profile", s.Profile, &p)
	return p, err
}
