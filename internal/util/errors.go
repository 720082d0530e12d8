package util

import "errors"

var (
	ErrCareerRoleNotFound = errors.New("career role not found")
	ErrCareerPathNotFound = errors.New("career path not found")
	ErrSubmissionNotFound = errors.New("quiz submission not found")
	ErrCatalogInvalid     = errors.New("career catalog is invalid")
	ErrEmptyCatalog       = errors.New("career catalog is empty")
	ErrNoSkillsSelected   = errors.New("at least one skill must be selected")
	ErrStorageKeyInvalid  = errors.New("invalid storage key")
	ErrInvalidSkillLevel  = errors.New("required skill levels must be positive")
)
