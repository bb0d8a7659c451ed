package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrJobTitleNotFound         = errors.New("job title not found")
	ErrDepartmentNotFound       = errors.New("department not found")
	ErrEmployeeJobTitleNotFound = errors.New("employee job title not found")
	ErrDuplicateJobTitle        = errors.New("job title with this title already exists")
	ErrDuplicateDepartmentName  = errors.New("department with this name already exists")
)
