package dto

import (
	"time"
)

// EmployeeRequest - полное представление сотрудника для POST и PUT
type EmployeeRequest struct {
	Name         string                    `json:"employeename" validate:"required,notblank,max=200"`
	Email        string                    `json:"emailaddress" validate:"required,email,max=200"`
	DepartmentID *int64                    `json:"departmentid" validate:"omitempty,min=1"`
	JobTitles    []EmployeeJobTitleRequest `json:"jobtitles" validate:"omitempty,dive"`
}

// UpdateEmployeeRequest - частичное обновление (PATCH): nil означает "не менять",
// пустая или пробельная строка отклоняется
type UpdateEmployeeRequest struct {
	Name         *string                   `json:"employeename" validate:"omitnil,notblank,max=200"`
	Email        *string                   `json:"emailaddress" validate:"omitnil,email,max=200"`
	DepartmentID *int64                    `json:"departmentid" validate:"omitempty,min=1"`
	JobTitles    []EmployeeJobTitleRequest `json:"jobtitles" validate:"omitempty,dive"`
}

// EmployeeJobTitleRequest - ссылка на должность внутри тела сотрудника
type EmployeeJobTitleRequest struct {
	JobTitleID int64  `json:"jobtitleid" validate:"required,min=1"`
	Manager    string `json:"manager" validate:"max=100"`
}

// CreateJobTitleRequest - запрос на создание должности
type CreateJobTitleRequest struct {
	Title string `json:"title" validate:"required,notblank,max=200"`
}

// CreateDepartmentRequest - запрос на создание подразделения
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
}

// EmployeeJobTitleParams - параметры пути для операций со связями
type EmployeeJobTitleParams struct {
	EmployeeID int64  `validate:"min=1"`
	JobTitleID int64  `validate:"min=1"`
	Manager    string `validate:"required,notblank,max=100"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID             int64                      `json:"employeeid"`
	Name           string                     `json:"employeename"`
	Email          string                     `json:"emailaddress"`
	DepartmentID   *int64                     `json:"departmentid"`
	DepartmentName string                     `json:"departmentname,omitempty"`
	JobTitles      []EmployeeJobTitleResponse `json:"jobtitles"`
}

// EmployeeJobTitleResponse - должность сотрудника с указанием менеджера
type EmployeeJobTitleResponse struct {
	JobTitleID int64  `json:"jobtitleid"`
	Title      string `json:"title"`
	Manager    string `json:"manager"`
}

// EmpNameCountJobsResponse - имя сотрудника и число его должностей
type EmpNameCountJobsResponse struct {
	Name     string `json:"employeename"`
	JobCount int64  `json:"jobCount"`
}

// JobTitleResponse - ответ с данными должности
type JobTitleResponse struct {
	ID    int64  `json:"jobtitleid"`
	Title string `json:"title"`
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	ID        int64     `json:"departmentid"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorDetail - тело ответа с ошибкой
type ErrorDetail struct {
	Title            string            `json:"title"`
	Status           int               `json:"status"`
	Detail           string            `json:"detail"`
	Timestamp        time.Time         `json:"timestamp"`
	DeveloperMessage string            `json:"developerMessage,omitempty"`
	Errors           []ValidationError `json:"errors,omitempty"`
}

// ValidationError - ошибка валидации одного поля
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
