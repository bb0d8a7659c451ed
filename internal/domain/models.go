package domain

import (
	"time"
)

// Department представляет подразделение, к которому может относиться сотрудник
type Department struct {
	ID        int64     `json:"departmentid" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Employees []Employee `json:"-" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника
type Employee struct {
	ID           int64     `json:"employeeid" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"employeename" gorm:"type:varchar(200);not null"`
	Email        string    `json:"emailaddress" gorm:"type:varchar(200);not null"`
	DepartmentID *int64    `json:"departmentid" gorm:"index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Department *Department        `json:"-" gorm:"foreignKey:DepartmentID"`
	JobTitles  []EmployeeJobTitle `json:"jobtitles" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// JobTitle - должность, на которую ссылаются связи сотрудников
type JobTitle struct {
	ID        int64     `json:"jobtitleid" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (JobTitle) TableName() string {
	return "jobtitles"
}

// EmployeeJobTitle связывает сотрудника и должность.
// Пара (EmployeeID, JobTitleID) уникальна.
type EmployeeJobTitle struct {
	EmployeeID int64     `json:"employeeid" gorm:"primaryKey;autoIncrement:false"`
	JobTitleID int64     `json:"jobtitleid" gorm:"column:jobtitle_id;primaryKey;autoIncrement:false"`
	Manager    string    `json:"manager" gorm:"type:varchar(100);not null;default:''"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	JobTitle *JobTitle `json:"-" gorm:"foreignKey:JobTitleID"`
}

// TableName задаёт имя таблицы для GORM
func (EmployeeJobTitle) TableName() string {
	return "employee_jobtitles"
}

// EmpNameCountJobs - проекция: имя сотрудника и число его должностей
type EmpNameCountJobs struct {
	Name     string `json:"employeename"`
	JobCount int64  `json:"jobCount"`
}
