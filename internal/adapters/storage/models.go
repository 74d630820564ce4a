package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Row types mirror the relational schema. Soft deletion is an explicit
// is_deleted flag plus deleted_at timestamp rather than gorm.DeletedAt, so
// the flag can be indexed and queried the same way on every dialect.

type projectRow struct {
	ID          string          `gorm:"type:varchar(36);primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	ClientName  *string         `gorm:"type:varchar(255)"`
	Description *string         `gorm:"type:text"`
	StartDate   time.Time       `gorm:"not null"`
	EndDate     time.Time       `gorm:"not null"`
	Budget      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	IsDeleted   bool            `gorm:"not null;default:false;index"`
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (projectRow) TableName() string { return "projects" }

type assignmentRow struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	ProjectID  string    `gorm:"type:varchar(36);not null;index"`
	EmployeeID string    `gorm:"type:varchar(36);not null;index"`
	Role       string    `gorm:"type:varchar(50);not null"`
	AssignedAt time.Time `gorm:"not null"`
	IsDeleted  bool      `gorm:"not null;default:false;index"`
	DeletedAt  *time.Time

	Project *projectRow `gorm:"foreignKey:ProjectID"`
}

func (assignmentRow) TableName() string { return "project_assignments" }

type allocationRow struct {
	ID              string          `gorm:"type:varchar(36);primaryKey"`
	ProjectID       string          `gorm:"type:varchar(36);not null;index"`
	CategoryID      string          `gorm:"type:varchar(36);not null;index"`
	AllocatedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description     string          `gorm:"type:text;not null"`
	IsDeleted       bool            `gorm:"not null;default:false;index"`
	DeletedAt       *time.Time

	Project  *projectRow  `gorm:"foreignKey:ProjectID"`
	Category *categoryRow `gorm:"foreignKey:CategoryID"`
}

func (allocationRow) TableName() string { return "cost_allocations" }

type milestoneRow struct {
	ID           string    `gorm:"type:varchar(36);primaryKey"`
	ProjectID    string    `gorm:"type:varchar(36);not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Percentage   int       `gorm:"not null"`
	Description  string    `gorm:"type:text;not null"`
	TargetDate   time.Time `gorm:"not null"`
	AchievedDate *time.Time
	IsDeleted    bool `gorm:"not null;default:false;index"`
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Project *projectRow `gorm:"foreignKey:ProjectID"`
}

func (milestoneRow) TableName() string { return "milestones" }

type categoryRow struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	Name      string `gorm:"type:varchar(255);not null;index"`
	IsDeleted bool   `gorm:"not null;default:false;index"`
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (categoryRow) TableName() string { return "expense_categories" }

type expenseRow struct {
	ID           string          `gorm:"type:varchar(36);primaryKey"`
	DepartmentID string          `gorm:"type:varchar(255);not null;index"`
	EmployeeID   string          `gorm:"type:varchar(255);not null;index"`
	CategoryID   *string         `gorm:"type:varchar(36);index"`
	ProjectID    *string         `gorm:"type:varchar(36);index"`
	ProductID    *string         `gorm:"type:varchar(255)"`
	ProductName  *string         `gorm:"type:varchar(255)"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Quantity     int             `gorm:"not null"`
	Total        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date         time.Time       `gorm:"not null;index"`
	Notes        *string         `gorm:"type:text"`
	ReceiptURL   *string         `gorm:"type:varchar(2048)"`
	Status       string          `gorm:"type:varchar(20);not null"`
	IsDeleted    bool            `gorm:"not null;default:false;index"`
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Category *categoryRow `gorm:"foreignKey:CategoryID"`
	Project  *projectRow  `gorm:"foreignKey:ProjectID"`
}

func (expenseRow) TableName() string { return "expenses" }

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (r *projectRow) BeforeCreate(_ *gorm.DB) error    { newID(&r.ID); return nil }
func (r *assignmentRow) BeforeCreate(_ *gorm.DB) error { newID(&r.ID); return nil }
func (r *allocationRow) BeforeCreate(_ *gorm.DB) error { newID(&r.ID); return nil }
func (r *milestoneRow) BeforeCreate(_ *gorm.DB) error  { newID(&r.ID); return nil }
func (r *categoryRow) BeforeCreate(_ *gorm.DB) error   { newID(&r.ID); return nil }
func (r *expenseRow) BeforeCreate(_ *gorm.DB) error    { newID(&r.ID); return nil }

// allModels lists the tables in dependency order for migration.
func allModels() []any {
	return []any{
		&categoryRow{},
		&projectRow{},
		&assignmentRow{},
		&allocationRow{},
		&milestoneRow{},
		&expenseRow{},
	}
}

// softDelete is the column set written when a row is logically removed.
func softDelete(now time.Time) map[string]any {
	return map[string]any{"is_deleted": true, "deleted_at": now}
}
