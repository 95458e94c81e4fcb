package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del pipeline de proyecto.
const (
	ProjectStatusDraft     = "draft"
	ProjectStatusActive    = "active"
	ProjectStatusPaused    = "paused"
	ProjectStatusDone      = "done"
	ProjectStatusCancelled = "cancelled"
)

// Project trabajo contratado por una cuenta cliente.
type Project struct {
	ID        string
	AccountID string
	Name      string
	Summary   string
	Status    string // ver constantes ProjectStatus*
	Budget    decimal.Decimal
	StartDate *time.Time // nil = sin fecha comprometida
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Prioridades y estados de tarea.
const (
	TaskStatusTodo  = "todo"
	TaskStatusDoing = "doing"
	TaskStatusDone  = "done"

	TaskPriorityLow    = "low"
	TaskPriorityNormal = "normal"
	TaskPriorityHigh   = "high"
)

// Task unidad de trabajo dentro de un proyecto. AssigneeID puede referir a
// un usuario interno o a un contacto de proveedor (vía su usuario vendor).
type Task struct {
	ID         string
	ProjectID  string
	Title      string
	Detail     string
	Status     string // todo, doing, done
	Priority   string // low, normal, high
	AssigneeID string
	DueDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
