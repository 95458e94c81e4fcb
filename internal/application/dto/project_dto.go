package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectRequest alta/edición de proyecto.
type ProjectRequest struct {
	AccountID string          `json:"account_id"`
	Name      string          `json:"name"`
	Summary   string          `json:"summary"`
	Status    string          `json:"status"`
	Budget    decimal.Decimal `json:"budget"`
	StartDate *time.Time      `json:"start_date,omitempty"`
	DueDate   *time.Time      `json:"due_date,omitempty"`
}

// ProjectResponse proyección pública del proyecto.
type ProjectResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Name      string          `json:"name"`
	Summary   string          `json:"summary"`
	Status    string          `json:"status"`
	Budget    decimal.Decimal `json:"budget"`
	StartDate *time.Time      `json:"start_date,omitempty"`
	DueDate   *time.Time      `json:"due_date,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TaskRequest alta/edición de tarea.
type TaskRequest struct {
	ProjectID  string     `json:"project_id"`
	Title      string     `json:"title"`
	Detail     string     `json:"detail"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	AssigneeID string     `json:"assignee_id"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

// TaskResponse proyección pública de la tarea.
type TaskResponse struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	Title      string     `json:"title"`
	Detail     string     `json:"detail"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	AssigneeID string     `json:"assignee_id"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
