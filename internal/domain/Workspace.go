package domain

import "time"

type WorkspaceStatus string

const (
	WorkspaceStatusActive   WorkspaceStatus = "ACTIVE"
	WorkspaceStatusInactive WorkspaceStatus = "INACTIVE"
)

// Workspace é o tenant dono das campanhas e métricas analisadas.
type Workspace struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Status WorkspaceStatus `json:"status"`
}

// WorkspaceInsightsRecord é o cache persistido do último relatório de
// insights gerado para um workspace.
type WorkspaceInsightsRecord struct {
	ID          string          `json:"id"`
	WorkspaceID string          `json:"workspace_id"`
	Report      *InsightsReport `json:"report"`
	GeneratedAt time.Time       `json:"generated_at"`
}
