package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ppc-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

const workspacesTable = "workspaces"

type WorkspaceRepository interface {
	GetByID(workspaceID string) (*domain.Workspace, error)
	ListWorkspaces() ([]*domain.Workspace, error)
	ListActiveWorkspaces() ([]*domain.Workspace, error)
}

type workspaceRepository struct {
	conn postgres.Queryer
}

func NewWorkspaceRepository(conn *postgres.Connection) WorkspaceRepository {
	return &workspaceRepository{
		conn: conn,
	}
}

func (r *workspaceRepository) GetByID(workspaceID string) (*domain.Workspace, error) {
	query, args, err := squirrel.
		Select("id", "name", "status").
		From(workspacesTable).
		Where(squirrel.Eq{"id": workspaceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	workspace := &domain.Workspace{}
	err = r.conn.QueryRow(query, args...).Scan(&workspace.ID, &workspace.Name, &workspace.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear workspace: %w", err)
	}

	return workspace, nil
}

func (r *workspaceRepository) ListWorkspaces() ([]*domain.Workspace, error) {
	return r.listByFilter(nil)
}

func (r *workspaceRepository) ListActiveWorkspaces() ([]*domain.Workspace, error) {
	return r.listByFilter(squirrel.Eq{"status": domain.WorkspaceStatusActive})
}

func (r *workspaceRepository) listByFilter(filter interface{}) ([]*domain.Workspace, error) {
	builder := squirrel.
		Select("id", "name", "status").
		From(workspacesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	workspaces := make([]*domain.Workspace, 0)
	for rows.Next() {
		workspace := &domain.Workspace{}
		if err := rows.Scan(&workspace.ID, &workspace.Name, &workspace.Status); err != nil {
			return nil, fmt.Errorf("erro ao escanear workspace: %w", err)
		}
		workspaces = append(workspaces, workspace)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return workspaces, nil
}
