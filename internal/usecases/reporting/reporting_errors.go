package reporting

import "errors"

var (
	// ErrWorkspaceNotFound indica que o workspace informado não existe
	ErrWorkspaceNotFound = errors.New("workspace não encontrado")
)
