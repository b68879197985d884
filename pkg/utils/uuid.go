package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera um identificador curto alfanumérico para os registros
// persistidos, como os relatórios de insights.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
