package utils

import "time"

// ParseDate interpreta datas no formato ISO (2006-01-02), o formato usado
// nas colunas de data das métricas diárias. String vazia retorna a data
// zero, sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		parsed, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = parsed
	}

	return &date, nil
}
