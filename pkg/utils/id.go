package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID gera o identificador de uma execução do agendador
func GenerateRunID() (string, error) {
	id, err := gonanoid.Generate(characters, 10)
	if err != nil {
		return "", err
	}
	return "run_" + id, nil
}
