package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// GenerateReceiptNumber gera o número do comprovante (ex: V-8F2K1Q)
func GenerateReceiptNumber() (string, error) {
	id, err := gonanoid.Generate("ABCDEFGHJKLMNPQRSTUVWXYZ23456789", 6)
	if err != nil {
		return "", err
	}
	return "V-" + id, nil
}
