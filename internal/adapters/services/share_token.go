package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	svc "sharenote/internal/ports/services"
)

// shareTokenBytes - размер токена в байтах, 16 байт дают 128 бит энтропии.
const shareTokenBytes = 16

// ShareTokenHex реализует интерфейс ShareTokenGenerator
// на основе криптографического генератора случайных чисел.
type ShareTokenHex struct{}

// NewShareTokenGenerator создает новый генератор публичных токенов.
func NewShareTokenGenerator() svc.ShareTokenGenerator {
	return &ShareTokenHex{}
}

// Generate возвращает hex-представление 16 случайных байт.
func (g *ShareTokenHex) Generate() (string, error) {
	buf := make([]byte, shareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate share token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
