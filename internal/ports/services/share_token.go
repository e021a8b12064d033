package services

// ShareTokenGenerator определяет интерфейс генерации публичных токенов.
type ShareTokenGenerator interface {
	// Generate возвращает криптографически случайный токен
	// с энтропией не менее 128 бит.
	Generate() (string, error)
}
