package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sharenote/internal/domain/entities"
	"sharenote/internal/ports/api"
	"sharenote/internal/ports/repositories"
	svc "sharenote/internal/ports/services"
	"sharenote/pkg/logger"
)

// publicPathPrefix - путь публичного доступа, по которому строится ссылка.
const publicPathPrefix = "/api/v1/notes/public/"

const (
	msgShareLinkCreated   = "share link created"
	msgResolvingToken     = "resolving public token"
	errCtxGeneratingShare = "generating share token"
	errCtxStoringShare    = "storing share token"
	errCtxResolvingShare  = "resolving share token"
)

// SharingUseCaseImpl реализует интерфейс SharingUseCase.
type SharingUseCaseImpl struct {
	noteRepo repositories.NoteRepository
	tokenGen svc.ShareTokenGenerator
	baseURL  string
}

// NewSharingUseCase создает новый экземпляр сервиса публичных ссылок.
func NewSharingUseCase(
	noteRepo repositories.NoteRepository,
	tokenGen svc.ShareTokenGenerator,
	baseURL string,
) api.SharingUseCase {
	return &SharingUseCaseImpl{
		noteRepo: noteRepo,
		tokenGen: tokenGen,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// CreateShareLink выпускает новый публичный токен для заметки и возвращает
// абсолютную ссылку. Прежний токен заметки молча перезаписывается; гонка двух
// одновременных запросов разрешается по принципу "последняя запись побеждает".
func (s *SharingUseCaseImpl) CreateShareLink(ctx context.Context, ownerID, noteID string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "SharingUseCase.CreateShareLink"), zap.String("noteID", noteID))

	token, err := s.tokenGen.Generate()
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtxGeneratingShare, err)
	}

	if err := s.noteRepo.SetShareToken(ctx, noteID, ownerID, token); err != nil {
		return "", fmt.Errorf("%s: %w", errCtxStoringShare, err)
	}

	log.Info(ctx, msgShareLinkCreated, zap.String("noteID", noteID))
	return s.baseURL + publicPathPrefix + token, nil
}

// ResolvePublic возвращает публичное представление заметки по токену.
// Неизвестный токен неотличим от несуществующей заметки.
func (s *SharingUseCaseImpl) ResolvePublic(ctx context.Context, token string) (*entities.PublicNoteView, error) {
	log := logger.Log(ctx).With(zap.String("method", "SharingUseCase.ResolvePublic"))
	log.Debug(ctx, msgResolvingToken)

	if token == "" {
		return nil, fmt.Errorf("%s: %w", errCtxResolvingShare, entities.ErrNoteNotFound)
	}

	note, err := s.noteRepo.FindByShareToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxResolvingShare, err)
	}

	return note.PublicView(), nil
}
