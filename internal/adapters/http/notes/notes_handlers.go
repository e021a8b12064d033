// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"sharenote/internal/adapters/http/dto"
	"sharenote/internal/adapters/http/middleware"
	"sharenote/internal/domain/entities"
	"sharenote/internal/ports/api"
	"sharenote/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote   = "handling create note request"
	LogHandlerListNotes    = "handling list notes request"
	LogHandlerSearchNotes  = "handling search notes request"
	LogHandlerUpdateNote   = "handling update note request"
	LogHandlerDeleteNote   = "handling delete note request"
	LogHandlerListActivity = "handling list activity request"
	LogHandlerShareNote    = "handling share note request"
	LogHandlerPublicNote   = "handling public note request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgInternal           = "internal server error"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notesService   api.NotesUseCase
	sharingService api.SharingUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notesService api.NotesUseCase, sharingService api.SharingUseCase) *Handler {
	return &Handler{
		notesService:   notesService,
		sharingService: sharingService,
	}
}

// handleError транслирует доменные ошибки в HTTP статусы. Ошибки хранилища
// отдаются наружу как непрозрачная 500 без внутренних подробностей.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrNoteNotFound):
		return sendError(ctx, fiber.StatusNotFound, entities.ErrNoteNotFound.Error())
	case errors.Is(err, entities.ErrEmptyNote), errors.Is(err, entities.ErrEmptyQuery):
		return sendError(ctx, fiber.StatusBadRequest, err.Error())
	default:
		return sendError(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}
}

// sendError отправляет JSON с описанием ошибки.
func sendError(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// identity возвращает аутентифицированную личность запроса.
// Маршруты заметок регистрируются за auth middleware, поэтому отсутствие
// личности - ошибка конфигурации, а не клиента.
func identity(ctx fiber.Ctx) (middleware.Identity, error) {
	id, ok := middleware.IdentityFromCtx(ctx)
	if !ok {
		return middleware.Identity{}, ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return id, nil
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	id, err := identity(ctx)
	if err != nil {
		return err
	}

	var req dto.NoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.notesService.Create(requestCtx, id.UserID, req.Title, req.Content)
	if err != nil {
		log.Debug(requestCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение списка заметок пользователя.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	id, err := identity(ctx)
	if err != nil {
		return err
	}

	notes, err := h.notesService.List(requestCtx, id.UserID)
	if err != nil {
		log.Debug(requestCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(notes); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// SearchNotes обрабатывает запрос на поиск заметок по подстроке.
func (h *Handler) SearchNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.SearchNotes"))
	log.Debug(requestCtx, LogHandlerSearchNotes)

	id, err := identity(ctx)
	if err != nil {
		return err
	}

	notes, err := h.notesService.Search(requestCtx, id.UserID, ctx.Query("q"))
	if err != nil {
		log.Debug(requestCtx, "failed to search notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(notes); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки.
// Чужая и несуществующая заметка дают одинаковый ответ 404.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	id, err := identity(ctx)
	if err != nil {
		return err
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	var req dto.NoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.notesService.Update(requestCtx, id.UserID, noteID, req.Title, req.Content)
	if err != nil {
		log.Debug(requestCtx, "failed to update note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	id, err := identity(ctx)
	if err != nil {
		return err
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	if err := h.notesService.Delete(requestCtx, id.UserID, noteID); err != nil {
		log.Debug(requestCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.MessageResponse{Message: "note deleted"}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListActivity обрабатывает запрос журнала активности пользователя.
func (h *Handler) ListActivity(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListActivity"))
	log.Debug(requestCtx, LogHandlerListActivity)

	id, err := identity(ctx)
	if err != nil {
		return err
	}

	entries, err := h.notesService.ListActivity(requestCtx, id.UserID)
	if err != nil {
		log.Debug(requestCtx, "failed to list activity", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(entries); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ShareNote обрабатывает запрос на выпуск публичной ссылки.
func (h *Handler) ShareNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ShareNote"))
	log.Debug(requestCtx, LogHandlerShareNote)

	id, err := identity(ctx)
	if err != nil {
		return err
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	link, err := h.sharingService.CreateShareLink(requestCtx, id.UserID, noteID)
	if err != nil {
		log.Debug(requestCtx, "failed to create share link", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.ShareLinkResponse{ShareableLink: link}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// PublicNote обрабатывает публичный запрос заметки по токену без аутентификации.
func (h *Handler) PublicNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.PublicNote"))
	log.Debug(requestCtx, LogHandlerPublicNote)

	view, err := h.sharingService.ResolvePublic(requestCtx, ctx.Params("token"))
	if err != nil {
		log.Debug(requestCtx, "failed to resolve public note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(view); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
