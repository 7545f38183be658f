package api

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/code-indenter/backend/internal/config"
	"github.com/code-indenter/backend/internal/detect"
	"github.com/code-indenter/backend/internal/format"
	"github.com/gofiber/fiber/v3"
)

type Handler struct {
	cfg        *config.Config
	detector   *detect.Detector
	dispatcher *format.Dispatcher
	logger     *slog.Logger
}

func NewHandler(cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:        cfg,
		detector:   detect.NewDetector(detect.NewEnryGuesser(), logger),
		dispatcher: format.NewDispatcher(cfg, logger),
		logger:     logger,
	}
}

type detectRequest struct {
	Code string `json:"code"`
}

type indentRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// DetectLanguage classifies a code snippet
func (h *Handler) DetectLanguage(c fiber.Ctx) error {
	var req detectRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	result := h.detector.Detect(req.Code)
	h.logger.Info("language detected",
		slog.String("language", string(result.Language)),
		slog.String("confidence", string(result.Confidence)),
		slog.String("detected_by", result.DetectedBy))

	return c.JSON(result)
}

// IndentCode reformats a code snippet for a given language
func (h *Handler) IndentCode(c fiber.Ctx) error {
	var req indentRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		return c.Status(400).JSON(fiber.Map{"error": "no code provided"})
	}
	if strings.TrimSpace(req.Language) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "no language specified"})
	}

	tag, _ := detect.Canonical(req.Language)
	h.logger.Info("formatting code",
		slog.String("language", string(tag)),
		slog.Int("bytes", len(code)))

	formatted, err := h.dispatcher.Format(c.Context(), code, tag)
	if err != nil {
		if errors.Is(err, format.ErrUnsupportedLanguage) {
			return c.Status(400).JSON(fiber.Map{
				"error": "language '" + string(tag) + "' is not supported for formatting, supported languages: " + supportedList(),
			})
		}
		h.logger.Error("formatting failed", slog.String("error", err.Error()))
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(fiber.Map{"indented_code": formatted})
}

func supportedList() string {
	names := make([]string, len(format.SupportedTags))
	for i, tag := range format.SupportedTags {
		names[i] = string(tag)
	}
	return strings.Join(names, ", ")
}
