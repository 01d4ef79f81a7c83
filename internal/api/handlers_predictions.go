package api

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/plantdoc/internal/classifier"
	"github.com/terraincognita07/plantdoc/internal/services"
)

func (handler *Handler) Predict(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return handler.localizedError(c, fiber.StatusBadRequest, "prediction.error.unsupported_image")
	}
	if fileHeader.Size > maxImageUploadBytes {
		return handler.localizedError(c, fiber.StatusRequestEntityTooLarge, "prediction.error.unsupported_image")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return handler.localizedError(c, fiber.StatusBadRequest, "prediction.error.unsupported_image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
	if err != nil {
		return handler.localizedError(c, fiber.StatusBadRequest, "prediction.error.unsupported_image")
	}

	upload := services.Upload{Filename: fileHeader.Filename, Data: data}
	result, err := handler.predictions.Predict(c.UserContext(), currentUserID(c), upload, currentLanguage(c))
	switch {
	case errors.Is(err, services.ErrUnsupportedImage):
		return handler.localizedError(c, fiber.StatusBadRequest, "prediction.error.unsupported_image")
	case errors.Is(err, classifier.ErrIndexOutOfRange):
		return handler.localizedError(c, fiber.StatusBadGateway, "prediction.error.out_of_range")
	case errors.Is(err, classifier.ErrClassifierUnavailable):
		log.Printf("predict: %v", err)
		return handler.localizedError(c, fiber.StatusBadGateway, "prediction.error.classifier")
	case err != nil:
		log.Printf("predict: %v", err)
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func (handler *Handler) PredictionHistory(c *fiber.Ctx) error {
	predictions, err := handler.predictions.History(currentUserID(c))
	if err != nil {
		log.Printf("prediction history: %v", err)
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}
	return c.JSON(fiber.Map{"predictions": predictions})
}
