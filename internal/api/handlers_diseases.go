package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/terraincognita07/plantdoc/internal/plantdoctor"
)

type diseaseSummary struct {
	Slug  string `json:"slug"`
	Class string `json:"class"`
}

func (handler *Handler) ListDiseases(c *fiber.Ctx) error {
	summaries := lo.Map(handler.knowledge.Entries(), func(entry plantdoctor.DiseaseEntry, _ int) diseaseSummary {
		return diseaseSummary{Slug: entry.Slug(), Class: entry.Class}
	})
	return c.JSON(fiber.Map{"diseases": summaries})
}

func (handler *Handler) GetDisease(c *fiber.Ctx) error {
	entry, ok := handler.knowledge.FindBySlug(c.Params("slug"))
	if !ok {
		return handler.localizedError(c, fiber.StatusNotFound, "disease.error.not_found")
	}
	return c.JSON(fiber.Map{
		"slug":        entry.Slug(),
		"disease":     entry,
		"description": handler.knowledge.DescribeIn(c.UserContext(), entry, currentLanguage(c)),
	})
}
