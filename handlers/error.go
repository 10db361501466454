package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/roam-rides/site/ui"
)

// CustomErrorHandler renders unexpected errors as a styled error page.
// Search-path failures never reach here: they degrade to inline banners.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	ctx.Status(code)
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return ui.ErrorPage(code, err.Error()).Render(ctx.Response().BodyWriter())
}
