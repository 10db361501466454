package cookie

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/roam-rides/site/sheet"
)

func GetLastView(c *fiber.Ctx) string {
	view := c.Cookies("last_view", "list") // default to list
	if view != "list" && view != "map" {
		return "list"
	}
	return view
}

func SetLastView(c *fiber.Ctx, view string) {
	c.Cookie(&fiber.Cookie{
		Name:     "last_view",
		Value:    view,
		MaxAge:   30 * 24 * 60 * 60, // 30 days
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: "Strict",
	})
}

func GetSheetState(c *fiber.Ctx) sheet.State {
	s := sheet.State(c.Cookies("sheet_state", string(sheet.Peek)))
	if !s.Valid() {
		return sheet.Peek
	}
	return s
}

func SetSheetState(c *fiber.Ctx, s sheet.State) {
	c.Cookie(&fiber.Cookie{
		Name:     "sheet_state",
		Value:    string(s),
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: "Strict",
	})
}

// SessionID returns the search session id, minting one when absent.
func SessionID(c *fiber.Ctx) string {
	if sid := c.Cookies("search_session"); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     "search_session",
		Value:    sid,
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: "Strict",
	})
	return sid
}
