package feedController

import (
	"bufio"
	"fmt"

	"lumina/store"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// SessionEvents streams session-change signals to the client as
// server-sent events. This is the server analog of the browser's cross-tab
// storage event: the payload is empty and listeners re-fetch the current
// user on every signal.
func SessionEvents(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	events, unsubscribe := store.Default.Session.Subscribe()

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer unsubscribe()

		for range events {
			if _, err := fmt.Fprint(w, "event: session-changed\ndata: {}\n\n"); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				// Client went away; stop listening
				return
			}
		}
	}))

	return nil
}
