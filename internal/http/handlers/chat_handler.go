package handlers

import (
	applog "balcao/internal/log"
	"balcao/internal/services"
	"balcao/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// AnonUser is the fallback identity for sessionless websocket clients
// when anonymous posting is enabled.
const AnonUser = "Anônimo"

type ChatHandler struct {
	Chat *services.ChatService
	Auth *services.AuthService

	// AllowAnon admits sessionless websocket clients under AnonUser.
	AllowAnon bool
}

// GET /chat
func (h *ChatHandler) Room(c *fiber.Ctx) error {
	msgs, err := h.Chat.History()
	if err != nil {
		applog.Error(c, "chat.history.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Não foi possível carregar o chat."})
	}
	return render(c, "chat", fiber.Map{"Mensagens": msgs})
}

// Upgrade guards GET /ws: it resolves the chat identity before the
// connection leaves HTTP land, since websocket handlers cannot set
// cookies or redirect anymore.
func (h *ChatHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	username := AnonUser
	if sid := c.Cookies("sid"); sid != "" {
		if u, err := h.Auth.CurrentUser(sid); err == nil && u != nil {
			username = u.Username
		}
	}
	if username == AnonUser && !h.AllowAnon {
		applog.Security(c, "chat.ws.denied", nil)
		return c.Status(fiber.StatusForbidden).SendString("Acesso negado!")
	}
	c.Locals("chat_user", username)
	return c.Next()
}

// WS wraps Socket as a route handler.
func (h *ChatHandler) WS() fiber.Handler { return websocket.New(h.Socket) }

// Socket is the websocket leg of GET /ws. Each inbound text frame is
// persisted and broadcast; each hub broadcast goes out as one frame.
func (h *ChatHandler) Socket(conn *websocket.Conn) {
	username, _ := conn.Locals("chat_user").(string)
	if username == "" {
		username = AnonUser
	}

	id, feed := h.Chat.Hub.Subscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range feed {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
				return
			}
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			break
		}
		text, ok := validate.MessageText(string(payload))
		if !ok {
			continue
		}
		if err := h.Chat.Post(username, text); err != nil {
			applog.Error(nil, "chat.post.fail", err, map[string]any{"username": username})
		}
	}

	// Closing the feed stops the writer goroutine.
	h.Chat.Hub.Unsubscribe(id)
	<-done
}
