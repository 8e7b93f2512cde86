package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"dwelloBack/internal/models"
)

const (
	readLimit          = 1 << 20
	readDeadline       = 120 * time.Second
	writeDeadline      = 5 * time.Second
	pingInterval       = 15 * time.Second
	firstHelloDeadline = 30 * time.Second
)

type directMsg struct {
	userID int
	msg    models.Message
}

type unreg struct {
	userID int
	conn   *websocket.Conn
}

type WebSocketManager struct {
	clients    map[int]*websocket.Conn
	direct     chan directMsg
	register   chan Client
	unregister chan unreg
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[int]*websocket.Conn),
		direct:     make(chan directMsg),
		register:   make(chan Client),
		unregister: make(chan unreg),
	}
}

type Client struct {
	ID     int
	Socket *websocket.Conn
}

// Run owns the clients map; all mutation happens on this goroutine.
func (ws *WebSocketManager) Run() {
	for {
		select {
		case client := <-ws.register:
			if old, ok := ws.clients[client.ID]; ok && old != nil && old != client.Socket {
				_ = old.Close()
			}
			ws.clients[client.ID] = client.Socket
			log.Printf("WS register user=%d", client.ID)

		case u := <-ws.unregister:
			if cur, ok := ws.clients[u.userID]; ok && cur == u.conn {
				_ = cur.Close()
				delete(ws.clients, u.userID)
				log.Printf("WS unregister user=%d", u.userID)
			}

		case dm := <-ws.direct:
			if conn, ok := ws.clients[dm.userID]; ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteJSON(dm.msg); err != nil {
					log.Printf("direct send error to=%d: %v", dm.userID, err)
					_ = conn.Close()
					delete(ws.clients, dm.userID)
				}
			} else {
				log.Printf("direct skip: user=%d offline", dm.userID)
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// WebSocketHandler expects the first frame to be { "userId": <int> }; after
// that every frame is a chat message persisted and relayed to its receiver.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(firstHelloDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	var hello struct {
		UserID int `json:"userId"`
	}
	if err := conn.ReadJSON(&hello); err != nil || hello.UserID == 0 {
		log.Println("invalid hello payload:", err)
		_ = writeClose(conn, websocket.ClosePolicyViolation, "hello required")
		_ = conn.Close()
		return
	}
	conn.SetReadDeadline(time.Now().Add(readDeadline))

	app.wsManager.register <- Client{ID: hello.UserID, Socket: conn}

	go pingLoop(app.wsManager, conn, hello.UserID)
	go app.readMessages(conn, hello.UserID)
}

func pingLoop(ws *WebSocketManager, conn *websocket.Conn, uid int) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			_ = writeClose(conn, websocket.CloseGoingAway, "ping error")
			ws.unregister <- unreg{userID: uid, conn: conn}
			return
		}
	}
}

func (app *application) readMessages(conn *websocket.Conn, userID int) {
	defer func() {
		app.wsManager.unregister <- unreg{userID: userID, conn: conn}
		_ = conn.Close()
	}()

	for {
		var msg models.Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Println("read json error:", err)
			_ = writeClose(conn, websocket.CloseNormalClosure, "read error")
			return
		}

		if msg.SenderID != userID {
			log.Println("reject: sender_id != authenticated userId")
			continue
		}
		if msg.ReceiverID == 0 || strings.TrimSpace(msg.Text) == "" {
			log.Println("reject: empty receiver or text")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if msg.ChatID == 0 {
			chat, err := app.chatRepo.GetOrCreateChat(ctx, msg.SenderID, msg.ReceiverID)
			if err != nil {
				cancel()
				log.Println("resolve chat error:", err)
				continue
			}
			msg.ChatID = chat.ID
		}
		saved, err := app.messageRepo.CreateMessage(ctx, msg)
		cancel()
		if err != nil {
			log.Println("save message error:", err)
			continue
		}

		app.wsManager.direct <- directMsg{userID: saved.ReceiverID, msg: saved}
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason))
}
