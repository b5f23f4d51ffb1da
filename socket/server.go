package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// Server wraps the Socket.IO server and pushes match events to connected
// clients. Clients join a room named after their own user id.
type Server struct {
	io *socketio.Server
}

// NewServer initializes the Socket.IO server and its event handlers.
func NewServer() *Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	io.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("Invalid userId in join request")
			return
		}
		log.Printf("Socket %s joined room %s\n", c.ID(), userID)
		c.Join(userID)
	})

	io.OnError("/", func(c socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", reason)
	})

	return &Server{io: io}
}

// NotifyMatch broadcasts a newMatch event to each matched user's room.
func (s *Server) NotifyMatch(matchID string, userIDs []string) {
	payload := map[string]interface{}{
		"matchId": matchID,
		"users":   userIDs,
	}
	for _, userID := range userIDs {
		s.io.BroadcastToRoom("/", userID, "newMatch", payload)
	}
}

// IO exposes the underlying server for mounting and lifecycle management.
func (s *Server) IO() *socketio.Server {
	return s.io
}
