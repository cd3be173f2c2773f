package main

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/mastercactapus/rs274/gcode"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// lineResult is the reply for each G-code line sent over the socket.
type lineResult struct {
	Line   string
	Status string
	Code   int
	OK     bool
}

// ws is an interactive G-code console: each text message is dispatched
// as one block and answered with its status. A quit line closes the
// session.
func (a *api) ws(w http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Println("ERROR: upgrade:", err)
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		line := string(data)
		stat := a.ctrl.RunLine(line)
		res := lineResult{
			Line:   line,
			Status: stat.String(),
			Code:   int(stat),
			OK:     stat == gcode.StatusOK || stat == gcode.StatusNoop,
		}
		if err = conn.WriteJSON(res); err != nil {
			log.Println("ERROR: write:", err)
			return
		}
		if stat == gcode.StatusQuit {
			return
		}
	}
}
