package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// ArenaDirectory is the folder of saved arena XML files the browser
// serves from.
var ArenaDirectory string

func Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/json/arena", HandlerListArenas)
	r.HandleFunc("/json/arena/{file}", HandlerArenaJson)
	r.HandleFunc("/text/arena/{file}", HandlerArenaText)
	r.HandleFunc("/dump/arena/{file}", HandlerArenaDump)
	return r
}

// StartServer runs the arena browser: list saved arenas, inspect a
// parsed document as JSON or spew text, download the raw XML.
func StartServer(addr string, arenaDir string) error {
	ArenaDirectory = arenaDir

	r := Router()

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting arena browser %v (arenas from %q)", addr, arenaDir)

	return http.ListenAndServe(addr, h)
}
