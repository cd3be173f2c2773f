package main

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"

	"github.com/mastercactapus/rs274/controller"
)

type api struct {
	http.Handler
	ctrl    *controller.Controller
	dataDir string
	sse     *sse.Server
}

func newAPI(ctrl *controller.Controller, dir string) *api {
	r := mux.NewRouter()

	a := &api{
		Handler: r,
		ctrl:    ctrl,
		dataDir: dir,
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(ioutil.Discard, "", 0),
		}),
	}

	fs := http.FileServer(http.Dir(dir))
	r.PathPrefix("/data/").Handler(http.StripPrefix("/data", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case "GET":
			fs.ServeHTTP(w, req)
		case "PUT":
			a.putFile(w, req)
		case "DELETE":
			a.deleteFile(w, req)
		default:
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}
	})))

	r.HandleFunc("/api/run", a.run).Methods("POST")
	r.HandleFunc("/api/state", a.state).Methods("GET")
	r.HandleFunc("/ws", a.ws)
	r.PathPrefix("/events/").Handler(a.sse)

	go a.pumpEvents()

	return a
}

func (a *api) pumpEvents() {
	for {
		select {
		case state := <-a.ctrl.State():
			data, err := json.Marshal(state)
			if err != nil {
				log.Printf("ERROR: marshal json: %+v", err)
				continue
			}
			a.sse.SendMessage("/events/state", sse.SimpleMessage(string(data)))
		case msg := <-a.ctrl.Messages():
			a.sse.SendMessage("/events/message", sse.SimpleMessage(msg))
		}
	}
}

func (a *api) run(w http.ResponseWriter, req *http.Request) {
	err := a.ctrl.Run(req.Body)
	if err != nil {
		log.Printf("ERROR: run: %+v", err)
		http.Error(w, err.Error(), 500)
		return
	}
}

func (a *api) state(w http.ResponseWriter, req *http.Request) {
	err := json.NewEncoder(w).Encode(a.ctrl.CurrentState())
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

func safePath(base, name string) (bool, string) {
	if filepath.Separator != '/' && strings.ContainsRune(name, filepath.Separator) {
		log.Println("invalid path '" + name + "'")
		return false, ""
	}
	dir := base
	if dir == "" {
		dir = "."
	}
	fullName := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+name)))
	return true, fullName
}

func (a *api) putFile(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dataDir, req.URL.Path)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	os.MkdirAll(filepath.Dir(name), 0755)
	f, err := os.Create(name)
	if err != nil {
		log.Printf("ERROR: create '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
	defer f.Close()
	_, err = io.Copy(f, req.Body)
	if err != nil {
		log.Printf("ERROR: write '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
}

func (a *api) deleteFile(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dataDir, req.URL.Path)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	err := os.Remove(name)
	if err != nil {
		log.Printf("ERROR: remove '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
}
