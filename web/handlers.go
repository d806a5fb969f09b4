package web

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/strikeball/strikeball/arena"
	"github.com/strikeball/strikeball/utils"
)

func HandlerListArenas(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(ArenaDirectory)
	if err != nil {
		writeError(w, err)
		return
	}
	files := make([]string, 0)
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	writeJson(w, files)
}

func HandlerArenaJson(w http.ResponseWriter, r *http.Request) {
	doc, err := loadRequested(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, newArenaView(doc))
}

func HandlerArenaText(w http.ResponseWriter, r *http.Request) {
	doc, err := loadRequested(r)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, utils.SDump(doc))
}

func HandlerArenaDump(w http.ResponseWriter, r *http.Request) {
	name, err := requestedFile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	f, err := os.Open(filepath.Join(ArenaDirectory, name))
	if err != nil {
		writeError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+"\"")
	io.Copy(w, f)
}

func loadRequested(r *http.Request) (*arena.Arena, error) {
	name, err := requestedFile(r)
	if err != nil {
		return nil, err
	}
	return arena.Load(filepath.Join(ArenaDirectory, name))
}

func requestedFile(r *http.Request) (string, error) {
	name := mux.Vars(r)["file"]
	if name != filepath.Base(name) || name == "." || name == "" {
		return "", errors.Errorf("Invalid arena file name %q", name)
	}
	return name, nil
}

func writeJson(w http.ResponseWriter, data interface{}) {
	res, err := json.Marshal(data)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(res)
}

func writeError(w http.ResponseWriter, err error) {
	log.Printf("[web] handler error: %v", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
