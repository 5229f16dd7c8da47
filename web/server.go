package web

import (
	"log"
	"net/http"
	"os"
	"path"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/mogaika/model_viewer/status"
	"github.com/mogaika/model_viewer/viewer"
)

type Server struct {
	Viewer    *viewer.Viewer
	Status    *status.Hub
	WebPath   string
	ModelsDir string
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/json/scene", s.HandlerScene).Methods("GET")
	r.HandleFunc("/json/state", s.HandlerState).Methods("GET")
	r.HandleFunc("/json/frame", s.HandlerComputeFrame).Methods("POST")
	r.HandleFunc("/json/resize", s.HandlerResize).Methods("POST")
	r.HandleFunc("/dump/model", s.HandlerDumpModel).Methods("GET")
	r.HandleFunc("/upload/model", s.HandlerUploadModel).Methods("POST")
	r.HandleFunc("/ws/controls", s.HandlerControls)
	r.HandleFunc("/ws/status", s.HandlerStatus)

	r.PathPrefix("/models/").Handler(http.StripPrefix("/models/", http.FileServer(http.Dir(s.ModelsDir))))
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(path.Join(s.WebPath, "data"))))
	return r
}

func StartServer(addr string, s *Server) error {
	h := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(s.Router())
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
