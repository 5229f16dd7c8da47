package web

import (
	"bytes"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/mogaika/model_viewer/frame"
	"github.com/mogaika/model_viewer/viewer"
	"github.com/mogaika/model_viewer/webutils"
)

const maxUploadSize = 256 << 20

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, frame.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, viewer.ErrNotLoaded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) HandlerScene(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, s.Viewer.Scene())
}

func (s *Server) HandlerState(w http.ResponseWriter, r *http.Request) {
	if st, err := s.Viewer.State(); err != nil {
		webutils.WriteErrorCode(w, errorCode(err), err)
	} else {
		webutils.WriteJson(w, st)
	}
}

type frameRequest struct {
	Box frame.BoundingBox `json:"box"`
	// radians
	Fov float64 `json:"fov"`
}

type frameResponse struct {
	Frame     frame.CameraFrame `json:"frame"`
	Centering [3]float64        `json:"centering"`
}

func (s *Server) HandlerComputeFrame(w http.ResponseWriter, r *http.Request) {
	var req frameRequest
	if err := webutils.ReadJson(r, &req); err != nil {
		webutils.WriteErrorCode(w, http.StatusBadRequest, err)
		return
	}

	f, err := frame.ComputeFrame(req.Box, req.Fov)
	if err != nil {
		webutils.WriteErrorCode(w, errorCode(err), err)
		return
	}
	webutils.WriteJson(w, &frameResponse{
		Frame:     f,
		Centering: frame.CenteringTranslation(req.Box),
	})
}

type resizeRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) HandlerResize(w http.ResponseWriter, r *http.Request) {
	var req resizeRequest
	if err := webutils.ReadJson(r, &req); err != nil {
		webutils.WriteErrorCode(w, http.StatusBadRequest, err)
		return
	}
	if cam, err := s.Viewer.Resize(req.Width, req.Height); err != nil {
		webutils.WriteErrorCode(w, http.StatusBadRequest, err)
	} else {
		webutils.WriteJson(w, cam)
	}
}

func (s *Server) HandlerDumpModel(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	name, err := s.Viewer.ExportModel(&buf)
	if err != nil {
		webutils.WriteErrorCode(w, errorCode(err), err)
		return
	}
	webutils.WriteFile(w, &buf, name+".glb")
}

func (s *Server) HandlerUploadModel(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	fileStream, header, err := r.FormFile("data")
	if err != nil {
		webutils.WriteErrorCode(w, http.StatusBadRequest, errors.Wrapf(err, "File stream getting error"))
		return
	}
	defer fileStream.Close()

	name := r.FormValue("name")
	if name == "" && header.Filename != "" {
		name = strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	}

	st, err := s.Viewer.Upload(r.Context(), name, fileStream)
	if err != nil {
		log.Printf("[web] Upload of %q failed: %v", header.Filename, err)
		webutils.WriteErrorCode(w, http.StatusUnprocessableEntity, err)
		return
	}
	webutils.WriteJson(w, st)
}

// controlEvent mirrors the DOM mouse events the page forwards
type controlEvent struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DeltaY float64 `json:"delta_y"`
}

func (s *Server) HandlerControls(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] controls upgrade error: %v", err)
		return
	}
	defer conn.Close()

	c := s.Viewer.Controls()
	for {
		var ev controlEvent
		if err := conn.ReadJSON(&ev); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[web] controls read error: %v", err)
			}
			return
		}

		switch ev.Type {
		case "mousedown":
			c.MouseDown(ev.X, ev.Y)
		case "mousemove":
			c.MouseMove(ev.X, ev.Y)
		case "mouseup":
			c.MouseUp()
		case "wheel":
			c.Wheel(ev.DeltaY)
		case "reset":
			c.Reset()
		default:
			if err := conn.WriteJSON(map[string]string{"error": "unknown event " + ev.Type}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(c.Transform()); err != nil {
			log.Printf("[web] controls write error: %v", err)
			return
		}
	}
}

func (s *Server) HandlerStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] status upgrade error: %v", err)
		return
	}
	s.Status.Attach(conn)
}
