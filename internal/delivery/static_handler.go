package delivery

import (
	"bytes"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// pages maps the fixed page routes to files in the static FS.
var pages = map[string]string{
	"/":                  "index.html",
	"/homepage.html":     "homepage.html",
	"/na.html":           "na.html",
	"/pa.html":           "pa.html",
	"/c2.css":            "c2.css",
	"/Krishnalanka.html": "Krishnalanka.html",
	"/Suryaraopet.html":  "Suryaraopet.html",
	"/Sivalayam.html":    "Sivalayam.html",
}

type StaticHandler struct {
	files fs.FS
	log   *logrus.Logger
}

func NewStaticHandler(files fs.FS, logger *logrus.Logger) *StaticHandler {
	return &StaticHandler{
		files: files,
		log:   logger,
	}
}

func (h *StaticHandler) RegisterRoutes(router gin.IRouter) {
	for route, name := range pages {
		router.GET(route, h.serve(name))
		router.HEAD(route, h.serve(name))
	}
}

func (h *StaticHandler) serve(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.serveFile(c, name) {
			h.log.Errorf("Embedded page '%s' is missing", name)
			ErrorResponse(c, http.StatusNotFound, "Not Found")
		}
	}
}

// NotFound serves any other file from the static FS for GET and HEAD, and
// answers everything else with a JSON 404.
func (h *StaticHandler) NotFound(c *gin.Context) {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		name := strings.TrimPrefix(path.Clean(c.Request.URL.Path), "/")
		if fs.ValidPath(name) && name != "." && h.serveFile(c, name) {
			return
		}
	}
	h.log.Debugf("No route or static file for %s %s", c.Request.Method, c.Request.URL.Path)
	ErrorResponse(c, http.StatusNotFound, "Not Found")
}

// serveFile writes name from the static FS as is. Unlike http.ServeFileFS it
// never redirects index.html to its directory.
func (h *StaticHandler) serveFile(c *gin.Context, name string) bool {
	f, err := h.files.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			h.log.Errorf("Failed to read static file '%s': %v", name, err)
			return false
		}
		content = bytes.NewReader(data)
	}
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), content)
	return true
}
