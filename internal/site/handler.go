package site

import (
	"net/http"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/site/view"
	"github.com/gin-gonic/gin"
)

const IndexTemplate = "index.html"

// PageData is handed to the index template.
type PageData struct {
	Featured
	APIBase      string
	NoticeStyles map[view.NoticeKind]string
	NoticeTTLMs  int64
	Year         int
}

type Handler struct {
	loader  *Loader
	apiBase string
	now     func() time.Time
}

func NewHandler(loader *Loader, apiBase string) *Handler {
	return &Handler{loader: loader, apiBase: apiBase, now: time.Now}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.index)
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, IndexTemplate, PageData{
		Featured:     h.loader.Load(c.Request.Context()),
		APIBase:      h.apiBase,
		NoticeStyles: view.NoticeStyles(),
		NoticeTTLMs:  view.NoticeTTL.Milliseconds(),
		Year:         h.now().Year(),
	})
}
