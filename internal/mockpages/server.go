package mockpages

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"citylegends/backend/internal/mw"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templates embed.FS

const missingFields = "All fields are required"

// NewRouter mounts the page flow over store.
func NewRouter(store *Store) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(mw.RequestLogger())

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", gin.H{"Title": "City Legends"})
	})

	r.GET("/auth", func(c *gin.Context) {
		c.HTML(http.StatusOK, "auth.html", gin.H{"Title": "Auth"})
	})

	r.POST("/auth", func(c *gin.Context) {
		email := strings.TrimSpace(c.PostForm("email"))
		password := c.PostForm("password")
		if email == "" || password == "" {
			c.HTML(http.StatusBadRequest, "auth.html", gin.H{"Title": "Auth", "Error": missingFields, "Email": email})
			return
		}
		c.Redirect(http.StatusFound, "/lobby")
	})

	r.GET("/lobby", func(c *gin.Context) {
		c.HTML(http.StatusOK, "lobby.html", gin.H{"Title": "Lobby", "Rooms": store.List()})
	})

	r.POST("/create-room", func(c *gin.Context) {
		room := store.Create()
		c.Redirect(http.StatusFound, "/room/"+room.ID)
	})

	r.GET("/room/:id", func(c *gin.Context) {
		c.HTML(http.StatusOK, "room.html", gin.H{"Title": "Room", "Room": store.Get(c.Param("id"))})
	})

	r.POST("/room/:id/join", func(c *gin.Context) {
		room := store.Ensure(c.Param("id"))
		c.Redirect(http.StatusFound, "/play/"+room.ID)
	})

	r.GET("/play/:id", func(c *gin.Context) {
		c.HTML(http.StatusOK, "play.html", gin.H{
			"Title":  "Play",
			"RoomID": c.Param("id"),
			"State":  c.DefaultQuery("state", "idle"),
		})
	})

	return r, nil
}
