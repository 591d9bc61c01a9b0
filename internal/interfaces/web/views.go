package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/hounsa/agrisuivi/internal/domain/entity"
)

//go:embed views
var viewsFS embed.FS

// NewViewEngine construit le moteur de templates à partir des vues embarquées.
// Les templates voyagent dans le binaire : pas de chemin relatif fragile au déploiement.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("vues embarquées introuvables: " + err.Error())
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("zoneTypes", func() []string { return entity.ZoneTypes })
	// Sérialise les séries Labels/Data des graphiques pour Chart.js.
	engine.AddFunc("json", func(v any) template.JS {
		b, err := json.Marshal(v)
		if err != nil {
			return template.JS("null")
		}
		return template.JS(b)
	})
	return engine
}

// render rend une vue dans le layout commun en injectant l'utilisateur courant.
func render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["User"] = CurrentUser(c)
	return c.Render(name, data, "layouts/main")
}
