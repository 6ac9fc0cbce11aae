package fest

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"github.com/evantbyrne/beerfest"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"score": func(f float64) string {
		return humanize.FtoaWithDigits(f, 1)
	},
}

type Handlers struct {
	Store *ItemStore

	pages beerfest.HtmlRenderer
}

type listPage struct {
	Anonymous bool
	Items     []*Item
}

type itemPage struct {
	Form    template.HTML
	Item    *Item
	Summary VoteSummary
}

// Register adds the voting routes to app. The app must attach sessions before these
// handlers run.
func Register(app *beerfest.App, store *ItemStore) *Handlers {
	h := &Handlers{
		Store: store,
		pages: beerfest.Html(templateFS, templateFuncs, "templates/*.html"),
	}
	app.Get("/{$}", h.List)
	app.RouteMethods("/items/{slug}", []string{http.MethodGet, http.MethodHead, http.MethodPost}, h.Item)
	app.Get("/items/{slug}/votes.json", h.VotesJson)
	app.Post("/anonymous", h.ToggleAnonymous)
	return h
}

// Item shows the vote form for GET and casts the session's vote for POST.
func (h *Handlers) Item(s *beerfest.Strand) error {
	session, err := requireSession(s)
	if err != nil {
		return err
	}
	r := s.Request()
	item, err := h.Store.FindBySlug(s.Context, r.PathValue("slug"))
	if err != nil {
		return err
	}
	item.UseSession(session)
	if err := item.Votes().Load(s.Context); err != nil {
		return err
	}

	form := VoteForm(item, session)
	if r.Method != http.MethodPost {
		return s.Render(h.itemComponent(item, form))
	}

	if !form.Validate(r) {
		return s.RenderWithStatus(h.itemComponent(item, form), http.StatusBadRequest)
	}
	if form.Element("item").Value() != item.Slug() {
		form.Error = beerfest.ErrorBadRequest{Message: "The vote does not match this item."}
		return s.RenderWithStatus(h.itemComponent(item, form), http.StatusBadRequest)
	}
	score, _ := strconv.Atoi(form.Element("score").Value())
	if err := item.Votes().Cast(s.Context, session.ID(), score); err != nil {
		return err
	}
	s.Logger.Info("vote cast", "item", item.ID(), "score", score)
	return s.Redirect("/items/" + item.Slug())
}

func (h *Handlers) List(s *beerfest.Strand) error {
	session, err := requireSession(s)
	if err != nil {
		return err
	}
	items, err := h.Store.List(s.Context)
	if err != nil {
		return err
	}
	for _, item := range items {
		item.UseSession(session)
		if err := item.Votes().Load(s.Context); err != nil {
			return err
		}
	}
	return s.Render(h.pages.Component("list", listPage{
		Anonymous: session.Bool(ModeAnonymous),
		Items:     items,
	}))
}

func (h *Handlers) ToggleAnonymous(s *beerfest.Strand) error {
	session, err := requireSession(s)
	if err != nil {
		return err
	}
	session.Set(ModeAnonymous, !session.Bool(ModeAnonymous))
	return s.Redirect("/")
}

func (h *Handlers) VotesJson(s *beerfest.Strand) error {
	session, err := requireSession(s)
	if err != nil {
		return err
	}
	item, err := h.Store.FindBySlug(s.Context, s.Request().PathValue("slug"))
	if err != nil {
		return err
	}
	item.UseSession(session)
	if err := item.Votes().Load(s.Context); err != nil {
		return err
	}
	return s.WriteJson(item.Votes().Summary())
}

func (h *Handlers) itemComponent(item *Item, form *beerfest.Form) templ.Component {
	return h.pages.Component("item", itemPage{
		Form:    template.HTML(form.HTML()),
		Item:    item,
		Summary: item.Votes().Summary(),
	})
}

func requireSession(s *beerfest.Strand) (*beerfest.Session, error) {
	if s.Session == nil {
		return nil, beerfest.ErrorUnauthorized{Message: "A session is required."}
	}
	return s.Session, nil
}
