package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/prodbysky/pkombi"
	"github.com/prodbysky/pkombi/calc"
)

//go:embed static templates
var embeddedFS embed.FS

// Grammar is one selectable demo parser in the playground.
type Grammar struct {
	Name        string
	Description string
	run         func(input string) Outcome
}

// Outcome is the rendered result of running a grammar against an input.
// Ran distinguishes "no parse yet" from a parse that failed.
type Outcome struct {
	Ran       bool
	Matched   bool
	Value     string
	Pos       int
	Consumed  string
	Remaining string
	Reason    string
}

type Server struct {
	grammars  []Grammar
	templates *template.Template
	mux       *http.ServeMux
}

func NewServer() (*Server, error) {
	funcMap := template.FuncMap{
		"caret": func(pos int) string {
			return strings.Repeat(" ", pos) + "^"
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(embeddedFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		grammars:  demoGrammars(),
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	s.mux.Handle("GET /static/", http.FileServer(http.FS(embeddedFS)))
	s.mux.HandleFunc("POST /run", s.handleRun)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
	}
}

type pageData struct {
	Grammars []Grammar
	Selected string
	Source   string
	Outcome  Outcome
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", pageData{
		Grammars: s.grammars,
		Selected: s.grammars[0].Name,
	})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
		return
	}

	name := r.FormValue("grammar")
	source := r.FormValue("input")

	var grammar *Grammar
	for i := range s.grammars {
		if s.grammars[i].Name == name {
			grammar = &s.grammars[i]
			break
		}
	}
	if grammar == nil {
		http.Error(w, "unknown grammar: "+name, http.StatusBadRequest)
		return
	}

	s.render(w, "index.html", pageData{
		Grammars: s.grammars,
		Selected: grammar.Name,
		Source:   source,
		Outcome:  grammar.run(source),
	})
}

// runGrammar runs p against input and flattens the result for rendering.
func runGrammar[T any](p pkombi.Parser[T], input string) Outcome {
	res := pkombi.Run(p, input)
	if !res.Matched() {
		f := res.Failure()
		return Outcome{
			Ran:    true,
			Pos:    f.At.Pos(),
			Reason: f.Error(),
		}
	}
	return Outcome{
		Ran:       true,
		Matched:   true,
		Value:     fmt.Sprintf("%v", res.Value()),
		Pos:       res.Next().Pos(),
		Consumed:  input[:res.Next().Pos()],
		Remaining: res.Next().Rest(),
	}
}

func demoGrammars() []Grammar {
	digits := pkombi.Many1(pkombi.Digit())

	number := pkombi.Map(pkombi.Many1(pkombi.Digit()), func(ds []int) int {
		n := 0
		for _, d := range ds {
			n = n*10 + d
		}
		return n
	})

	return []Grammar{
		{
			Name:        "digits",
			Description: "one or more digits, as a sequence of values",
			run: func(input string) Outcome {
				return runGrammar(digits, input)
			},
		},
		{
			Name:        "number",
			Description: "one or more digits, folded into an integer",
			run: func(input string) Outcome {
				return runGrammar(number, input)
			},
		},
		{
			Name:        "calc",
			Description: "arithmetic expression with + - * / and parentheses",
			run: func(input string) Outcome {
				return runGrammar(calc.Expr(), input)
			},
		},
	}
}
