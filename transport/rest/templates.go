package rest

import (
	"bytes"
	"fmt"
	"html/template"
)

type templates struct {
	index *template.Template
	game  *template.Template
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Parse(baseTemplate))

	return &templates{
		index: template.Must(template.Must(base.Clone()).New("content").Parse(indexTemplate)),
		game:  template.Must(template.Must(base.Clone()).New("content").Parse(gameTemplate)),
	}
}

func renderTemplate(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer

	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}

	return buf.Bytes(), nil
}

const baseTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8"/>
<title>Tic-tac-toe</title>
<style>
.game { display: flex; gap: 2em; font-family: sans-serif; }
.board-row { display: flex; }
.square { width: 3em; height: 3em; font-size: 1.5em; font-weight: bold; margin: -1px; }
.square.winning { background: #ffd54f; }
form { display: inline; margin: 0; }
</style>
</head>
<body>{{template "content" .}}</body>
</html>`

const indexTemplate = `<h1>Tic-tac-toe</h1>
<form action="/game" method="post"><button>New game</button></form>`

const gameTemplate = `<div class="game">
  <div class="game-board">
    <div class="status">{{.Status}}</div>
    {{range .Rows}}
    <div class="board-row">
      {{range .}}
      <form action="/game/{{$.ID}}/play" method="post">
        <button class="square{{if .Winning}} winning{{end}}" name="cell" value="{{.Index}}">{{.Mark}}</button>
      </form>
      {{end}}
    </div>
    {{end}}
  </div>
  <div class="game-info">
    <form action="/game/{{.ID}}/reverse" method="post"><button>Reverse</button></form>
    <ol>
      {{range .History}}
      <li>
        {{if .Current}}<span>{{.Label}}</span>{{else}}<form action="/game/{{$.ID}}/jump" method="post"><button name="move" value="{{.Index}}">{{.Label}}</button></form>{{end}}
      </li>
      {{end}}
    </ol>
    <form action="/game" method="post"><button>New game</button></form>
  </div>
</div>`
