package markup

import "html/template"

const templateSource = `
{{define "text"}}<span class="{{.Class}}">{{.Content}}</span>{{end}}

{{define "heading"}}<header class="{{.Class}}"><div class="tm-heading__title" role="heading" aria-level="{{.Level}}">{{.Text}}</div>{{if .Subtitle}}<p class="tm-heading__subtitle">{{.Subtitle}}</p>{{end}}</header>{{end}}

{{define "divider"}}{{if .Label}}<div class="{{.Class}}" role="separator" aria-orientation="{{.Orientation}}"><span class="tm-divider__label">{{.Label}}</span></div>{{else}}<hr class="{{.Class}}" aria-orientation="{{.Orientation}}">{{end}}{{end}}

{{define "badge"}}<span class="{{.Class}}">[{{.Text}}]</span>{{end}}

{{define "button"}}<button type="button" class="{{.Class}}"{{if .Disabled}} disabled aria-disabled="true"{{end}}>[ {{.Label}} ]</button>{{end}}

{{define "checkbox"}}<label class="{{.Class}}"><input type="checkbox" class="tm-checkbox__input"{{if .Checked}} checked{{end}}{{if .Disabled}} disabled{{end}}><span class="tm-checkbox__glyph" aria-hidden="true">{{.Glyph}}</span>{{if .Label}} <span class="tm-checkbox__label">{{.Label}}</span>{{end}}</label>{{end}}

{{define "radio"}}<label class="{{.Class}}"><input type="radio" class="tm-radio__input"{{if .Name}} name="{{.Name}}"{{end}}{{if .Selected}} checked{{end}}{{if .Disabled}} disabled{{end}}><span class="tm-radio__glyph" aria-hidden="true">{{.Glyph}}</span>{{if .Label}} <span class="tm-radio__label">{{.Label}}</span>{{end}}</label>{{end}}

{{define "radio-group"}}<div class="{{.Class}}" role="radiogroup">{{range .Items}}{{.}}{{end}}</div>{{end}}

{{define "toggle"}}<button type="button" class="{{.Class}}" role="switch" aria-checked="{{.On}}"{{if .Disabled}} disabled aria-disabled="true"{{end}}><span class="tm-toggle__track" aria-hidden="true">{{.Glyph}}</span> <span class="tm-toggle__state">{{if .On}}ON{{else}}OFF{{end}}</span>{{if .Label}} <span class="tm-toggle__label">{{.Label}}</span>{{end}}</button>{{end}}

{{define "input"}}<label class="tm-field">{{if .Label}}<span class="tm-field__label">{{.Label}}</span>{{end}}<span class="{{.Class}}"><span class="tm-input__prompt" aria-hidden="true">&gt; </span><input type="text" class="tm-input__control" value="{{.Value}}"{{if .Placeholder}} placeholder="{{.Placeholder}}"{{end}}{{if .Invalid}} aria-invalid="true"{{end}}{{if .Focused}} autofocus{{end}}></span></label>{{end}}

{{define "progress"}}<div class="{{.Class}}" role="progressbar" aria-valuemin="0" aria-valuemax="100" aria-valuenow="{{.Value}}"><span class="tm-progress__bar" aria-hidden="true"><span class="tm-progress__fill">{{.Filled}}</span><span class="tm-progress__empty">{{.Empty}}</span></span>{{if .ShowPercent}}<span class="tm-progress__label">{{.Label}}</span>{{end}}</div>{{end}}

{{define "spinner"}}<span class="{{.Class}}" role="status" aria-live="polite"><span class="tm-spinner__glyph" aria-hidden="true">{{.Glyph}}</span>{{if .Label}} <span class="tm-spinner__label">{{.Label}}</span>{{else}}<span class="tm-sr-only">Loading</span>{{end}}</span>{{end}}

{{define "alert"}}<div class="{{.Class}}" role="{{.Role}}"><p class="tm-alert__title"><span class="tm-alert__icon" aria-hidden="true">{{.Icon}}</span> {{.Title}}</p>{{if .Message}}<p class="tm-alert__message">{{.Message}}</p>{{end}}</div>{{end}}

{{define "card"}}<section class="{{.Class}}">{{if .Title}}<h2 class="tm-card__title">{{.Title}}</h2>{{end}}<div class="tm-card__body">{{range .Items}}{{.}}{{end}}</div>{{if .Footer}}<footer class="tm-card__footer">{{.Footer}}</footer>{{end}}</section>{{end}}

{{define "stack"}}<div class="{{.Class}}">{{range .Items}}{{.}}{{end}}</div>{{end}}

{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body class="tm-page">
{{.Body}}
</body>
</html>
{{end}}
`

var templates = template.Must(template.New("markup").Parse(templateSource))
