package page

const tmplLayout = `
{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} · Algorithms</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto,sans-serif;margin:0;background:#f8fafc;color:#0f172a}
main{max-width:960px;margin:0 auto;padding:24px}
a{color:#2563eb;text-decoration:none}
a:hover{text-decoration:underline}
h1{margin:0 0 8px;font-size:28px}
.meta{display:flex;gap:8px;flex-wrap:wrap;margin-bottom:16px}
.badge{font-size:12px;padding:2px 8px;border-radius:9999px;background:#e2e8f0;color:#334155}
.badge-beginner{background:#dcfce7;color:#166534}
.badge-intermediate{background:#fef3c7;color:#92400e}
.badge-advanced{background:#fee2e2;color:#991b1b}
.tabs{display:flex;gap:4px;border-bottom:1px solid #cbd5e1;margin-bottom:16px}
.tabs a{padding:8px 12px;border-radius:6px 6px 0 0;color:#475569}
.tabs a.active{background:#fff;border:1px solid #cbd5e1;border-bottom-color:#fff;color:#0f172a;margin-bottom:-1px}
.panel{background:#fff;border:1px solid #e2e8f0;border-radius:8px;padding:16px}
pre{background:#0f172a;color:#e2e8f0;padding:12px;border-radius:6px;overflow-x:auto;font-size:13px}
.formula{font-family:ui-monospace,Menlo,monospace;background:#f1f5f9;padding:6px 10px;border-radius:4px}
.widget{display:flex;gap:16px;flex-wrap:wrap;align-items:flex-start}
.widget form{display:flex;flex-direction:column;gap:10px;min-width:220px}
.note{font-size:13px;color:#64748b;max-width:220px}
.readouts dt{font-size:12px;color:#64748b}
.readouts dd{margin:0 0 6px;font-family:ui-monospace,Menlo,monospace}
.cards{display:grid;grid-template-columns:repeat(auto-fill,minmax(260px,1fr));gap:12px}
.card{background:#fff;border:1px solid #e2e8f0;border-radius:8px;padding:16px}
</style>
</head>
<body>
<main>
{{template "content" .}}
</main>
</body>
</html>
{{end}}
`

const tmplDetail = `
{{define "content"}}
<nav><a href="{{.ListingHref}}">← All algorithms</a></nav>
<header>
  <h1>{{.Descriptor.Name}}</h1>
  <div class="meta">
    <span class="badge" data-field="category">{{.Descriptor.Category}}</span>
    <span class="badge" data-field="type">{{.Descriptor.Type}}</span>
    <span class="badge {{.Descriptor.Difficulty.Badge}}" data-field="difficulty">{{.Descriptor.Difficulty}}</span>
  </div>
</header>
<nav class="tabs">
{{range .Tabs}}  <a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
{{end}}</nav>
<section class="panel" id="panel-{{.Active}}">
{{if eq .Active "overview"}}
  <p>{{.Descriptor.Summary}}</p>
  <h3>Key characteristics</h3>
  <ul>{{range .Descriptor.Characteristics}}<li>{{.}}</li>{{end}}</ul>
{{else if eq .Active "definition"}}
  <p>{{.Descriptor.Definition}}</p>
{{else if eq .Active "formulas"}}
  <dl>{{range .Descriptor.Formulas}}
    <dt>{{.Label}}</dt><dd class="formula">{{.Expr}}</dd>{{end}}
  </dl>
{{else if eq .Active "code"}}
  <pre><code class="language-{{.Descriptor.Code.Language}}">{{.Descriptor.Code.Source}}</code></pre>
{{else if eq .Active "visualization"}}
  <div class="widget" data-widget="{{.Widget.Kind}}">
    <div class="diagram">{{.Widget.SVG}}
      <p><a href="{{.Widget.DrawingHref}}">Open drawing</a></p>
    </div>
{{if .Static}}    <p class="note">This copy shows the default state. The sliders work when the site is served live.</p>
{{else}}    <form method="get" action="{{.SelfHref}}">
      <input type="hidden" name="tab" value="visualization">
{{range .Widget.Hidden}}      <input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{end}}{{range .Widget.Controls}}{{if eq .Type "range"}}      <label>{{.Label}} <output>{{.Value}}</output>
        <input type="range" name="{{.Name}}" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{.Value}}" onchange="this.form.submit()">
      </label>
{{else if eq .Type "checkbox"}}      <label><input type="checkbox" name="{{.Name}}" value="{{.Value}}"{{if .Checked}} checked{{end}} onchange="this.form.submit()"> {{.Label}}</label>
{{else}}      <button type="submit" name="{{.Name}}" value="{{.Value}}">{{.Label}}</button>
{{end}}{{end}}      <noscript><button type="submit">Apply</button></noscript>
    </form>
{{end}}    <dl class="readouts">{{range .Widget.Readouts}}
      <dt>{{.Label}}</dt><dd>{{.Value}}</dd>{{end}}
    </dl>
  </div>
{{else if eq .Active "use-cases"}}
  <ul>{{range .Descriptor.UseCases}}<li>{{.}}</li>{{end}}</ul>
{{end}}
</section>
{{end}}
`

const tmplIndex = `
{{define "content"}}
<h1>Algorithms</h1>
<div class="cards">
{{range .Items}}  <article class="card">
    <h2><a href="{{.Href}}">{{.Name}}</a></h2>
    <div class="meta">
      <span class="badge">{{.Category}}</span>
      <span class="badge">{{.Type}}</span>
      <span class="badge {{.Difficulty.Badge}}">{{.Difficulty}}</span>
    </div>
    <p>{{.Summary}}</p>
  </article>
{{end}}</div>
{{end}}
`

const tmplNotFound = `
{{define "content"}}
<section class="panel" id="not-found">
  <h1>Algorithm not found</h1>
  {{if .ID}}<p>No algorithm is registered under <code>{{.ID}}</code>.</p>{{else}}<p>The requested page does not exist.</p>{{end}}
  <a href="{{.ListingHref}}">Back to algorithms</a>
</section>
{{end}}
`
