package html

// RouteReportTemplate renders the inventory as one table per API section.
// Data: RouteReportData.
const RouteReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>API Routes - {{.ReportDate}}</title>
<style>
:root { --ink: #1f2933; --muted: #7b8794; --line: #e4e7eb; --accent: #0b7285; }
body { margin: 0; font: 14px/1.5 system-ui, sans-serif; color: var(--ink); background: #fafbfc; }
main { max-width: 1100px; margin: 0 auto; padding: 24px; }
h1 { font-size: 22px; margin: 0; }
h1 small { font-weight: normal; color: var(--muted); font-size: 13px; margin-left: 8px; }
.totals { display: flex; flex-wrap: wrap; gap: 8px; margin: 16px 0 24px; }
.totals span { background: #fff; border: 1px solid var(--line); border-radius: 4px; padding: 4px 10px; }
.totals b { color: var(--accent); }
nav a { color: var(--accent); margin-right: 12px; text-decoration: none; }
section { margin-top: 28px; }
section h2 { font-size: 16px; border-bottom: 2px solid var(--accent); padding-bottom: 4px; }
table { width: 100%; border-collapse: collapse; background: #fff; }
th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid var(--line); vertical-align: top; }
th { font-size: 12px; text-transform: uppercase; color: var(--muted); }
code { font-family: ui-monospace, Menlo, monospace; font-size: 13px; }
.method-badge { display: inline-block; min-width: 44px; text-align: center; border-radius: 3px; padding: 0 6px; color: #fff; font-weight: 600; font-size: 12px; }
.method-get { background: #1c7ed6; }
.method-post { background: #2f9e44; }
.method-put { background: #e8590c; }
.method-delete { background: #c92a2a; }
.method-patch { background: #0ca678; }
.method-default { background: #868e96; }
.auth-bearer { color: #c92a2a; font-weight: 600; }
.auth-public { color: var(--muted); }
details { margin-top: 4px; }
summary { cursor: pointer; color: var(--accent); font-size: 12px; }
pre { background: var(--ink); color: #f1f3f5; padding: 8px 10px; border-radius: 4px; overflow-x: auto; margin: 4px 0 0; }
.empty { color: var(--muted); padding: 48px 0; text-align: center; }
footer { color: var(--muted); font-size: 12px; margin-top: 32px; }
</style>
</head>
<body>
<main>
<h1>API Routes<small>{{.APIRoot}} · {{.ReportDate}}</small></h1>

<div class="totals">
  <span>Routes <b>{{.Summary.TotalRoutes}}</b></span>
  <span>Handlers <b>{{.Summary.TotalHandlers}}</b></span>
  <span>GET <b>{{.Summary.TotalGET}}</b></span>
  <span>POST <b>{{.Summary.TotalPOST}}</b></span>
  <span>Other <b>{{.Summary.TotalOther}}</b></span>
  <span>Protected <b>{{.Summary.TotalProtected}}</b></span>
  <span>Cached <b>{{.Summary.TotalCached}}</b></span>
  <span>Dynamic <b>{{.Summary.TotalDynamic}}</b></span>
</div>

{{if .Sections}}
<nav>{{range $i, $s := .Sections}}<a href="#section-{{$i}}">{{$s.Name}}</a>{{end}}</nav>

{{range $i, $s := .Sections}}
<section id="section-{{$i}}">
<h2>{{.Name}}</h2>
<table>
<thead><tr><th>Route</th><th>Auth</th><th>Input</th><th>Cache-Control</th><th>Responses</th></tr></thead>
<tbody>
{{range .Routes}}{{$route := .}}
<tr>
<td>
  {{range .Methods}}<span class="method-badge {{methodColor .}}">{{.}}</span> {{end}}<code>{{.URLPath}}</code>
  <div><code class="auth-public">{{.File}}</code>{{if .Runtime}} · runtime {{.Runtime}}{{end}}</div>
  {{range .Methods}}
  <details><summary>curl {{.}}</summary><pre>{{curl $.BaseURL $.SecretEnv . $route}}</pre></details>
  {{end}}
</td>
<td>{{if .Protected}}<span class="auth-bearer">Bearer</span>{{else}}<span class="auth-public">Public</span>{{end}}</td>
<td>{{if .SchemaName}}<code>{{.SchemaName}}</code><br>{{.ParamLocation}}{{else}}-{{end}}</td>
<td>{{if .CacheControl}}<code>{{.CacheControl}}</code>{{else}}-{{end}}</td>
<td>200{{if .SchemaName}} · 400 Invalid request{{end}}{{if .Protected}} · 401 Unauthorized{{end}} · 500</td>
</tr>
{{end}}
</tbody>
</table>
</section>
{{end}}
{{else}}
<p class="empty">No route handlers found.</p>
{{end}}

<footer>route-report</footer>
</main>
</body>
</html>
`
