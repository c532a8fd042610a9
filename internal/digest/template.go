package digest

import (
	"bytes"
	"html/template"
)

type emailData struct {
	Date     string
	Total    int
	Quote    string
	Sections []section
}

type section struct {
	Metro    string
	Priority bool
	Listings []row
}

type row struct {
	Title     string
	Company   string
	Location  string
	Posted    string
	ApplyLink string
	Badge     string
	Top       bool
	Alt       bool
	Score     int
}

// Inline styles throughout: email clients strip <style> blocks.
const digestTemplate = `<!DOCTYPE html>
<html><head><meta charset='utf-8'></head>
<body style='font-family: -apple-system, BlinkMacSystemFont, Segoe UI, Roboto, sans-serif; max-width: 640px; margin: 0 auto; padding: 20px; color: #1a1a1a; background: #ffffff;'>
{{if .Quote}}<div style='background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); border-radius: 12px; padding: 24px; margin-bottom: 24px;'>
<p style='font-size: 13px; color: rgba(255,255,255,0.8); margin: 0 0 8px 0; text-transform: uppercase; letter-spacing: 1px;'>Motivational Quote of the Day <span style='font-style:normal;'>&#128521;</span></p>
<p style='font-size: 18px; color: #ffffff; margin: 0; font-style: italic; line-height: 1.4;'>&ldquo;{{.Quote}}&rdquo;</p>
</div>
{{end}}<h1 style='font-size: 22px; color: #1a1a1a; margin: 0 0 4px 0;'>Med Device Sales Jobs</h1>
<p style='font-size: 14px; color: #888; margin: 0 0 20px 0;'>{{.Date}} &mdash; {{.Total}} new entry-level listing{{if ne .Total 1}}s{{end}}</p>
{{range .Sections}}{{if .Priority}}<div style='background: #f0f7ff; border-radius: 8px; padding: 12px 16px; margin: 24px 0 16px 0;'><h2 style='font-size: 18px; color: #0066cc; margin: 0;'>&#11088; {{.Metro}} ({{len .Listings}})</h2></div>
{{else}}<h3 style='font-size: 16px; color: #444; margin: 28px 0 12px 0; padding-bottom: 8px; border-bottom: 2px solid #eee;'>{{.Metro}} ({{len .Listings}})</h3>
{{end}}{{range .Listings}}<div style='padding: 12px 14px; background: {{if .Alt}}#fafafa{{else}}#ffffff{{end}}; border-radius: 6px; margin-bottom: 4px;'>
<div style='font-size: 15px; font-weight: 600;'>{{if .ApplyLink}}<a href="{{.ApplyLink}}" style='color: #0066cc; text-decoration: none;'>{{.Title}}</a>{{else}}{{.Title}}{{end}}{{if .Badge}}<span style='background:{{if .Top}}#22c55e{{else}}#3b82f6{{end}};color:#fff;font-size:10px;padding:2px 6px;border-radius:4px;margin-left:8px;'>{{.Badge}}</span>{{end}}</div>
<div style='font-size: 13px; color: #555; margin-top: 4px;'>{{.Company}} &bull; {{.Location}}</div>
<div style='font-size: 12px; color: #999; margin-top: 2px;'>{{.Posted}}</div>
</div>
{{end}}{{end}}<div style='border-top: 1px solid #eee; margin-top: 32px; padding-top: 16px;'><p style='color: #aaa; font-size: 11px; margin: 0;'>Powered by Google Jobs data &bull; Auto-sent daily &bull; Entry-level roles only</p></div>
</body></html>
`

var digestTmpl = template.Must(template.New("digest").Parse(digestTemplate))

func render(data emailData) (string, error) {
	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
