package convert

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// headerRE wraps the resume header (name plus subtitle/contact lines) so the
// stylesheet can center it.
var headerRE = regexp.MustCompile(`(?s)(<h1>.*?</h1>(?:\s*<p>.*?</p>){1,2})`)

// ATS-friendly stylesheet: single column, standard fonts, no graphics.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page {
    margin: 0.5in;
    size: Letter;
}
body {
    font-family: Calibri, Arial, Helvetica, sans-serif;
    font-size: 11pt;
    line-height: 1.35;
    color: #1a1a1a;
    margin: 0;
}
.header-box {
    text-align: center;
    margin-bottom: 12pt;
}
h1 {
    font-size: 20pt;
    margin: 0 0 4pt 0;
}
h2 {
    font-size: 13pt;
    border-bottom: 1px solid #444;
    padding-bottom: 2pt;
    margin: 14pt 0 6pt 0;
}
h3 {
    font-size: 11.5pt;
    margin: 10pt 0 2pt 0;
}
p {
    margin: 4pt 0;
}
ul {
    margin: 4pt 0;
    padding-left: 18pt;
}
li {
    margin: 2pt 0;
}
a {
    color: #1a1a1a;
    text-decoration: none;
}
table {
    border-collapse: collapse;
    width: 100%%;
}
td, th {
    padding: 2pt 6pt;
    text-align: left;
}
</style>
</head>
<body>
%s
</body>
</html>
`

// RenderHTML converts markdown resume content into a self-contained, styled
// HTML page suitable for PDF printing. Emojis are stripped before rendering.
func RenderHTML(mdContent string) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(mdContent), &body); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	html := StripEmojis(body.String())

	wrapped := false
	html = headerRE.ReplaceAllStringFunc(html, func(match string) string {
		if wrapped {
			return match
		}
		wrapped = true
		return `<div class="header-box">` + match + `</div>`
	})

	return fmt.Sprintf(htmlTemplate, html), nil
}
