package preview

import "html/template"

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: Arial; margin: 20px; background: #1e1e1e; color: #fff; }
    img { border: 2px solid #0078D7; max-width: 640px; }
  </style>
</head>
<body>
  <img alt="{{.Alt}}" src="{{.Src}}">
  <script>
    const img = document.querySelector('img');
    setInterval(async () => {
      const res = await fetch('/frame');
      if (res.ok) {
        const src = await res.text();
        if (src && img.src !== src) img.src = src;
      }
    }, {{.RefreshMs}});
  </script>
</body>
</html>`))

type pageData struct {
	Title     string
	Alt       string
	Src       template.URL
	RefreshMs int
}
