package landing

const pageSource = `<!DOCTYPE html>
<html lang="{{html .Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{html .Title}}</title>
  <script>
    (function () {
      var lang = (navigator.languages && navigator.languages[0] || navigator.language || navigator.userLanguage || '').toLowerCase();
      var path = '{{js .Default}}';
      {{- range $i, $m := .Matches}}
      {{if $i}}else {{end}}if (lang.indexOf('{{js $m.Prefix}}') === 0) { path = '{{js $m.ID}}'; }
      {{- end}}
      window.location.replace('./' + path + '/');
    })();
  </script>
</head>
<body>
  <noscript>
    <p>Resume (choose language):</p>
    <ul>
    {{- range .Entries}}
      <li><a href="./{{html .ID}}/">{{html .Label}} (HTML)</a> — <a href="./{{html .ID}}/{{html .PDF}}">PDF</a></li>
    {{- end}}
    </ul>
  </noscript>
</body>
</html>
`
