package patch

const overrideSentinel = "/* resume-site overrides */"

// OverrideCSS adjusts the theme's layout: skill tags, a centered masthead,
// and a two-column print grid that avoids splitting entries across pages.
const OverrideCSS = "\n" + overrideSentinel + `
.tag-list{display:flex;flex-wrap:wrap;gap:.35em;padding:0;margin:.4em 0 0;list-style:none}
.tag-list li{margin:0;padding:.15em .55em;font-size:.85em;line-height:1.4;border-radius:.25em;background:var(--color-dimmed);border:1px solid var(--color-secondary)}
.masthead{text-align:center;justify-items:center}
.masthead h1,.masthead h2{margin-left:auto;margin-right:auto}
.masthead .icon-list{justify-content:center}
@media print{
  @page{size:A4;margin:10mm 12mm}
  html,body{background:#fff}
  body{font-size:10.5pt}
  main{display:grid;grid-template-columns:1fr;row-gap:.6em}
  .masthead{page-break-after:avoid;break-after:avoid}
  section{break-inside:auto}
  article,.timeline-item,.tag-list li{page-break-inside:avoid;break-inside:avoid}
  h2,h3,h4{page-break-after:avoid;break-after:avoid}
  a{color:inherit;text-decoration:none}
}
`
